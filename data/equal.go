package data

// Equal reports deep value equality.
//
// Scalars compare by their canonical text, so a number compares equal to the
// string spelling of that number and a bool to "true"/"false". This mirrors
// how lazily coerced values behave everywhere else: `42` and `"42"` are the
// same value observed through any accessor. Null equals only null; the
// string "null" is a different value.
//
// Maps compare by key set regardless of insertion order; lists compare
// element-wise in order. Opaque values compare by native handle identity.
func (d *Data) Equal(o *Data) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d == o {
		return true
	}
	if d.kind == NullKind || o.kind == NullKind {
		return d.kind == o.kind
	}
	if d.isScalar() && o.isScalar() {
		if d.kind == NumberKind && o.kind == NumberKind {
			return numberEqual(d, o)
		}
		return d.scalarString() == o.scalarString()
	}
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case ListKind:
		if len(d.list) != len(o.list) {
			return false
		}
		for i := range d.list {
			if !d.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case MapKind:
		if len(d.keys) != len(o.keys) {
			return false
		}
		for _, k := range d.keys {
			if !o.ContainsKey(k) {
				return false
			}
			if !d.Get(k).Equal(o.Get(k)) {
				return false
			}
		}
		return true
	case OpaqueKind:
		return d.op == o.op
	default:
		return false
	}
}

func (d *Data) isScalar() bool {
	switch d.kind {
	case BoolKind, NumberKind, StringKind, BytesKind:
		return true
	}
	return false
}

func numberEqual(a, b *Data) bool {
	if !a.isFloat && !b.isFloat {
		return a.i64 == b.i64
	}
	return a.AsFloat64() == b.AsFloat64()
}
