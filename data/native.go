package data

// ToNative converts the tree to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Byte values decode to strings; opaque
// values surface their native handle. Map insertion order is lost.
func (d *Data) ToNative() any {
	switch d.kind {
	case NullKind:
		return nil
	case BoolKind:
		return d.b
	case NumberKind:
		if d.isFloat {
			return d.f64
		}
		return d.i64
	case StringKind, BytesKind:
		return d.scalarString()
	case ListKind:
		res := make([]any, len(d.list))
		for i, e := range d.list {
			res[i] = e.ToNative()
		}
		return res
	case MapKind:
		res := make(map[string]any, len(d.keys))
		for i, k := range d.keys {
			res[k] = d.vals[i].ToNative()
		}
		return res
	case OpaqueKind:
		return d.op
	default:
		return nil
	}
}

// FromNative wraps a plain Go value tree. It is Of under a name that reads
// better next to ToNative.
func FromNative(v any) *Data {
	return Of(v)
}
