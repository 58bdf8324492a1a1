package data

import (
	"fmt"
	"maps"
	"slices"

	"github.com/flexon-format/go-flexon/memory"
)

// Data is a dynamic tagged value. The zero value is not meaningful; use the
// constructors Of, Map, List, Null and OfOpaque. Builder methods return the
// receiver for chaining.
type Data struct {
	kind Kind

	b       bool
	i64     int64
	f64     float64
	isFloat bool
	str     string
	view    *memory.View

	list []*Data

	keys []string
	vals []*Data
	idx  map[string]int

	op    any
	codec Codec
}

// Encodable is the encode capability for typed objects: it renders the
// object as a Data tree. No reflection is ever used to infer one.
type Encodable interface {
	ToData() (*Data, error)
}

// Decodable is the decode capability for typed objects: it populates the
// object from a Data tree.
type Decodable interface {
	FromData(*Data) error
}

// Codec is an owner-supplied encode/decode capability pair for opaque
// values whose type does not implement Encodable or Decodable itself.
type Codec interface {
	Encode(v any) (*Data, error)
	Decode(d *Data) (any, error)
}

// nullValue is the shared sentinel returned by missing-key and
// out-of-range lookups. Mutators are no-ops on non-composite values, so
// sharing it is safe.
var nullValue = &Data{kind: NullKind}

// Null returns a null value.
func Null() *Data {
	return &Data{kind: NullKind}
}

// Map returns an empty map value. Keys keep insertion order.
func Map() *Data {
	return &Data{kind: MapKind, idx: map[string]int{}}
}

// List returns an empty list value.
func List() *Data {
	return &Data{kind: ListKind}
}

// Of wraps a native value by its static type without copying bytes and
// without reflection. Unknown types become opaque; see OfOpaque for
// attaching an explicit codec.
func Of(v any) *Data {
	switch x := v.(type) {
	case nil:
		return Null()
	case *Data:
		return x
	case bool:
		return &Data{kind: BoolKind, b: x}
	case int:
		return &Data{kind: NumberKind, i64: int64(x)}
	case int8:
		return &Data{kind: NumberKind, i64: int64(x)}
	case int16:
		return &Data{kind: NumberKind, i64: int64(x)}
	case int32:
		return &Data{kind: NumberKind, i64: int64(x)}
	case int64:
		return &Data{kind: NumberKind, i64: x}
	case uint:
		return &Data{kind: NumberKind, i64: int64(x)}
	case uint8:
		return &Data{kind: NumberKind, i64: int64(x)}
	case uint16:
		return &Data{kind: NumberKind, i64: int64(x)}
	case uint32:
		return &Data{kind: NumberKind, i64: int64(x)}
	case uint64:
		return &Data{kind: NumberKind, i64: int64(x)}
	case float32:
		return &Data{kind: NumberKind, f64: float64(x), isFloat: true}
	case float64:
		return &Data{kind: NumberKind, f64: x, isFloat: true}
	case string:
		return &Data{kind: StringKind, str: x}
	case []byte:
		return &Data{kind: BytesKind, view: memory.FromBytes(x)}
	case *memory.View:
		return &Data{kind: BytesKind, view: x}
	case []*Data:
		l := List()
		for _, e := range x {
			l.Add(e)
		}
		return l
	case []any:
		l := List()
		for _, e := range x {
			l.Add(e)
		}
		return l
	case map[string]any:
		return ofStringMap(x)
	default:
		return &Data{kind: OpaqueKind, op: v}
	}
}

// OfOpaque wraps a native value as an opaque node carrying an explicit
// codec. The codec drives canonical encoding and As round trips.
func OfOpaque(v any, c Codec) *Data {
	return &Data{kind: OpaqueKind, op: v, codec: c}
}

// StringView wraps a memory view as a string value whose text materializes
// lazily on first use. The decoder uses this to carry string scalars as
// zero-copy sub-views of the input.
func StringView(v *memory.View) *Data {
	return &Data{kind: StringKind, view: v}
}

// Kind returns the stored tag.
func (d *Data) Kind() Kind { return d.kind }

func (d *Data) IsNull() bool   { return d.kind == NullKind }
func (d *Data) IsBool() bool   { return d.kind == BoolKind }
func (d *Data) IsNumber() bool { return d.kind == NumberKind }
func (d *Data) IsString() bool { return d.kind == StringKind }
func (d *Data) IsBytes() bool  { return d.kind == BytesKind }
func (d *Data) IsList() bool   { return d.kind == ListKind }
func (d *Data) IsMap() bool    { return d.kind == MapKind }
func (d *Data) IsOpaque() bool { return d.kind == OpaqueKind }

// IsEmpty reports whether the value holds nothing: null, an empty string or
// byte range, or a composite with no entries. Numbers and bools are never
// empty.
func (d *Data) IsEmpty() bool {
	switch d.kind {
	case NullKind:
		return true
	case StringKind:
		if d.view != nil {
			return d.view.Len() == 0
		}
		return d.str == ""
	case BytesKind:
		return d.view == nil || d.view.Len() == 0
	case ListKind:
		return len(d.list) == 0
	case MapKind:
		return len(d.keys) == 0
	default:
		return false
	}
}

// Len returns the number of entries of a composite, zero for anything else.
func (d *Data) Len() int {
	switch d.kind {
	case ListKind:
		return len(d.list)
	case MapKind:
		return len(d.keys)
	default:
		return 0
	}
}

// ContainsKey reports whether a map holds the key. It never coerces.
func (d *Data) ContainsKey(key string) bool {
	if d.kind != MapKind {
		return false
	}
	_, ok := d.idx[key]
	return ok
}

// Keys returns the map keys in insertion order, nil for non-maps.
func (d *Data) Keys() []string {
	if d.kind != MapKind {
		return nil
	}
	return d.keys
}

// Get returns the value stored under key. Missing keys and non-map
// receivers yield the null sentinel, never an error.
func (d *Data) Get(key string) *Data {
	if d.kind != MapKind {
		return nullValue
	}
	i, ok := d.idx[key]
	if !ok {
		return nullValue
	}
	return d.vals[i]
}

// At returns the i-th list element, or for maps the i-th value in insertion
// order. Out-of-range indexes yield the null sentinel.
func (d *Data) At(i int) *Data {
	switch d.kind {
	case ListKind:
		if i < 0 || i >= len(d.list) {
			return nullValue
		}
		return d.list[i]
	case MapKind:
		if i < 0 || i >= len(d.vals) {
			return nullValue
		}
		return d.vals[i]
	default:
		return nullValue
	}
}

// Put stores v under key, wrapping plain values via Of. Existing keys keep
// their insertion position. Put is a no-op on non-map receivers.
func (d *Data) Put(key string, v any) *Data {
	if d.kind != MapKind {
		return d
	}
	dv := Of(v)
	if i, ok := d.idx[key]; ok {
		d.vals[i] = dv
		return d
	}
	d.idx[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.vals = append(d.vals, dv)
	return d
}

// Add appends v to a list, wrapping plain values via Of. No-op on non-list
// receivers.
func (d *Data) Add(v any) *Data {
	if d.kind != ListKind {
		return d
	}
	d.list = append(d.list, Of(v))
	return d
}

// Set replaces the i-th list element. Out-of-range indexes are ignored.
func (d *Data) Set(i int, v any) *Data {
	if d.kind != ListKind || i < 0 || i >= len(d.list) {
		return d
	}
	d.list[i] = Of(v)
	return d
}

// Remove deletes key from a map, preserving the order of the rest.
func (d *Data) Remove(key string) *Data {
	if d.kind != MapKind {
		return d
	}
	i, ok := d.idx[key]
	if !ok {
		return d
	}
	d.keys = append(d.keys[:i], d.keys[i+1:]...)
	d.vals = append(d.vals[:i], d.vals[i+1:]...)
	delete(d.idx, key)
	for j := i; j < len(d.keys); j++ {
		d.idx[d.keys[j]] = j
	}
	return d
}

// RemoveAt deletes the i-th list element.
func (d *Data) RemoveAt(i int) *Data {
	if d.kind != ListKind || i < 0 || i >= len(d.list) {
		return d
	}
	d.list = append(d.list[:i], d.list[i+1:]...)
	return d
}

// Opaque returns the wrapped native value of an opaque node, nil otherwise.
func (d *Data) Opaque() any {
	if d.kind != OpaqueKind {
		return nil
	}
	return d.op
}

// As populates target from this value through its decode capability. This
// is the single operation in this package that can fail: the callback's
// error is propagated wrapped in ErrDecodeCallback.
func (d *Data) As(target Decodable) error {
	if err := target.FromData(d); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeCallback, err)
	}
	return nil
}

// ofStringMap wraps a native map. Go map iteration is randomized, so keys
// are sorted to keep wrapping deterministic (there is no insertion order to
// preserve).
func ofStringMap(m map[string]any) *Data {
	res := Map()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Put(k, m[k])
	}
	return res
}
