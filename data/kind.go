package data

// Kind is the tag of a Data value. A value's kind never changes implicitly;
// coercion accessors convert on read without touching it.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	BytesKind
	ListKind
	MapKind
	OpaqueKind
)

func (k Kind) String() string {
	return map[Kind]string{
		NullKind:   "null",
		BoolKind:   "bool",
		NumberKind: "number",
		StringKind: "string",
		BytesKind:  "bytes",
		ListKind:   "list",
		MapKind:    "map",
		OpaqueKind: "opaque",
	}[k]
}

// Kinds returns all kinds, in tag order.
func Kinds() []Kind {
	return []Kind{
		NullKind, BoolKind, NumberKind, StringKind,
		BytesKind, ListKind, MapKind, OpaqueKind,
	}
}
