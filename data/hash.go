package data

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit content hash of the tree, stable across processes.
// Trees that compare Equal through same-kind structure hash identically;
// map insertion order does not affect the hash. Cross-kind scalar equality
// (a number versus its string spelling) is not reflected in the hash.
func (d *Data) Hash() uint64 {
	h := xxhash.New()
	d.hashTo(h)
	return h.Sum64()
}

func (d *Data) hashTo(h *xxhash.Digest) {
	kb := d.kind
	if kb == BytesKind {
		// bytes are text observed lazily; hash like the string it decodes to
		kb = StringKind
	}
	h.Write([]byte{byte(kb)})
	switch d.kind {
	case NullKind:
	case BoolKind:
		if d.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case NumberKind:
		// canonical text, so an integer and the float spelling the same
		// value hash alike, matching Equal
		h.WriteString(d.scalarString())
	case StringKind, BytesKind:
		h.WriteString(d.scalarString())
	case ListKind:
		for _, e := range d.list {
			e.hashTo(h)
		}
	case MapKind:
		var b [8]byte
		keys := slices.Clone(d.keys)
		slices.Sort(keys)
		for _, k := range keys {
			h.WriteString(k)
			binary.LittleEndian.PutUint64(b[:], d.Get(k).Hash())
			h.Write(b[:])
		}
	case OpaqueKind:
		if enc, err := d.encodeOpaque(); err == nil && enc != nil {
			enc.hashTo(h)
		}
	}
}
