package data

import (
	"strconv"
	"strings"
)

// String renders the canonical compact text of the tree: double-quoted keys
// and strings, true/false, minimal decimal numbers, null, insertion order.
// It is the default layout of the encode package and parses back to an
// Equal tree.
func (d *Data) String() string {
	var sb strings.Builder
	d.writeTo(&sb)
	return sb.String()
}

func (d *Data) writeTo(sb *strings.Builder) {
	switch d.kind {
	case NullKind, BoolKind, NumberKind:
		sb.WriteString(d.scalarString())
	case StringKind, BytesKind:
		sb.WriteString(Quote(d.scalarString()))
	case ListKind:
		sb.WriteByte('[')
		for i, e := range d.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.writeTo(sb)
		}
		sb.WriteByte(']')
	case MapKind:
		sb.WriteByte('{')
		for i, k := range d.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Quote(k))
			sb.WriteString(": ")
			d.vals[i].writeTo(sb)
		}
		sb.WriteByte('}')
	case OpaqueKind:
		enc, err := d.encodeOpaque()
		if err != nil || enc == nil {
			sb.WriteString("null")
			return
		}
		enc.writeTo(sb)
	}
}

// encodeOpaque renders an opaque node through its codec or the value's own
// Encodable capability. A capability-less opaque has no canonical form and
// yields nil.
func (d *Data) encodeOpaque() (*Data, error) {
	if d.kind != OpaqueKind {
		return d, nil
	}
	if d.codec != nil {
		return d.codec.Encode(d.op)
	}
	if e, ok := d.op.(Encodable); ok {
		return e.ToData()
	}
	return nil, nil
}

// EncodeOpaque exposes the opaque encode path to the encode package.
func (d *Data) EncodeOpaque() (*Data, error) {
	return d.encodeOpaque()
}

// Quote renders s as a double-quoted JSON string with the standard
// escapes. Bytes outside the escape set pass through untouched, so text
// that is not valid UTF-8 survives a quote/unquote round trip.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if c < 0x20 {
				sb.WriteString(`\u`)
				hex := strconv.FormatInt(int64(c), 16)
				for len(hex) < 4 {
					hex = "0" + hex
				}
				sb.WriteString(hex)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
