package encode

import (
	"io"
	"strings"

	"github.com/flexon-format/go-flexon/data"
)

// EncState carries layout state through one encode.
type EncState struct {
	depth  int
	indent int
	wire   bool

	Color func(data.Kind, ColorAttr, string) string
}

// Encode writes the canonical text of d to w.
func Encode(d *data.Data, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(d, w, es)
}

func encode(d *data.Data, w io.Writer, es *EncState) error {
	switch d.Kind() {
	case data.ListKind:
		return encodeList(d, w, es)
	case data.MapKind:
		return encodeMap(d, w, es)
	case data.OpaqueKind:
		enc, err := d.EncodeOpaque()
		if err != nil {
			return err
		}
		if enc == nil {
			return writeString(w, es.color(data.NullKind, ValueColor, "null"))
		}
		return encode(enc, w, es)
	case data.StringKind, data.BytesKind:
		return writeString(w, es.color(data.StringKind, ValueColor, data.Quote(d.AsString())))
	default:
		return writeString(w, es.color(d.Kind(), ValueColor, d.AsString()))
	}
}

func encodeList(d *data.Data, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(data.ListKind, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < d.Len(); i++ {
		if i > 0 {
			if err := writeString(w, es.color(data.ListKind, SepColor, es.comma())); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := encode(d.At(i), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if d.Len() > 0 {
		if err := es.writeNL(w); err != nil {
			return err
		}
	}
	return writeString(w, es.color(data.ListKind, SepColor, "]"))
}

func encodeMap(d *data.Data, w io.Writer, es *EncState) error {
	if err := writeString(w, es.color(data.MapKind, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, k := range d.Keys() {
		if i > 0 {
			if err := writeString(w, es.color(data.MapKind, SepColor, es.comma())); err != nil {
				return err
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := writeString(w, es.color(data.MapKind, FieldColor, data.Quote(k))); err != nil {
			return err
		}
		if err := writeString(w, es.color(data.MapKind, SepColor, es.colon())); err != nil {
			return err
		}
		if err := encode(d.At(i), w, es); err != nil {
			return err
		}
	}
	es.depth--
	if d.Len() > 0 {
		if err := es.writeNL(w); err != nil {
			return err
		}
	}
	return writeString(w, es.color(data.MapKind, SepColor, "}"))
}

func (es *EncState) comma() string {
	switch {
	case es.indent > 0 || es.wire:
		return ","
	default:
		return ", "
	}
}

func (es *EncState) colon() string {
	if es.wire {
		return ":"
	}
	return ": "
}

// writeNL breaks the line in indented mode; compact layouts stay on one
// line.
func (es *EncState) writeNL(w io.Writer) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) color(k data.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
