package flexon

import (
	"io"

	"github.com/flexon-format/go-flexon/data"
	"github.com/flexon-format/go-flexon/encode"
	"github.com/flexon-format/go-flexon/memory"
	"github.com/flexon-format/go-flexon/parse"
)

// Decode parses d into a document. Decode never fails: malformed input
// yields the closest well formed document, and input with no value at
// all yields Null.
func Decode(d []byte) *data.Data {
	return parse.Decode(d)
}

// DecodeString is Decode for string input.
func DecodeString(s string) *data.Data {
	return parse.DecodeString(s)
}

// DecodeView parses v without copying its contents. String scalars in
// the result reference v's backing segments directly.
func DecodeView(v *memory.View) *data.Data {
	return parse.DecodeView(v)
}

// Encode writes d to w. By default the output is the canonical
// single line layout; see the encode package options for wire and
// indented layouts.
func Encode(d *data.Data, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d, w, opts...)
}

// EncodeString renders d to a string.
func EncodeString(d *data.Data, opts ...encode.EncodeOption) string {
	return encode.MustString(d, opts...)
}
