package flexon

import (
	"strings"
	"testing"

	"github.com/flexon-format/go-flexon/encode"
)

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		`{"a": 1, "b": [true, null, "x"]}`,
		`[1, 2, 3]`,
		`"hello"`,
		`null`,
	} {
		d := DecodeString(in)
		if got := EncodeString(d); got != in {
			t.Errorf("round trip %q: got %q", in, got)
		}
	}
}

func TestDecodeTolerant(t *testing.T) {
	a := DecodeString(`{greeting: 'hello' answer: 42`)
	b := DecodeString(`{"greeting": "hello", "answer": 42}`)
	if !a.Equal(b) {
		t.Errorf("tolerant decode mismatch: %s vs %s", a, b)
	}
}

func TestEncodeWriter(t *testing.T) {
	d := DecodeString(`{a: [1, 2]}`)
	var sb strings.Builder
	if err := Encode(d, &sb, encode.Wire()); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != `{"a":[1,2]}` {
		t.Errorf("wire encode: got %q", got)
	}
}
