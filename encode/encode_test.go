package encode

import (
	"fmt"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/flexon-format/go-flexon/data"
	"github.com/flexon-format/go-flexon/parse"
)

// checkText compares encoder output against the expected text, printing a
// character diff on mismatch.
func checkText(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("encoding mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func sample() *data.Data {
	return data.Map().
		Put("foo", "bar").
		Put("test", true).
		Put("answer", 42).
		Put("array", data.List().Add(1).Add("a").Add(nil))
}

func TestCanonical(t *testing.T) {
	got := MustString(sample())
	checkText(t, got, `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`)
}

func TestCanonicalMatchesStringer(t *testing.T) {
	d := sample()
	checkText(t, MustString(d), d.String())
}

func TestWire(t *testing.T) {
	got := MustString(sample(), Wire())
	checkText(t, got, `{"foo":"bar","test":true,"answer":42,"array":[1,"a",null]}`)
}

func TestIndent(t *testing.T) {
	d := data.Map().Put("a", 1).Put("b", data.List().Add(true))
	got := MustString(d, Indent(2))
	checkText(t, got, "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}")
}

func TestEmptyComposites(t *testing.T) {
	checkText(t, MustString(data.Map()), "{}")
	checkText(t, MustString(data.List()), "[]")
	checkText(t, MustString(data.Map(), Indent(2)), "{}")
}

func TestScalars(t *testing.T) {
	checkText(t, MustString(data.Null()), "null")
	checkText(t, MustString(data.Of(true)), "true")
	checkText(t, MustString(data.Of(-7)), "-7")
	checkText(t, MustString(data.Of(2.5)), "2.5")
	checkText(t, MustString(data.Of("say \"hi\"\n")), `"say \"hi\"\n"`)
	checkText(t, MustString(data.Of([]byte("raw"))), `"raw"`)
}

func TestStringEscapes(t *testing.T) {
	checkText(t, MustString(data.Of("tab\there")), `"tab\there"`)
	checkText(t, MustString(data.Of("ctrl\x01")), `"ctrl"`)
}

func TestRoundTrip(t *testing.T) {
	trees := []*data.Data{
		sample(),
		data.List().Add(data.Map().Put("deep", data.List().Add(1).Add(2))),
		data.Of("null"),
		data.Null(),
		data.Of(1e14),
		data.Map().Put("empty", data.Map()).Put("also", data.List()),
	}
	for _, d := range trees {
		for _, opts := range [][]EncodeOption{nil, {Wire()}, {Indent(4)}} {
			rt := parse.DecodeString(MustString(d, opts...))
			if !d.Equal(rt) {
				t.Errorf("round trip of %s: got %s", d, rt)
			}
		}
	}
}

type stamp struct {
	mark string
}

func (s *stamp) ToData() (*data.Data, error) {
	return data.Map().Put("mark", s.mark), nil
}

func TestOpaqueEncodes(t *testing.T) {
	d := data.Map().Put("stamp", data.Of(&stamp{mark: "x"}))
	checkText(t, MustString(d), `{"stamp": {"mark": "x"}}`)

	bare := data.Map().Put("mystery", data.Of(struct{ n int }{1}))
	checkText(t, MustString(bare), `{"mystery": null}`)
}

func TestColorsPassThrough(t *testing.T) {
	// a palette with no entries falls back to plain sprintf
	c := &ColorSet{Default: fmt.Sprintf, Map: map[Colorable]func(string, ...any) string{}}
	got := MustString(sample(), Colors(c))
	checkText(t, got, sample().String())
}
