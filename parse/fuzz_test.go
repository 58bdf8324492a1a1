package parse

import (
	"testing"
)

func FuzzDecode(f *testing.F) {
	seeds := []string{
		// primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`3.14`,
		`-1e10`,
		`""`,
		`"hello"`,
		`hello`,
		`'single'`,

		// arrays
		`[]`,
		`[1, 2, 3]`,
		`[a, b, c]`,
		`[[nested], [arrays]]`,

		// objects
		`{}`,
		`{foo: bar}`,
		`{a: 1, b: 2}`,
		`{nested: {object: value}}`,
		`{users: [{name: alice}, {name: bob}]}`,

		// tolerance
		`{a:1 b:2}`,
		`{"a":[1,2`,
		`{"a":1}}]}`,
		`{'mixed': "quotes', bare}`,
		`"unterminated`,
		`\u0041\uZZZZ`,
		"{a:\x00\xff}",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, in []byte) {
		// the decoder is total: whatever the input, it returns a tree
		d := Decode(in)
		if d == nil {
			t.Fatal("Decode returned nil")
		}
		// and the canonical encoding of that tree re-decodes to an equal
		// tree (the canonical grammar is a subset of the accepted one)
		rt := DecodeString(d.String())
		if !d.Equal(rt) {
			t.Fatalf("round trip mismatch: %s != %s", d, rt)
		}
	})
}
