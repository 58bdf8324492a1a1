package parse

import (
	"testing"

	"github.com/flexon-format/go-flexon/data"
)

type equivTest struct {
	in   string
	same string
}

func TestToleranceEquivalence(t *testing.T) {
	pts := []equivTest{
		// quote invariance
		{
			in:   `{'foo': 'bar', 'test': true, 'answer': 42, 'array': [1, 'a', null]}`,
			same: `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`,
		},
		{
			in:   `{foo: bar, test: true, answer: 42, array: [1, a, null]}`,
			same: `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`,
		},
		// quoted scalars equal their typed spellings, null excepted
		{
			in:   `{'foo': 'bar', 'test': 'true', 'answer': '42', 'array': ['1', 'a', null]}`,
			same: `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`,
		},
		// missing commas
		{
			in:   `{foo: bar test: true answer: 42 array: [1 a null]}`,
			same: `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`,
		},
		// premature end of stream
		{
			in:   `{foo: bar, test: true, answer: 42, array: [1, a, null`,
			same: `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`,
		},
		// wrong and surplus closers
		{
			in:   `{foo: bar, test: true, answer: 42, array: [1, a, null}]]}}`,
			same: `{"foo": "bar", "test": true, "answer": 42, "array": [1, "a", null]}`,
		},
		{
			in:   `{"a":[1,2`,
			same: `{"a":[1,2]}`,
		},
		{
			in:   `{"a":1}}]}`,
			same: `{"a":1}`,
		},
		{
			in:   `{a:1 b:2}`,
			same: `{"a":1,"b":2}`,
		},
		{
			in:   `[1 2 3]`,
			same: `[1,2,3]`,
		},
		{
			in:   `{"a":`,
			same: `{"a":null}`,
		},
	}
	for _, pt := range pts {
		got := DecodeString(pt.in)
		want := DecodeString(pt.same)
		if !got.Equal(want) {
			t.Errorf("decode(%q) = %s, want %s", pt.in, got, want)
		}
	}
}

func TestScalars(t *testing.T) {
	pts := []struct {
		in   string
		kind data.Kind
		text string
	}{
		{`null`, data.NullKind, "null"},
		{`true`, data.BoolKind, "true"},
		{`false`, data.BoolKind, "false"},
		{`42`, data.NumberKind, "42"},
		{`-7`, data.NumberKind, "-7"},
		{`1e14`, data.NumberKind, "1e+14"},
		{`3.25`, data.NumberKind, "3.25"},
		{`"hello"`, data.StringKind, "hello"},
		{`'hello'`, data.StringKind, "hello"},
		{`hello`, data.StringKind, "hello"},
		{`42abc`, data.StringKind, "42abc"},
		{`"42"`, data.StringKind, "42"},
		{`"true"`, data.StringKind, "true"},
		{`NaN`, data.StringKind, "NaN"},
		{``, data.NullKind, "null"},
		{`   `, data.NullKind, "null"},
	}
	for _, pt := range pts {
		got := DecodeString(pt.in)
		if got.Kind() != pt.kind {
			t.Errorf("decode(%q): kind %s, want %s", pt.in, got.Kind(), pt.kind)
			continue
		}
		if got.AsString() != pt.text {
			t.Errorf("decode(%q): text %q, want %q", pt.in, got.AsString(), pt.text)
		}
	}
}

func TestNullQuotingAsymmetry(t *testing.T) {
	d := DecodeString(`{"x": null, "y": "null"}`)
	if !d.Get("x").IsNull() {
		t.Error("bare null should decode to null")
	}
	if !d.Get("y").IsString() {
		t.Error("quoted null should decode to a string")
	}
	if got := d.Get("y").AsString(); got != "null" {
		t.Errorf(`quoted null text = %q, want "null"`, got)
	}
}

func TestNestedStructures(t *testing.T) {
	d := DecodeString(`{users: [{name: alice, admin: true}, {name: bob}], count: 2}`)
	if got := d.Get("users").Len(); got != 2 {
		t.Fatalf("users length %d", got)
	}
	if got := d.Get("users").At(0).Get("name").AsString(); got != "alice" {
		t.Errorf("name %q", got)
	}
	if !d.Get("users").At(0).Get("admin").AsBool() {
		t.Error("admin should be true")
	}
	if got := d.Get("count").AsInt(); got != 2 {
		t.Errorf("count %d", got)
	}
}

func TestDeeplyNestedInput(t *testing.T) {
	// must not exhaust the call stack: nesting depth is held on an
	// explicit stack
	const depth = 200_000
	in := make([]byte, depth)
	for i := range in {
		in[i] = '['
	}
	d := Decode(in)
	if !d.IsList() {
		t.Fatalf("kind %s", d.Kind())
	}
}

func TestOnlyClosers(t *testing.T) {
	if !DecodeString(`}]}`).IsNull() {
		t.Error("a stream of closers decodes to null")
	}
}

func TestFirstOutermostValueWins(t *testing.T) {
	d := DecodeString(`{"a": 1} {"b": 2}`)
	if !d.Equal(DecodeString(`{"a": 1}`)) {
		t.Errorf("got %s", d)
	}
}

func TestKeylessScalarInMapDropped(t *testing.T) {
	d := DecodeString(`{stray, a: 1}`)
	if !d.Equal(DecodeString(`{"a": 1}`)) {
		t.Errorf("got %s", d)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	d := DecodeString(`{z: 1, a: 2, m: 3}`)
	want := []string{"z", "a", "m"}
	keys := d.Keys()
	if len(keys) != len(want) {
		t.Fatalf("keys %v", keys)
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key %d = %q, want %q", i, keys[i], k)
		}
	}
}

func TestStandardJSONAgreement(t *testing.T) {
	// well-formed JSON decodes to the same tree under the tolerant grammar
	ins := []string{
		`{}`,
		`[]`,
		`{"a": [1, 2.5, true, false, null, "s"], "b": {"c": {}}}`,
		`"escaped \"text\" with \n and A"`,
		`[[[1], [2]], []]`,
	}
	for _, in := range ins {
		d := DecodeString(in)
		rt := DecodeString(d.String())
		if !d.Equal(rt) {
			t.Errorf("round trip of %q: %s != %s", in, d, rt)
		}
	}
}
