package token

import (
	"encoding/json"
	"testing"

	"github.com/flexon-format/go-flexon/memory"
)

func tokenize(s string) []Token {
	z := New([]byte(s))
	var toks []Token
	for {
		t := z.Next()
		if t.Type == TEOF {
			return toks
		}
		toks = append(toks, t)
	}
}

type tokCase struct {
	typ  Type
	text string
}

func checkTokens(t *testing.T, in string, want []tokCase) {
	t.Helper()
	toks := tokenize(in)
	if len(toks) != len(want) {
		t.Fatalf("%q: got %d tokens, want %d", in, len(toks), len(want))
	}
	for i, w := range toks {
		if w.Type != want[i].typ {
			t.Errorf("%q token %d: got %s, want %s", in, i, w.Type, want[i].typ)
		}
		if want[i].typ == TString || want[i].typ == TLiteral {
			if got := w.Text(); got != want[i].text {
				t.Errorf("%q token %d: got text %q, want %q", in, i, got, want[i].text)
			}
		}
	}
}

func TestStructural(t *testing.T) {
	checkTokens(t, "{}[]:,", []tokCase{
		{TLCurl, ""}, {TRCurl, ""}, {TLSquare, ""}, {TRSquare, ""},
		{TColon, ""}, {TComma, ""},
	})
}

func TestQuoteStyles(t *testing.T) {
	checkTokens(t, `"foo" 'bar' baz`, []tokCase{
		{TString, "foo"}, {TString, "bar"}, {TLiteral, "baz"},
	})
}

func TestBareStopsAtBoundary(t *testing.T) {
	checkTokens(t, `{foo:bar,x}`, []tokCase{
		{TLCurl, ""}, {TLiteral, "foo"}, {TColon, ""}, {TLiteral, "bar"},
		{TComma, ""}, {TLiteral, "x"}, {TRCurl, ""},
	})
}

func TestEscapes(t *testing.T) {
	checkTokens(t, `"a\"b" "a\nb" "A" "a\qb" "\u12"`, []tokCase{
		{TString, `a"b`},
		{TString, "a\nb"},
		{TString, "A"},
		{TString, `a\qb`},
		{TString, `\u12`},
	})
}

func TestSurrogatePairEscapes(t *testing.T) {
	// pair escapes are the only way strict JSON spells non-BMP text, so
	// the decoded text must agree with encoding/json
	ins := []string{
		`"😀"`,
		`"x𝄞y"`,
		`"A😀B"`,
		`"😀"`,
	}
	for _, in := range ins {
		var want string
		if err := json.Unmarshal([]byte(in), &want); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		checkTokens(t, in, []tokCase{{TString, want}})
	}
}

func TestLoneSurrogateReplaced(t *testing.T) {
	checkTokens(t, `"\uD83D"`, []tokCase{{TString, "�"}})
	checkTokens(t, `"\uDE00x"`, []tokCase{{TString, "�x"}})
	// a high surrogate followed by a non-surrogate escape replaces only
	// the lone half
	checkTokens(t, `"\uD83DA"`, []tokCase{{TString, "�A"}})
}

func TestUnterminatedQuoteRunsToEnd(t *testing.T) {
	checkTokens(t, `"abc`, []tokCase{{TString, "abc"}})
	checkTokens(t, `'a b`, []tokCase{{TString, "a b"}})
}

func TestWhitespaceInsignificant(t *testing.T) {
	checkTokens(t, " \t\n {  a \r\n : 1 } ", []tokCase{
		{TLCurl, ""}, {TLiteral, "a"}, {TColon, ""}, {TLiteral, "1"}, {TRCurl, ""},
	})
}

func TestEOFForever(t *testing.T) {
	z := New(nil)
	for i := 0; i < 3; i++ {
		if tok := z.Next(); tok.Type != TEOF {
			t.Fatalf("got %s, want TEOF", tok.Type)
		}
	}
}

func TestPayloadZeroCopy(t *testing.T) {
	src := []byte(`{greeting: "hello"}`)
	v := memory.FromBytes(src)
	z := NewView(v)
	z.Next() // {
	key := z.Next()
	if key.View() == nil {
		t.Fatal("bare payload should be a view")
	}
	b, err := key.View().Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if &b[0] != &src[1] {
		t.Error("bare payload does not reference the source bytes")
	}
	z.Next() // :
	val := z.Next()
	if val.View() == nil {
		t.Fatal("escape-free quoted payload should be a view")
	}
	if got := val.Text(); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestEscapedPayloadMaterializes(t *testing.T) {
	z := New([]byte(`"a\tb"`))
	tok := z.Next()
	if tok.View() != nil {
		t.Error("escaped payload should not be a view")
	}
	if tok.Text() != "a\tb" {
		t.Errorf("got %q", tok.Text())
	}
}
