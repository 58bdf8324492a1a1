package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/flexon-format/go-flexon/memory"
)

// Tokenizer walks the input with a single forward cursor. Next never fails;
// at end of input it returns TEOF forever.
type Tokenizer struct {
	src *memory.View
	buf []byte
	pos int
}

// New scans d. The slice is wrapped as a memory segment; string payloads
// reference it without copying.
func New(d []byte) *Tokenizer {
	return NewView(memory.FromBytes(d))
}

// NewView scans a memory view. A single-segment view is scanned in place;
// a multi-segment view is flattened once up front (the only copy the
// tokenizer ever makes).
func NewView(v *memory.View) *Tokenizer {
	buf, err := v.Bytes()
	if err != nil {
		buf = nil
	}
	return &Tokenizer{src: v, buf: buf}
}

// Next returns the next token.
func (z *Tokenizer) Next() Token {
	z.skipSpace()
	if z.pos >= len(z.buf) {
		return Token{Type: TEOF, Pos: z.pos}
	}
	start := z.pos
	switch c := z.buf[z.pos]; c {
	case '{':
		z.pos++
		return Token{Type: TLCurl, Pos: start}
	case '}':
		z.pos++
		return Token{Type: TRCurl, Pos: start}
	case '[':
		z.pos++
		return Token{Type: TLSquare, Pos: start}
	case ']':
		z.pos++
		return Token{Type: TRSquare, Pos: start}
	case ':':
		z.pos++
		return Token{Type: TColon, Pos: start}
	case ',':
		z.pos++
		return Token{Type: TComma, Pos: start}
	case '"', '\'':
		return z.quoted(c)
	default:
		return z.bare()
	}
}

func (z *Tokenizer) skipSpace() {
	for z.pos < len(z.buf) {
		switch z.buf[z.pos] {
		case ' ', '\t', '\r', '\n':
			z.pos++
		default:
			return
		}
	}
}

// quoted scans a string delimited by q. A missing closing quote runs the
// token to end of input.
func (z *Tokenizer) quoted(q byte) Token {
	start := z.pos
	z.pos++ // opening quote
	from := z.pos
	escaped := false
	for z.pos < len(z.buf) {
		c := z.buf[z.pos]
		if c == '\\' && z.pos+1 < len(z.buf) {
			escaped = true
			z.pos += 2
			continue
		}
		if c == q {
			break
		}
		z.pos++
	}
	to := z.pos
	if z.pos < len(z.buf) {
		z.pos++ // closing quote
	}
	if !escaped {
		return Token{Type: TString, Pos: start, view: z.payload(from, to)}
	}
	return Token{Type: TString, Pos: start, text: unescape(string(z.buf[from:to]))}
}

// bare scans an unquoted run up to the next structural character or
// whitespace.
func (z *Tokenizer) bare() Token {
	start := z.pos
	for z.pos < len(z.buf) && !boundary(z.buf[z.pos]) {
		z.pos++
	}
	return Token{Type: TLiteral, Pos: start, view: z.payload(start, z.pos)}
}

func boundary(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ':', ',', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// payload slices the source view zero-copy; the fallback covers disposed
// views, which yield empty payloads rather than failures.
func (z *Tokenizer) payload(from, to int) *memory.View {
	sub, err := z.src.Substring(from, to)
	if err != nil {
		return memory.FromString("")
	}
	return sub
}

// unescape decodes JSON string escapes. Escapes it does not recognize are
// kept literally.
func unescape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, n := hexRune(s[i+1:])
			if n == 0 {
				sb.WriteByte('\\')
				sb.WriteByte('u')
				continue
			}
			i += n
			if utf16.IsSurrogate(r) {
				// a high surrogate pairs with an immediately following
				// \uXXXX low surrogate; anything else is a lone half and
				// decodes to the replacement character
				if i+2 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
					if r2, n2 := hexRune(s[i+3:]); n2 != 0 {
						if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
							sb.WriteRune(c)
							i += 2 + n2
							continue
						}
					}
				}
				sb.WriteRune(utf8.RuneError)
				continue
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// hexRune decodes 4 hex digits to their raw 16-bit value; n is 0 when
// fewer than 4 are present. Surrogate halves come back as-is so the caller
// can pair them.
func hexRune(s string) (r rune, n int) {
	if len(s) < 4 {
		return 0, 0
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | rune(c-'A'+10)
		default:
			return 0, 0
		}
	}
	return v, 4
}
