package token

import (
	"fmt"

	"github.com/flexon-format/go-flexon/memory"
)

type Type int

const (
	TEOF Type = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString  // quoted by " or '
	TLiteral // bare run up to the next structural character or whitespace
)

func (t Type) String() string {
	return map[Type]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TLiteral: "TLiteral",
	}[t]
}

// Token is one lexical element. Pos is the byte offset of its first
// character in the input.
type Token struct {
	Type Type
	Pos  int

	// payload of TString and TLiteral: view when the bytes could be
	// referenced in place, text when escape processing materialized them
	view *memory.View
	text string
}

// Text returns the decoded payload of a string or literal token.
func (t *Token) Text() string {
	if t.view != nil {
		s, err := t.view.String()
		if err != nil {
			return ""
		}
		return s
	}
	return t.text
}

// View returns the zero-copy payload view, nil when the payload had to be
// materialized or the token carries none.
func (t *Token) View() *memory.View {
	return t.view
}

func (t *Token) Info() string {
	switch t.Type {
	case TString, TLiteral:
		return fmt.Sprintf("%s %q at %d", t.Type, t.Text(), t.Pos)
	default:
		return fmt.Sprintf("%s at %d", t.Type, t.Pos)
	}
}
