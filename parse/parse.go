package parse

import (
	"math"
	"strconv"

	"github.com/flexon-format/go-flexon/data"
	"github.com/flexon-format/go-flexon/internal/debug"
	"github.com/flexon-format/go-flexon/memory"
	"github.com/flexon-format/go-flexon/token"
)

// Decode parses d into a value tree. It never fails; an empty or fully
// invalid stream decodes to null.
func Decode(d []byte) *data.Data {
	return DecodeView(memory.FromBytes(d))
}

// DecodeString parses s into a value tree.
func DecodeString(s string) *data.Data {
	return DecodeView(memory.FromString(s))
}

// DecodeView parses the bytes of v. String scalars reference v's segments
// through zero-copy sub-views whenever escape processing allows it.
func DecodeView(v *memory.View) *data.Data {
	z := token.NewView(v)
	m := &machine{}
	for {
		tok := z.Next()
		if m.step(tok) {
			break
		}
	}
	if m.result == nil {
		return data.Null()
	}
	return m.result
}

// frame is one open composite on the explicit nesting stack.
type frame struct {
	node *data.Data

	// object key state: pend holds a scalar waiting for ':' to promote it
	// to a key; key/keySet hold a promoted key waiting for its value.
	key     string
	keySet  bool
	pend    string
	pendSet bool

	// routing for the completed composite: bound to a parent map key,
	// appended to a parent list, or dropped (keyless composite in a map)
	intoKey string
	bindKey bool
	drop    bool
}

// machine drives the decode. Parsing stops at the first fully closed
// outermost value; everything after it is ignored.
type machine struct {
	stack  []frame
	result *data.Data
}

// step consumes one token and reports whether parsing is finished.
func (m *machine) step(tok token.Token) bool {
	switch tok.Type {
	case token.TEOF:
		m.closeAll()
		return true
	case token.TLCurl:
		m.push(data.Map())
	case token.TLSquare:
		m.push(data.List())
	case token.TRCurl, token.TRSquare:
		// a closer closes the innermost open composite, whatever bracket
		// opened it; a stray closer outside any composite is ignored
		if len(m.stack) == 0 {
			if debug.Decode() {
				debug.Logf("parse: ignoring stray closer at %d\n", tok.Pos)
			}
			return false
		}
		return m.closeTop()
	case token.TColon:
		m.colon()
	case token.TComma:
		m.comma()
	case token.TString:
		return m.value(quotedValue(&tok), tok.Text())
	case token.TLiteral:
		return m.value(bareValue(&tok), tok.Text())
	}
	return false
}

// value routes a completed scalar. A missing comma before it was an
// implicit separator: the previous value already completed, so the scalar
// simply takes its place in the current composite.
func (m *machine) value(val *data.Data, text string) bool {
	if len(m.stack) == 0 {
		m.result = val
		return true
	}
	f := &m.stack[len(m.stack)-1]
	if f.node.IsList() {
		f.node.Add(val)
		return false
	}
	if f.keySet {
		f.node.Put(f.key, val)
		f.key = ""
		f.keySet = false
		return false
	}
	if f.pendSet && debug.Decode() {
		debug.Logf("parse: dropping keyless scalar %q\n", f.pend)
	}
	f.pend = text
	f.pendSet = true
	return false
}

// colon promotes the pending scalar to a key. Anywhere else it is ignored.
func (m *machine) colon() {
	if len(m.stack) == 0 {
		return
	}
	f := &m.stack[len(m.stack)-1]
	if !f.node.IsMap() || !f.pendSet {
		return
	}
	f.key = f.pend
	f.keySet = true
	f.pendSet = false
}

// comma separates values. In a map it discards a scalar that never got a
// colon; in a list it is a no-op since elements append on completion.
func (m *machine) comma() {
	if len(m.stack) == 0 {
		return
	}
	f := &m.stack[len(m.stack)-1]
	if f.pendSet {
		if debug.Decode() {
			debug.Logf("parse: dropping keyless scalar %q\n", f.pend)
		}
		f.pendSet = false
	}
}

func (m *machine) push(node *data.Data) {
	fr := frame{node: node}
	if len(m.stack) > 0 {
		p := &m.stack[len(m.stack)-1]
		if p.node.IsMap() {
			if p.keySet {
				fr.intoKey = p.key
				fr.bindKey = true
				p.key = ""
				p.keySet = false
			} else {
				fr.drop = true
			}
		}
	}
	m.stack = append(m.stack, fr)
}

// closeTop completes the innermost composite and reports whether it was
// the outermost value.
func (m *machine) closeTop() bool {
	f := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if f.keySet {
		// key with no value, as in a truncated {"a":
		f.node.Put(f.key, data.Null())
	}
	if len(m.stack) == 0 {
		m.result = f.node
		return true
	}
	if f.drop {
		return false
	}
	p := &m.stack[len(m.stack)-1]
	if f.bindKey {
		p.node.Put(f.intoKey, f.node)
		return false
	}
	p.node.Add(f.node)
	return false
}

// closeAll implicitly closes every open composite, innermost first, with
// the values parsed so far. Premature end of stream is never an error.
func (m *machine) closeAll() {
	for len(m.stack) > 0 {
		if m.closeTop() {
			return
		}
	}
}

// quotedValue builds a string scalar; quoting always yields a string.
func quotedValue(tok *token.Token) *data.Data {
	if v := tok.View(); v != nil {
		return data.StringView(v)
	}
	return data.Of(tok.Text())
}

// bareValue applies the literal coercion rule to an unquoted token.
func bareValue(tok *token.Token) *data.Data {
	text := tok.Text()
	switch text {
	case "null":
		return data.Null()
	case "true":
		return data.Of(true)
	case "false":
		return data.Of(false)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return data.Of(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		// NaN and infinity text stays textual: it has no canonical
		// encoding and would poison numeric round trips
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return data.Of(f)
		}
	}
	if v := tok.View(); v != nil {
		return data.StringView(v)
	}
	return data.Of(text)
}
