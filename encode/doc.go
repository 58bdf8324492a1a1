// Package encode renders data trees as canonical text.
//
// The canonical form is strict JSON: double-quoted keys and strings,
// true/false, minimal decimal numbers, null, no trailing separators, keys
// and elements in insertion order. It is a strict subset of the grammar
// the tolerant decoder accepts, so decode(encode(T)) always equals T for
// trees without opaque nodes.
//
// Options select a compact wire layout, indented pretty-printing, or ANSI
// colors for terminal viewing.
package encode
