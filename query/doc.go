// Package query evaluates expressions against data trees.
//
// Expressions use expr-lang syntax. When the queried document is a
// map, its top level keys are in scope as identifiers:
//
//	q, _ := query.Compile(`answer * 2`)
//	out, _ := q.Run(flexon.DecodeString(`{answer: 21}`))
//	out.AsInt() // 42
//
// Results come back as trees, so queries compose with the rest of the
// library.
package query
