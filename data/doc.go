// Package data provides the dynamic value model for flexon documents.
//
// # Overview
//
// A Data value is a closed tagged union over null, bool, number, string,
// bytes (a memory.View), list, map and opaque native values. It is the sole
// exchange format between the tolerant decoder, the canonical encoder and
// consumers of this module.
//
// The classical mindset is reversed: instead of fitting data into a typed
// model, a typed model is handled as data. Any native value can be wrapped
// with Of and passed along; wrapping is implicit when adding values to a map
// or list.
//
// # Coercion
//
// The is* family tests the stored tag without converting anything. The as*
// family returns a best estimate of the wrapped value for the requested type
// and never fails; coercion is lazy and does not mutate the stored
// representation. Conversion to and from typed objects is always explicit
// through the Encodable and Decodable interfaces. There is no reflection.
//
// # Building
//
//	d := data.Map().
//		Put("foo", "bar").
//		Put("answer", 42).
//		Put("array", data.List().Add(1).Add("a").Add(nil))
//
// Maps keep insertion order on iteration; lists keep insertion order. A tree
// owns its children exclusively and is not synchronized: concurrent mutation
// of the same node is a caller error.
package data
