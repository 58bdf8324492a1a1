// Package parse provides the tolerant flexon decoder.
//
// The decoder turns an approximately-JSON byte stream into a data.Data tree
// and never fails: the intent of what was written matters more than the
// syntax. Missing commas are implicit separators, keys and strings may be
// double-quoted, single-quoted or bare, a truncated stream closes every
// open composite, surplus closing punctuation is ignored, and an empty or
// fully invalid stream decodes to null.
//
// Bare tokens coerce by literal: true/false become bool, numeric text
// becomes a number, null becomes null, anything else is a string. Quoting
// suppresses exactly one of these coercions: an unquoted null is null while
// "null" is the string "null". Quoted bools and numbers are strings like
// any other quoted token.
//
// Decoding is a single forward pass with one-token lookahead and an
// explicit stack for nesting, so adversarially deep input cannot exhaust
// the call stack and the decoder is safe to run inside an I/O callback.
package parse
