// Package token scans flexon input into a flat token stream.
//
// The tokenizer is total: it has no error path. Structural punctuation is
// recognized positionally, string tokens may be double-quoted,
// single-quoted or bare, unterminated quotes run to end of input, and
// malformed escapes are kept literally. Token payloads are zero-copy
// sub-views of the input unless escape processing forced materialization.
package token
