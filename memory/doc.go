// Package memory provides low-copy views over immutable byte segments.
//
// A Segment is a reference-counted byte buffer, typically filled once from
// I/O and never written again while shared. A View presents one logical byte
// range over one or more segments without merging them: slicing, trimming and
// concatenation manipulate window descriptors, not bytes.
//
// Views materialize bytes only on demand (String, Bytes) and cache the
// result. In-place text transforms check segment ownership first and fall
// back to a single copy-on-write copy of the affected range when the
// underlying segment is shared with another view.
//
// Views are not synchronized; sharing a segment between views for reading is
// safe, mutating the same view from multiple goroutines is not.
package memory
