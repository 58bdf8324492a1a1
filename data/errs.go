package data

import "errors"

// ErrDecodeCallback wraps a failure propagated from a caller-supplied
// Decodable. It is the only error this package can produce: the decoder and
// every coercion accessor are total.
var ErrDecodeCallback = errors.New("decode callback failed")
