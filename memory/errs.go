package memory

import "errors"

var (
	// ErrRange reports an index outside a view's logical byte range.
	ErrRange = errors.New("index out of range")
	// ErrDisposed reports access to a view or segment after disposal.
	ErrDisposed = errors.New("use after dispose")
)
