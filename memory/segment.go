package memory

import (
	"sync"
	"sync/atomic"
)

// Segment is an immutable backing buffer shared by views. It stays alive
// until every view window referencing it releases its hold. The reference
// count doubles as the copy-on-write ownership check: a window whose segment
// counts exactly one reference may mutate bytes in place.
type Segment struct {
	// mu serializes the ownership check and the in-place mutation (or the
	// copy that replaces it) so two windows cannot race into a corrupted
	// partial write.
	mu    sync.Mutex
	refs  atomic.Int32
	bytes []byte
}

// NewSegment wraps b without copying. The caller hands over ownership of b;
// writing to b afterwards breaks the immutability contract.
func NewSegment(b []byte) *Segment {
	return &Segment{bytes: b}
}

// SegmentOf wraps the bytes of s. The copy is unavoidable: Go strings are
// immutable and segments may be mutated under exclusive ownership.
func SegmentOf(s string) *Segment {
	return &Segment{bytes: []byte(s)}
}

// Len returns the segment's byte length, zero once released.
func (s *Segment) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bytes)
}

func (s *Segment) retain() {
	s.refs.Add(1)
}

func (s *Segment) release() {
	if s.refs.Add(-1) > 0 {
		return
	}
	s.mu.Lock()
	s.bytes = nil
	s.mu.Unlock()
}

// releaseLocked drops one hold while the caller already owns mu. A view
// that copies out of a shared segment releases before unlocking, so the
// next transformer observes exclusivity instead of copying again.
func (s *Segment) releaseLocked() {
	if s.refs.Add(-1) > 0 {
		return
	}
	s.bytes = nil
}
