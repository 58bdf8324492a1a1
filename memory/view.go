package memory

import (
	"bytes"
	"fmt"
)

// window is one contiguous slice of a segment, as seen by a view.
type window struct {
	seg  *Segment
	off  int
	size int
}

// View is an ordered sequence of segment windows presented as one logical
// byte range. All slicing operations are zero-copy: they build new window
// lists over the same segments. The logical content of a view is the
// concatenation of its windows in order.
type View struct {
	wins []window
	size int

	disposed bool

	// cached materializations, dropped on any mutation
	buf    []byte
	bufSet bool
	str    string
	strSet bool
}

// From builds a view over the given segments in order, without copying.
func From(segs ...*Segment) *View {
	v := &View{}
	for _, seg := range segs {
		n := len(seg.bytes)
		if n == 0 {
			continue
		}
		seg.retain()
		v.wins = append(v.wins, window{seg: seg, off: 0, size: n})
		v.size += n
	}
	return v
}

// FromBytes builds a view wrapping each byte slice as its own segment.
func FromBytes(bs ...[]byte) *View {
	segs := make([]*Segment, len(bs))
	for i, b := range bs {
		segs[i] = NewSegment(b)
	}
	return From(segs...)
}

// FromString builds a view wrapping each string as its own segment.
func FromString(ss ...string) *View {
	segs := make([]*Segment, len(ss))
	for i, s := range ss {
		segs[i] = SegmentOf(s)
	}
	return From(segs...)
}

// Len returns the logical byte length of the view.
func (v *View) Len() int {
	return v.size
}

// At returns the byte at logical index i.
func (v *View) At(i int) (byte, error) {
	if v.disposed {
		return 0, fmt.Errorf("%w: At", ErrDisposed)
	}
	if i < 0 || i >= v.size {
		return 0, fmt.Errorf("%w: At(%d) size %d", ErrRange, i, v.size)
	}
	for _, w := range v.wins {
		if i < w.size {
			return w.seg.bytes[w.off+i], nil
		}
		i -= w.size
	}
	// windows always cover [0, size)
	panic("memory: window list out of sync")
}

// Substring returns the sub-view [start, end) without copying bytes. The
// windows of the result reference the same segments as v.
func (v *View) Substring(start, end int) (*View, error) {
	if v.disposed {
		return nil, fmt.Errorf("%w: Substring", ErrDisposed)
	}
	if start < 0 || end < start || end > v.size {
		return nil, fmt.Errorf("%w: Substring(%d, %d) size %d", ErrRange, start, end, v.size)
	}
	sub := &View{}
	skip := start
	rem := end - start
	for _, w := range v.wins {
		if rem == 0 {
			break
		}
		if skip >= w.size {
			skip -= w.size
			continue
		}
		take := w.size - skip
		if take > rem {
			take = rem
		}
		w.seg.retain()
		sub.wins = append(sub.wins, window{seg: w.seg, off: w.off + skip, size: take})
		sub.size += take
		rem -= take
		skip = 0
	}
	return sub, nil
}

// DiscardBefore shrinks the view to [n, len). Segments that fall entirely
// before n are released and become eligible for reclamation; a boundary
// segment is trimmed at the window level only.
func (v *View) DiscardBefore(n int) error {
	if v.disposed {
		return fmt.Errorf("%w: DiscardBefore", ErrDisposed)
	}
	if n < 0 || n > v.size {
		return fmt.Errorf("%w: DiscardBefore(%d) size %d", ErrRange, n, v.size)
	}
	v.dropCache()
	for n > 0 && len(v.wins) > 0 {
		w := &v.wins[0]
		if n >= w.size {
			n -= w.size
			v.size -= w.size
			w.seg.release()
			v.wins = v.wins[1:]
			continue
		}
		w.off += n
		w.size -= n
		v.size -= n
		n = 0
	}
	return nil
}

// DiscardAfter shrinks the view to [0, n), releasing trailing segments.
func (v *View) DiscardAfter(n int) error {
	if v.disposed {
		return fmt.Errorf("%w: DiscardAfter", ErrDisposed)
	}
	if n < 0 || n > v.size {
		return fmt.Errorf("%w: DiscardAfter(%d) size %d", ErrRange, n, v.size)
	}
	v.dropCache()
	drop := v.size - n
	for drop > 0 && len(v.wins) > 0 {
		w := &v.wins[len(v.wins)-1]
		if drop >= w.size {
			drop -= w.size
			v.size -= w.size
			w.seg.release()
			v.wins = v.wins[:len(v.wins)-1]
			continue
		}
		w.size -= drop
		v.size -= drop
		drop = 0
	}
	return nil
}

// Bytes materializes the logical content. A single-window view returns the
// underlying slice without copying; a multi-window view concatenates once
// and caches the result. Callers must treat the slice as read-only.
func (v *View) Bytes() ([]byte, error) {
	if v.disposed {
		return nil, fmt.Errorf("%w: Bytes", ErrDisposed)
	}
	if len(v.wins) == 1 {
		w := v.wins[0]
		return w.seg.bytes[w.off : w.off+w.size], nil
	}
	if v.bufSet {
		return v.buf, nil
	}
	buf := make([]byte, 0, v.size)
	for _, w := range v.wins {
		buf = append(buf, w.seg.bytes[w.off:w.off+w.size]...)
	}
	v.buf = buf
	v.bufSet = true
	return buf, nil
}

// String materializes the content as UTF-8 text, cached on first use.
func (v *View) String() (string, error) {
	if v.disposed {
		return "", fmt.Errorf("%w: String", ErrDisposed)
	}
	if v.strSet {
		return v.str, nil
	}
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}
	v.str = string(b)
	v.strSet = true
	return v.str, nil
}

// Equal compares logical byte content, ignoring segment boundaries.
// Disposed views compare unequal to everything.
func (v *View) Equal(o *View) bool {
	if v == nil || o == nil || v.disposed || o.disposed {
		return v == o && v != nil && !v.disposed
	}
	if v.size != o.size {
		return false
	}
	vi, oi := 0, 0 // window indexes
	vo, oo := 0, 0 // offsets within the current window
	rem := v.size
	for rem > 0 {
		vw, ow := &v.wins[vi], &o.wins[oi]
		n := vw.size - vo
		if m := ow.size - oo; m < n {
			n = m
		}
		a := vw.seg.bytes[vw.off+vo : vw.off+vo+n]
		b := ow.seg.bytes[ow.off+oo : ow.off+oo+n]
		if !bytes.Equal(a, b) {
			return false
		}
		vo += n
		oo += n
		rem -= n
		if vo == vw.size {
			vi, vo = vi+1, 0
		}
		if oo == ow.size {
			oi, oo = oi+1, 0
		}
	}
	return true
}

// ToLower folds ASCII upper case to lower case in place when the affected
// segments are exclusively owned, copying shared ranges first.
func (v *View) ToLower() error {
	return v.transform(func(b byte) byte {
		if b >= 'A' && b <= 'Z' {
			return b + ('a' - 'A')
		}
		return b
	})
}

// ToUpper folds ASCII lower case to upper case in place when the affected
// segments are exclusively owned, copying shared ranges first.
func (v *View) ToUpper() error {
	return v.transform(func(b byte) byte {
		if b >= 'a' && b <= 'z' {
			return b - ('a' - 'A')
		}
		return b
	})
}

// transform applies f byte-wise. For each window the ownership check and the
// write happen under the segment lock: an exclusively owned segment is
// mutated in place, a shared one is copied once into a fresh segment that
// replaces the window.
func (v *View) transform(f func(byte) byte) error {
	if v.disposed {
		return fmt.Errorf("%w: transform", ErrDisposed)
	}
	v.dropCache()
	for i := range v.wins {
		w := &v.wins[i]
		w.seg.mu.Lock()
		if w.seg.refs.Load() == 1 {
			b := w.seg.bytes[w.off : w.off+w.size]
			for j, c := range b {
				b[j] = f(c)
			}
			w.seg.mu.Unlock()
			continue
		}
		cp := make([]byte, w.size)
		copy(cp, w.seg.bytes[w.off:w.off+w.size])
		w.seg.releaseLocked()
		w.seg.mu.Unlock()
		for j, c := range cp {
			cp[j] = f(c)
		}
		seg := NewSegment(cp)
		seg.retain()
		*w = window{seg: seg, off: 0, size: len(cp)}
	}
	return nil
}

// Dispose releases every segment hold. Any later operation on the view
// reports ErrDisposed.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	for _, w := range v.wins {
		w.seg.release()
	}
	v.wins = nil
	v.size = 0
	v.dropCache()
	v.disposed = true
}

func (v *View) dropCache() {
	v.buf = nil
	v.bufSet = false
	v.str = ""
	v.strSet = false
}
