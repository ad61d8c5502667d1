package octets

import "sync/atomic"

// storage is the shared backing array of one or more Bytes handles.
// buf itself is never modified once stored; a reclaimed storage only gives
// away the spare capacity past len(buf).
type storage struct {
	buf       []byte
	refs      atomic.Int32
	reclaimed atomic.Bool
}

// Bytes is an owned, reference-counted octet buffer.
//
// Clone and the Range methods share the storage and increment the reference
// count; Release decrements it. Copying a Bytes value with plain assignment
// does not count as a new reference, so code that wants TryMut to stay
// accurate must use Clone for every handle it keeps.
//
// The zero value is an empty buffer.
type Bytes struct {
	s          *storage
	start, end int
}

// NewBytes takes ownership of b. The caller must not modify b afterwards.
func NewBytes(b []byte) Bytes {
	if len(b) == 0 && cap(b) == 0 {
		return Bytes{}
	}
	s := &storage{buf: b}
	s.refs.Store(1)
	return Bytes{s: s, start: 0, end: len(b)}
}

// CopyBytes returns a Bytes holding a copy of b.
func CopyBytes(b []byte) Bytes {
	if len(b) == 0 {
		return Bytes{}
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return NewBytes(buf)
}

// Slice returns the bytes of this view.
func (b Bytes) Slice() []byte {
	if b.s == nil {
		return nil
	}
	return b.s.buf[b.start:b.end:b.end]
}

// Len returns the number of bytes in this view.
func (b Bytes) Len() int {
	return b.end - b.start
}

// Range returns a new handle over [start, end) of this view.
func (b Bytes) Range(start, end int) Octets {
	return b.sub(start, end)
}

// RangeFrom returns a new handle over the view starting at start.
func (b Bytes) RangeFrom(start int) Octets {
	return b.sub(start, b.Len())
}

// RangeTo returns a new handle over the view ending before end.
func (b Bytes) RangeTo(end int) Octets {
	return b.sub(0, end)
}

// Clone returns a new handle sharing the storage.
func (b Bytes) Clone() Octets {
	return b.clone()
}

func (b Bytes) clone() Bytes {
	if b.s != nil {
		b.s.refs.Add(1)
	}
	return b
}

func (b Bytes) sub(start, end int) Bytes {
	if start < 0 || end < start || end > b.Len() {
		panic("octets: range out of bounds")
	}
	if start == end {
		return Bytes{}
	}
	out := b.clone()
	out.start = b.start + start
	out.end = b.start + end
	return out
}

// Refs returns the number of live handles sharing the storage.
func (b Bytes) Refs() int {
	if b.s == nil {
		return 0
	}
	return int(b.s.refs.Load())
}

// IsUnique reports whether b is the only live handle on its storage.
func (b Bytes) IsUnique() bool {
	return b.s == nil || b.s.refs.Load() == 1
}

// Release drops this handle's reference. The handle must not be used again.
// The count never drops below zero, which plain copies of a handle would
// otherwise cause.
func (b Bytes) Release() {
	if b.s == nil {
		return
	}
	for {
		n := b.s.refs.Load()
		if n <= 0 || b.s.refs.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// TryMut hands out the storage for appending when no other handle shares it.
//
// The returned slice starts at the view's first byte and has the view's
// length; its capacity extends to the end of the storage so appends can
// reuse it. Only a view that reaches the end of the stored bytes qualifies,
// and a storage is handed out at most once, so appends never overwrite
// bytes that any handle, counted or not, can read. An empty buffer is
// always reclaimable.
func (b Bytes) TryMut() ([]byte, bool) {
	if b.s == nil {
		return nil, true
	}
	if b.end != len(b.s.buf) {
		return nil, false
	}
	if !b.s.refs.CompareAndSwap(1, 0) {
		return nil, false
	}
	if !b.s.reclaimed.CompareAndSwap(false, true) {
		b.s.refs.Add(1)
		return nil, false
	}
	return b.s.buf[b.start:b.end:cap(b.s.buf)], true
}
