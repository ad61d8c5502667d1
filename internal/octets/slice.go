package octets

// Slice is a borrowed view over caller-owned bytes.
//
// The caller must keep the bytes unchanged for as long as any name built on
// the view is in use. Slice never reclaims its memory for mutation.
type Slice []byte

// Slice returns the viewed bytes.
func (s Slice) Slice() []byte { return s[:len(s):len(s)] }

// Len returns the number of bytes.
func (s Slice) Len() int { return len(s) }

// Range returns the view over [start, end).
func (s Slice) Range(start, end int) Octets { return s[start:end] }

// RangeFrom returns the view starting at start.
func (s Slice) RangeFrom(start int) Octets { return s[start:] }

// RangeTo returns the view ending before end.
func (s Slice) RangeTo(end int) Octets { return s[:end] }

// Clone returns the same view.
func (s Slice) Clone() Octets { return s }
