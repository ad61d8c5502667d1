package dname

import (
	"fmt"
	"strings"

	"github.com/jroosing/dnsname/internal/octets"
)

// Dname is an uncompressed, absolute domain name: zero or more normal
// labels followed by exactly one root label, at most 255 octets long.
//
// Use FromOctets, FromSlice or Root to create one; the zero value is not
// a valid Dname and behaves like the root name.
type Dname struct {
	octets octets.Octets
}

var rootBytes = []byte{0}

// FromOctets validates o and wraps it as an absolute name.
func FromOctets(o octets.Octets) (Dname, error) {
	if o == nil {
		return Dname{}, ErrShortData
	}
	if o.Len() > MaxNameLen {
		return Dname{}, fmt.Errorf("%w: %d octets", ErrLongName, o.Len())
	}
	tmp := o.Slice()
	for {
		l, tail, err := SplitLabel(tmp)
		if err != nil {
			return Dname{}, err
		}
		if l.IsRoot() {
			if len(tail) > 0 {
				return Dname{}, fmt.Errorf("%w: %w: root label at offset %d", ErrAbsoluteName, ErrTrailingData, o.Len()-len(tmp))
			}
			return Dname{octets: o}, nil
		}
		if len(tail) == 0 {
			return Dname{}, ErrRelativeName
		}
		tmp = tail
	}
}

// FromSlice validates b and returns a name borrowing it.
func FromSlice(b []byte) (Dname, error) {
	return FromOctets(octets.Slice(b))
}

// FromBytes validates b and returns a name owning it.
func FromBytes(b octets.Bytes) (Dname, error) {
	return FromOctets(b)
}

// Root returns the root name.
func Root() Dname {
	return Dname{octets: octets.Slice(rootBytes)}
}

// Octets returns the underlying octets.
func (n Dname) Octets() octets.Octets {
	if n.octets == nil {
		return octets.Slice(rootBytes)
	}
	return n.octets
}

// Clone returns a copy of the name holding its own reference to the
// buffer.
func (n Dname) Clone() Dname {
	if n.octets == nil {
		return n
	}
	return Dname{octets: n.octets.Clone()}
}

// Release drops the name's reference to a reference-counted buffer.
func (n Dname) Release() { release(n.octets) }

// Slice returns the encoded name. The result must not be modified.
func (n Dname) Slice() []byte { return n.Octets().Slice() }

// Len returns the encoded length, root label included.
func (n Dname) Len() int { return n.Octets().Len() }

// IsRoot reports whether n is the root name.
func (n Dname) IsRoot() bool { return n.Len() == 1 }

// IsAbsolute always returns true.
func (n Dname) IsAbsolute() bool { return true }

// ComposeLen returns the encoded length.
func (n Dname) ComposeLen() int { return n.Len() }

// Compose appends the encoded name to buf.
func (n Dname) Compose(buf []byte) []byte { return append(buf, n.Slice()...) }

// Iter returns an iterator over the labels, the root label included.
func (n Dname) Iter() LabelIterator { return n.Labels() }

// Labels returns the concrete label iterator.
func (n Dname) Labels() *DnameIter { return newDnameIter(n.Slice()) }

// LabelCount returns the number of labels, the root label included.
func (n Dname) LabelCount() int { return LabelCount(n) }

// First returns the first label. For the root name that is the root label.
func (n Dname) First() Label {
	l, _ := n.Labels().Next()
	return l
}

// Last returns the last label, which is always the root label.
func (n Dname) Last() Label {
	l, _ := n.Labels().NextBack()
	return l
}

// StartsWith reports whether base is a prefix of n.
func (n Dname) StartsWith(base Name) bool { return StartsWith(n, base) }

// EndsWith reports whether base is a suffix of n.
func (n Dname) EndsWith(base Name) bool { return EndsWith(n, base) }

// IsLabelStart reports whether index points to the first byte of a label
// (the root label included) or to the end of the name.
func (n Dname) IsLabelStart(index int) bool {
	return isLabelStart(n.Slice(), index)
}

// checkIndex panics unless index is a label start. With relative set the
// index must also stop short of the root label.
func (n Dname) checkIndex(index int, relative bool) {
	if !n.IsLabelStart(index) || (relative && index == n.Len()) {
		boundaryViolation(index, n.Len())
	}
}

// Range returns the relative part of the name in [start, end). Both offsets
// must be label starts and end must not lie past the root label's start.
func (n Dname) Range(start, end int) RelativeDname {
	n.checkIndex(start, true)
	n.checkIndex(end, true)
	if end < start {
		boundaryViolation(end, n.Len())
	}
	return RelativeDname{octets: n.Octets().Range(start, end)}
}

// RangeFrom returns the absolute name starting at start.
func (n Dname) RangeFrom(start int) Dname {
	n.checkIndex(start, true)
	return Dname{octets: n.Octets().RangeFrom(start)}
}

// RangeTo returns the relative name ending before end.
func (n Dname) RangeTo(end int) RelativeDname {
	n.checkIndex(end, true)
	return RelativeDname{octets: n.Octets().RangeTo(end)}
}

// SplitAt splits the name at mid into a relative head and absolute tail.
func (n Dname) SplitAt(mid int) (RelativeDname, Dname) {
	n.checkIndex(mid, true)
	o := n.Octets()
	return RelativeDname{octets: o.RangeTo(mid)}, Dname{octets: o.RangeFrom(mid)}
}

// SplitTo leaves the absolute part from mid on in n and returns the
// relative part before it.
func (n *Dname) SplitTo(mid int) RelativeDname {
	n.checkIndex(mid, true)
	o := n.Octets()
	left := RelativeDname{octets: o.RangeTo(mid)}
	n.octets = o.RangeFrom(mid)
	release(o)
	return left
}

// Truncate returns the first length octets as a relative name.
func (n Dname) Truncate(length int) RelativeDname {
	return n.RangeTo(length)
}

// SplitFirst removes the first label and returns it as a one-label relative
// name. It returns false for the root name.
func (n *Dname) SplitFirst() (RelativeDname, bool) {
	if n.IsRoot() {
		return RelativeDname{}, false
	}
	return n.SplitTo(len(n.First())), true
}

// Parent replaces the name with its parent. It returns false at the root.
func (n *Dname) Parent() bool {
	first, ok := n.SplitFirst()
	first.Release()
	return ok
}

// StripSuffix returns the relative name left after removing base from the
// end of n. base must be an absolute name that n ends with.
func (n Dname) StripSuffix(base Name) (RelativeDname, error) {
	if !base.IsAbsolute() {
		return RelativeDname{}, fmt.Errorf("%w: %w", ErrSuffixNotFound, ErrRelativeName)
	}
	if !n.EndsWith(base) {
		return RelativeDname{}, ErrSuffixNotFound
	}
	return n.RangeTo(n.Len() - base.ComposeLen()), nil
}

// ToDname returns n itself.
func (n Dname) ToDname() Dname { return n }

// Equal reports whether n and other are the same name ignoring ASCII case.
func (n Dname) Equal(other Name) bool { return Equal(n, other) }

// Compare returns the canonical ordering of n and other.
func (n Dname) Compare(other Name) int { return Compare(n, other) }

// Hash returns a case-insensitive hash consistent with Equal.
func (n Dname) Hash() uint64 { return Hash(n) }

// String returns the presentation form with a trailing dot; the root name
// is ".".
func (n Dname) String() string {
	if n.IsRoot() {
		return "."
	}
	var b strings.Builder
	writeText(&b, n.Slice())
	return b.String()
}

// GoString implements fmt.GoStringer.
func (n Dname) GoString() string {
	return "Dname(" + n.String() + ")"
}
