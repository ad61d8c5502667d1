package dname

import (
	"fmt"
	"strings"

	"github.com/jroosing/dnsname/internal/octets"
)

// RelativeDname is an uncompressed, relative domain name: a sequence of
// zero or more non-root labels, at most 254 octets long.
//
// Because of that limit a RelativeDname can always be turned into a Dname
// by adding the root label. The zero value is the empty name.
//
// RelativeDname is an immutable value. The slicing methods with pointer
// receivers only replace the receiver's view; the underlying buffer is
// never written to.
type RelativeDname struct {
	octets octets.Octets
}

var (
	emptyBytes    = []byte{}
	wildcardBytes = []byte{1, '*'}
)

// RelativeFromOctets validates o and wraps it as a relative name.
func RelativeFromOctets(o octets.Octets) (RelativeDname, error) {
	if o == nil {
		return RelativeDname{}, nil
	}
	if o.Len() > MaxRelativeLen {
		return RelativeDname{}, fmt.Errorf("%w: %d octets", ErrLongName, o.Len())
	}
	tmp := o.Slice()
	for len(tmp) > 0 {
		l, tail, err := SplitLabel(tmp)
		if err != nil {
			return RelativeDname{}, err
		}
		if l.IsRoot() {
			return RelativeDname{}, fmt.Errorf("%w: root label at offset %d", ErrAbsoluteName, o.Len()-len(tmp))
		}
		tmp = tail
	}
	return RelativeDname{octets: o}, nil
}

// RelativeFromSlice validates b and returns a name borrowing it.
func RelativeFromSlice(b []byte) (RelativeDname, error) {
	return RelativeFromOctets(octets.Slice(b))
}

// RelativeFromBytes validates b and returns a name owning it.
func RelativeFromBytes(b octets.Bytes) (RelativeDname, error) {
	return RelativeFromOctets(b)
}

// EmptyRelative returns the empty relative name on an owned buffer.
func EmptyRelative() RelativeDname {
	return RelativeDname{octets: octets.Bytes{}}
}

// WildcardRelative returns the name consisting of the wildcard label only.
//
// Comparison and ordering treat the wildcard as the literal label "*".
func WildcardRelative() RelativeDname {
	return RelativeDname{octets: octets.CopyBytes(wildcardBytes)}
}

// StaticEmpty returns the empty relative name on a borrowed static buffer.
func StaticEmpty() RelativeDname {
	return RelativeDname{octets: octets.Slice(emptyBytes)}
}

// StaticWildcard returns the wildcard name on a borrowed static buffer.
func StaticWildcard() RelativeDname {
	return RelativeDname{octets: octets.Slice(wildcardBytes)}
}

// Octets returns the underlying octets.
func (n RelativeDname) Octets() octets.Octets {
	if n.octets == nil {
		return octets.Slice(nil)
	}
	return n.octets
}

// Clone returns a copy of the name holding its own reference to the
// buffer.
func (n RelativeDname) Clone() RelativeDname {
	if n.octets == nil {
		return n
	}
	return RelativeDname{octets: n.octets.Clone()}
}

// Release drops the name's reference to a reference-counted buffer. The
// bytes stay readable; only the count used for in-place reuse changes.
func (n RelativeDname) Release() { release(n.octets) }

func release(o octets.Octets) {
	if r, ok := o.(octets.Releaser); ok {
		r.Release()
	}
}

// Slice returns the encoded name. The result must not be modified.
func (n RelativeDname) Slice() []byte {
	if n.octets == nil {
		return nil
	}
	return n.octets.Slice()
}

// Len returns the encoded length.
func (n RelativeDname) Len() int {
	if n.octets == nil {
		return 0
	}
	return n.octets.Len()
}

// IsEmpty reports whether n has no labels.
func (n RelativeDname) IsEmpty() bool { return n.Len() == 0 }

// IsAbsolute always returns false.
func (n RelativeDname) IsAbsolute() bool { return false }

// ComposeLen returns the encoded length.
func (n RelativeDname) ComposeLen() int { return n.Len() }

// Compose appends the encoded name to buf.
func (n RelativeDname) Compose(buf []byte) []byte { return append(buf, n.Slice()...) }

// Iter returns an iterator over the labels.
func (n RelativeDname) Iter() LabelIterator { return n.Labels() }

// Labels returns the concrete label iterator.
func (n RelativeDname) Labels() *DnameIter { return newDnameIter(n.Slice()) }

// LabelCount returns the number of labels.
func (n RelativeDname) LabelCount() int { return LabelCount(n) }

// First returns the first label, if any.
func (n RelativeDname) First() (Label, bool) { return n.Labels().Next() }

// Last returns the last label, if any.
func (n RelativeDname) Last() (Label, bool) { return n.Labels().NextBack() }

// NDots returns the number of dots in the presentation form: the label
// count minus one, and zero for the empty name.
func (n RelativeDname) NDots() int {
	if n.IsEmpty() {
		return 0
	}
	return n.LabelCount() - 1
}

// StartsWith reports whether base is a prefix of n.
func (n RelativeDname) StartsWith(base Name) bool { return StartsWith(n, base) }

// EndsWith reports whether base is a suffix of n.
func (n RelativeDname) EndsWith(base Name) bool { return EndsWith(n, base) }

// IsLabelStart reports whether index points to the first byte of a label
// or to the end of the name.
func (n RelativeDname) IsLabelStart(index int) bool {
	return isLabelStart(n.Slice(), index)
}

func (n RelativeDname) checkIndex(index int) {
	if !n.IsLabelStart(index) {
		boundaryViolation(index, n.Len())
	}
}

// Range returns the part of the name in [start, end). Both offsets must be
// label starts; Range panics otherwise.
func (n RelativeDname) Range(start, end int) RelativeDname {
	n.checkIndex(start)
	n.checkIndex(end)
	if end < start {
		boundaryViolation(end, n.Len())
	}
	return RelativeDname{octets: n.Octets().Range(start, end)}
}

// RangeFrom returns the part of the name starting at start.
func (n RelativeDname) RangeFrom(start int) RelativeDname {
	n.checkIndex(start)
	return RelativeDname{octets: n.Octets().RangeFrom(start)}
}

// RangeTo returns the part of the name ending before end.
func (n RelativeDname) RangeTo(end int) RelativeDname {
	n.checkIndex(end)
	return RelativeDname{octets: n.Octets().RangeTo(end)}
}

// SplitAt splits the name at mid into the parts before and after it.
func (n RelativeDname) SplitAt(mid int) (RelativeDname, RelativeDname) {
	n.checkIndex(mid)
	o := n.Octets()
	return RelativeDname{octets: o.RangeTo(mid)}, RelativeDname{octets: o.RangeFrom(mid)}
}

// SplitOff leaves the part before mid in n and returns the part after it.
func (n *RelativeDname) SplitOff(mid int) RelativeDname {
	n.checkIndex(mid)
	o := n.Octets()
	right := RelativeDname{octets: o.RangeFrom(mid)}
	n.octets = o.RangeTo(mid)
	release(o)
	return right
}

// SplitTo leaves the part after mid in n and returns the part before it.
func (n *RelativeDname) SplitTo(mid int) RelativeDname {
	n.checkIndex(mid)
	o := n.Octets()
	left := RelativeDname{octets: o.RangeTo(mid)}
	n.octets = o.RangeFrom(mid)
	release(o)
	return left
}

// Truncate shortens the name to length octets.
func (n *RelativeDname) Truncate(length int) {
	n.checkIndex(length)
	o := n.Octets()
	n.octets = o.RangeTo(length)
	release(o)
}

// SplitFirst removes the first label and returns it as a one-label name.
// It returns false for the empty name.
func (n *RelativeDname) SplitFirst() (RelativeDname, bool) {
	first, ok := n.First()
	if !ok {
		return RelativeDname{}, false
	}
	return n.SplitTo(len(first)), true
}

// Parent drops the first label. It returns false if the name was empty.
func (n *RelativeDname) Parent() bool {
	first, ok := n.SplitFirst()
	first.Release()
	return ok
}

// StripSuffix removes base from the end of the name. If base isn't a
// suffix, n is left untouched and ErrSuffixNotFound is returned.
func (n *RelativeDname) StripSuffix(base Name) error {
	if !n.EndsWith(base) {
		return ErrSuffixNotFound
	}
	n.SplitOff(n.Len() - base.ComposeLen()).Release()
	return nil
}

// Chain returns the lazy concatenation of n and other.
func (n RelativeDname) Chain(other Name) (Chain, error) {
	return NewChain(n, other)
}

// ChainRoot returns n followed by the root label as an absolute chain.
func (n RelativeDname) ChainRoot() Chain {
	c, err := NewChain(n, Root())
	if err != nil {
		panic("dname: relative name longer than 254 octets: " + err.Error())
	}
	return c
}

// IntoBuilder converts the name into a builder for appending labels.
//
// n's reference to its buffer passes to the builder. The first write
// appends in place if that was the only reference and copies otherwise;
// either way n and any copy of it keep reading the same bytes. Use Clone
// first to keep a counted reference.
func (n RelativeDname) IntoBuilder() *Builder {
	return builderFrom(n.Octets())
}

// IntoAbsolute converts the name into an absolute name by appending the
// root label. Like IntoBuilder it hands n's reference on; n stays readable.
// It may copy; ChainRoot avoids that.
func (n RelativeDname) IntoAbsolute() Dname {
	d, err := n.IntoBuilder().IntoDname()
	if err != nil {
		panic("dname: relative name longer than 254 octets: " + err.Error())
	}
	return d
}

// ToRelative returns n itself.
func (n RelativeDname) ToRelative() RelativeDname { return n }

// Equal reports whether n and other are the same name ignoring ASCII case.
func (n RelativeDname) Equal(other Name) bool { return Equal(n, other) }

// Compare returns the canonical ordering of n and other.
func (n RelativeDname) Compare(other Name) int { return Compare(n, other) }

// Hash returns a case-insensitive hash consistent with Equal.
func (n RelativeDname) Hash() uint64 { return Hash(n) }

// String returns the presentation form without a trailing dot.
func (n RelativeDname) String() string {
	var b strings.Builder
	writeText(&b, n.Slice())
	return b.String()
}

// GoString implements fmt.GoStringer.
func (n RelativeDname) GoString() string {
	return "RelativeDname(" + n.String() + ")"
}

// isLabelStart walks the labels of a validated buffer and reports whether
// index lands exactly on a label head or on the end.
func isLabelStart(b []byte, index int) bool {
	if index == 0 {
		return true
	}
	if index < 0 {
		return false
	}
	tmp := b
	for len(tmp) > 0 {
		l, tail := mustSplitLabel(tmp)
		size := len(l)
		if index < size {
			return false
		}
		if index == size {
			return true
		}
		index -= size
		tmp = tail
	}
	return false
}

// writeText writes the dotted presentation of a validated buffer. The root
// label produces no output of its own, only the dot before it.
func writeText(b *strings.Builder, buf []byte) {
	first := true
	for len(buf) > 0 {
		l, tail := mustSplitLabel(buf)
		if !first {
			b.WriteByte('.')
		}
		l.writeText(b)
		first = false
		buf = tail
	}
}
