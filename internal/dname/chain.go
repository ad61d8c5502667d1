package dname

import (
	"fmt"
	"strings"

	"github.com/jroosing/dnsname/internal/octets"
)

// Chain is the lazy concatenation of two names: a relative left part
// followed by a relative or absolute right part.
//
// A Chain behaves like the concatenated name for iteration, comparison and
// composition without copying either part. ToDname and ToRelative
// materialize it into a flat buffer.
type Chain struct {
	left  Name
	right Name
}

// NewChain chains left and right.
//
// left must be relative. The combined length may not exceed 255 octets if
// right is absolute, or 254 octets if it is relative. On failure a
// *LongChainError is returned; left and right themselves are unaffected.
func NewChain(left, right Name) (Chain, error) {
	if left.IsAbsolute() {
		return Chain{}, fmt.Errorf("%w: left side of a chain", ErrAbsoluteName)
	}
	limit := MaxRelativeLen
	if right.IsAbsolute() {
		limit = MaxNameLen
	}
	ll, rl := left.ComposeLen(), right.ComposeLen()
	if ll+rl > limit {
		return Chain{}, &LongChainError{LeftLen: ll, RightLen: rl, Limit: limit}
	}
	return Chain{left: left, right: right}, nil
}

// Left returns the first part.
func (c Chain) Left() Name { return c.left }

// Right returns the second part.
func (c Chain) Right() Name { return c.right }

// IsAbsolute reports whether the right part is absolute.
func (c Chain) IsAbsolute() bool { return c.right.IsAbsolute() }

// ComposeLen returns the combined encoded length.
func (c Chain) ComposeLen() int { return c.left.ComposeLen() + c.right.ComposeLen() }

// Compose appends both parts to buf.
func (c Chain) Compose(buf []byte) []byte {
	return c.right.Compose(c.left.Compose(buf))
}

// Iter returns an iterator over the labels of both parts.
func (c Chain) Iter() LabelIterator {
	return &ChainIter{left: c.left.Iter(), right: c.right.Iter()}
}

// LabelCount returns the number of labels of both parts.
func (c Chain) LabelCount() int { return LabelCount(c) }

// Chain appends other to a relative chain.
func (c Chain) Chain(other Name) (Chain, error) {
	return NewChain(c, other)
}

// ChainRoot appends the root label to a relative chain.
func (c Chain) ChainRoot() (Chain, error) {
	return NewChain(c, Root())
}

// ToDname materializes an absolute chain into a flat name.
func (c Chain) ToDname() (Dname, error) {
	if !c.IsAbsolute() {
		return Dname{}, ErrRelativeName
	}
	return Dname{octets: octets.NewBytes(c.Compose(make([]byte, 0, c.ComposeLen())))}, nil
}

// ToRelative materializes a relative chain into a flat name.
func (c Chain) ToRelative() (RelativeDname, error) {
	if c.IsAbsolute() {
		return RelativeDname{}, ErrAbsoluteName
	}
	return RelativeDname{octets: octets.NewBytes(c.Compose(make([]byte, 0, c.ComposeLen())))}, nil
}

// StartsWith reports whether base is a prefix of c.
func (c Chain) StartsWith(base Name) bool { return StartsWith(c, base) }

// EndsWith reports whether base is a suffix of c.
func (c Chain) EndsWith(base Name) bool { return EndsWith(c, base) }

// Equal reports whether c and other are the same name ignoring ASCII case.
func (c Chain) Equal(other Name) bool { return Equal(c, other) }

// Compare returns the canonical ordering of c and other.
func (c Chain) Compare(other Name) int { return Compare(c, other) }

// Hash returns a case-insensitive hash consistent with Equal.
func (c Chain) Hash() uint64 { return Hash(c) }

// String returns the presentation form of the chained name.
func (c Chain) String() string {
	var b strings.Builder
	first := true
	labels := 0
	for l := range Labels(c) {
		if !first {
			b.WriteByte('.')
		}
		l.writeText(&b)
		first = false
		labels++
	}
	if labels == 1 && c.IsAbsolute() {
		return "."
	}
	return b.String()
}
