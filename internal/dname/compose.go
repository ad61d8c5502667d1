package dname

import "iter"

// Composer is the composition capability used by message and record
// serialization: it reports the exact encoded length of a value and
// appends its raw octets to a growable buffer.
type Composer interface {
	ComposeLen() int
	Compose(buf []byte) []byte
}

// Name is implemented by every name-like value: RelativeDname, Dname and
// Chain. All read-only operations of this package work on a Name.
type Name interface {
	Composer

	// Iter returns a fresh iterator over the labels.
	Iter() LabelIterator

	// IsAbsolute reports whether the name ends in the root label.
	IsAbsolute() bool
}

// flatName is implemented by names backed by a single contiguous buffer.
type flatName interface {
	Slice() []byte
}

// Labels returns a range-over-func sequence of the labels of n.
func Labels(n Name) iter.Seq[Label] {
	return func(yield func(Label) bool) {
		it := n.Iter()
		for l, ok := it.Next(); ok; l, ok = it.Next() {
			if !yield(l) {
				return
			}
		}
	}
}

// LabelCount returns the number of labels in n, the root label included.
func LabelCount(n Name) int {
	count := 0
	it := n.Iter()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	return count
}

// Bytes returns the encoded form of n. Flat names return their buffer
// without copying; chains are materialized.
func Bytes(n Name) []byte {
	if f, ok := n.(flatName); ok {
		return f.Slice()
	}
	return n.Compose(make([]byte, 0, n.ComposeLen()))
}
