package dname

import (
	"cmp"

	"github.com/jroosing/dnsname/internal/pool"
)

// labelStacks holds scratch label slices for canonical comparison. A name
// has at most 128 labels.
var labelStacks = pool.New(func() *[]Label {
	s := make([]Label, 0, 16)
	return &s
}).WithReset(func(s *[]Label) {
	clear(*s)
	*s = (*s)[:0]
})

// Equal reports whether a and b consist of the same labels, compared
// label by label ignoring ASCII case.
func Equal(a, b Name) bool {
	ia, ib := a.Iter(), b.Iter()
	for {
		la, oka := ia.Next()
		lb, okb := ib.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if !la.Equal(lb) {
			return false
		}
	}
}

// StartsWith reports whether the labels of base are a prefix of the labels
// of n. The empty name is a prefix of every name.
func StartsWith(n, base Name) bool {
	in, ib := n.Iter(), base.Iter()
	for {
		lb, ok := ib.Next()
		if !ok {
			return true
		}
		ln, ok := in.Next()
		if !ok || !ln.Equal(lb) {
			return false
		}
	}
}

// EndsWith reports whether the labels of base are a suffix of the labels
// of n. The empty name is a suffix of every name.
func EndsWith(n, base Name) bool {
	in, ib := n.Iter(), base.Iter()
	for {
		lb, ok := ib.NextBack()
		if !ok {
			return true
		}
		ln, ok := in.NextBack()
		if !ok || !ln.Equal(lb) {
			return false
		}
	}
}

// Compare returns the canonical DNS ordering of a and b (RFC 4034 Section
// 6.1): labels are compared starting from the one closest to the root, and
// if one name runs out of labels first it sorts first.
//
// The result is -1, 0 or +1. This is not the same as comparing the wire
// encodings bytewise.
func Compare(a, b Name) int {
	pa, pb := labelStacks.Get(), labelStacks.Get()
	defer func() {
		labelStacks.Put(pa)
		labelStacks.Put(pb)
	}()

	sa := appendLabels((*pa)[:0], a)
	sb := appendLabels((*pb)[:0], b)
	*pa, *pb = sa, sb

	i, j := len(sa)-1, len(sb)-1
	for i >= 0 && j >= 0 {
		if c := sa[i].Compare(sb[j]); c != 0 {
			return c
		}
		i--
		j--
	}
	return cmp.Compare(len(sa), len(sb))
}

func appendLabels(dst []Label, n Name) []Label {
	it := n.Iter()
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		dst = append(dst, l)
	}
	return dst
}

// CanonicalKey returns a byte string whose bytewise order matches Compare.
//
// Labels are emitted root first with ASCII letters folded, each followed by
// the terminator 00 00; a 00 octet inside a label is written as 00 FF. The
// key is meant for ordered storage and is not a wire format.
func CanonicalKey(n Name) []byte {
	ps := labelStacks.Get()
	defer labelStacks.Put(ps)
	labels := appendLabels((*ps)[:0], n)
	*ps = labels

	key := make([]byte, 0, n.ComposeLen()+len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		for _, c := range labels[i].Payload() {
			if c == 0 {
				key = append(key, 0, 0xff)
				continue
			}
			key = append(key, fold(c))
		}
		key = append(key, 0, 0)
	}
	return key
}

// FNV-1a 64-bit constants.
const (
	fnv64Offset = 14695981039346656037
	fnv64Prime  = 1099511628211
)

// Hash returns a 64-bit FNV-1a hash of n over its label structure with
// ASCII letters folded to lower case, so that Equal names hash equal.
func Hash(n Name) uint64 {
	h := uint64(fnv64Offset)
	it := n.Iter()
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		h = fnv64Add(h, l[0])
		for _, c := range l.Payload() {
			h = fnv64Add(h, fold(c))
		}
	}
	return h
}

func fnv64Add(h uint64, b byte) uint64 {
	h ^= uint64(b)
	h *= fnv64Prime
	return h
}
