package dname

// LabelIterator walks the labels of a name from either end.
//
// Next yields labels front to back, NextBack back to front; both stop once
// they meet.
type LabelIterator interface {
	Next() (Label, bool)
	NextBack() (Label, bool)
}

// DnameIter iterates over the labels of a flat, already validated name
// buffer. It allocates nothing.
type DnameIter struct {
	slice []byte
}

func newDnameIter(b []byte) *DnameIter {
	return &DnameIter{slice: b}
}

// Next returns the next label from the front.
func (it *DnameIter) Next() (Label, bool) {
	if len(it.slice) == 0 {
		return nil, false
	}
	l, tail := mustSplitLabel(it.slice)
	it.slice = tail
	return l, true
}

// NextBack returns the next label from the back.
func (it *DnameIter) NextBack() (Label, bool) {
	if len(it.slice) == 0 {
		return nil, false
	}
	tmp := it.slice
	for {
		l, tail := mustSplitLabel(tmp)
		if len(tail) == 0 {
			it.slice = it.slice[:len(it.slice)-len(l)]
			return l, true
		}
		tmp = tail
	}
}

// Remaining returns the bytes not yet visited.
func (it *DnameIter) Remaining() []byte { return it.slice }

// ChainIter iterates over the labels of a Chain: all of the left part
// followed by all of the right part.
type ChainIter struct {
	left, right LabelIterator
}

// Next returns the next label from the front.
func (it *ChainIter) Next() (Label, bool) {
	if l, ok := it.left.Next(); ok {
		return l, true
	}
	return it.right.Next()
}

// NextBack returns the next label from the back.
func (it *ChainIter) NextBack() (Label, bool) {
	if l, ok := it.right.NextBack(); ok {
		return l, true
	}
	return it.left.NextBack()
}

// Collect returns all remaining labels of it, front to back.
func Collect(it LabelIterator) []Label {
	var out []Label
	for l, ok := it.Next(); ok; l, ok = it.Next() {
		out = append(out, l)
	}
	return out
}
