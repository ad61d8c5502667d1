package dname

import (
	"fmt"
	"strings"
)

// Label length limits (RFC 1035 Section 2.3.4).
const (
	MaxLabelLen    = 63
	MaxNameLen     = 255
	MaxRelativeLen = MaxNameLen - 1
)

// Label head byte classes (RFC 1035 Section 4.1.4, RFC 6891 Section 5).
//
//	00xxxxxx  normal label, length 0-63 (0 is the root label)
//	01xxxxxx  extended label type
//	10xxxxxx  undefined
//	11xxxxxx  compression pointer
const (
	labelTypeMask = 0xC0
	labelNormal   = 0x00
	labelExtended = 0x40
	labelPointer  = 0xC0
)

// Label is a single encoded label: the length byte followed by the payload.
//
// A Label is a view into its name's buffer and must not be modified.
type Label []byte

var (
	rootLabel     = Label{0}
	wildcardLabel = Label{1, '*'}
)

// SplitLabel reads one label from the front of b and returns it together
// with the remaining bytes.
//
// Compression pointers yield a *PointerError, extended and undefined label
// types a *LabelTypeError, and truncated input ErrShortData.
func SplitLabel(b []byte) (Label, []byte, error) {
	if len(b) == 0 {
		return nil, nil, ErrShortData
	}
	head := b[0]
	switch head & labelTypeMask {
	case labelNormal:
		end := 1 + int(head)
		if len(b) < end {
			return nil, nil, fmt.Errorf("%w: label of %d octets with %d left", ErrShortData, head, len(b)-1)
		}
		return Label(b[:end:end]), b[end:], nil
	case labelPointer:
		if len(b) < 2 {
			return nil, nil, ErrShortData
		}
		return nil, nil, &PointerError{Offset: uint16(head&^labelTypeMask)<<8 | uint16(b[1])}
	case labelExtended:
		return nil, nil, &LabelTypeError{Extended: true, Value: head}
	default:
		return nil, nil, &LabelTypeError{Value: head}
	}
}

// mustSplitLabel splits a label from a buffer that is already known to
// hold a valid name.
func mustSplitLabel(b []byte) (Label, []byte) {
	l, tail, err := SplitLabel(b)
	if err != nil {
		panic("dname: corrupt name buffer: " + err.Error())
	}
	return l, tail
}

// RootLabel returns the root label.
func RootLabel() Label { return rootLabel }

// WildcardLabel returns the wildcard label "*".
func WildcardLabel() Label { return wildcardLabel }

// Len returns the payload length.
func (l Label) Len() int { return int(l[0]) }

// IsRoot reports whether l is the root label.
func (l Label) IsRoot() bool { return l[0] == 0 }

// IsWildcard reports whether l is the literal label "*".
func (l Label) IsWildcard() bool { return len(l) == 2 && l[0] == 1 && l[1] == '*' }

// Payload returns the label content without the length byte.
func (l Label) Payload() []byte { return l[1:] }

// Wire returns the complete encoding, length byte included.
func (l Label) Wire() []byte { return l }

// Equal reports whether l and other are equal ignoring ASCII case.
func (l Label) Equal(other Label) bool {
	if len(l) != len(other) {
		return false
	}
	for i := 1; i < len(l); i++ {
		if fold(l[i]) != fold(other[i]) {
			return false
		}
	}
	return true
}

// Compare orders labels by their case-folded payloads as left-justified
// octet strings (RFC 4034 Section 6.1): the first differing octet decides,
// and a label that is a prefix of the other sorts first.
func (l Label) Compare(other Label) int {
	a, b := l.Payload(), other.Payload()
	n := min(len(a), len(b))
	for i := range n {
		ca, cb := fold(a[i]), fold(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// String returns the presentation form of the label. Dots, backslashes and
// non-printable octets are escaped.
func (l Label) String() string {
	var b strings.Builder
	l.writeText(&b)
	return b.String()
}

func (l Label) writeText(b *strings.Builder) {
	for _, c := range l.Payload() {
		switch {
		case c == '.' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < '!' || c > '~':
			fmt.Fprintf(b, "\\%03d", c)
		default:
			b.WriteByte(c)
		}
	}
}

// fold maps ASCII upper case letters to lower case.
func fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
