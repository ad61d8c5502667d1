package dname

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLabel is the base of all label-type errors. See LabelTypeError.
	ErrBadLabel = errors.New("bad label type")

	// ErrCompressedName is returned when a compression pointer appears where
	// an uncompressed name is required. See PointerError.
	ErrCompressedName = errors.New("compressed domain name")

	// ErrShortData is returned when the input ends inside a label.
	ErrShortData = errors.New("unexpected end of input")

	// ErrLongName is returned when a name exceeds its encoded length limit.
	ErrLongName = errors.New("long domain name")

	// ErrLongLabel is returned when a label payload exceeds 63 octets.
	ErrLongLabel = errors.New("long label")

	// ErrAbsoluteName is returned when a root label is found where a
	// relative name is expected, or before the end of an absolute name.
	ErrAbsoluteName = errors.New("absolute domain name")

	// ErrRelativeName is returned when an absolute name lacks its root label.
	ErrRelativeName = errors.New("relative domain name")

	// ErrSuffixNotFound is returned by StripSuffix when base isn't a suffix.
	ErrSuffixNotFound = errors.New("suffix not found")

	// ErrLongChain is the base of LongChainError.
	ErrLongChain = errors.New("long domain name chain")

	// ErrTrailingData is returned when a bounded parse leaves input behind.
	ErrTrailingData = errors.New("trailing data")
)

// LabelTypeError reports a label head byte that denotes an extended
// (0x40-0x7F) or undefined (0x80-0xBF) label type.
type LabelTypeError struct {
	// Extended is false for the undefined type.
	Extended bool
	// Value is the head byte.
	Value byte
}

func (e *LabelTypeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("extended label type 0x%02x", e.Value)
	}
	return "undefined label type"
}

func (e *LabelTypeError) Unwrap() error { return ErrBadLabel }

// PointerError reports a compression pointer found in an uncompressed name.
type PointerError struct {
	// Offset is the 14-bit message offset the pointer refers to.
	Offset uint16
}

func (e *PointerError) Error() string {
	return fmt.Sprintf("compressed domain name (pointer to %d)", e.Offset)
}

func (e *PointerError) Unwrap() error { return ErrCompressedName }

// LongChainError is returned when the two parts of a chain are too long
// together.
type LongChainError struct {
	LeftLen  int
	RightLen int
	Limit    int
}

func (e *LongChainError) Error() string {
	return fmt.Sprintf("long domain name chain: %d+%d octets exceeds %d", e.LeftLen, e.RightLen, e.Limit)
}

func (e *LongChainError) Unwrap() error { return ErrLongChain }

// boundaryViolation aborts a slicing operation whose offset isn't a label
// boundary. It is a caller bug, so it is not reported as an error value.
func boundaryViolation(index, length int) {
	panic(fmt.Sprintf("dname: index %d not at start of a label (name length %d)", index, length))
}
