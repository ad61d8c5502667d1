package dname

import (
	"errors"
	"fmt"
)

// ErrBadText is returned for malformed presentation-format names.
var ErrBadText = errors.New("bad presentation format")

// FromString parses a dotted name such as "www.example.com." into an
// absolute name. The trailing dot is optional; "." and "" are the root.
//
// Backslash escapes "\." "\\" and "\DDD" are understood. Internationalized
// names must already be in their ASCII form.
func FromString(s string) (Dname, error) {
	if s == "" || s == "." {
		return Root(), nil
	}
	b, _, err := parseText(s)
	if err != nil {
		return Dname{}, err
	}
	return b.IntoDname()
}

// RelativeFromString parses a dotted name without trailing dot into a
// relative name. The empty string is the empty name.
func RelativeFromString(s string) (RelativeDname, error) {
	if s == "" {
		return EmptyRelative(), nil
	}
	b, absolute, err := parseText(s)
	if err != nil {
		return RelativeDname{}, err
	}
	if absolute {
		return RelativeDname{}, fmt.Errorf("%w: trailing dot in %q", ErrAbsoluteName, s)
	}
	return b.Finish(), nil
}

// MustFromString is like FromString but panics on error. It is intended
// for constants and tests.
func MustFromString(s string) Dname {
	n, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MustRelativeFromString is like RelativeFromString but panics on error.
func MustRelativeFromString(s string) RelativeDname {
	n, err := RelativeFromString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// parseText feeds the labels of s into a new builder and reports whether s
// ended with a dot.
func parseText(s string) (*Builder, bool, error) {
	b := NewBuilderWithCapacity(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '.':
			if !b.InLabel() {
				return nil, false, fmt.Errorf("%w: empty label in %q", ErrBadText, s)
			}
			b.EndLabel()
			if i == len(s)-1 {
				return b, true, nil
			}
			continue
		case '\\':
			v, n, err := parseEscape(s[i+1:])
			if err != nil {
				return nil, false, fmt.Errorf("%w in %q", err, s)
			}
			c = v
			i += n
		}
		if err := b.Push(c); err != nil {
			return nil, false, err
		}
	}
	b.EndLabel()
	return b, false, nil
}

// parseEscape decodes the escape following a backslash and returns the
// octet and the number of characters consumed.
func parseEscape(s string) (byte, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("%w: dangling backslash", ErrBadText)
	}
	if !isDigit(s[0]) {
		return s[0], 1, nil
	}
	if len(s) < 3 || !isDigit(s[1]) || !isDigit(s[2]) {
		return 0, 0, fmt.Errorf("%w: short decimal escape", ErrBadText)
	}
	v := int(s[0]-'0')*100 + int(s[1]-'0')*10 + int(s[2]-'0')
	if v > 255 {
		return 0, 0, fmt.Errorf("%w: decimal escape %d out of range", ErrBadText, v)
	}
	return byte(v), 3, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
