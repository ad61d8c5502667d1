package dname

import (
	"fmt"

	"github.com/jroosing/dnsname/internal/octets"
)

// ParseDname consumes exactly one uncompressed absolute name from p.
//
// The name ends at the first root label. The returned name shares p's
// octets. Malformed input yields an error and leaves p where it was;
// compression pointers are rejected with a *PointerError.
func ParseDname(p *octets.Parser) (Dname, error) {
	buf := p.PeekAll()
	pos := 0
	for {
		l, _, err := SplitLabel(buf[pos:])
		if err != nil {
			return Dname{}, fmt.Errorf("name at offset %d: %w", p.Pos(), err)
		}
		pos += len(l)
		if pos > MaxNameLen {
			return Dname{}, fmt.Errorf("name at offset %d: %w", p.Pos(), ErrLongName)
		}
		if l.IsRoot() {
			break
		}
	}
	o, err := p.ParseOctets(pos)
	if err != nil {
		return Dname{}, err
	}
	return Dname{octets: o}, nil
}

// ParseRelative consumes a relative name occupying exactly the next n
// octets of p.
func ParseRelative(p *octets.Parser, n int) (RelativeDname, error) {
	if n < 0 || n > p.Remaining() {
		return RelativeDname{}, fmt.Errorf("name at offset %d: %w", p.Pos(), ErrShortData)
	}
	o := p.Octets().Range(p.Pos(), p.Pos()+n)
	name, err := RelativeFromOctets(o)
	if err != nil {
		release(o)
		return RelativeDname{}, fmt.Errorf("name at offset %d: %w", p.Pos(), err)
	}
	if err := p.Advance(n); err != nil {
		return RelativeDname{}, err
	}
	return name, nil
}

// ParseAllRelative consumes the rest of p as a relative name.
func ParseAllRelative(p *octets.Parser) (RelativeDname, error) {
	return ParseRelative(p, p.Remaining())
}

// ParseAllDname consumes the rest of p as an absolute name. Data after the
// root label is an error.
func ParseAllDname(p *octets.Parser) (Dname, error) {
	start := p.Pos()
	n, err := ParseDname(p)
	if err != nil {
		return Dname{}, err
	}
	if p.Remaining() > 0 {
		_ = p.Seek(start)
		return Dname{}, fmt.Errorf("name at offset %d: %w: %d octets", start, ErrTrailingData, p.Remaining()-n.Len())
	}
	return n, nil
}
