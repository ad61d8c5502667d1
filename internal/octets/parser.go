package octets

import (
	"errors"
	"fmt"
)

// ErrShortInput is returned when a read goes past the end of the input.
var ErrShortInput = errors.New("unexpected end of input")

// Parser is a read cursor over an Octets value.
//
// Everything a Parser hands out is a sub-range of the underlying octets, so
// parsed values share the input buffer instead of copying it.
type Parser struct {
	octets Octets
	pos    int
}

// NewParser returns a parser positioned at the start of o.
func NewParser(o Octets) *Parser {
	if o == nil {
		o = Slice(nil)
	}
	return &Parser{octets: o}
}

// Octets returns the complete input.
func (p *Parser) Octets() Octets { return p.octets }

// Pos returns the current offset into the input.
func (p *Parser) Pos() int { return p.pos }

// Remaining returns the number of bytes left after the current position.
func (p *Parser) Remaining() int { return p.octets.Len() - p.pos }

// Peek returns the next n bytes without advancing.
func (p *Parser) Peek(n int) ([]byte, error) {
	if err := p.check(n); err != nil {
		return nil, err
	}
	return p.octets.Slice()[p.pos : p.pos+n], nil
}

// PeekAll returns all remaining bytes without advancing.
func (p *Parser) PeekAll() []byte {
	return p.octets.Slice()[p.pos:]
}

// Advance moves the position forward by n bytes.
func (p *Parser) Advance(n int) error {
	if err := p.check(n); err != nil {
		return err
	}
	p.pos += n
	return nil
}

// Seek moves the position to the absolute offset pos.
func (p *Parser) Seek(pos int) error {
	if pos < 0 || pos > p.octets.Len() {
		return fmt.Errorf("%w: seek to %d beyond %d", ErrShortInput, pos, p.octets.Len())
	}
	p.pos = pos
	return nil
}

// ParseOctets returns the next n bytes as a shared sub-range and advances.
func (p *Parser) ParseOctets(n int) (Octets, error) {
	if err := p.check(n); err != nil {
		return nil, err
	}
	o := p.octets.Range(p.pos, p.pos+n)
	p.pos += n
	return o, nil
}

func (p *Parser) check(n int) error {
	if n < 0 || n > p.Remaining() {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortInput, n, p.pos, p.Remaining())
	}
	return nil
}
