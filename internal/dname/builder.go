package dname

import (
	"fmt"

	"github.com/jroosing/dnsname/internal/octets"
)

// Builder accumulates a domain name label by label.
//
// A Builder created from an existing name keeps that name's buffer until
// the first write. The write then appends in place if no other handle
// shares the buffer (see octets.Reclaimer) and copies it otherwise. In
// place appends only use spare capacity past the stored bytes, so names
// on the old buffer never observe the change.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	// src is the not yet reclaimed source buffer. While it is set, buf is
	// unused.
	src octets.Octets
	buf []byte

	// head is the offset of the open label's length byte, or -1.
	head int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{head: -1}
}

// NewBuilderWithCapacity returns an empty builder with room for n octets.
func NewBuilderWithCapacity(n int) *Builder {
	return &Builder{buf: make([]byte, 0, n), head: -1}
}

func builderFrom(o octets.Octets) *Builder {
	return &Builder{src: o, head: -1}
}

// Len returns the number of octets assembled so far.
func (b *Builder) Len() int {
	if b.src != nil {
		return b.src.Len()
	}
	return len(b.buf)
}

// IsEmpty reports whether nothing has been assembled yet.
func (b *Builder) IsEmpty() bool { return b.Len() == 0 }

// Slice returns the octets assembled so far.
func (b *Builder) Slice() []byte {
	if b.src != nil {
		return b.src.Slice()
	}
	return b.buf
}

// IsShared reports whether the builder still refers to a buffer it hasn't
// taken over yet.
func (b *Builder) IsShared() bool { return b.src != nil }

// InLabel reports whether a label started with Push is still open.
func (b *Builder) InLabel() bool { return b.head >= 0 }

// Push appends one octet to the open label, starting a new label if none
// is open.
func (b *Builder) Push(ch byte) error {
	if b.InLabel() {
		if b.Len()-b.head > MaxLabelLen {
			return ErrLongLabel
		}
		if b.Len()+1 > MaxRelativeLen {
			return fmt.Errorf("%w: builder at %d octets", ErrLongName, b.Len())
		}
		b.own()
		b.buf = append(b.buf, ch)
		b.buf[b.head]++
		return nil
	}
	if b.Len()+2 > MaxRelativeLen {
		return fmt.Errorf("%w: builder at %d octets", ErrLongName, b.Len())
	}
	b.own()
	b.head = len(b.buf)
	b.buf = append(b.buf, 1, ch)
	return nil
}

// EndLabel closes the label opened by Push. It does nothing if no label is
// open.
func (b *Builder) EndLabel() {
	b.head = -1
}

// AppendLabel appends a complete label with the given payload, closing any
// open label first. The payload must hold 1 to 63 octets.
func (b *Builder) AppendLabel(payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty label", ErrAbsoluteName)
	}
	if len(payload) > MaxLabelLen {
		return fmt.Errorf("%w: %d octets", ErrLongLabel, len(payload))
	}
	if b.Len()+1+len(payload) > MaxRelativeLen {
		return fmt.Errorf("%w: builder at %d octets", ErrLongName, b.Len())
	}
	b.EndLabel()
	b.own()
	b.buf = append(b.buf, byte(len(payload)))
	b.buf = append(b.buf, payload...)
	return nil
}

// AppendName appends all labels of a relative name, closing any open label
// first.
func (b *Builder) AppendName(n Name) error {
	if n.IsAbsolute() {
		return ErrAbsoluteName
	}
	if b.Len()+n.ComposeLen() > MaxRelativeLen {
		return fmt.Errorf("%w: %d+%d octets", ErrLongName, b.Len(), n.ComposeLen())
	}
	b.EndLabel()
	b.own()
	b.buf = n.Compose(b.buf)
	return nil
}

// Finish returns the assembled relative name and resets the builder.
func (b *Builder) Finish() RelativeDname {
	return RelativeDname{octets: b.take()}
}

// IntoDname appends the root label and returns the absolute name. The
// builder is reset.
func (b *Builder) IntoDname() (Dname, error) {
	if b.Len()+1 > MaxNameLen {
		return Dname{}, fmt.Errorf("%w: %d octets", ErrLongName, b.Len()+1)
	}
	b.EndLabel()
	b.own()
	b.buf = append(b.buf, 0)
	return Dname{octets: b.take()}, nil
}

// AppendOrigin appends the absolute name origin and returns the result.
// The builder is reset.
func (b *Builder) AppendOrigin(origin Name) (Dname, error) {
	if !origin.IsAbsolute() {
		return Dname{}, ErrRelativeName
	}
	if b.Len()+origin.ComposeLen() > MaxNameLen {
		return Dname{}, fmt.Errorf("%w: %d+%d octets", ErrLongName, b.Len(), origin.ComposeLen())
	}
	b.EndLabel()
	b.own()
	b.buf = origin.Compose(b.buf)
	return Dname{octets: b.take()}, nil
}

// own makes sure buf is writable: the source buffer is reclaimed if this
// builder holds its only reference and copied otherwise.
func (b *Builder) own() {
	if b.src == nil {
		return
	}
	src := b.src
	b.src = nil
	if r, ok := src.(octets.Reclaimer); ok {
		if buf, ok := r.TryMut(); ok {
			b.buf = buf
			return
		}
	}
	b.buf = append(make([]byte, 0, src.Len()+MaxLabelLen+1), src.Slice()...)
	release(src)
}

// take hands the assembled octets to a name and resets the builder.
func (b *Builder) take() octets.Octets {
	b.head = -1
	if b.src != nil {
		o := b.src
		b.src = nil
		return o
	}
	o := octets.NewBytes(b.buf)
	b.buf = nil
	return o
}
