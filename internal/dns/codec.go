package dns

import (
	"errors"
	"fmt"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/octets"
)

// maxCompressionDepth bounds the number of pointers followed for one name.
const maxCompressionDepth = 20

// EncodeName appends the uncompressed wire form of n to buf (RFC 1035
// Section 3.1).
//
// Example: "www.example.com." encodes as:
//
//	[3]www[7]example[3]com[0]
//
// This does NOT perform message compression.
func EncodeName(buf []byte, n dname.Name) []byte {
	return n.Compose(buf)
}

// EncodeNameString parses a presentation-format name and returns its wire
// form. The trailing dot is optional; the result is always absolute.
func EncodeNameString(domain string) ([]byte, error) {
	if domain == "" {
		return nil, fmt.Errorf("%w: domain_name must be non-empty", ErrDNSError)
	}
	n, err := dname.FromString(domain)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid domain name %q: %w", ErrDNSError, domain, err)
	}
	return EncodeName(make([]byte, 0, n.Len()), n), nil
}

// DecodeName decodes a possibly-compressed DNS name from wire format.
//
// DNS name compression (RFC 1035 Section 4.1.4) uses pointers to reduce
// message size. A compression pointer is identified by the two high bits
// of a label length byte being set (11xxxxxx pattern = 0xC0):
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	| 1  1|                OFFSET                   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//
// This function reads from msg starting at *off and advances *off past the
// encoded name, including the pointer bytes but not what they refer to.
// The returned name owns its octets and does not alias msg.
func DecodeName(msg []byte, off *int) (dname.Dname, error) {
	if *off < 0 || *off >= len(msg) {
		return dname.Dname{}, fmt.Errorf("%w: unexpected EOF while decoding DNS name", ErrDNSError)
	}

	// Uncompressed names are parsed in one go.
	p := octets.NewParser(octets.Slice(msg))
	_ = p.Seek(*off)
	n, err := dname.ParseDname(p)
	if err == nil {
		owned, err := dname.FromBytes(octets.Copy(n.Octets()))
		if err != nil {
			return dname.Dname{}, fmt.Errorf("%w: %w", ErrDNSError, err)
		}
		*off = p.Pos()
		return owned, nil
	}
	if !errors.Is(err, dname.ErrCompressedName) {
		return dname.Dname{}, fmt.Errorf("%w: %w", ErrDNSError, err)
	}
	return decodeCompressed(msg, off)
}

// decodeCompressed walks labels and pointers, collecting labels in a
// builder. It tracks visited offsets and depth to detect compression loops.
func decodeCompressed(msg []byte, off *int) (dname.Dname, error) {
	b := dname.NewBuilderWithCapacity(dname.MaxNameLen)
	visited := make(map[int]struct{}, 4)
	pos, end, depth := *off, -1, 0

	for {
		if pos >= len(msg) {
			return dname.Dname{}, fmt.Errorf("%w: unexpected EOF while decoding DNS name", ErrDNSError)
		}
		l, _, err := dname.SplitLabel(msg[pos:])

		var ptr *dname.PointerError
		if errors.As(err, &ptr) {
			if end < 0 {
				end = pos + 2
			}
			target := int(ptr.Offset)
			if err := followCompressionPointer(msg, target, depth, visited); err != nil {
				return dname.Dname{}, err
			}
			depth++
			pos = target
			continue
		}
		if err != nil {
			return dname.Dname{}, fmt.Errorf("%w: label at offset %d: %w", ErrDNSError, pos, err)
		}

		if l.IsRoot() {
			if end < 0 {
				end = pos + 1
			}
			break
		}
		if err := b.AppendLabel(l.Payload()); err != nil {
			return dname.Dname{}, fmt.Errorf("%w: decoded name: %w", ErrDNSError, err)
		}
		pos += len(l)
	}

	n, err := b.IntoDname()
	if err != nil {
		return dname.Dname{}, fmt.Errorf("%w: decoded name: %w", ErrDNSError, err)
	}
	*off = end
	return n, nil
}

// followCompressionPointer validates a pointer target before it is followed.
func followCompressionPointer(msg []byte, target, depth int, visited map[int]struct{}) error {
	if depth >= maxCompressionDepth {
		return fmt.Errorf("%w: too many DNS compression pointer indirections", ErrDNSError)
	}
	if target >= len(msg) {
		return fmt.Errorf("%w: DNS compression pointer out of bounds", ErrDNSError)
	}
	if _, ok := visited[target]; ok {
		return fmt.Errorf("%w: DNS compression pointer loop detected", ErrDNSError)
	}
	visited[target] = struct{}{}
	return nil
}
