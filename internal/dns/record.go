package dns

import (
	"encoding/binary"
	"fmt"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/helpers"
)

// RRHeader contains common metadata for DNS resource records.
type RRHeader struct {
	Name  dname.Dname
	Class RecordClass
	TTL   uint32
}

// NewRRHeader creates a new resource record header.
func NewRRHeader(name dname.Dname, class RecordClass, ttl uint32) RRHeader {
	return RRHeader{Name: name, Class: class, TTL: ttl}
}

// Record is the interface for DNS resource records.
type Record interface {
	// Type returns the DNS record type.
	Type() RecordType

	// Header returns the record's metadata.
	Header() RRHeader

	// SetHeader sets the record's metadata.
	SetHeader(h RRHeader)

	// AppendRData appends the record-specific data (RDATA) in wire format.
	AppendRData(buf []byte) []byte
}

// ParseRecord parses a resource record from wire format.
// It advances *off past the parsed record on success.
//
// Only records whose RDATA is a single domain name are supported; other
// types are rejected.
func ParseRecord(msg []byte, off *int) (Record, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	if *off+10 > len(msg) {
		return nil, fmt.Errorf("%w: unexpected EOF while reading DNS record", ErrDNSError)
	}
	rrType := RecordType(binary.BigEndian.Uint16(msg[*off : *off+2]))
	rrClass := RecordClass(binary.BigEndian.Uint16(msg[*off+2 : *off+4]))
	ttl := binary.BigEndian.Uint32(msg[*off+4 : *off+8])
	rdlen := int(binary.BigEndian.Uint16(msg[*off+8 : *off+10]))
	*off += 10
	start := *off
	if start+rdlen > len(msg) {
		return nil, fmt.Errorf("%w: unexpected EOF while reading DNS record rdata", ErrDNSError)
	}
	if !rrType.HasNameRData() {
		return nil, fmt.Errorf("%w: unsupported record type %s", ErrDNSError, rrType)
	}

	r, err := ParseNameRData(msg, off, start, rdlen, rrType)
	if err != nil {
		return nil, err
	}
	r.SetHeader(RRHeader{Name: name, Class: rrClass, TTL: ttl})
	return r, nil
}

// MarshalRecord converts a Record to uncompressed wire-format bytes.
func MarshalRecord(r Record) ([]byte, error) {
	h := r.Header()
	out := make([]byte, 0, h.Name.ComposeLen()+10+dname.MaxNameLen)
	out = EncodeName(out, h.Name)
	out = binary.BigEndian.AppendUint16(out, uint16(r.Type()))
	out = binary.BigEndian.AppendUint16(out, uint16(h.Class))
	out = binary.BigEndian.AppendUint32(out, h.TTL)

	lenAt := len(out)
	out = append(out, 0, 0)
	out = r.AppendRData(out)
	rdlen := len(out) - lenAt - 2
	if rdlen > 65535 {
		return nil, fmt.Errorf("%w: rdata too large: %d bytes (max 65535)", ErrDNSError, rdlen)
	}
	binary.BigEndian.PutUint16(out[lenAt:], helpers.ClampIntToUint16(rdlen))
	return out, nil
}
