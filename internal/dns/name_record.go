package dns

import (
	"fmt"

	"github.com/jroosing/dnsname/internal/dname"
)

// NameRecord represents DNS records that contain a single domain name (CNAME, NS, PTR).
type NameRecord struct {
	H      RRHeader
	T      RecordType
	Target dname.Dname
}

// NewNameRecord creates a new name-based record (CNAME, NS, or PTR).
func NewNameRecord(h RRHeader, rt RecordType, target dname.Dname) *NameRecord {
	return &NameRecord{H: h, T: rt, Target: target}
}

// NewCNAMERecord creates a new CNAME record.
func NewCNAMERecord(h RRHeader, target dname.Dname) *NameRecord {
	return NewNameRecord(h, TypeCNAME, target)
}

// NewNSRecord creates a new NS record.
func NewNSRecord(h RRHeader, target dname.Dname) *NameRecord {
	return NewNameRecord(h, TypeNS, target)
}

// NewPTRRecord creates a new PTR record.
func NewPTRRecord(h RRHeader, target dname.Dname) *NameRecord {
	return NewNameRecord(h, TypePTR, target)
}

// Type returns the record type (CNAME, NS, or PTR).
func (r *NameRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *NameRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *NameRecord) SetHeader(h RRHeader) { r.H = h }

// AppendRData appends the uncompressed target name.
func (r *NameRecord) AppendRData(buf []byte) []byte {
	return EncodeName(buf, r.Target)
}

// String returns the record in zone-file presentation.
func (r *NameRecord) String() string {
	return fmt.Sprintf("%s %d IN %s %s", r.H.Name, r.H.TTL, r.T, r.Target)
}

// ParseNameRData parses CNAME, NS, or PTR record RDATA from wire format.
// The target may be compressed (RFC 1035 Section 4.1.4 allows it for these
// types).
func ParseNameRData(msg []byte, off *int, start, rdlen int, rt RecordType) (*NameRecord, error) {
	n, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	if *off-start != rdlen {
		return nil, fmt.Errorf("%w: name record RDATA length mismatch (RFC 1035 §3.3)", ErrDNSError)
	}
	return &NameRecord{Target: n, T: rt}, nil
}
