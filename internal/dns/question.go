package dns

import (
	"encoding/binary"
	"fmt"

	"github.com/jroosing/dnsname/internal/dname"
)

// Question represents a DNS question section entry (RFC 1035 Section 4.1.2).
//
// Each question specifies what the client is asking for:
//   - Name: The domain name being queried
//   - Type: The record type requested (A, AAAA, MX, etc.)
//   - Class: Usually ClassIN (Internet)
type Question struct {
	Name  dname.Dname
	Type  RecordType
	Class RecordClass
}

// NewQuestion parses name and returns a question for it.
func NewQuestion(name string, rt RecordType, class RecordClass) (Question, error) {
	n, err := dname.FromString(name)
	if err != nil {
		return Question{}, fmt.Errorf("%w: question name %q: %w", ErrDNSError, name, err)
	}
	return Question{Name: n, Type: rt, Class: class}, nil
}

// Marshal serializes the question to DNS wire format.
func (q Question) Marshal() []byte {
	b := make([]byte, 0, q.Name.ComposeLen()+4)
	b = EncodeName(b, q.Name)
	b = binary.BigEndian.AppendUint16(b, uint16(q.Type))
	b = binary.BigEndian.AppendUint16(b, uint16(q.Class))
	return b
}

// String returns the question in zone-file order: name, class, type.
func (q Question) String() string {
	class := "IN"
	if q.Class != ClassIN {
		class = fmt.Sprintf("CLASS%d", q.Class)
	}
	return fmt.Sprintf("%s %s %s", q.Name, class, q.Type)
}

// ParseQuestion parses a question from the message at the given offset.
// It advances *off past the parsed question on success.
func ParseQuestion(msg []byte, off *int) (Question, error) {
	start := *off
	name, err := DecodeName(msg, off)
	if err != nil {
		return Question{}, err
	}
	if *off+4 > len(msg) {
		*off = start
		return Question{}, fmt.Errorf("%w: unexpected EOF while reading DNS question", ErrDNSError)
	}
	q := Question{
		Name:  name,
		Type:  RecordType(binary.BigEndian.Uint16(msg[*off : *off+2])),
		Class: RecordClass(binary.BigEndian.Uint16(msg[*off+2 : *off+4])),
	}
	*off += 4
	return q, nil
}
