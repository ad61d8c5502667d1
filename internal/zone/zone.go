// Package zone reads RFC 1035 master files far enough to collect the
// domain names they contain: every owner name and every name held in the
// RDATA of NS, CNAME, PTR, MX and SOA records.
//
// Names are resolved against $ORIGIN with dname chains, so relative owners
// such as "www" or "@" come out as absolute dname.Dname values.
package zone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/dns"
)

// DefaultTTL applies until a $TTL directive is seen.
const DefaultTTL = 3600

var (
	// ErrNoOrigin is returned for a record that appears before $ORIGIN.
	ErrNoOrigin = errors.New("zone file missing $ORIGIN")

	// ErrSyntax is the base of all malformed-line errors.
	ErrSyntax = errors.New("zone syntax error")
)

// ParseError locates a failure in the input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Record is one resource record of a zone.
type Record struct {
	Header dns.RRHeader
	Type   dns.RecordType
	// Targets holds the names found in the RDATA: the target of NS, CNAME
	// and PTR, the exchange of MX, and MNAME and RNAME of SOA.
	Targets []dname.Dname
	// RData is the RDATA as written, with whitespace collapsed.
	RData string
}

// Owner returns the owner name.
func (r Record) Owner() dname.Dname { return r.Header.Name }

// NameRecord returns the record as a dns.NameRecord if its RDATA is a
// single domain name.
func (r Record) NameRecord() (*dns.NameRecord, bool) {
	if !r.Type.HasNameRData() || len(r.Targets) != 1 {
		return nil, false
	}
	return dns.NewNameRecord(r.Header, r.Type, r.Targets[0]), true
}

func (r Record) String() string {
	return fmt.Sprintf("%s %d IN %s %s", r.Header.Name, r.Header.TTL, r.Type, r.RData)
}

// Zone is the parsed content of a master file.
type Zone struct {
	Origin     dname.Dname
	DefaultTTL uint32
	Records    []Record

	index map[uint64][]int
}

// LoadFile parses the master file at path.
func LoadFile(path string) (*Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseText parses master file text.
func ParseText(text string) (*Zone, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a master file. Records of types other than A, AAAA, NS,
// CNAME, PTR, MX, SOA and TXT are skipped.
func Parse(r io.Reader) (*Zone, error) {
	p := parser{ttl: DefaultTTL}
	lines, err := logicalLines(r)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err := p.line(l.text, l.indented); err != nil {
			return nil, &ParseError{Line: l.num, Err: err}
		}
	}

	z := &Zone{Origin: p.origin, DefaultTTL: p.ttl, Records: p.records}
	z.buildIndex()
	return z, nil
}

type parser struct {
	origin    dname.Dname
	hasOrigin bool
	ttl       uint32
	lastOwner dname.Dname
	hasOwner  bool
	records   []Record
}

func (p *parser) line(text string, indented bool) error {
	tokens := strings.Fields(text)
	switch strings.ToUpper(tokens[0]) {
	case "$ORIGIN":
		if len(tokens) != 2 {
			return fmt.Errorf("%w: invalid $ORIGIN directive", ErrSyntax)
		}
		origin, err := p.name(tokens[1])
		if err != nil {
			return err
		}
		p.origin, p.hasOrigin = origin, true
		return nil
	case "$TTL":
		if len(tokens) != 2 {
			return fmt.Errorf("%w: invalid $TTL directive", ErrSyntax)
		}
		ttl, err := parseTTL(tokens[1])
		if err != nil {
			return err
		}
		p.ttl = ttl
		return nil
	case "$INCLUDE", "$GENERATE":
		return fmt.Errorf("%w: %s is not supported", ErrSyntax, tokens[0])
	}

	owner, rest, err := p.owner(tokens, indented)
	if err != nil {
		return err
	}
	p.lastOwner, p.hasOwner = owner, true

	ttl, class, typ, rdata, err := parseRRFields(rest, p.ttl)
	if err != nil {
		return err
	}
	rt, ok := recordType(typ)
	if !ok {
		return nil
	}
	targets, err := p.targets(rt, rdata)
	if err != nil {
		return err
	}

	p.records = append(p.records, Record{
		Header:  dns.NewRRHeader(owner, class, ttl),
		Type:    rt,
		Targets: targets,
		RData:   strings.Join(rdata, " "),
	})
	return nil
}

// name resolves a name token: "@" is the origin, a trailing dot marks an
// absolute name and anything else is relative to the origin.
func (p *parser) name(tok string) (dname.Dname, error) {
	if tok == "." {
		return dname.Root(), nil
	}
	if tok == "@" {
		if !p.hasOrigin {
			return dname.Dname{}, ErrNoOrigin
		}
		return p.origin, nil
	}
	rel, err := dname.RelativeFromString(tok)
	if errors.Is(err, dname.ErrAbsoluteName) {
		return dname.FromString(tok)
	}
	if err != nil {
		return dname.Dname{}, err
	}
	if !p.hasOrigin {
		return dname.Dname{}, ErrNoOrigin
	}
	chain, err := rel.Chain(p.origin)
	if err != nil {
		return dname.Dname{}, err
	}
	return chain.ToDname()
}

// owner takes the owner name from the line. An indented line repeats the
// previous owner.
func (p *parser) owner(tokens []string, indented bool) (dname.Dname, []string, error) {
	if indented {
		if !p.hasOwner {
			return dname.Dname{}, nil, fmt.Errorf("%w: owner name omitted on first record", ErrSyntax)
		}
		return p.lastOwner, tokens, nil
	}
	owner, err := p.name(tokens[0])
	if err != nil {
		return dname.Dname{}, nil, err
	}
	return owner, tokens[1:], nil
}

func (p *parser) targets(rt dns.RecordType, rdata []string) ([]dname.Dname, error) {
	switch rt {
	case dns.TypeA, dns.TypeAAAA:
		if len(rdata) != 1 {
			return nil, fmt.Errorf("%w: %s rdata must be one address", ErrSyntax, rt)
		}
		addr, err := netip.ParseAddr(rdata[0])
		if err != nil || addr.Is4() != (rt == dns.TypeA) {
			return nil, fmt.Errorf("%w: invalid %s address %q", ErrSyntax, rt, rdata[0])
		}
		return nil, nil
	case dns.TypeNS, dns.TypeCNAME, dns.TypePTR:
		if len(rdata) != 1 {
			return nil, fmt.Errorf("%w: %s rdata must be one name", ErrSyntax, rt)
		}
		return p.names(rdata)
	case dns.TypeMX:
		if len(rdata) != 2 {
			return nil, fmt.Errorf("%w: MX rdata must be: <preference> <exchange>", ErrSyntax)
		}
		if _, err := strconv.ParseUint(rdata[0], 10, 16); err != nil {
			return nil, fmt.Errorf("%w: MX preference must be 0..65535", ErrSyntax)
		}
		return p.names(rdata[1:])
	case dns.TypeSOA:
		if len(rdata) != 7 {
			return nil, fmt.Errorf("%w: SOA rdata must be: MNAME RNAME SERIAL REFRESH RETRY EXPIRE MINIMUM", ErrSyntax)
		}
		if _, err := strconv.ParseUint(rdata[2], 10, 32); err != nil {
			return nil, fmt.Errorf("%w: invalid SOA serial", ErrSyntax)
		}
		for _, tok := range rdata[3:] {
			if _, err := parseTTL(tok); err != nil {
				return nil, fmt.Errorf("invalid SOA timer: %w", err)
			}
		}
		return p.names(rdata[:2])
	default:
		return nil, nil
	}
}

func (p *parser) names(toks []string) ([]dname.Dname, error) {
	out := make([]dname.Dname, 0, len(toks))
	for _, tok := range toks {
		n, err := p.name(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// buildIndex maps owner name hashes to record positions.
func (z *Zone) buildIndex() {
	z.index = make(map[uint64][]int, len(z.Records))
	for i, rr := range z.Records {
		h := rr.Owner().Hash()
		z.index[h] = append(z.index[h], i)
	}
}

// Contains reports whether n is at or below the zone origin.
func (z *Zone) Contains(n dname.Name) bool {
	return n.IsAbsolute() && dname.EndsWith(n, z.Origin)
}

// Lookup returns the records of type rt owned by n, ignoring case.
func (z *Zone) Lookup(n dname.Name, rt dns.RecordType) []Record {
	var out []Record
	for _, i := range z.index[dname.Hash(n)] {
		rr := z.Records[i]
		if rr.Type == rt && dname.Equal(rr.Owner(), n) {
			out = append(out, rr)
		}
	}
	return out
}

// SOA returns the SOA record at the origin, or nil if there is none.
func (z *Zone) SOA() *Record {
	if rrs := z.Lookup(z.Origin, dns.TypeSOA); len(rrs) > 0 {
		return &rrs[0]
	}
	return nil
}

// Names returns the distinct owner names in canonical order. With targets
// set the names found in RDATA are included.
func (z *Zone) Names(targets bool) []dname.Dname {
	var out []dname.Dname
	for _, rr := range z.Records {
		out = append(out, rr.Owner())
		if targets {
			out = append(out, rr.Targets...)
		}
	}
	slices.SortStableFunc(out, func(a, b dname.Dname) int { return dname.Compare(a, b) })
	return slices.CompactFunc(out, func(a, b dname.Dname) bool { return dname.Equal(a, b) })
}

// Sorted returns a copy of the records ordered canonically by owner and
// then by type.
func (z *Zone) Sorted() []Record {
	out := slices.Clone(z.Records)
	slices.SortStableFunc(out, func(a, b Record) int {
		if c := dname.Compare(a.Owner(), b.Owner()); c != 0 {
			return c
		}
		return int(a.Type) - int(b.Type)
	})
	return out
}

// --- parsing helpers ---

type logicalLine struct {
	num      int
	text     string
	indented bool
}

// logicalLines strips comments and joins parenthesized continuations.
// Each logical line carries the number of the line it started on.
func logicalLines(r io.Reader) ([]logicalLine, error) {
	var (
		out   []logicalLine
		buf   []string
		depth int
		start int
		num   int
		ind   bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		num++
		raw := stripComment(sc.Text())
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(buf) == 0 {
			start = num
			ind = raw[0] == ' ' || raw[0] == '\t'
		}
		depth += strings.Count(line, "(") - strings.Count(line, ")")
		buf = append(buf, line)
		if depth > 0 {
			continue
		}
		if depth < 0 {
			return nil, &ParseError{Line: num, Err: fmt.Errorf("%w: unbalanced parentheses", ErrSyntax)}
		}
		joined := strings.NewReplacer("(", " ", ")", " ").Replace(strings.Join(buf, " "))
		buf = buf[:0]
		if strings.TrimSpace(joined) != "" {
			out = append(out, logicalLine{num: start, text: joined, indented: ind})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(buf) > 0 {
		return nil, &ParseError{Line: start, Err: fmt.Errorf("%w: unbalanced parentheses", ErrSyntax)}
	}
	return out, nil
}

// stripComment cuts line at the first ';' outside a quoted string.
func stripComment(line string) string {
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				return line[:i]
			}
		}
	}
	return line
}

var ttlRE = regexp.MustCompile(`^(?:\d+[wdhmsWDHMS]?)+$`)

func looksLikeTTL(tok string) bool { return ttlRE.MatchString(tok) }

var ttlUnits = map[byte]uint64{'s': 1, 'm': 60, 'h': 3600, 'd': 86400, 'w': 604800}

// parseTTL accepts plain seconds or BIND style unit suffixes like 1h30m.
func parseTTL(tok string) (uint32, error) {
	if !ttlRE.MatchString(tok) {
		return 0, fmt.Errorf("%w: TTL must be seconds or use suffixes (w/d/h/m/s)", ErrSyntax)
	}
	var total, num uint64
	for i := range len(tok) {
		c := tok[i]
		if c >= '0' && c <= '9' {
			num = num*10 + uint64(c-'0')
			if num > 1<<32 {
				return 0, fmt.Errorf("%w: TTL too large", ErrSyntax)
			}
			continue
		}
		total += num * ttlUnits[c|0x20]
		num = 0
		if total > 1<<32-1 {
			return 0, fmt.Errorf("%w: TTL too large", ErrSyntax)
		}
	}
	total += num
	if total > 1<<32-1 {
		return 0, fmt.Errorf("%w: TTL too large", ErrSyntax)
	}
	return uint32(total), nil
}

func looksLikeClass(tok string) bool { return strings.EqualFold(tok, "IN") }

var typeCodes = map[string]dns.RecordType{
	"A":     dns.TypeA,
	"AAAA":  dns.TypeAAAA,
	"CNAME": dns.TypeCNAME,
	"NS":    dns.TypeNS,
	"MX":    dns.TypeMX,
	"TXT":   dns.TypeTXT,
	"PTR":   dns.TypePTR,
	"SOA":   dns.TypeSOA,
}

func recordType(tok string) (dns.RecordType, bool) {
	rt, ok := typeCodes[strings.ToUpper(tok)]
	return rt, ok
}

func parseRRFields(rest []string, defaultTTL uint32) (uint32, dns.RecordClass, string, []string, error) {
	var haveTTL, haveClass bool
	ttl := defaultTTL
	idx := 0
	for idx < len(rest) {
		tok := rest[idx]
		if !haveTTL && looksLikeTTL(tok) {
			n, err := parseTTL(tok)
			if err != nil {
				return 0, 0, "", nil, err
			}
			ttl, haveTTL = n, true
			idx++
			continue
		}
		if !haveClass && looksLikeClass(tok) {
			haveClass = true
			idx++
			continue
		}
		break
	}
	if idx >= len(rest) {
		return 0, 0, "", nil, fmt.Errorf("%w: missing record type", ErrSyntax)
	}
	typ := rest[idx]
	if idx+1 >= len(rest) {
		return 0, 0, "", nil, fmt.Errorf("%w: missing record data", ErrSyntax)
	}
	return ttl, dns.ClassIN, typ, rest[idx+1:], nil
}
