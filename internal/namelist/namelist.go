// Package namelist reads domain names given to dnamectl, either one at a
// time or as line-oriented lists from files, readers or URLs.
//
// Three list formats are understood:
//   - text: one presentation-format name per line
//   - hex: one wire-format name per line, hex encoded
//   - hosts: hosts file lines (address followed by one or more names)
//
// Comments start with '#' and run to the end of the line.
package namelist

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/jroosing/dnsname/internal/config"
	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/helpers"
)

// Format represents the format of a name list.
type Format int

const (
	// FormatAuto detects the format from the first non-comment line.
	FormatAuto Format = iota
	// FormatText is presentation format, one name per line.
	FormatText
	// FormatHex is hex encoded wire format, one name per line.
	FormatHex
	// FormatHosts is the hosts file format.
	FormatHosts
)

// FormatOf maps a configured input format to a list format.
func FormatOf(f config.InputFormat) Format {
	switch f {
	case config.InputHex:
		return FormatHex
	case config.InputText:
		return FormatText
	default:
		return FormatAuto
	}
}

// Name is a parsed name of either kind.
type Name interface {
	dname.Name
	fmt.Stringer
	LabelCount() int
}

// Parse reads a single name. Relative selects RelativeDname over Dname.
func Parse(s string, format Format, relative bool) (Name, error) {
	s = strings.TrimSpace(s)
	if format == FormatAuto {
		format = detectFormat(s)
	}

	switch format {
	case FormatHex:
		b, err := helpers.ParseHex(s)
		if err != nil {
			return nil, err
		}
		if relative {
			return result(dname.RelativeFromSlice(b))
		}
		return result(dname.FromSlice(b))
	case FormatHosts:
		fields := strings.Fields(s)
		if len(fields) < 2 {
			return nil, fmt.Errorf("hosts line without a name: %q", s)
		}
		s = fields[1]
	}

	if relative {
		return result(dname.RelativeFromString(s))
	}
	return result(dname.FromString(s))
}

func result[N Name](n N, err error) (Name, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Entry is one name read from a list.
type Entry struct {
	Line  int
	Input string
	Name  Name
	Err   error
}

// Parser reads name lists.
type Parser struct {
	// Relative makes the parser produce relative names.
	Relative bool
	// Timeout is the HTTP request timeout for ParseURL. Default is 60s.
	Timeout time.Duration
}

// NewParser creates a new parser with default settings.
func NewParser(relative bool) *Parser {
	return &Parser{
		Relative: relative,
		Timeout:  60 * time.Second,
	}
}

// ParseFile parses the list stored at path.
func (p *Parser) ParseFile(path string, format Format) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file, format)
}

// ParseURL fetches and parses a list from a URL.
func (p *Parser) ParseURL(url string, format Format) ([]Entry, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	return p.Parse(resp.Body, format)
}

// Parse reads a list from r. Lines that do not hold a valid name are
// returned with Err set, so callers can report them without stopping.
// Hosts lines naming several hosts yield one entry per name.
func (p *Parser) Parse(r io.Reader, format Format) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if format == FormatAuto {
			format = detectFormat(line)
		}

		for _, input := range p.splitLine(line, format) {
			n, err := Parse(input, format, p.Relative)
			entries = append(entries, Entry{Line: lineNo, Input: input, Name: n, Err: err})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return entries, nil
}

// splitLine returns the name inputs held by one line.
func (p *Parser) splitLine(line string, format Format) []string {
	if format != FormatHosts {
		return []string{line}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return []string{line}
	}
	out := make([]string, 0, len(fields)-1)
	for _, name := range fields[1:] {
		out = append(out, fields[0]+" "+name)
	}
	return out
}

// detectFormat determines the format from a sample line.
func detectFormat(line string) Format {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return FormatText
	}
	if len(fields) >= 2 {
		if _, err := netip.ParseAddr(fields[0]); err == nil {
			return FormatHosts
		}
	}
	if strings.HasPrefix(line, "0x") || strings.HasPrefix(line, "0X") {
		return FormatHex
	}
	// Space or colon separated octet pairs, as printed by helpers.FormatHex.
	if len(fields) >= 2 || strings.Contains(line, ":") {
		octets := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == '\t' || r == ':' })
		if !slices.ContainsFunc(octets, func(s string) bool { return len(s) != 2 || !isHex(s) }) {
			return FormatHex
		}
	}
	return FormatText
}

func isHex(s string) bool {
	for _, c := range []byte(s) {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// Valid returns the names of the entries that parsed.
func Valid(entries []Entry) []Name {
	out := make([]Name, 0, len(entries))
	for _, e := range entries {
		if e.Err == nil {
			out = append(out, e.Name)
		}
	}
	return out
}

// Sort orders names canonically (RFC 4034 Section 6.1). Equal names keep
// their input order.
func Sort(names []Name) {
	slices.SortStableFunc(names, func(a, b Name) int { return dname.Compare(a, b) })
}

// LabelInfo describes one label of a name.
type LabelInfo struct {
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	Text     string `json:"text"`
	Wildcard bool   `json:"wildcard,omitempty"`
	Root     bool   `json:"root,omitempty"`
}

// Labels lists the labels of n with the offset at which each starts.
func Labels(n dname.Name) []LabelInfo {
	var out []LabelInfo
	off := 0
	for l := range dname.Labels(n) {
		out = append(out, LabelInfo{
			Offset:   off,
			Length:   l.Len(),
			Text:     l.String(),
			Wildcard: l.IsWildcard(),
			Root:     l.IsRoot(),
		})
		off += len(l.Wire())
	}
	return out
}
