// Package dns is the message layer on top of the name engine in
// internal/dname.
//
// Standards Compliance:
//
//   - RFC 1035 Section 4.1.2: Question section format
//   - RFC 1035 Section 4.1.3: Resource record format
//   - RFC 1035 Section 4.1.4: Message compression (decoding only)
//
// Names never travel through this package as strings. Questions and records
// carry dname.Dname values, encoding appends the uncompressed wire form and
// decoding follows compression pointers before handing the labels to a
// dname.Builder.
//
// Error Handling:
//
// All errors are wrapped with context using fmt.Errorf("...: %w", err) on
// top of ErrDNSError. Name errors from the engine stay in the chain, so
// errors.Is(err, dname.ErrLongName) works on a decode failure.
package dns

import "errors"

var (
	// ErrDNSError is a sentinel error type for DNS protocol violations.
	// Wrap this with fmt.Errorf("context: %w", ErrDNSError) to add context.
	ErrDNSError = errors.New("dns wire error")
)
