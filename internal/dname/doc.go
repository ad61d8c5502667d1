// Package dname implements uncompressed DNS domain names in wire format.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (label and name
//     encoding, length limits)
//   - RFC 4034 Section 6.1: Canonical DNS Name Order
//   - RFC 4343: DNS Case Insensitivity Clarification
//   - RFC 6891 Section 5: extended label types (rejected)
//
// Types:
//
// Label is a single length-prefixed label. RelativeDname is a sequence of
// non-root labels of at most 254 octets; Dname is a RelativeDname followed by
// the root label, at most 255 octets. Chain concatenates two names lazily and
// Builder assembles new names label by label.
//
// All name values are immutable views over an octets.Octets buffer, so
// slicing and cloning never copy bytes and names are safe for concurrent
// readers. Only Builder mutates, and only buffers it owns exclusively.
//
// Error Handling:
//
// Malformed input is reported through the sentinel errors in errors.go,
// wrapped with context and with typed errors (*LabelTypeError,
// *PointerError, *LongChainError) for the details. Offsets passed to the
// slicing methods that don't fall on a label boundary are programming
// errors and panic.
package dname
