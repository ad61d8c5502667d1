// Package octets provides the byte-buffer abstraction the domain name types
// are built on.
//
// A name value never cares where its bytes live. It only needs to read them,
// take zero-copy sub-ranges at label boundaries and duplicate its handle
// cheaply. Two backends are provided:
//
//   - Bytes: an owned, reference-counted buffer. Clones and sub-ranges share
//     the storage; a handle that turns out to be the only one left can be
//     reclaimed for in-place appends (see TryMut).
//   - Slice: a borrowed view over caller-owned memory. It is never reclaimed.
//
// Values handed out by Slice and Bytes.Slice must be treated as read-only.
package octets

// Octets is an immutable, cheaply duplicated sequence of bytes.
//
// Range, RangeFrom and RangeTo return views of the same backend without
// copying. Offsets outside [0, Len()] panic, like slice expressions do.
type Octets interface {
	// Slice returns the bytes. The result must not be modified.
	Slice() []byte

	// Len returns the number of bytes.
	Len() int

	// Range returns the bytes in [start, end).
	Range(start, end int) Octets

	// RangeFrom returns the bytes from start to the end.
	RangeFrom(start int) Octets

	// RangeTo returns the bytes from the beginning up to end.
	RangeTo(end int) Octets

	// Clone duplicates the handle. It never copies the bytes.
	Clone() Octets
}

// Reclaimer is implemented by backends that can give up their storage for
// mutation when no other handle shares it.
type Reclaimer interface {
	// TryMut returns the storage for in-place appends if the receiver is the
	// only live handle. On success the receiver's reference is consumed; its
	// bytes stay readable.
	TryMut() ([]byte, bool)
}

// Releaser is implemented by reference-counted backends.
type Releaser interface {
	// Release drops the handle's reference.
	Release()
}

// Copy returns an owned Bytes holding a copy of o's content.
func Copy(o Octets) Bytes {
	if o == nil {
		return Bytes{}
	}
	return CopyBytes(o.Slice())
}

// Equal reports whether two octet sequences hold the same bytes.
func Equal(a, b Octets) bool {
	return string(slice(a)) == string(slice(b))
}

func slice(o Octets) []byte {
	if o == nil {
		return nil
	}
	return o.Slice()
}
