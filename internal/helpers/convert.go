// Package helpers provides small conversion utilities shared by the CLI,
// the API and the message layer.
//
// The numeric helpers clamp instead of wrapping so a value that doesn't fit
// its wire field saturates. The hex helpers accept the loose notations
// people paste from packet dumps.
package helpers

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	return max(lowerLimit, min(v, upperLimit))
}

// ClampIntToUint16 converts v to uint16 with clamping.
// Values below 0 become 0; values above math.MaxUint16 become math.MaxUint16.
func ClampIntToUint16(v int) uint16 {
	return uint16(ClampInt(v, 0, math.MaxUint16)) //nolint:gosec // clamped to valid range
}

// ParseHex decodes a hex string. Whitespace, colons and a leading "0x" are
// ignored, so "03 77 77 77 00", "03:77:77:77:00" and "0x0377777700" are all
// accepted.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// FormatHex encodes b as space separated hex octets.
func FormatHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	return sb.String()
}
