package format

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts ISO-8859-1 bytes to a UTF-8 string. Every byte has a
// mapping in ISO-8859-1, so this never loses data.
func DecodeText(data []byte) string {
	// Fast path: ASCII is identical in ISO-8859-1 and UTF-8
	if isASCII(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Undecodable input is widened byte-for-byte, never fatal.
		runes := make([]rune, len(data))
		for i, b := range data {
			runes[i] = rune(b)
		}
		return string(runes)
	}
	return string(decoded)
}

// EncodeText converts a UTF-8 string to ISO-8859-1 bytes.
func EncodeText(s string) ([]byte, error) {
	if isASCII([]byte(s)) {
		return []byte(s), nil
	}
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("text %q: %w", s, ErrUnencodable)
	}
	return encoded, nil
}

// isASCII checks if all bytes in data are ASCII (< 0x80).
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// isGridText reports whether data is usable as a grid: 7-bit and free of NUL,
// which would be indistinguishable from a missing square.
func isGridText(data []byte) bool {
	for _, b := range data {
		if b == 0 || b >= 0x80 {
			return false
		}
	}
	return true
}
