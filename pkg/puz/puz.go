package puz

import (
	"errors"
	"fmt"

	"github.com/joshuapare/puzkit/internal/format"
	"github.com/joshuapare/puzkit/internal/mmfile"
)

type (
	File     = format.File
	Section  = format.Section
	Sums     = format.Sums
	Mismatch = format.Mismatch
)

var (
	ErrTruncated            = format.ErrTruncated
	ErrMalformedHeader      = format.ErrMalformedHeader
	ErrInvalidCharacterGrid = format.ErrInvalidCharacterGrid
	ErrUnencodable          = format.ErrUnencodable

	// ErrScrambled is returned by Load for files whose solution is locked.
	ErrScrambled = errors.New("puz: scrambled puzzles are not supported")
)

// Parse decodes a .puz buffer. The result does not reference b.
func Parse(b []byte) (*File, error) {
	return format.Decode(b)
}

// Open decodes the file at path.
func Open(path string) (*File, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer m.Close()

	f, err := format.Decode(m.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return f, nil
}

// Encode serializes f. Stored checksums are written unchanged.
func Encode(f *File) ([]byte, error) {
	return format.Encode(f)
}

// Checksums computes the header checksums for f's contents.
func Checksums(f *File) (Sums, error) {
	return format.Checksums(f)
}

// Verify lists every stored checksum that disagrees with f's contents.
func Verify(f *File) ([]Mismatch, error) {
	return format.Verify(f)
}

// Seal recomputes and stores every checksum in f.
func Seal(f *File) error {
	return format.Seal(f)
}
