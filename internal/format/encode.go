package format

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode writes f in the .puz layout. Stored checksum fields are written
// as-is; call Seal first to recompute them.
func Encode(f *File) ([]byte, error) {
	if err := checkShape(f); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(f.Preamble)+HeaderSize+2*f.CellCount()+256)
	out = append(out, f.Preamble...)
	out = binary.LittleEndian.AppendUint16(out, f.Checksum)

	magic := f.Magic
	if magic == "" {
		magic = string(Magic)
	}
	out, err := appendText(out, magic)
	if err != nil {
		return nil, fmt.Errorf("puz magic: %w", err)
	}

	out = binary.LittleEndian.AppendUint16(out, f.CIBChecksum)
	out = binary.LittleEndian.AppendUint16(out, f.MaskedLowChecksum1)
	out = binary.LittleEndian.AppendUint16(out, f.MaskedLowChecksum2)
	out = binary.LittleEndian.AppendUint16(out, f.MaskedHighChecksum1)
	out = binary.LittleEndian.AppendUint16(out, f.MaskedHighChecksum2)
	out = append(out, versionBytes(f.Version)...)
	out = binary.LittleEndian.AppendUint16(out, f.Reserved1)
	out = binary.LittleEndian.AppendUint16(out, f.ScrambledChecksum)
	out = append(out, reserved2Bytes(f.Reserved2)...)
	out = append(out, cibBytes(f)...)
	out = append(out, f.Puzzle...)
	out = append(out, f.State...)

	for _, field := range []struct {
		name string
		text string
	}{
		{"title", f.Title},
		{"author", f.Author},
		{"copyright", f.Copyright},
	} {
		if out, err = appendText(out, field.text); err != nil {
			return nil, fmt.Errorf("puz %s: %w", field.name, err)
		}
	}
	for i, clue := range f.Clues {
		if out, err = appendText(out, clue); err != nil {
			return nil, fmt.Errorf("puz clue %d: %w", i, err)
		}
	}
	if out, err = appendText(out, f.Notes); err != nil {
		return nil, fmt.Errorf("puz notes: %w", err)
	}

	for _, s := range f.Sections {
		if len(s.Name) != SectionNameSize || len(s.Data) > math.MaxUint16 {
			return nil, fmt.Errorf("puz section %q: %w", s.Name, ErrUnencodable)
		}
		out = append(out, s.Name...)
		out = binary.LittleEndian.AppendUint16(out, uint16(len(s.Data)))
		out = binary.LittleEndian.AppendUint16(out, s.Checksum)
		out = append(out, s.Data...)
		out = append(out, 0)
	}
	return out, nil
}

// checkShape enforces the length invariants Decode relies on.
func checkShape(f *File) error {
	if f.Width == 0 || f.Height == 0 {
		return fmt.Errorf("puz dimensions %dx%d: %w", f.Width, f.Height, ErrMalformedHeader)
	}
	n := f.CellCount()
	if len(f.Puzzle) != n || len(f.State) != n {
		return fmt.Errorf("puz grids: want %d cells, have %d/%d: %w", n, len(f.Puzzle), len(f.State), ErrInvalidCharacterGrid)
	}
	if !isGridText([]byte(f.Puzzle)) || !isGridText([]byte(f.State)) {
		return fmt.Errorf("puz grids: %w", ErrInvalidCharacterGrid)
	}
	if len(f.Clues) != int(f.NumClues) {
		return fmt.Errorf("puz clues: header declares %d, have %d: %w", f.NumClues, len(f.Clues), ErrUnencodable)
	}
	if len(f.Version) > VersionSize || len(f.Reserved2) > Reserved2Size {
		return fmt.Errorf("puz version/reserved: %w", ErrUnencodable)
	}
	return nil
}

func appendText(out []byte, s string) ([]byte, error) {
	raw, err := EncodeText(s)
	if err != nil {
		return out, err
	}
	out = append(out, raw...)
	return append(out, 0), nil
}

// versionBytes pads the version to its fixed width. An empty version
// defaults to "1.3".
func versionBytes(v string) []byte {
	if v == "" {
		v = "1.3"
	}
	b := make([]byte, VersionSize)
	copy(b, v)
	return b
}

func reserved2Bytes(r []byte) []byte {
	b := make([]byte, Reserved2Size)
	copy(b, r)
	return b
}

// cibBytes returns the eight header bytes covered by the CIB checksum.
func cibBytes(f *File) []byte {
	b := make([]byte, 0, CIBSize)
	b = append(b, f.Width, f.Height)
	b = binary.LittleEndian.AppendUint16(b, f.NumClues)
	b = binary.LittleEndian.AppendUint16(b, f.UnknownBitmask)
	b = binary.LittleEndian.AppendUint16(b, f.Scrambled)
	return b
}
