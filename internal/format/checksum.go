package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Sums holds every header checksum derived from a File's contents.
type Sums struct {
	CIB         uint16
	File        uint16
	MaskedLow1  uint16
	MaskedLow2  uint16
	MaskedHigh1 uint16
	MaskedHigh2 uint16
}

// Mismatch describes one stored checksum that disagrees with its computed
// value.
type Mismatch struct {
	Field    string
	Stored   uint16
	Computed uint16
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: stored 0x%04x, computed 0x%04x", m.Field, m.Stored, m.Computed)
}

// cksum is the rotate-right-then-add region checksum used throughout the
// format.
func cksum(data []byte, sum uint16) uint16 {
	for _, b := range data {
		if sum&1 != 0 {
			sum = sum>>1 | 0x8000
		} else {
			sum >>= 1
		}
		sum += uint16(b)
	}
	return sum
}

// Checksums computes the header checksums of f from its contents.
func Checksums(f *File) (Sums, error) {
	if err := checkShape(f); err != nil {
		return Sums{}, err
	}

	cib := cksum(cibBytes(f), 0)
	sol := cksum([]byte(f.Puzzle), 0)
	grid := cksum([]byte(f.State), 0)
	part, err := stringsSum(f, 0)
	if err != nil {
		return Sums{}, err
	}

	file := cksum([]byte(f.Puzzle), cib)
	file = cksum([]byte(f.State), file)
	if file, err = stringsSum(f, file); err != nil {
		return Sums{}, err
	}

	return Sums{
		CIB:         cib,
		File:        file,
		MaskedLow1:  uint16(maskKey[0]^byte(cib)) | uint16(maskKey[1]^byte(sol))<<8,
		MaskedLow2:  uint16(maskKey[2]^byte(grid)) | uint16(maskKey[3]^byte(part))<<8,
		MaskedHigh1: uint16(maskKey[4]^byte(cib>>8)) | uint16(maskKey[5]^byte(sol>>8))<<8,
		MaskedHigh2: uint16(maskKey[6]^byte(grid>>8)) | uint16(maskKey[7]^byte(part>>8))<<8,
	}, nil
}

// stringsSum folds the text fields into sum. Title, author and copyright
// include their terminator only when non-empty; clues never do; notes are
// covered from version 1.3 on.
func stringsSum(f *File, sum uint16) (uint16, error) {
	withNul := func(s string) error {
		if s == "" {
			return nil
		}
		raw, err := EncodeText(s)
		if err != nil {
			return err
		}
		sum = cksum(append(raw, 0), sum)
		return nil
	}

	for _, s := range []string{f.Title, f.Author, f.Copyright} {
		if err := withNul(s); err != nil {
			return 0, err
		}
	}
	for _, clue := range f.Clues {
		raw, err := EncodeText(clue)
		if err != nil {
			return 0, err
		}
		sum = cksum(raw, sum)
	}
	if notesChecksummed(f.Version) {
		if err := withNul(f.Notes); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// notesChecksummed reports whether a file of this version covers its notes
// in the checksums. Unparseable versions are treated as current.
func notesChecksummed(version string) bool {
	v := strings.TrimRight(version, "\x00 ")
	major, minor, ok := strings.Cut(v, ".")
	if !ok {
		return true
	}
	ma, err1 := strconv.Atoi(major)
	mi, err2 := strconv.Atoi(strings.TrimRightFunc(minor, func(r rune) bool { return r < '0' || r > '9' }))
	if err1 != nil || err2 != nil {
		return true
	}
	return ma > 1 || (ma == 1 && mi >= 3)
}

// SectionChecksum returns the checksum stored alongside an extra section.
func SectionChecksum(data []byte) uint16 {
	return cksum(data, 0)
}

// Verify compares every stored checksum in f, including those of the extra
// sections, against the computed values. The result is empty when all match.
func Verify(f *File) ([]Mismatch, error) {
	s, err := Checksums(f)
	if err != nil {
		return nil, err
	}

	var out []Mismatch
	check := func(field string, stored, computed uint16) {
		if stored != computed {
			out = append(out, Mismatch{Field: field, Stored: stored, Computed: computed})
		}
	}
	check("file", f.Checksum, s.File)
	check("cib", f.CIBChecksum, s.CIB)
	check("masked low 1", f.MaskedLowChecksum1, s.MaskedLow1)
	check("masked low 2", f.MaskedLowChecksum2, s.MaskedLow2)
	check("masked high 1", f.MaskedHighChecksum1, s.MaskedHigh1)
	check("masked high 2", f.MaskedHighChecksum2, s.MaskedHigh2)
	for _, sec := range f.Sections {
		check("section "+sec.Name, sec.Checksum, SectionChecksum(sec.Data))
	}
	return out, nil
}

// Seal recomputes and stores every checksum in f.
func Seal(f *File) error {
	s, err := Checksums(f)
	if err != nil {
		return err
	}
	f.Checksum = s.File
	f.CIBChecksum = s.CIB
	f.MaskedLowChecksum1 = s.MaskedLow1
	f.MaskedLowChecksum2 = s.MaskedLow2
	f.MaskedHighChecksum1 = s.MaskedHigh1
	f.MaskedHighChecksum2 = s.MaskedHigh2
	for i := range f.Sections {
		f.Sections[i].Checksum = SectionChecksum(f.Sections[i].Data)
	}
	return nil
}
