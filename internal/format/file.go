package format

// File is the decoded form of a .puz file. It is never mutated by this
// package after Decode returns; Seal is the only exception and is meant for
// files assembled in memory.
type File struct {
	// Preamble holds any bytes found before the checksum+magic pair.
	Preamble []byte

	Checksum            uint16
	Magic               string
	CIBChecksum         uint16
	MaskedLowChecksum1  uint16
	MaskedLowChecksum2  uint16
	MaskedHighChecksum1 uint16
	MaskedHighChecksum2 uint16
	Version             string
	Reserved1           uint16
	ScrambledChecksum   uint16
	Reserved2           []byte

	Width          uint8
	Height         uint8
	NumClues       uint16
	UnknownBitmask uint16
	Scrambled      uint16

	// Puzzle is the row-major solution grid; BlockCell marks blocks.
	Puzzle string
	// State is the row-major player grid; EmptyCell marks blanks.
	State string

	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string

	// Sections lists the well-formed extra sections that follow Notes.
	Sections []Section
}

// Section is one trailing extra section (GEXT, LTIM, RTBL, ...).
type Section struct {
	Name     string
	Checksum uint16
	Data     []byte
}

// CellCount returns Width*Height.
func (f *File) CellCount() int {
	return int(f.Width) * int(f.Height)
}

// IsScrambled reports whether the solution grid is obfuscated.
func (f *File) IsScrambled() bool {
	return f.Scrambled != 0
}

// Section returns the first extra section with the given name.
func (f *File) Section(name string) (Section, bool) {
	for _, s := range f.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Circled reports whether cell index i is flagged as circled in GEXT.
func (f *File) Circled(i int) bool {
	s, ok := f.Section(SectionGEXT)
	if !ok || i < 0 || i >= len(s.Data) {
		return false
	}
	return s.Data[i]&GEXTCircled != 0
}
