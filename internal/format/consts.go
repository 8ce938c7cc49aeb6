// Package format houses the low-level decoder and encoder for the Across Lite
// (.puz) crossword file format. Parsing is strict about lengths and lenient
// about content: checksums are captured verbatim and only compared on request.
package format

// Magic is the literal that follows the whole-file checksum. Some
// distributions prepend vendor bytes, so the decoder scans for it rather than
// expecting it at a fixed offset.
var Magic = []byte("ACROSS&DOWN")

// Header layout relative to the checksum field (the first byte after the
// preamble). Little-endian throughout.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    2    Whole-file checksum
//	 0x02   12    "ACROSS&DOWN\0"
//	 0x0E    2    CIB checksum
//	 0x10    4    Masked low checksums (two uint16)
//	 0x14    4    Masked high checksums (two uint16)
//	 0x18    4    Version string, e.g. "1.3\0"
//	 0x1C    2    Reserved
//	 0x1E    2    Scrambled checksum
//	 0x20   12    Reserved
//	 0x2C    1    Width
//	 0x2D    1    Height
//	 0x2E    2    Number of clues
//	 0x30    2    Unknown bitmask
//	 0x32    2    Scrambled tag (0 = plain)
//	 0x34         Solution grid, player grid, strings, extra sections
const (
	ChecksumSize  = 2
	VersionSize   = 4
	Reserved2Size = 12

	// HeaderSize is the size of the fixed header when the magic carries a
	// single NUL terminator.
	HeaderSize = 0x34

	// CIBSize is the span (width through scrambled tag) covered by the CIB checksum.
	CIBSize = 8
)

const (
	// BlockCell marks a non-playable square in the solution grid.
	BlockCell = '.'
	// EmptyCell marks an unfilled square in the player grid.
	EmptyCell = '-'
)

// Extra sections trail the notes string. Each is laid out as
//
//	name[4] length:u16 checksum:u16 data[length] 0x00
const (
	SectionNameSize = 4

	// SectionGEXT holds one flag byte per cell.
	SectionGEXT = "GEXT"
	// GEXTCircled marks a circled cell in a GEXT section.
	GEXTCircled = 0x80
)

// maskKey is XORed into the masked checksums, low bytes first.
var maskKey = [8]byte{'I', 'C', 'H', 'E', 'A', 'T', 'E', 'D'}
