package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/puzkit/internal/buf"
)

// Decode parses a complete .puz buffer. The returned File owns all of its
// data; b may be released or unmapped afterwards.
func Decode(b []byte) (*File, error) {
	start, err := findHeader(b)
	if err != nil {
		return nil, err
	}

	r := &fieldReader{c: buf.NewCursor(b[start:]), base: start}
	f := &File{Preamble: cloneBytes(b[:start])}

	f.Checksum = r.u16("checksum")
	f.Magic = r.text("magic")
	f.CIBChecksum = r.u16("cib checksum")
	f.MaskedLowChecksum1 = r.u16("masked low checksum 1")
	f.MaskedLowChecksum2 = r.u16("masked low checksum 2")
	f.MaskedHighChecksum1 = r.u16("masked high checksum 1")
	f.MaskedHighChecksum2 = r.u16("masked high checksum 2")
	f.Version = string(r.bytes("version", VersionSize))
	f.Reserved1 = r.u16("reserved 1")
	f.ScrambledChecksum = r.u16("scrambled checksum")
	f.Reserved2 = cloneBytes(r.bytes("reserved 2", Reserved2Size))
	f.Width = r.u8("width")
	f.Height = r.u8("height")
	f.NumClues = r.u16("clue count")
	f.UnknownBitmask = r.u16("unknown bitmask")
	f.Scrambled = r.u16("scrambled tag")
	if r.err != nil {
		return nil, r.err
	}
	if f.Width == 0 || f.Height == 0 {
		return nil, fmt.Errorf("puz dimensions %dx%d: %w", f.Width, f.Height, ErrMalformedHeader)
	}

	f.Puzzle = r.grid("solution grid", f.CellCount())
	f.State = r.grid("player grid", f.CellCount())
	f.Title = r.text("title")
	f.Author = r.text("author")
	f.Copyright = r.text("copyright")
	if r.err != nil {
		return nil, r.err
	}

	f.Clues = make([]string, 0, f.NumClues)
	for i := 0; i < int(f.NumClues); i++ {
		clue := r.text(fmt.Sprintf("clue %d", i))
		if r.err != nil {
			return nil, r.err
		}
		f.Clues = append(f.Clues, clue)
	}

	f.Notes = r.text("notes")
	if r.err != nil {
		return nil, r.err
	}

	f.Sections = readSections(r.c)
	return f, nil
}

// findHeader returns the offset of the checksum field: two bytes before the
// first magic that has room for a checksum in front of it.
func findHeader(b []byte) (int, error) {
	from := 0
	for {
		i := bytes.Index(b[from:], Magic)
		if i < 0 {
			return 0, fmt.Errorf("puz header: magic %q not found: %w", Magic, ErrMalformedHeader)
		}
		i += from
		if i >= ChecksumSize {
			return i - ChecksumSize, nil
		}
		from = i + 1
	}
}

// fieldReader wraps a cursor with a sticky error so the header can be read as
// a flat sequence of field reads.
type fieldReader struct {
	c    *buf.Cursor
	base int
	err  error
}

func (r *fieldReader) fail(field string, err error) {
	r.err = fmt.Errorf("puz %s at offset %d: %w", field, r.base+r.c.Offset(), err)
}

func (r *fieldReader) u8(field string) uint8 {
	if r.err != nil {
		return 0
	}
	v, ok := r.c.U8()
	if !ok {
		r.fail(field, ErrTruncated)
	}
	return v
}

func (r *fieldReader) u16(field string) uint16 {
	if r.err != nil {
		return 0
	}
	v, ok := r.c.U16LE()
	if !ok {
		r.fail(field, ErrTruncated)
	}
	return v
}

func (r *fieldReader) bytes(field string, n int) []byte {
	if r.err != nil {
		return nil
	}
	v, ok := r.c.Bytes(n)
	if !ok {
		r.fail(field, ErrTruncated)
	}
	return v
}

func (r *fieldReader) text(field string) string {
	if r.err != nil {
		return ""
	}
	raw, ok := r.c.CString()
	if !ok {
		r.fail(field, ErrTruncated)
		return ""
	}
	return DecodeText(raw)
}

func (r *fieldReader) grid(field string, n int) string {
	raw := r.bytes(field, n)
	if r.err != nil {
		return ""
	}
	if !isGridText(raw) {
		r.fail(field, ErrInvalidCharacterGrid)
		return ""
	}
	return string(raw)
}

// readSections consumes extra sections until the buffer ends or a section is
// malformed. A malformed section is left unread.
func readSections(c *buf.Cursor) []Section {
	var sections []Section
	for c.Len() > 0 {
		mark := c.Mark()
		s, ok := readSection(c)
		if !ok {
			c.Reset(mark)
			break
		}
		sections = append(sections, s)
	}
	return sections
}

func readSection(c *buf.Cursor) (Section, bool) {
	name, ok := c.Bytes(SectionNameSize)
	if !ok {
		return Section{}, false
	}
	length, ok := c.U16LE()
	if !ok {
		return Section{}, false
	}
	sum, ok := c.U16LE()
	if !ok {
		return Section{}, false
	}
	data, ok := c.Bytes(int(length))
	if !ok {
		return Section{}, false
	}
	if term, ok := c.U8(); !ok || term != 0 {
		return Section{}, false
	}
	return Section{Name: string(name), Checksum: sum, Data: cloneBytes(data)}, true
}

// cloneBytes copies b so the File does not alias the input; empty input
// yields nil.
func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return bytes.Clone(b)
}
