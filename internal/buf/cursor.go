// Package buf contains bounds-checked helpers for sequential little-endian decoding.
package buf

import (
	"bytes"
	"encoding/binary"
)

// Cursor reads fields from a byte slice front to back. Every read reports
// ok = false instead of panicking when the slice is exhausted, and a failed
// read leaves the cursor where it was.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.b) - c.off
}

// Bytes returns the next n bytes and advances past them.
// The returned slice aliases the underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, bool) {
	s, ok := Slice(c.b, c.off, n)
	if !ok {
		return nil, false
	}
	c.off += n
	return s, true
}

// U8 reads a single byte.
func (c *Cursor) U8() (uint8, bool) {
	s, ok := c.Bytes(1)
	if !ok {
		return 0, false
	}
	return s[0], true
}

// U16LE reads a little-endian uint16.
func (c *Cursor) U16LE() (uint16, bool) {
	s, ok := c.Bytes(2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

// CString returns the bytes up to (not including) the next NUL and advances
// past the terminator. ok is false when no NUL remains in the buffer.
func (c *Cursor) CString() ([]byte, bool) {
	rest := c.b[c.off:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		return nil, false
	}
	c.off += n + 1
	return rest[:n], true
}

// Mark returns the current position for a later Reset.
func (c *Cursor) Mark() int {
	return c.off
}

// Reset rewinds (or advances) the cursor to a position obtained from Mark.
func (c *Cursor) Reset(mark int) {
	if mark < 0 || mark > len(c.b) {
		return
	}
	c.off = mark
}
