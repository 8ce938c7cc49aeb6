// Package mmfile maps puzzle files into memory for decoding.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// MaxSize bounds the files Open will accept. A 255x255 puzzle with
// generous clue text stays well under this.
const MaxSize = 16 << 20

// ErrTooLarge is returned for files over MaxSize.
var ErrTooLarge = errors.New("mmfile: file too large")

// Mapping is a read-only view of a file. Bytes is valid until Close.
type Mapping struct {
	data    []byte
	release func([]byte) error
}

// Bytes returns the mapped contents.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Close releases the mapping. Calling it more than once is a no-op.
func (m *Mapping) Close() error {
	if m.data == nil || m.release == nil {
		m.data = nil
		return nil
	}
	data := m.data
	m.data = nil
	return m.release(data)
}

func statSize(f *os.File) (int, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() > MaxSize {
		return 0, fmt.Errorf("%s: %d bytes: %w", f.Name(), info.Size(), ErrTooLarge)
	}
	return int(info.Size()), nil
}
