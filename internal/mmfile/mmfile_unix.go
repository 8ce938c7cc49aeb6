//go:build unix

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Open maps the file at path into memory.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	size, err := statSize(f)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return &Mapping{data: []byte{}}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		// Some filesystems refuse mmap; fall back to a plain read.
		return readAll(f, size)
	}
	return &Mapping{data: data, release: unix.Munmap}, nil
}
