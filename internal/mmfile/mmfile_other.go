//go:build !unix

package mmfile

import "os"

// Open reads the file at path into memory.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, err := statSize(f)
	if err != nil {
		return nil, err
	}
	return readAll(f, size)
}
