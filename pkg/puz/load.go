package puz

import (
	"fmt"

	"github.com/joshuapare/puzkit/internal/format"
	"github.com/joshuapare/puzkit/pkg/grid"
)

// Puzzle is a decoded file together with its playable grid.
type Puzzle struct {
	File *File
	Grid *grid.Grid

	// Warnings lists checksum mismatches found while loading. They never
	// prevent play.
	Warnings []Mismatch
}

// Load opens path and prepares it for solving.
func Load(path string) (*Puzzle, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewPuzzle(f)
}

// NewPuzzle builds the playable grid for an already decoded file.
func NewPuzzle(f *File) (*Puzzle, error) {
	if f.IsScrambled() {
		return nil, ErrScrambled
	}
	g, err := grid.Build(f)
	if err != nil {
		return nil, err
	}
	warnings, err := format.Verify(f)
	if err != nil {
		return nil, fmt.Errorf("checksums: %w", err)
	}
	return &Puzzle{File: f, Grid: g, Warnings: warnings}, nil
}
