// Package testutil builds small in-memory puzzles for tests across the
// repository.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/puzkit/internal/format"
)

// TinyRows is the solution of the Tiny puzzle:
//
//	P U Z
//	O . O
//	P O O
//
// It numbers as 1-Across PUZ, 1-Down POP, 2-Down ZOO, 3-Across POO.
var TinyRows = []string{"PUZ", "O.O", "POO"}

// TinyClues are the Tiny clues in file order.
var TinyClues = []string{"Brain teaser", "Soda, in the Midwest", "Animal park", "Winnie-the-___"}

// Tiny returns a fresh, sealed copy of the Tiny puzzle with an empty player
// grid.
func Tiny() *format.File {
	f := New(TinyRows, TinyClues...)
	f.Title = "Tiny"
	f.Author = "Test Setter"
	f.Copyright = "(c) puzkit"
	mustSeal(f)
	return f
}

// New assembles a sealed puzzle from solution rows and clue texts. Rows use
// '.' for blocks; every row must have the same length.
func New(rows []string, clues ...string) *format.File {
	solution := strings.Join(rows, "")
	state := make([]byte, len(solution))
	for i := range solution {
		if solution[i] == format.BlockCell {
			state[i] = format.BlockCell
		} else {
			state[i] = format.EmptyCell
		}
	}
	f := &format.File{
		Magic:    string(format.Magic),
		Version:  "1.3\x00",
		Width:    uint8(len(rows[0])),
		Height:   uint8(len(rows)),
		NumClues: uint16(len(clues)),
		Puzzle:   solution,
		State:    string(state),
		Clues:    append([]string(nil), clues...),
	}
	mustSeal(f)
	return f
}

// WithState replaces the player grid of f and reseals it.
func WithState(f *format.File, rows ...string) *format.File {
	f.State = strings.Join(rows, "")
	mustSeal(f)
	return f
}

// Solved fills the player grid of f with its solution and reseals it.
func Solved(f *format.File) *format.File {
	f.State = f.Puzzle
	mustSeal(f)
	return f
}

// Encode serializes f, panicking on failure.
func Encode(f *format.File) []byte {
	b, err := format.Encode(f)
	if err != nil {
		panic(err)
	}
	return b
}

// WritePuz encodes f into a file under a per-test temporary directory and
// returns its path.
func WritePuz(t *testing.T, f *format.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.puz")
	if err := os.WriteFile(path, Encode(f), 0o644); err != nil {
		t.Fatalf("write puzzle: %v", err)
	}
	return path
}

func mustSeal(f *format.File) {
	if err := format.Seal(f); err != nil {
		panic(err)
	}
}
