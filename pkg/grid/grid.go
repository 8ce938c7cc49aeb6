package grid

import (
	"github.com/joshuapare/puzkit/internal/format"
)

// Cell is one square of the grid. A zero Truth marks a block.
type Cell struct {
	Truth rune
	Guess rune

	// Number is the clue number shown in the square, 0 if none.
	Number int

	Across    string
	Down      string
	HasAcross bool
	HasDown   bool

	Circled bool
}

// IsBlock reports whether the square is not playable.
func (c Cell) IsBlock() bool {
	return c.Truth == 0
}

// Grid is the mutable board for one solving session.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	entries []Entry
}

// Build creates the board for f. Guesses start empty whatever the file's
// player grid holds.
func Build(f *format.File) (*Grid, error) {
	g := &Grid{
		width:  int(f.Width),
		height: int(f.Height),
		cells:  make([]Cell, f.CellCount()),
	}
	for i := range g.cells {
		if i < len(f.Puzzle) && f.Puzzle[i] != format.BlockCell {
			g.cells[i].Truth = rune(f.Puzzle[i])
		}
		g.cells[i].Circled = f.Circled(i)
	}
	if err := g.number(f.Clues); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a square.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Cell returns a copy of the square at (x, y). Out-of-bounds positions
// read as a block.
func (g *Grid) Cell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[g.index(x, y)]
}

// IsBlock reports whether (x, y) is a block or off the grid.
func (g *Grid) IsBlock(x, y int) bool {
	return !g.InBounds(x, y) || g.cells[g.index(x, y)].IsBlock()
}

// SetGuess stores r at (x, y). Blocks and off-grid positions are left
// alone and report false.
func (g *Grid) SetGuess(x, y int, r rune) bool {
	if g.IsBlock(x, y) || r == 0 {
		return false
	}
	g.cells[g.index(x, y)].Guess = r
	return true
}

// ClearGuess empties the guess at (x, y).
func (g *Grid) ClearGuess(x, y int) bool {
	if g.IsBlock(x, y) {
		return false
	}
	g.cells[g.index(x, y)].Guess = 0
	return true
}
