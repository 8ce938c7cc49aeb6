package grid

import (
	"errors"
	"fmt"
)

// ErrClueCountMismatch indicates the numbering consumed a different number
// of clues than the file declares.
var ErrClueCountMismatch = errors.New("grid: clue count mismatch")

// Direction is the orientation of an entry.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "Down"
	}
	return "Across"
}

// Other returns the perpendicular direction.
func (d Direction) Other() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// Entry is one across or down answer slot.
type Entry struct {
	Number    int
	Direction Direction
	X, Y      int
	Length    int
	Clue      string
}

// StartsAcross reports whether (x, y) begins an across entry: a playable
// square with a block or the edge to its left and a playable square to its
// right.
func (g *Grid) StartsAcross(x, y int) bool {
	return !g.IsBlock(x, y) && g.IsBlock(x-1, y) && !g.IsBlock(x+1, y)
}

// StartsDown is StartsAcross turned ninety degrees.
func (g *Grid) StartsDown(x, y int) bool {
	return !g.IsBlock(x, y) && g.IsBlock(x, y-1) && !g.IsBlock(x, y+1)
}

// number assigns clue numbers in row-major order, consuming clues across
// before down.
func (g *Grid) number(clues []string) error {
	next := 0
	take := func() (string, error) {
		if next >= len(clues) {
			return "", fmt.Errorf("%w: ran out after %d clues", ErrClueCountMismatch, len(clues))
		}
		c := clues[next]
		next++
		return c, nil
	}

	n := 1
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			across, down := g.StartsAcross(x, y), g.StartsDown(x, y)
			if !across && !down {
				continue
			}
			c := &g.cells[g.index(x, y)]
			if across {
				clue, err := take()
				if err != nil {
					return err
				}
				c.Across, c.HasAcross = clue, true
				g.entries = append(g.entries, g.entry(n, Across, x, y, clue))
			}
			if down {
				clue, err := take()
				if err != nil {
					return err
				}
				c.Down, c.HasDown = clue, true
				g.entries = append(g.entries, g.entry(n, Down, x, y, clue))
			}
			c.Number = n
			n++
		}
	}
	if next != len(clues) {
		return fmt.Errorf("%w: used %d of %d clues", ErrClueCountMismatch, next, len(clues))
	}
	return nil
}

func (g *Grid) entry(n int, dir Direction, x, y int, clue string) Entry {
	e := Entry{Number: n, Direction: dir, X: x, Y: y, Clue: clue}
	m := Forward(dir)
	for cx, cy := x, y; !g.IsBlock(cx, cy); cx, cy = m.apply(cx, cy) {
		e.Length++
	}
	return e
}

// Entries lists every entry in numbering order, across before down for a
// shared number.
func (g *Grid) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// EntryAt returns the entry in direction dir that covers (x, y).
func (g *Grid) EntryAt(x, y int, dir Direction) (Entry, bool) {
	if g.IsBlock(x, y) {
		return Entry{}, false
	}
	back := Backward(dir)
	for {
		px, py := back.apply(x, y)
		if g.IsBlock(px, py) {
			break
		}
		x, y = px, py
	}
	for _, e := range g.entries {
		if e.Direction == dir && e.X == x && e.Y == y {
			return e, true
		}
	}
	return Entry{}, false
}

// Cells returns the positions covered by e in order.
func (e Entry) Cells() [][2]int {
	out := make([][2]int, 0, e.Length)
	m := Forward(e.Direction)
	x, y := e.X, e.Y
	for i := 0; i < e.Length; i++ {
		out = append(out, [2]int{x, y})
		x, y = m.apply(x, y)
	}
	return out
}
