package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joshuapare/puzkit/pkg/grid"
)

// CellView is what a presentation layer needs to draw one square.
type CellView struct {
	Block   bool
	Guess   rune
	Number  int
	Circled bool

	// Cursor marks the square under the cursor.
	Cursor bool
	// Active marks squares of the entry being edited.
	Active bool
}

// ClueLine is one row of the clue panel. Headings and blank spacer rows
// have no Number.
type ClueLine struct {
	Text      string
	Heading   bool
	Number    int
	Direction grid.Direction
	// Current marks entries that cover the cursor.
	Current bool
}

// RenderModel is a read-only snapshot of a session.
type RenderModel struct {
	Width, Height    int
	Cells            []CellView
	CursorX, CursorY int
	Mode             Mode

	Title  string
	Author string

	Clues       []ClueLine
	CluesScroll int

	Status     grid.Status
	Elapsed    time.Duration
	ShowErrors bool
}

// Cell returns the view of (x, y).
func (r RenderModel) Cell(x, y int) CellView {
	return r.Cells[y*r.Width+x]
}

// VisibleClues returns at most height clue lines starting at the scroll
// offset. Scrolling past the end yields an empty slice.
func (r RenderModel) VisibleClues(height int) []ClueLine {
	if height <= 0 || r.CluesScroll >= len(r.Clues) {
		return nil
	}
	end := min(r.CluesScroll+height, len(r.Clues))
	return r.Clues[r.CluesScroll:end]
}

// StatusLine renders "puzterm <version> G<guesses>/<cells> E<errors> T<h:mm:ss>".
// The error count reads "?" unless the hint is enabled.
func (r RenderModel) StatusLine(version string) string {
	errs := "?"
	if r.ShowErrors {
		errs = strconv.Itoa(r.Status.Errors)
	}
	return fmt.Sprintf("puzterm %s G%d/%d E%s T%s",
		version, r.Status.Guesses, r.Status.Cells, errs, FormatElapsed(r.Elapsed))
}

// FormatElapsed renders d as h:mm:ss, truncating to whole seconds.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// Snapshot captures the current state for drawing.
func (s *Session) Snapshot() RenderModel {
	g := s.grid
	r := RenderModel{
		Width:       g.Width(),
		Height:      g.Height(),
		Cells:       make([]CellView, 0, g.Width()*g.Height()),
		CursorX:     s.x,
		CursorY:     s.y,
		Mode:        s.mode,
		Title:       s.title,
		Author:      s.author,
		CluesScroll: s.cluesScroll,
		Status:      grid.Evaluate(g),
		Elapsed:     s.clock.Elapsed(),
		ShowErrors:  s.showErrors,
	}

	active := map[[2]int]bool{}
	if s.mode.Editing() {
		if e, ok := g.EntryAt(s.x, s.y, s.mode.Direction()); ok {
			for _, p := range e.Cells() {
				active[p] = true
			}
		}
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.Cell(x, y)
			r.Cells = append(r.Cells, CellView{
				Block:   c.IsBlock(),
				Guess:   c.Guess,
				Number:  c.Number,
				Circled: c.Circled,
				Cursor:  x == s.x && y == s.y,
				Active:  active[[2]int{x, y}],
			})
		}
	}

	r.Clues = s.clueLines()
	return r
}

// clueLines lays out the clue panel: each heading is followed by a blank
// row, and the two lists are separated by a blank row.
func (s *Session) clueLines() []ClueLine {
	current := map[grid.Direction]int{}
	for _, d := range []grid.Direction{grid.Across, grid.Down} {
		if e, ok := s.grid.EntryAt(s.x, s.y, d); ok {
			current[d] = e.Number
		}
	}

	entries := s.grid.Entries()
	lines := make([]ClueLine, 0, len(entries)+5)
	for i, d := range []grid.Direction{grid.Across, grid.Down} {
		if i > 0 {
			lines = append(lines, ClueLine{})
		}
		lines = append(lines, ClueLine{Text: d.String(), Heading: true, Direction: d}, ClueLine{})
		for _, e := range entries {
			if e.Direction != d {
				continue
			}
			lines = append(lines, ClueLine{
				Text:      fmt.Sprintf("%d. %s", e.Number, e.Clue),
				Number:    e.Number,
				Direction: d,
				Current:   current[d] == e.Number,
			})
		}
	}
	return lines
}

// CurrentClue returns the clue of the entry the cursor is in, preferring the
// edit direction.
func (s *Session) CurrentClue() (grid.Entry, bool) {
	d := s.lastEdit.Direction()
	if s.mode.Editing() {
		d = s.mode.Direction()
	}
	if e, ok := s.grid.EntryAt(s.x, s.y, d); ok {
		return e, true
	}
	return s.grid.EntryAt(s.x, s.y, d.Other())
}
