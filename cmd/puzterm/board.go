package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/puzkit/pkg/session"
)

// Each square is drawn as a block of terminal cells three rows high: the
// clue number on top, the guess in the middle, and a heavy rule on the right
// and bottom edges. Squares are minNumberWidth+1 columns wide unless a clue
// number needs more digits.
const (
	minNumberWidth = 3
	cellHeight     = 3
)

const (
	ruleVertical   = "┃"
	ruleHorizontal = "━"
	blockFill      = "█"
	arrowAcross    = "▶"
	arrowDown      = "▼"
)

// numberWidth is the inner width of every square of r: wide enough for the
// largest clue number.
func numberWidth(r session.RenderModel) int {
	largest := 0
	for _, c := range r.Cells {
		largest = max(largest, c.Number)
	}
	return max(minNumberWidth, len(strconv.Itoa(largest)))
}

// boardSize returns the terminal footprint of r's board.
func boardSize(r session.RenderModel) (int, int) {
	return r.Width * (numberWidth(r) + 1), r.Height * cellHeight
}

// renderBoard draws the puzzle grid. The square under the cursor carries an
// arrow on its right edge while editing across, and on its bottom edge while
// editing down.
func renderBoard(r session.RenderModel) string {
	nw := numberWidth(r)
	lines := make([]string, 0, r.Height*cellHeight)
	for y := 0; y < r.Height; y++ {
		var top, mid, bottom strings.Builder
		for x := 0; x < r.Width; x++ {
			c := r.Cell(x, y)
			t, m, b := renderCell(r, nw, x, y, c)
			top.WriteString(t)
			mid.WriteString(m)
			bottom.WriteString(b)
		}
		lines = append(lines, top.String(), mid.String(), bottom.String())
	}
	return strings.Join(lines, "\n")
}

func renderCell(r session.RenderModel, nw, x, y int, c session.CellView) (string, string, string) {
	cross := crossRune(x == r.Width-1, y == r.Height-1)
	rule := strings.Repeat(ruleHorizontal, nw)

	if c.Block {
		fill := blockStyle.Render(strings.Repeat(blockFill, nw))
		edge := gridLineStyle.Render(ruleVertical)
		return fill + edge, fill + edge, gridLineStyle.Render(rule + cross)
	}

	num := strings.Repeat(" ", nw)
	if c.Number > 0 {
		num = fmt.Sprintf("%-*d", nw, c.Number)
	}
	// The guess and the down arrow sit in the same column.
	lpad := (nw - 1) / 2
	rpad := nw - 1 - lpad

	guess := " "
	if c.Guess != 0 {
		guess = string(c.Guess)
	}
	gs := guessStyle
	if c.Circled {
		gs = circledStyle
	}
	body := strings.Repeat(" ", lpad) + gs.Render(guess) + strings.Repeat(" ", rpad)

	num = numberStyle.Render(num)
	switch {
	case c.Cursor:
		num = cursorStyle.Render(num)
		body = cursorStyle.Render(body)
	case c.Active:
		num = activeStyle.Render(num)
		body = activeStyle.Render(body)
	}

	right := gridLineStyle.Render(ruleVertical)
	if c.Cursor && r.Mode == session.EditAcross {
		right = markerStyle.Render(arrowAcross)
	}

	bottom := gridLineStyle.Render(rule + cross)
	if c.Cursor && r.Mode == session.EditDown {
		bottom = gridLineStyle.Render(strings.Repeat(ruleHorizontal, lpad)) +
			markerStyle.Render(arrowDown) +
			gridLineStyle.Render(strings.Repeat(ruleHorizontal, rpad)+cross)
	}

	return num + gridLineStyle.Render(ruleVertical), body + right, bottom
}

// crossRune picks the junction at a square's bottom-right corner.
func crossRune(lastCol, lastRow bool) string {
	switch {
	case lastCol && lastRow:
		return "┛"
	case lastCol:
		return "┫"
	case lastRow:
		return "┻"
	default:
		return "╋"
	}
}
