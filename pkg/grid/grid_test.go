package grid

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/puzkit/internal/format"
	"github.com/joshuapare/puzkit/internal/testutil"
)

func tinyGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := Build(testutil.Tiny())
	require.NoError(t, err)
	return g
}

func TestBuildTiny(t *testing.T) {
	g := tinyGrid(t)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 3, g.Height())

	assert.Equal(t, 'P', g.Cell(0, 0).Truth)
	assert.True(t, g.Cell(1, 1).IsBlock())
	assert.True(t, g.IsBlock(1, 1))
	assert.True(t, g.IsBlock(-1, 0))
	assert.True(t, g.IsBlock(3, 0))
	assert.Equal(t, Cell{}, g.Cell(5, 5))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Zero(t, g.Cell(x, y).Guess, "guess at %d,%d", x, y)
		}
	}
}

func TestBuildIgnoresPlayerGrid(t *testing.T) {
	f := testutil.WithState(testutil.Tiny(), "PUZ", "O.O", "POO")
	g, err := Build(f)
	require.NoError(t, err)
	assert.Zero(t, g.Cell(0, 0).Guess)
	assert.False(t, IsSolved(g))
}

func TestNumberingTiny(t *testing.T) {
	g := tinyGrid(t)

	c := g.Cell(0, 0)
	assert.Equal(t, 1, c.Number)
	assert.True(t, c.HasAcross)
	assert.True(t, c.HasDown)
	assert.Equal(t, testutil.TinyClues[0], c.Across)
	assert.Equal(t, testutil.TinyClues[1], c.Down)

	c = g.Cell(2, 0)
	assert.Equal(t, 2, c.Number)
	assert.False(t, c.HasAcross)
	assert.True(t, c.HasDown)
	assert.Equal(t, testutil.TinyClues[2], c.Down)

	c = g.Cell(0, 2)
	assert.Equal(t, 3, c.Number)
	assert.True(t, c.HasAcross)
	assert.False(t, c.HasDown)
	assert.Equal(t, testutil.TinyClues[3], c.Across)

	for _, p := range [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.Zero(t, g.Cell(p[0], p[1]).Number, "number at %v", p)
	}
}

func TestNumberingSingleCell(t *testing.T) {
	g, err := Build(testutil.New([]string{"A"}))
	require.NoError(t, err)
	assert.False(t, g.StartsAcross(0, 0))
	assert.False(t, g.StartsDown(0, 0))
	assert.Zero(t, g.Cell(0, 0).Number)
	assert.Empty(t, g.Entries())

	_, err = Build(testutil.New([]string{"A"}, "stray"))
	require.ErrorIs(t, err, ErrClueCountMismatch)
}

func TestNumberingClueCountMismatch(t *testing.T) {
	_, err := Build(testutil.New(testutil.TinyRows, testutil.TinyClues[:3]...))
	require.ErrorIs(t, err, ErrClueCountMismatch)

	_, err = Build(testutil.New(testutil.TinyRows, append(testutil.TinyClues, "extra")...))
	require.ErrorIs(t, err, ErrClueCountMismatch)
}

// countStarts computes the clue count of a block pattern independently of
// the Grid implementation.
func countStarts(rows []string) int {
	open := func(x, y int) bool {
		return y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) && rows[y][x] != '.'
	}
	n := 0
	for y := range rows {
		for x := range rows[y] {
			if !open(x, y) {
				continue
			}
			if !open(x-1, y) && open(x+1, y) {
				n++
			}
			if !open(x, y-1) && open(x, y+1) {
				n++
			}
		}
	}
	return n
}

func randomRows(r *rand.Rand) []string {
	w, h := 1+r.Intn(9), 1+r.Intn(9)
	rows := make([]string, h)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if r.Intn(4) == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('A' + r.Intn(26)))
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestNumberingProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		rows := randomRows(r)
		n := countStarts(rows)
		clues := make([]string, n)
		for j := range clues {
			clues[j] = "clue " + strings.Repeat("x", j)
		}

		g, err := Build(testutil.New(rows, clues...))
		require.NoError(t, err, "rows %q", rows)

		last := 0
		consumed := 0
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				c := g.Cell(x, y)
				if c.HasAcross {
					consumed++
				}
				if c.HasDown {
					consumed++
				}
				if c.Number == 0 {
					assert.False(t, c.HasAcross || c.HasDown)
					continue
				}
				assert.Equal(t, last+1, c.Number, "rows %q at %d,%d", rows, x, y)
				last = c.Number
			}
		}
		assert.Equal(t, n, consumed)
		assert.Len(t, g.Entries(), n)

		if n > 0 {
			_, err = Build(testutil.New(rows, clues[:n-1]...))
			require.ErrorIs(t, err, ErrClueCountMismatch)
		}
		_, err = Build(testutil.New(rows, append(clues, "extra")...))
		require.ErrorIs(t, err, ErrClueCountMismatch)
	}
}

func TestEntries(t *testing.T) {
	g := tinyGrid(t)
	want := []Entry{
		{Number: 1, Direction: Across, X: 0, Y: 0, Length: 3, Clue: testutil.TinyClues[0]},
		{Number: 1, Direction: Down, X: 0, Y: 0, Length: 3, Clue: testutil.TinyClues[1]},
		{Number: 2, Direction: Down, X: 2, Y: 0, Length: 3, Clue: testutil.TinyClues[2]},
		{Number: 3, Direction: Across, X: 0, Y: 2, Length: 3, Clue: testutil.TinyClues[3]},
	}
	assert.Equal(t, want, g.Entries())
	assert.Equal(t, [][2]int{{2, 0}, {2, 1}, {2, 2}}, want[2].Cells())
}

func TestEntryAt(t *testing.T) {
	g := tinyGrid(t)

	e, ok := g.EntryAt(1, 0, Across)
	require.True(t, ok)
	assert.Equal(t, 1, e.Number)

	_, ok = g.EntryAt(1, 0, Down)
	assert.False(t, ok)

	e, ok = g.EntryAt(2, 2, Down)
	require.True(t, ok)
	assert.Equal(t, 2, e.Number)

	e, ok = g.EntryAt(2, 2, Across)
	require.True(t, ok)
	assert.Equal(t, 3, e.Number)

	_, ok = g.EntryAt(1, 1, Across)
	assert.False(t, ok)
}

func TestGuesses(t *testing.T) {
	g := tinyGrid(t)
	assert.True(t, g.SetGuess(0, 0, 'P'))
	assert.Equal(t, 'P', g.Cell(0, 0).Guess)

	assert.False(t, g.SetGuess(1, 1, 'X'))
	assert.Zero(t, g.Cell(1, 1).Guess)
	assert.False(t, g.SetGuess(-1, 0, 'X'))

	assert.True(t, g.ClearGuess(0, 0))
	assert.Zero(t, g.Cell(0, 0).Guess)
	assert.False(t, g.ClearGuess(1, 1))
}

func TestCircled(t *testing.T) {
	f := testutil.Tiny()
	gext := make([]byte, 9)
	gext[2] = format.GEXTCircled
	f.Sections = []format.Section{{Name: format.SectionGEXT, Data: gext}}

	g, err := Build(f)
	require.NoError(t, err)
	assert.True(t, g.Cell(2, 0).Circled)
	assert.False(t, g.Cell(0, 0).Circled)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "Across", Across.String())
	assert.Equal(t, "Down", Down.String())
	assert.Equal(t, Down, Across.Other())
	assert.Equal(t, Across, Down.Other())
}
