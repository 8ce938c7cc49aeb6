package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/puzkit/internal/testutil"
	"github.com/joshuapare/puzkit/pkg/grid"
	"github.com/joshuapare/puzkit/pkg/puz"
)

// fakeNow is a manually advanced time source.
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) Now() time.Time {
	return f.t
}

func (f *fakeNow) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTiny(t *testing.T) (*Session, *fakeNow) {
	t.Helper()
	p, err := puz.NewPuzzle(testutil.Tiny())
	require.NoError(t, err)
	clock := &fakeNow{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(p, Options{Now: clock.Now}), clock
}

func press(s *Session, evs ...KeyEvent) Outcome {
	out := Continue
	for _, ev := range evs {
		out = s.Handle(ev)
	}
	return out
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.Handle(Rune(r))
	}
}

func cursor(s *Session) [2]int {
	x, y := s.Cursor()
	return [2]int{x, y}
}

func TestInitialState(t *testing.T) {
	s, _ := newTiny(t)
	assert.Equal(t, Select, s.Mode())
	assert.Equal(t, EditAcross, s.LastEditMode())
	assert.Equal(t, [2]int{0, 0}, cursor(s))
	assert.Zero(t, s.CluesScroll())
	assert.False(t, s.ShowErrors())
}

func TestSelectMovementWraps(t *testing.T) {
	s, _ := newTiny(t)

	press(s, Key(KeyLeft))
	assert.Equal(t, [2]int{2, 0}, cursor(s))
	press(s, Key(KeyUp))
	assert.Equal(t, [2]int{2, 2}, cursor(s))
	press(s, Key(KeyRight))
	assert.Equal(t, [2]int{0, 2}, cursor(s))
	press(s, Key(KeyDown))
	assert.Equal(t, [2]int{0, 0}, cursor(s))

	// Letter keys move too, and blocks are visited.
	press(s, Rune('l'), Rune('j'))
	assert.Equal(t, [2]int{1, 1}, cursor(s))
	press(s, Rune('a'), Rune('d'), Rune('w'), Rune('s'), Rune('h'), Rune('l'), Rune('k'), Rune('j'))
	assert.Equal(t, [2]int{1, 1}, cursor(s))
}

func TestEnterEditDirection(t *testing.T) {
	tests := []struct {
		name string
		keys []KeyEvent
		want Mode
	}{
		{"both starts resumes last", nil, EditAcross},
		{"down only", []KeyEvent{Rune('l'), Rune('l')}, EditDown},
		{"across only", []KeyEvent{Rune('k')}, EditAcross},
		{"neither resumes last", []KeyEvent{Rune('l')}, EditAcross},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTiny(t)
			press(s, tt.keys...)
			press(s, Key(KeyEnter))
			assert.Equal(t, tt.want, s.Mode())
			assert.Equal(t, tt.want, s.LastEditMode())
		})
	}
}

func TestEnterEditOnBlockIsIgnored(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Rune('l'), Rune('j'), Key(KeyEnter))
	assert.Equal(t, Select, s.Mode())
	press(s, Rune('i'))
	assert.Equal(t, Select, s.Mode())
}

func TestLastEditModeRemembered(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter), Rune(' '))
	assert.Equal(t, EditDown, s.Mode())
	press(s, Key(KeyEsc))
	assert.Equal(t, Select, s.Mode())

	// (0,0) starts both entries, so Enter resumes Down.
	press(s, Rune('i'))
	assert.Equal(t, EditDown, s.Mode())

	press(s, Rune(' '))
	assert.Equal(t, EditAcross, s.Mode())
	assert.Equal(t, EditAcross, s.LastEditMode())
}

func TestEditMovementStops(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter))

	press(s, Key(KeyLeft))
	assert.Equal(t, [2]int{0, 0}, cursor(s))
	press(s, Key(KeyUp))
	assert.Equal(t, [2]int{0, 0}, cursor(s))

	press(s, Key(KeyDown))
	assert.Equal(t, [2]int{0, 1}, cursor(s))
	// (1,1) is a block.
	press(s, Key(KeyRight))
	assert.Equal(t, [2]int{0, 1}, cursor(s))
}

func TestTypingUppercasesAndAdvances(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter), Rune('p'))

	assert.Equal(t, 'P', s.Grid().Cell(0, 0).Guess)
	assert.Equal(t, [2]int{1, 0}, cursor(s))

	typeString(s, "uz")
	assert.Equal(t, 'Z', s.Grid().Cell(2, 0).Guess)
	// The last square of the row holds the cursor.
	assert.Equal(t, [2]int{2, 0}, cursor(s))

	typeString(s, "q")
	assert.Equal(t, 'Q', s.Grid().Cell(2, 0).Guess)
	assert.Equal(t, [2]int{2, 0}, cursor(s))
}

func TestTypingDown(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Rune('l'), Rune('l'), Key(KeyEnter))
	require.Equal(t, EditDown, s.Mode())
	typeString(s, "zo")
	assert.Equal(t, 'Z', s.Grid().Cell(2, 0).Guess)
	assert.Equal(t, 'O', s.Grid().Cell(2, 1).Guess)
	assert.Equal(t, [2]int{2, 2}, cursor(s))
}

func TestTypingUnicodeAndDigits(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter))
	typeString(s, "ß")
	// ß upper-cases to "SS"; only the first rune is kept.
	assert.Equal(t, 'S', s.Grid().Cell(0, 0).Guess)

	typeString(s, "7é")
	assert.Equal(t, '7', s.Grid().Cell(1, 0).Guess)
	assert.Equal(t, 'É', s.Grid().Cell(2, 0).Guess)
}

func TestTypingIgnoresPunctuation(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter))
	typeString(s, "-!")
	assert.Zero(t, s.Grid().Cell(0, 0).Guess)
	assert.Equal(t, [2]int{0, 0}, cursor(s))
}

func TestDeleteAndBackspace(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter))
	typeString(s, "PU")
	require.Equal(t, [2]int{2, 0}, cursor(s))

	press(s, Key(KeyBackspace))
	assert.Equal(t, [2]int{1, 0}, cursor(s))
	assert.Equal(t, 'U', s.Grid().Cell(1, 0).Guess)

	press(s, Key(KeyDelete))
	assert.Zero(t, s.Grid().Cell(1, 0).Guess)
	assert.Equal(t, [2]int{1, 0}, cursor(s))

	press(s, Key(KeyBackspace), Key(KeyBackspace))
	assert.Equal(t, [2]int{0, 0}, cursor(s))
	assert.Equal(t, 'P', s.Grid().Cell(0, 0).Guess)
}

func TestEditIgnoresSelectKeys(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter), Key(KeyCtrlC))
	assert.Equal(t, EditAcross, s.Mode())
}

func TestPauseResume(t *testing.T) {
	for _, ev := range []KeyEvent{Rune('q'), Rune('p'), Key(KeyEsc), Key(KeyCtrlC)} {
		s, clock := newTiny(t)
		clock.Advance(10 * time.Second)
		assert.Equal(t, Continue, press(s, ev))
		assert.Equal(t, Pause, s.Mode())

		clock.Advance(time.Hour)
		assert.Equal(t, 10*time.Second, s.Elapsed())

		// Gameplay keys do nothing while paused.
		press(s, Rune('l'), Rune('i'), Rune('e'))
		assert.Equal(t, Pause, s.Mode())
		assert.Equal(t, [2]int{0, 0}, cursor(s))
		assert.False(t, s.ShowErrors())

		press(s, Rune('p'))
		assert.Equal(t, Select, s.Mode())
		clock.Advance(5 * time.Second)
		assert.Equal(t, 15*time.Second, s.Elapsed())
	}
}

func TestPauseResumeKeys(t *testing.T) {
	for _, ev := range []KeyEvent{Rune('p'), Key(KeyEnter), Key(KeyEsc)} {
		s, _ := newTiny(t)
		press(s, Rune('p'), ev)
		assert.Equal(t, Select, s.Mode())
	}
}

func TestPauseQuit(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Rune('p'))
	assert.Equal(t, Quit, press(s, Rune('q')))

	s, _ = newTiny(t)
	press(s, Rune('p'))
	assert.Equal(t, Quit, press(s, Key(KeyCtrlC)))
}

func TestGameOver(t *testing.T) {
	s, clock := newTiny(t)
	press(s, Key(KeyEnter))
	typeString(s, "PUZ")
	press(s, Rune(' '))
	typeString(s, "ZOO")
	require.Equal(t, [2]int{2, 2}, cursor(s))

	press(s, Key(KeyEsc), Rune('h'), Rune('h'), Key(KeyEnter))
	require.Equal(t, EditAcross, s.Mode())
	typeString(s, "PO")

	press(s, Key(KeyEsc), Rune('h'), Rune('h'), Rune('k'), Key(KeyEnter))
	require.Equal(t, [2]int{0, 1}, cursor(s))
	st := s.Status()
	require.Equal(t, 7, st.Guesses, "status %+v", st)

	clock.Advance(42 * time.Second)
	assert.Equal(t, Continue, press(s, Rune('o')))
	assert.Equal(t, GameOver, s.Mode())
	assert.True(t, grid.IsSolved(s.Grid()))

	clock.Advance(time.Hour)
	assert.Equal(t, 42*time.Second, s.Elapsed())
	assert.Equal(t, Quit, press(s, Rune('x')))
}

func TestWrongFullGridIsNotGameOver(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyEnter))
	typeString(s, "PUX")
	press(s, Rune(' '), Key(KeyDown))
	typeString(s, "OO")
	press(s, Key(KeyEsc), Rune('h'), Rune('h'), Key(KeyEnter))
	typeString(s, "PO")
	press(s, Key(KeyEsc), Rune('h'), Rune('h'), Rune('k'), Key(KeyEnter))
	typeString(s, "o")

	st := s.Status()
	assert.Equal(t, st.Cells, st.Guesses)
	assert.Equal(t, 1, st.Errors)
	assert.Equal(t, EditAcross, s.Mode())

	// Fixing the error finishes the game.
	press(s, Key(KeyEsc), Rune('l'), Rune('l'), Rune('k'), Key(KeyEnter))
	require.Equal(t, EditDown, s.Mode())
	press(s, Key(KeyDelete))
	assert.Equal(t, EditDown, s.Mode())
	typeString(s, "z")
	assert.Equal(t, GameOver, s.Mode())
}

func TestClueScroll(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Key(KeyPageUp))
	assert.Zero(t, s.CluesScroll())

	press(s, Key(KeyPageDown), Key(KeyPageDown), Key(KeyPageDown))
	assert.Equal(t, 15, s.CluesScroll())
	assert.Empty(t, s.Snapshot().VisibleClues(10))

	press(s, Key(KeyEnter), Key(KeyPageUp))
	assert.Equal(t, 10, s.CluesScroll())
	press(s, Key(KeyPageUp), Key(KeyPageUp))
	assert.Zero(t, s.CluesScroll())
}

func TestToggleErrorHint(t *testing.T) {
	s, _ := newTiny(t)
	press(s, Rune('e'))
	assert.True(t, s.ShowErrors())
	press(s, Rune('e'))
	assert.False(t, s.ShowErrors())

	p, err := puz.NewPuzzle(testutil.Tiny())
	require.NoError(t, err)
	assert.True(t, New(p, Options{ShowErrors: true}).ShowErrors())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Select", Select.String())
	assert.Equal(t, "Edit Across", EditAcross.String())
	assert.Equal(t, "Edit Down", EditDown.String())
	assert.Equal(t, "Paused", Pause.String())
	assert.Equal(t, "Game Over", GameOver.String())
	assert.Equal(t, "Unknown", Mode(42).String())
}
