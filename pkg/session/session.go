package session

import (
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshuapare/puzkit/pkg/grid"
	"github.com/joshuapare/puzkit/pkg/puz"
)

// ClueScrollStep is how far one page key moves the clue list.
const ClueScrollStep = 5

// Outcome tells the caller whether to keep running.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Options configures a new session.
type Options struct {
	// ShowErrors starts with the error count visible in the status line.
	ShowErrors bool
	// Now overrides the clock source, for tests.
	Now func() time.Time
}

// Session is the cursor, mode and clock for one pass at a puzzle.
type Session struct {
	grid   *grid.Grid
	title  string
	author string

	x, y        int
	mode        Mode
	lastEdit    Mode
	cluesScroll int
	showErrors  bool
	clock       *Clock

	upper cases.Caser
}

// New starts a session on p with the cursor at the top-left square. The
// clock starts immediately.
func New(p *puz.Puzzle, opts Options) *Session {
	return &Session{
		grid:       p.Grid,
		title:      p.File.Title,
		author:     p.File.Author,
		mode:       Select,
		lastEdit:   EditAcross,
		showErrors: opts.ShowErrors,
		clock:      NewClock(opts.Now),
		upper:      cases.Upper(language.Und),
	}
}

func (s *Session) Grid() *grid.Grid {
	return s.grid
}

func (s *Session) Mode() Mode {
	return s.mode
}

// LastEditMode is the edit direction Enter resumes on squares that start
// both or neither entry.
func (s *Session) LastEditMode() Mode {
	return s.lastEdit
}

func (s *Session) Cursor() (x, y int) {
	return s.x, s.y
}

func (s *Session) CluesScroll() int {
	return s.cluesScroll
}

func (s *Session) ShowErrors() bool {
	return s.showErrors
}

func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}

func (s *Session) Status() grid.Status {
	return grid.Evaluate(s.grid)
}

// Handle applies one key event. Requests that make no sense in the current
// mode are ignored.
func (s *Session) Handle(ev KeyEvent) Outcome {
	switch s.mode {
	case Select:
		s.handleSelect(ev)
	case EditAcross, EditDown:
		s.handleEdit(ev)
	case Pause:
		return s.handlePause(ev)
	case GameOver:
		return Quit
	}
	return Continue
}

func (s *Session) handleSelect(ev KeyEvent) {
	switch ev.Kind {
	case KeyUp:
		s.moveWrap(grid.MoveUp)
	case KeyDown:
		s.moveWrap(grid.MoveDown)
	case KeyLeft:
		s.moveWrap(grid.MoveLeft)
	case KeyRight:
		s.moveWrap(grid.MoveRight)
	case KeyEnter:
		s.enterEdit()
	case KeyEsc, KeyCtrlC:
		s.pause()
	case KeyPageUp:
		s.scrollClues(-ClueScrollStep)
	case KeyPageDown:
		s.scrollClues(ClueScrollStep)
	case KeyRune:
		switch ev.Rune {
		case 'h', 'a':
			s.moveWrap(grid.MoveLeft)
		case 'j', 's':
			s.moveWrap(grid.MoveDown)
		case 'k', 'w':
			s.moveWrap(grid.MoveUp)
		case 'l', 'd':
			s.moveWrap(grid.MoveRight)
		case 'i':
			s.enterEdit()
		case 'q', 'p':
			s.pause()
		case 'e':
			s.showErrors = !s.showErrors
		}
	}
}

func (s *Session) handleEdit(ev KeyEvent) {
	switch ev.Kind {
	case KeyUp:
		s.step(grid.MoveUp)
	case KeyDown:
		s.step(grid.MoveDown)
	case KeyLeft:
		s.step(grid.MoveLeft)
	case KeyRight:
		s.step(grid.MoveRight)
	case KeyBackspace:
		s.step(grid.Backward(s.mode.Direction()))
	case KeyDelete:
		s.grid.ClearGuess(s.x, s.y)
		s.checkSolved()
	case KeyEnter, KeyEsc:
		s.mode = Select
	case KeyPageUp:
		s.scrollClues(-ClueScrollStep)
	case KeyPageDown:
		s.scrollClues(ClueScrollStep)
	case KeyRune:
		switch {
		case ev.Rune == ' ':
			s.mode = editMode(s.mode.Direction().Other())
			s.lastEdit = s.mode
		case unicode.IsLetter(ev.Rune) || unicode.IsNumber(ev.Rune):
			s.guess(ev.Rune)
		}
	}
}

func (s *Session) handlePause(ev KeyEvent) Outcome {
	switch {
	case ev.Kind == KeyEnter, ev.Kind == KeyEsc, ev.Kind == KeyRune && ev.Rune == 'p':
		s.mode = Select
		s.clock.Resume()
	case ev.Kind == KeyCtrlC, ev.Kind == KeyRune && ev.Rune == 'q':
		return Quit
	}
	return Continue
}

func (s *Session) moveWrap(m grid.Move) {
	s.x, s.y = grid.Wrap(s.grid, s.x, s.y, m)
}

func (s *Session) step(m grid.Move) {
	s.x, s.y = grid.Step(s.grid, s.x, s.y, m)
}

// enterEdit picks the direction from the clues starting or crossing at the
// cursor; ambiguous squares resume the last direction.
func (s *Session) enterEdit() {
	if s.grid.IsBlock(s.x, s.y) {
		return
	}
	c := s.grid.Cell(s.x, s.y)
	switch {
	case c.HasAcross && !c.HasDown:
		s.mode = EditAcross
	case c.HasDown && !c.HasAcross:
		s.mode = EditDown
	default:
		s.mode = s.lastEdit
	}
	s.lastEdit = s.mode
}

func (s *Session) guess(r rune) {
	up, _ := utf8.DecodeRuneInString(s.upper.String(string(r)))
	if up == utf8.RuneError {
		up = r
	}
	if !s.grid.SetGuess(s.x, s.y, up) {
		return
	}
	if s.checkSolved() {
		return
	}
	s.step(grid.Forward(s.mode.Direction()))
}

// checkSolved moves to GameOver once every square is right.
func (s *Session) checkSolved() bool {
	if !grid.IsSolved(s.grid) {
		return false
	}
	s.mode = GameOver
	s.clock.Stop()
	return true
}

func (s *Session) pause() {
	s.mode = Pause
	s.clock.Pause()
}

func (s *Session) scrollClues(delta int) {
	s.cluesScroll += delta
	if s.cluesScroll < 0 {
		s.cluesScroll = 0
	}
}
