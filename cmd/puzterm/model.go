package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/puzkit/cmd/puzterm/cluelist"
	"github.com/joshuapare/puzkit/cmd/puzterm/displays"
	"github.com/joshuapare/puzkit/pkg/puz"
	"github.com/joshuapare/puzkit/pkg/session"
)

// Layout constants
const (
	tickInterval    = 100 * time.Millisecond
	statusDuration  = 2 * time.Second
	cluesGap        = 2 // Columns between the board and the clue panel
	minCluesWidth   = 6 // Narrower panels are not drawn
	infoPanelHeight = 12
)

// Model is the main application model
type Model struct {
	path   string
	puzzle *puz.Puzzle
	sess   *session.Session
	keys   KeyMap
	help   help.Model
	clues  *cluelist.Renderer
	info   *displays.PuzzleInfoDisplay

	width  int
	height int

	// Help overlay
	showHelp bool

	// Puzzle info overlay
	showInfo bool

	// Status message for temporary feedback
	statusMessage string
	statusIsError bool
}

// NewModel creates a new TUI model for a loaded puzzle
func NewModel(path string, p *puz.Puzzle, opts session.Options) Model {
	return Model{
		path:   path,
		puzzle: p,
		sess:   session.New(p, opts),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		clues:  cluelist.New(clueStyles),
		info:   displays.NewPuzzleInfoDisplay(p.File, p.Warnings),
	}
}

// Init starts the clock tick that keeps the elapsed time current
func (m Model) Init() tea.Cmd {
	return tick()
}

// Session returns the game session (for testing)
func (m Model) Session() *session.Session {
	return m.sess
}

// Messages

type tickMsg time.Time

type clearStatusMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
