package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/puzkit/cmd/puzterm/logger"
	"github.com/joshuapare/puzkit/pkg/session"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		return m, tick()

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If help is showing, only keys that close it do anything
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc || msg.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	// Any key closes the info overlay
	if m.showInfo {
		m.showInfo = false
		return m, nil
	}

	mode := m.sess.Mode()
	if (mode == session.Select || mode.Editing()) && key.Matches(msg, m.keys.Help) {
		m.showHelp = true
		return m, nil
	}

	if mode == session.Select && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		switch msg.Runes[0] {
		case 'y':
			return m.copyClue()
		case 'I':
			m.showInfo = true
			return m, nil
		}
	}

	// Pasted or fast-typed runes arrive as one message. Once the puzzle is
	// solved the rest of the batch is dropped so Game Over gets drawn.
	for _, ev := range toKeyEvents(msg) {
		if m.sess.Handle(ev) == session.Quit {
			logger.Session("quitting", m.sess.Mode().String(), m.sess.Elapsed())
			return m, tea.Quit
		}
		if m.sess.Mode() == session.GameOver && mode != session.GameOver {
			break
		}
	}

	if m.sess.Mode() != mode {
		logger.Debug("mode changed", "from", mode.String(), "to", m.sess.Mode().String())
		if m.sess.Mode() == session.GameOver {
			logger.Session("puzzle solved", m.sess.Mode().String(), m.sess.Elapsed())
		}
	}
	return m, nil
}

// copyClue puts the clue under the cursor on the system clipboard.
func (m Model) copyClue() (tea.Model, tea.Cmd) {
	e, ok := m.sess.CurrentClue()
	if !ok {
		return m, nil
	}
	text := fmt.Sprintf("%d %s: %s", e.Number, e.Direction, e.Clue)
	if err := writeClipboard(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		m.statusMessage = "Failed to copy clue"
		m.statusIsError = true
	} else {
		m.statusMessage = fmt.Sprintf("Copied %d %s", e.Number, e.Direction)
		m.statusIsError = false
	}
	return m, clearStatusAfter(statusDuration)
}

// resize lays out the clue panel beside the board.
func (m *Model) resize() {
	boardW, _ := boardSize(m.sess.Snapshot())
	m.clues.SetSize(m.width-boardW-cluesGap, m.height-1)
	m.info.SetSize(m.width/2, infoPanelHeight)
	m.help.Width = m.width
}
