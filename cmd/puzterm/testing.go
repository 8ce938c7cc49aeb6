package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/puzkit/pkg/puz"
	"github.com/joshuapare/puzkit/pkg/session"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model Model
	cmd   tea.Cmd
}

// NewTestHelper creates a test helper with a model for p. The session clock
// is frozen at a fixed instant.
func NewTestHelper(p *puz.Puzzle) *TestHelper {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &TestHelper{
		model: NewModel("test.puz", p, session.Options{
			Now: func() time.Time { return start },
		}),
	}
}

func (h *TestHelper) send(msg tea.Msg) *TestHelper {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	h.cmd = cmd
	return h
}

// SendKey simulates a special key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	return h.send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// SendString types each rune of s as a separate key press
func (h *TestHelper) SendString(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	return h.send(tea.WindowSizeMsg{Width: width, Height: height})
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// LastCmd returns the command produced by the most recent message
func (h *TestHelper) LastCmd() tea.Cmd {
	return h.cmd
}

// Quit reports whether the most recent message asked the program to exit
func (h *TestHelper) Quit() bool {
	if h.cmd == nil {
		return false
	}
	_, ok := h.cmd().(tea.QuitMsg)
	return ok
}
