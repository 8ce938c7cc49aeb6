package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/puzkit/pkg/session"
)

// KeyMap describes the keyboard shortcuts shown in help. Gameplay keys are
// interpreted by the session; Help and Copy are handled here.
type KeyMap struct {
	// Navigation
	Move   key.Binding
	Scroll key.Binding

	// Editing
	Edit      key.Binding
	Type      key.Binding
	Toggle    key.Binding
	Back      key.Binding
	Clear     key.Binding
	EditDone  key.Binding
	ShowError key.Binding

	// Commands
	Copy  key.Binding
	Help  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l", "w", "a", "s", "d"),
			key.WithHelp("←↓↑→/hjkl/wasd", "move"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll clues"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter/i", "edit"),
		),
		Type: key.NewBinding(
			key.WithKeys("a-z", "0-9"),
			key.WithHelp("a-z 0-9", "fill square"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "across/down"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "previous square"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "clear square"),
		),
		EditDone: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "stop editing"),
		),
		ShowError: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle error count"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy clue"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "pause, then q to quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Edit, k.Toggle, k.Pause, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Scroll, k.Edit, k.ShowError, k.Copy},
		{k.Type, k.Toggle, k.Back, k.Clear, k.EditDone},
		{k.Help, k.Pause, k.Quit},
	}
}

// editHelp is the short help shown while a square is being edited.
func (k KeyMap) editHelp() []key.Binding {
	return []key.Binding{k.Type, k.Toggle, k.Back, k.Clear, k.EditDone}
}

// toKeyEvents translates a terminal key into session events. Pasted text
// arrives as several runes and becomes one event per rune.
func toKeyEvents(msg tea.KeyMsg) []session.KeyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return []session.KeyEvent{session.Key(session.KeyUp)}
	case tea.KeyDown:
		return []session.KeyEvent{session.Key(session.KeyDown)}
	case tea.KeyLeft:
		return []session.KeyEvent{session.Key(session.KeyLeft)}
	case tea.KeyRight:
		return []session.KeyEvent{session.Key(session.KeyRight)}
	case tea.KeyEnter:
		return []session.KeyEvent{session.Key(session.KeyEnter)}
	case tea.KeyEsc:
		return []session.KeyEvent{session.Key(session.KeyEsc)}
	case tea.KeyBackspace:
		return []session.KeyEvent{session.Key(session.KeyBackspace)}
	case tea.KeyDelete:
		return []session.KeyEvent{session.Key(session.KeyDelete)}
	case tea.KeyPgUp:
		return []session.KeyEvent{session.Key(session.KeyPageUp)}
	case tea.KeyPgDown:
		return []session.KeyEvent{session.Key(session.KeyPageDown)}
	case tea.KeyCtrlC:
		return []session.KeyEvent{session.Key(session.KeyCtrlC)}
	case tea.KeySpace:
		return []session.KeyEvent{session.Rune(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		evs := make([]session.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, session.Rune(r))
		}
		return evs
	}
	return nil
}
