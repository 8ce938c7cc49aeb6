package session

import "github.com/joshuapare/puzkit/pkg/grid"

// Mode is the input mode of a session.
type Mode int

const (
	Select Mode = iota
	EditAcross
	EditDown
	Pause
	GameOver
)

func (m Mode) String() string {
	switch m {
	case Select:
		return "Select"
	case EditAcross:
		return "Edit Across"
	case EditDown:
		return "Edit Down"
	case Pause:
		return "Paused"
	case GameOver:
		return "Game Over"
	}
	return "Unknown"
}

// Editing reports whether m accepts guesses.
func (m Mode) Editing() bool {
	return m == EditAcross || m == EditDown
}

// Direction maps an edit mode to its entry direction. Non-edit modes map
// to Across.
func (m Mode) Direction() grid.Direction {
	if m == EditDown {
		return grid.Down
	}
	return grid.Across
}

func editMode(d grid.Direction) Mode {
	if d == grid.Down {
		return EditDown
	}
	return EditAcross
}
