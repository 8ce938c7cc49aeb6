package displays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/puzkit/pkg/puz"
)

// PuzzleInfoDisplay shows the header details of the loaded puzzle.
type PuzzleInfoDisplay struct {
	File     *puz.File
	Warnings []puz.Mismatch
	width    int
	height   int
}

// NewPuzzleInfoDisplay creates a new puzzle info display
func NewPuzzleInfoDisplay(f *puz.File, warnings []puz.Mismatch) *PuzzleInfoDisplay {
	return &PuzzleInfoDisplay{
		File:     f,
		Warnings: warnings,
	}
}

// SetSize sets the display dimensions
func (p *PuzzleInfoDisplay) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the puzzle info panel
func (p *PuzzleInfoDisplay) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Width(11)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA"))

	warnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFA500"))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#383838")).
		Padding(0, 1)

	f := p.File
	row := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n"
	}

	content := titleStyle.Render("PUZZLE INFO") + "\n\n"
	content += row("Size:", fmt.Sprintf("%dx%d", f.Width, f.Height))
	content += row("Clues:", fmt.Sprintf("%d", f.NumClues))
	content += row("Version:", strings.TrimRight(f.Version, "\x00"))
	content += row("Copyright:", f.Copyright)
	if f.Notes != "" {
		content += row("Notes:", f.Notes)
	}

	if len(p.Warnings) == 0 {
		content += row("Checksums:", "ok")
	} else {
		content += labelStyle.Render("Checksums:") + " " +
			warnStyle.Render(fmt.Sprintf("%d mismatched", len(p.Warnings))) + "\n"
	}

	box := borderStyle.
		Width(p.width).
		Height(p.height).
		Render(content)

	return box
}
