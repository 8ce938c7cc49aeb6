package cluelist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/joshuapare/puzkit/pkg/session"
)

// Styles controls how each kind of clue line is drawn.
type Styles struct {
	Heading lipgloss.Style
	Clue    lipgloss.Style
	Current lipgloss.Style
}

// Renderer draws the visible window of the clue panel. Only the lines that
// fit are rendered; the scroll offset comes from the session.
type Renderer struct {
	styles Styles
	width  int
	height int
}

// New creates a clue panel renderer.
func New(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// SetSize updates the panel size.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the current height
func (r *Renderer) Height() int {
	return r.height
}

// View renders the lines of model that fall inside the panel, padded to the
// panel size. Scrolling past the end draws an empty panel.
func (r *Renderer) View(model session.RenderModel) string {
	lines := model.VisibleClues(r.height)

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(r.renderLine(line))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(max(r.width, 0)).
		Height(max(r.height, 0)).
		MaxHeight(max(r.height, 0)).
		Render(b.String())
}

func (r *Renderer) renderLine(line session.ClueLine) string {
	text := line.Text
	if r.width > 0 {
		text = ansi.Truncate(text, r.width, "…")
	}
	switch {
	case line.Heading:
		return r.styles.Heading.Render(text)
	case line.Current:
		return r.styles.Current.Render(text)
	default:
		return r.styles.Clue.Render(text)
	}
}
