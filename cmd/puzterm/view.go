package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/puzkit/pkg/session"
)

// View renders the entire UI
func (m Model) View() string {
	var fg tea.Model
	switch {
	case m.showHelp:
		fg = panelModel{content: m.renderHelpOverlay()}
	case m.showInfo:
		fg = panelModel{content: m.info.View()}
	case m.sess.Mode() == session.Pause:
		fg = NewModal("Game Paused", "Press p to continue.", "Press q to quit.")
	case m.sess.Mode() == session.GameOver:
		fg = NewModal("Game Over.", "Press any key to quit.")
	default:
		return m.renderScreen()
	}

	// The overlay is rebuilt each render so the background reflects the
	// latest model state.
	return overlay.New(
		fg,
		NewMainViewModel(&m),
		overlay.Center,
		overlay.Center,
		0,
		0,
	).View()
}

// renderScreen draws the board, title block, clue panel and status bar.
func (m Model) renderScreen() string {
	snap := m.sess.Snapshot()
	boardW, _ := boardSize(snap)

	left := lipgloss.JoinVertical(
		lipgloss.Left,
		renderBoard(snap),
		m.renderTitle(snap, boardW),
	)

	body := left
	if m.clues.Width() >= minCluesWidth && m.clues.Height() > 0 {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			left,
			strings.Repeat(" ", cluesGap),
			m.clues.View(snap),
		)
	}

	if m.height > 1 {
		body = fitHeight(body, m.height-1)
	}
	return body + "\n" + m.renderStatus(snap)
}

// renderTitle draws the title and author under the board, cut to its width.
func (m Model) renderTitle(snap session.RenderModel, width int) string {
	lines := []string{
		guessStyle.Render(ansi.Truncate(snap.Title, width, "")),
		authorStyle.Render(ansi.Truncate(snap.Author, width, "")),
		modeStyle.Render(snap.Mode.String()),
	}
	if width > 0 {
		shortHelp := m.keys.ShortHelp()
		if snap.Mode.Editing() {
			shortHelp = m.keys.editHelp()
		}
		lines = append(lines, helpStyle.Render(ansi.Truncate(m.help.ShortHelpView(shortHelp), width, "…")))
	}
	return strings.Join(lines, "\n")
}

// renderStatus renders the bottom status bar
func (m Model) renderStatus(snap session.RenderModel) string {
	line := snap.StatusLine(version)
	if m.statusMessage != "" {
		msgStyle := statusMessageStyle
		if m.statusIsError {
			msgStyle = errorStyle
		}
		line += "  " + msgStyle.Render(m.statusMessage)
	}
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "")
		return statusStyle.Width(m.width).Render(line)
	}
	return statusStyle.Render(line)
}

// renderHelpOverlay renders the full keyboard reference
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	full := m.help
	full.ShowAll = true
	b.WriteString(full.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Press ? or esc to close"))
	return modalStyle.Render(b.String())
}

// fitHeight pads or clips s to exactly n lines.
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
