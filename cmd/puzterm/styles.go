package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/puzkit/cmd/puzterm/cluelist"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")

	// Title block styles
	authorStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	modeStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Board styles
	gridLineStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	blockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	numberStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	guessStyle = lipgloss.NewStyle().
			Bold(true)

	circledStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)

	activeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2A2440"))

	markerStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// Clue panel styles
	clueStyles = cluelist.Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(primaryColor),
		Clue:    lipgloss.NewStyle(),
		Current: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
	}

	// Status bar styles
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FAFAFA"))

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Help overlay styles
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	// Modal styles
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Background(lipgloss.Color("#1A1A1A"))

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Error styles
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
