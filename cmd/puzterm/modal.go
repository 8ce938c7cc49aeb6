package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ModalModel is a bordered message box drawn over the game screen.
type ModalModel struct {
	title string
	lines []string
}

// NewModal creates a modal with a title and body lines.
func NewModal(title string, lines ...string) *ModalModel {
	return &ModalModel{title: title, lines: lines}
}

func (m *ModalModel) Init() tea.Cmd {
	return nil
}

func (m *ModalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *ModalModel) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(m.title))
	for _, line := range m.lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return modalStyle.Render(b.String())
}

// panelModel adapts an already rendered panel to the overlay.
type panelModel struct {
	content string
}

func (p panelModel) Init() tea.Cmd {
	return nil
}

func (p panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return p, nil
}

func (p panelModel) View() string {
	return p.content
}
