package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MainViewModel wraps the game screen for use as overlay background
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Updates are handled in the parent Model's Update
	return m, nil
}

func (m *MainViewModel) View() string {
	return m.model.renderScreen()
}
