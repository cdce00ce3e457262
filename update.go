package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return handleKeyPress(msg, &m)
	}

	// the confirm form also consumes non-key messages such as cursor blinks
	if m.sessionState == confirming && m.confirmForm != nil {
		return updateConfirm(msg, &m)
	}

	return m, nil
}

func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	log.Debug("window size", "width", msg.Width, "height", msg.Height)

	h, v := m.styles.docStyle.GetFrameSize()
	m.width = msg.Width - h
	m.height = msg.Height - v
	m.help.Width = m.width

	if m.confirmForm != nil {
		m.confirmForm = m.confirmForm.WithWidth(m.width)
	}

	return m, nil
}
