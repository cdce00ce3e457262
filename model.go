package main

import (
	"github.com/Rshep3087/alacritty-themes/config"
	"github.com/Rshep3087/alacritty-themes/selection"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"
)

type model struct {
	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme

	// sessionState is the current state of the session
	sessionState sessionState

	// selection tracks which theme is highlighted
	selection *selection.Machine
	// applier merges a theme into the alacritty config
	applier selection.Applier
	// fs is where theme files are read from for the preview
	fs afero.Fs

	// confirmApply asks before writing the alacritty config
	confirmApply bool
	confirmForm  *huh.Form

	status    string
	statusErr bool

	width  int
	height int
}

func newModel(fsys afero.Fs, machine *selection.Machine, applier selection.Applier, cfg config.Config) model {
	theme := newTheme(cfg.Colors)

	return model{
		keys:         initializeKeyMap(),
		help:         createHelpModel(theme),
		styles:       createStyles(theme),
		theme:        theme,
		sessionState: browsing,
		selection:    machine,
		applier:      applier,
		fs:           fsys,
		confirmApply: cfg.ConfirmApply,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
}

func (m *model) clearStatus() {
	m.status, m.statusErr = "", false
}
