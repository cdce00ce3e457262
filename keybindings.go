package main

import (
	"errors"
	"fmt"

	"github.com/Rshep3087/alacritty-themes/selection"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

const confirmKey = "confirm"

// backupReporter is implemented by appliers that keep a safety copy of the
// configuration.
type backupReporter interface {
	BackupErr() error
}

type keyMap struct {
	next      key.Binding
	previous  key.Binding
	top       key.Binding
	bottom    key.Binding
	apply     key.Binding
	fullHelp  key.Binding
	quit      key.Binding
	cancel    key.Binding
	forceQuit key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.next,
		km.previous,
		km.apply,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.next,
			km.previous,
			km.top,
			km.bottom,
		},
		{
			km.apply,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		previous: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		apply: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply theme"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	log.Debug("key pressed", "key", msg.String())

	if m.sessionState == confirming {
		return updateConfirm(msg, m)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return *m, tea.Quit
	case key.Matches(msg, m.keys.next):
		m.selection.Next()
	case key.Matches(msg, m.keys.previous):
		m.selection.Previous()
	case key.Matches(msg, m.keys.top):
		m.selection.Top()
	case key.Matches(msg, m.keys.bottom):
		m.selection.Bottom()
	case key.Matches(msg, m.keys.apply):
		return requestApply(m)
	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return *m, nil
	default:
		return *m, nil
	}

	m.clearStatus()
	return *m, nil
}

// requestApply applies the selected theme, asking first when confirmation
// is enabled.
func requestApply(m *model) (tea.Model, tea.Cmd) {
	if _, ok := m.selection.Selected(); !ok {
		m.setError(selection.ErrNoSelection)
		return *m, nil
	}

	if !m.confirmApply {
		applySelected(m)
		return *m, nil
	}

	m.confirmForm = newConfirmForm(m.selection.Highlighted().Name)
	m.sessionState = confirming
	return *m, m.confirmForm.Init()
}

func newConfirmForm(theme string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key(confirmKey).
				Title(fmt.Sprintf("Apply %s?", theme)).
				Affirmative("Apply").
				Negative("Cancel"),
		),
	).WithShowHelp(false)
}

// updateConfirm routes input to the confirm form while it is open.
func updateConfirm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.forceQuit):
			return *m, tea.Quit
		case key.Matches(msg, m.keys.cancel):
			log.Debug("handling escape in confirm state")
			return finishConfirm(m, false)
		}
	}

	form, cmd := m.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmForm = f
	} else {
		log.Debug("confirmForm did not return a form, returning nil")
		return *m, nil
	}

	switch m.confirmForm.State {
	case huh.StateCompleted:
		return finishConfirm(m, m.confirmForm.GetBool(confirmKey))
	case huh.StateAborted:
		return finishConfirm(m, false)
	}

	return *m, cmd
}

func finishConfirm(m *model, confirmed bool) (tea.Model, tea.Cmd) {
	m.confirmForm = nil
	m.sessionState = browsing

	if !confirmed {
		m.setStatus("Apply cancelled")
		return *m, nil
	}

	applySelected(m)
	return *m, nil
}

// applySelected runs the merge for the selected entry and reports the
// outcome in the status line.
func applySelected(m *model) {
	entry, err := m.selection.Apply(m.applier)
	if err != nil {
		log.Error("Failed to apply theme", "theme", entry.Name, "error", err)
		if errors.Is(err, selection.ErrNoSelection) {
			m.setError(err)
			return
		}
		m.setError(fmt.Errorf("failed to apply %s: %w", entry.Name, err))
		return
	}

	log.Info("Theme applied", "theme", entry.Name)

	if br, ok := m.applier.(backupReporter); ok && br.BackupErr() != nil {
		m.setError(fmt.Errorf("applied %s, but backup failed: %w", entry.Name, br.BackupErr()))
		return
	}

	m.setStatus(fmt.Sprintf("Applied %s", entry.Name))
}
