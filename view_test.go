package main

import (
	"strings"
	"testing"

	"github.com/Rshep3087/alacritty-themes/config"
	"github.com/carlmjohnson/be"
	tea "github.com/charmbracelet/bubbletea"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		cursor     int
		height     int
		start, end int
	}{
		{"fits", 5, 2, 10, 0, 5},
		{"no selection", 20, -1, 10, 0, 10},
		{"cursor on first page", 20, 9, 10, 0, 10},
		{"cursor past first page", 20, 10, 10, 1, 11},
		{"cursor on last", 20, 19, 10, 10, 20},
		{"zero height", 20, 5, 0, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.total, tt.cursor, tt.height)
			be.Equal(t, tt.start, start)
			be.Equal(t, tt.end, end)
		})
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, &fakeApplier{}, config.Config{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(model)

	view := m.View()
	be.True(t, strings.Contains(view, title))
	for _, name := range []string{"dracula", "gruvbox", "nord"} {
		be.True(t, strings.Contains(view, name))
	}

	// the themes do not exist on this filesystem
	be.True(t, strings.Contains(view, "Empty"))
	be.True(t, strings.Contains(view, "#000000"))
}

func TestViewStatus(t *testing.T) {
	m := newTestModel(t, &fakeApplier{}, config.Config{})

	m, _ = press(t, m, "a")
	be.True(t, strings.Contains(m.View(), "no theme selected"))
}
