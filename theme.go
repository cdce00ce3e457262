package main

import (
	"github.com/Rshep3087/alacritty-themes/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors the picker's chrome: title, panes, list, status line and
// help. It never affects the swatches, which always show the previewed
// Alacritty theme's own colors.
type Theme struct {
	// Primary marks the title, the selected theme and section headings
	Primary lipgloss.Color
	// Error and Success color the status line after an apply
	Error   lipgloss.Color
	Success lipgloss.Color
	// Muted is used for the help ellipsis
	Muted lipgloss.Color
	// Border fills the pane title bars
	Border     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	// SecondaryText labels the preview rows
	SecondaryText lipgloss.Color
}

// chromeDefaults is a dark slate palette.
var chromeDefaults = config.Colors{
	Primary:       "#93c5fd",
	Error:         "#e05951",
	Success:       "#22ba46",
	Muted:         "#7f7d78",
	Border:        "#172554",
	Background:    "#020617",
	Text:          "#e2e8f0",
	SecondaryText: "#888888",
}

// newTheme fills every color missing from the [colors] table of the
// settings file with its chrome default.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       colorOr(colors.Primary, chromeDefaults.Primary),
		Error:         colorOr(colors.Error, chromeDefaults.Error),
		Success:       colorOr(colors.Success, chromeDefaults.Success),
		Muted:         colorOr(colors.Muted, chromeDefaults.Muted),
		Border:        colorOr(colors.Border, chromeDefaults.Border),
		Background:    colorOr(colors.Background, chromeDefaults.Background),
		Text:          colorOr(colors.Text, chromeDefaults.Text),
		SecondaryText: colorOr(colors.SecondaryText, chromeDefaults.SecondaryText),
	}
}

// colorOr returns value as is, hex or ANSI code, or fallback when empty.
func colorOr(value, fallback string) lipgloss.Color {
	if value == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(value)
}
