package main

import (
	"github.com/Rshep3087/alacritty-themes/preview"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const standardMargin = 2

type styles struct {
	docStyle      lipgloss.Style
	titleStyle    lipgloss.Style
	errorStyle    lipgloss.Style
	successStyle  lipgloss.Style
	paneTitle     lipgloss.Style
	pane          lipgloss.Style
	item          lipgloss.Style
	selectedItem  lipgloss.Style
	previewStyles preview.Styles
}

func createStyles(theme Theme) styles {
	pane := lipgloss.NewStyle().
		Background(theme.Background).
		Foreground(theme.Text).
		Padding(0, 1)

	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		errorStyle:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		successStyle: lipgloss.NewStyle().Foreground(theme.Success),
		paneTitle: lipgloss.NewStyle().
			Background(theme.Border).
			Foreground(theme.Text).
			Align(lipgloss.Center),
		pane:  pane,
		item:  lipgloss.NewStyle().Foreground(theme.Text),
		selectedItem: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Reverse(true),
		previewStyles: preview.Styles{
			Heading: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
			Label:   lipgloss.NewStyle().Foreground(theme.SecondaryText),
			Value:   lipgloss.NewStyle().Bold(true),
		},
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.Muted),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}
