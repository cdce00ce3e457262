package main

import (
	"strings"

	"github.com/Rshep3087/alacritty-themes/palette"
	"github.com/Rshep3087/alacritty-themes/preview"
	"github.com/charmbracelet/lipgloss"
)

const (
	title = "Themes switcher"
	// paneChrome is the number of rows used by a pane title and its spacing
	paneChrome = 2
	// minListHeight keeps the list usable before the first WindowSizeMsg
	minListHeight = 10
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.sessionState == confirming && m.confirmForm != nil {
		b.WriteString(m.confirmForm.View())
	} else {
		b.WriteString(m.renderPanes())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderPanes() string {
	half := m.width / 2

	list := m.renderPane("Themes", m.renderList(), half)
	prev := m.renderPane("Preview", m.renderPreview(), m.width-half)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, prev)
}

func (m model) renderPane(name, body string, width int) string {
	pane := m.styles.pane
	paneTitle := m.styles.paneTitle
	if width > 0 {
		pane = pane.Width(width)
		paneTitle = paneTitle.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		paneTitle.Render(name),
		pane.Render(body),
	)
}

func (m model) renderList() string {
	entries := m.selection.Entries()
	selected, ok := m.selection.Selected()
	cursor := selected
	if !ok {
		cursor = -1
	}

	start, end := visibleRange(len(entries), cursor, m.listHeight())

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		if i == cursor {
			b.WriteString(m.styles.selectedItem.Render("> " + entries[i].Name))
			continue
		}
		b.WriteString(m.styles.item.Render("  " + entries[i].Name))
	}

	return b.String()
}

// renderPreview re-reads the highlighted theme so edits on disk show up on
// the next frame.
func (m model) renderPreview() string {
	entry := m.selection.Highlighted()
	colors := palette.LoadOrDefault(m.fs, entry.Path)

	return preview.Render(preview.Lines(colors), m.styles.previewStyles)
}

func (m model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.errorStyle.Render(m.status)
	}
	return m.styles.successStyle.Render(m.status)
}

func (m model) listHeight() int {
	// title, status and help take five rows around the panes
	h := m.height - paneChrome - 5
	if h < minListHeight {
		return minListHeight
	}
	return h
}

// visibleRange returns the window [start, end) of total rows that keeps
// cursor on screen. A negative cursor shows the top of the list.
func visibleRange(total, cursor, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}

	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}

	return start, start + height
}
