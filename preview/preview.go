// Package preview lays out a theme's palette as labeled swatches.
package preview

import (
	"strings"

	"github.com/Rshep3087/alacritty-themes/palette"
	"github.com/Rshep3087/alacritty-themes/rgb"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Empty is shown for a missing name or author.
const Empty = "Empty"

var titleCaser = cases.Title(language.English)

// Line is one row of the preview.
type Line struct {
	// Section groups lines under a heading; empty for name and author.
	Section string
	Label   string
	Value   string
	// Swatch is only meaningful when HasSwatch is set.
	Swatch    rgb.RGB
	HasSwatch bool
}

// Lines returns the rows for c in display order: name, author, primary,
// cursor, normal and bright.
func Lines(c palette.Colors) []Line {
	lines := []Line{
		{Label: "name", Value: orEmpty(c.Name)},
		{Label: "author", Value: orEmpty(c.Author)},
		swatch("primary", "background", c.Primary.Background),
		swatch("primary", "foreground", c.Primary.Foreground),
		swatch("cursor", "text", c.Cursor.Text),
		swatch("cursor", "cursor", c.Cursor.Cursor),
	}

	lines = append(lines, ansi("normal", c.Normal)...)
	lines = append(lines, ansi("bright", c.Bright)...)

	return lines
}

// Styles controls how Render draws labels and headings.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
}

// DefaultStyles returns unadorned styles with bold values.
func DefaultStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle().Bold(true),
	}
}

// Render draws lines, starting a heading whenever the section changes.
// Swatch values are drawn on their own color.
func Render(lines []Line, s Styles) string {
	var b strings.Builder

	section := ""
	for _, l := range lines {
		if l.Section != section {
			section = l.Section
			b.WriteString(s.Heading.Render(titleCaser.String(section) + ":"))
			b.WriteString("\n")
		}

		label := l.Label + ":"
		if l.Section != "" {
			label = "  " + label
		}
		b.WriteString(s.Label.Render(label))
		b.WriteString(" ")

		value := s.Value
		if l.HasSwatch {
			value = value.
				Background(l.Swatch.Color()).
				Foreground(l.Swatch.Readable().Color()).
				Padding(0, 1)
		}
		b.WriteString(value.Render(l.Value))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func ansi(section string, a palette.ANSI) []Line {
	return []Line{
		swatch(section, "black", a.Black),
		swatch(section, "red", a.Red),
		swatch(section, "green", a.Green),
		swatch(section, "yellow", a.Yellow),
		swatch(section, "blue", a.Blue),
		swatch(section, "magenta", a.Magenta),
		swatch(section, "cyan", a.Cyan),
		swatch(section, "white", a.White),
	}
}

func swatch(section, label, value string) Line {
	return Line{
		Section:   section,
		Label:     label,
		Value:     value,
		Swatch:    rgb.Parse(value),
		HasSwatch: true,
	}
}

func orEmpty(s string) string {
	if s == "" {
		return Empty
	}
	return s
}
