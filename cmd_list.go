package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/Rshep3087/alacritty-themes/catalog"
	"github.com/Rshep3087/alacritty-themes/palette"
	"github.com/Rshep3087/alacritty-themes/rgb"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// themeSummary is one row of the list command.
type themeSummary struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Valid      bool   `json:"valid"`
}

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Long:  `List the themes in the themes directory with their author and primary colors.`,
	Args:  cobra.NoArgs,
	RunE:  listRun,
}

func init() {
	listCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func listRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	w, err := newWorkspace(appFs, loadConfig())
	if err != nil {
		return err
	}

	entries, err := w.themes()
	if err != nil {
		return err
	}

	summaries, err := summarizeThemes(cmd.Context(), w.fs, entries)
	if err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), summaries)
	case tableOutputFormat:
		return outputThemesTable(cmd.OutOrStdout(), summaries)
	default:
		return errors.New("unsupported output format")
	}
}

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", err
	}

	if outputFormat != jsonOutputFormat && outputFormat != tableOutputFormat {
		return "", fmt.Errorf("invalid output format %q: must be %s or %s",
			outputFormat, tableOutputFormat, jsonOutputFormat)
	}

	return outputFormat, nil
}

// summarizeThemes parses every entry in parallel. The result keeps the
// catalog order; unparsable themes are reported with default colors.
func summarizeThemes(ctx context.Context, fsys afero.Fs, entries []catalog.Entry) ([]themeSummary, error) {
	summaries := make([]themeSummary, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			colors, err := palette.Load(fsys, entry.Path)
			valid := err == nil
			if err != nil {
				log.Debug("Unreadable theme", "theme", entry.Name, "error", err)
				colors = palette.Default()
			}

			summaries[i] = themeSummary{
				Name:       entry.Name,
				Path:       entry.Path,
				Title:      colors.Name,
				Author:     colors.Author,
				Background: colors.Primary.Background,
				Foreground: colors.Primary.Foreground,
				Valid:      valid,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func outputThemesTable(out io.Writer, summaries []themeSummary) error {
	t := createStyledTable(
		"NAME",
		"TITLE",
		"AUTHOR",
		"BACKGROUND",
		"FOREGROUND",
	)

	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = "-"
		}
		author := s.Author
		if author == "" {
			author = "-"
		}
		if !s.Valid {
			title = "invalid"
		}
		t.Row(
			s.Name,
			title,
			author,
			swatchCell(s.Background),
			swatchCell(s.Foreground),
		)
	}

	_, err := fmt.Fprintln(out, t)
	return err
}

func swatchCell(value string) string {
	c := rgb.Parse(value)
	return lipgloss.NewStyle().
		Background(c.Color()).
		Foreground(c.Readable().Color()).
		Render(value)
}
