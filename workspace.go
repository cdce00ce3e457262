package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rshep3087/alacritty-themes/alacritty"
	"github.com/Rshep3087/alacritty-themes/catalog"
	"github.com/Rshep3087/alacritty-themes/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// suggestionLimit caps the "did you mean" list for unknown theme names.
const suggestionLimit = 3

// workspace resolves where themes and the Alacritty configuration live.
type workspace struct {
	fs     afero.Fs
	env    alacritty.Environment
	config config.Config
}

// newWorkspace resolves the environment once for the whole run.
func newWorkspace(fsys afero.Fs, cfg config.Config) (workspace, error) {
	env, err := alacritty.EnvironmentFromOS()
	if err != nil {
		return workspace{}, err
	}

	return workspace{fs: fsys, env: env, config: cfg}, nil
}

func (w workspace) themesDir() (string, error) {
	if w.config.ThemesDir != "" {
		return w.config.ThemesDir, nil
	}
	return w.env.ThemesDir()
}

func (w workspace) configPath() (string, error) {
	if w.config.AlacrittyConfig == "" {
		return alacritty.Locate(w.fs, w.env)
	}

	exists, err := afero.Exists(w.fs, w.config.AlacrittyConfig)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", alacritty.ErrConfigNotFound, w.config.AlacrittyConfig)
	}

	return w.config.AlacrittyConfig, nil
}

func (w workspace) engine() (*alacritty.Engine, error) {
	path, err := w.configPath()
	if err != nil {
		return nil, err
	}

	log.Debug("Using alacritty config", "file", path)

	return alacritty.NewEngine(w.fs, path, log.Default()), nil
}

func (w workspace) themes() ([]catalog.Entry, error) {
	dir, err := w.themesDir()
	if err != nil {
		return nil, err
	}

	entries, err := catalog.List(w.fs, dir)
	if err != nil {
		return nil, err
	}

	log.Debug("Loaded themes", "dir", dir, "count", len(entries))

	return entries, nil
}

// applyByName applies the theme called name without starting the picker.
func applyByName(w workspace, name string) error {
	entries, err := w.themes()
	if err != nil {
		return err
	}

	entry, err := catalog.Find(entries, name)
	if err != nil {
		if suggestions := catalog.Suggest(entries, name, suggestionLimit); len(suggestions) > 0 {
			return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(suggestions, ", "))
		}
		return err
	}

	e, err := w.engine()
	if err != nil {
		return err
	}

	if err := e.Apply(entry.Path); err != nil {
		return fmt.Errorf("failed to apply theme %s: %w", entry.Name, err)
	}

	log.Info("Theme applied", "theme", entry.Name, "config", e.ConfigPath())

	return nil
}

// printCurrentTheme writes the name of the active theme to out.
func printCurrentTheme(out io.Writer, w workspace) error {
	e, err := w.engine()
	if err != nil {
		return err
	}

	name, err := e.CurrentThemeName()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, name)
	return err
}
