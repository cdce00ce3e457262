// Package catalog discovers the theme files available in a themes directory.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/afero"
)

// ErrDirNotFound is returned when the themes directory does not exist.
var ErrDirNotFound = errors.New("themes directory not found")

// ErrThemeNotFound is returned by Find when no entry matches.
var ErrThemeNotFound = errors.New("theme not found")

// themeExt is appended to theme names given without an extension.
const themeExt = ".yml"

// Entry is one theme file.
type Entry struct {
	// Name is the file name without its extension.
	Name string `json:"name"`
	Path string `json:"path"`
}

// List returns the YAML files directly inside dir, sorted by name.
func List(fsys afero.Fs, dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !isTheme(info.Name()) {
			continue
		}
		entries = append(entries, Entry{
			Name: strings.TrimSuffix(info.Name(), filepath.Ext(info.Name())),
			Path: filepath.Join(dir, info.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Find returns the entry for a theme given by name, with or without its
// extension.
func Find(entries []Entry, name string) (Entry, error) {
	file := name
	if !isTheme(file) {
		file += themeExt
	}

	for _, e := range entries {
		if filepath.Base(e.Path) == file {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
}

// Suggest returns up to limit entry names that fuzzily match name, best
// match first.
func Suggest(entries []Entry, name string, limit int) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	matches := fuzzy.Find(strings.TrimSuffix(name, themeExt), names)

	suggestions := make([]string, 0, limit)
	for _, m := range matches {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, m.Str)
	}

	return suggestions
}

func isTheme(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}
