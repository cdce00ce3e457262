package alacritty

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/Rshep3087/alacritty-themes/palette"
	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	configPath = "/home/ada/.config/alacritty/alacritty.yml"
	backupPath = "/home/ada/.config/alacritty/alacritty-backup.yml"
	themesDir  = "/home/ada/.config/alacritty/themes"
)

const userConfig = `# managed by hand
font:
  size: 11.5
  normal:
    family: Iosevka
window:
  padding:
    x: 4
    y: 4
colors:
  name: Custom
  primary:
    background: '#101010'
    foreground: '#eeeeee'
key_bindings:
  - {key: V, mods: Control|Shift, action: Paste}
`

const draculaTheme = `colors:
  name: Dracula
  author: Zeno Rocha
  primary:
    background: '#282a36'
    foreground: '#f8f8f2'
  normal:
    black: '#000000'
    red: '#ff5555'
    green: '#50fa7b'
    yellow: '#f1fa8c'
    blue: '#bd93f9'
    magenta: '#ff79c6'
    cyan: '#8be9fd'
    white: '#bfbfbf'
  bright:
    black: '#4d4d4d'
    red: '#ff6e67'
    green: '#5af78e'
    yellow: '#f4f99d'
    blue: '#caa9fa'
    magenta: '#ff92d0'
    cyan: '#9aedfe'
    white: '#e6e6e6'
`

const nordTheme = `colors:
  name: Nord
  primary:
    background: '#2e3440'
    foreground: '#d8dee9'
`

func newTestEngine(t *testing.T, config string, themes map[string]string) (*Engine, afero.Fs) {
	t.Helper()

	fsys := afero.NewMemMapFs()
	be.NilErr(t, afero.WriteFile(fsys, configPath, []byte(config), 0o640))
	for name, body := range themes {
		be.NilErr(t, afero.WriteFile(fsys, themesDir+"/"+name, []byte(body), 0o644))
	}

	return NewEngine(fsys, configPath, log.New(io.Discard)), fsys
}

func readYAML(t *testing.T, fsys afero.Fs, path string) map[string]any {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	be.NilErr(t, err)

	var m map[string]any
	be.NilErr(t, yaml.Unmarshal(data, &m))
	return m
}

func TestBackupPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/home/ada/alacritty.yml", "/home/ada/alacritty-backup.yml"},
		{"/home/ada/.config/alacritty/alacritty.yaml", "/home/ada/.config/alacritty/alacritty-backup.yaml"},
		{"/etc/alacritty", "/etc/alacritty-backup"},
		{"/home/ada/.alacritty.yml", "/home/ada/.alacritty-backup.yml"},
		{"/home/ada/.alacritty", "/home/ada/.alacritty-backup"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			be.Equal(t, tt.expected, BackupPath(tt.path))
		})
	}
}

func TestBackupOnce(t *testing.T) {
	e, fsys := newTestEngine(t, userConfig, nil)

	created, err := e.Backup()
	be.NilErr(t, err)
	be.True(t, created)

	be.NilErr(t, afero.WriteFile(fsys, configPath, []byte("font: {}\n"), 0o640))

	created, err = e.Backup()
	be.NilErr(t, err)
	be.False(t, created)

	data, err := afero.ReadFile(fsys, backupPath)
	be.NilErr(t, err)
	be.Equal(t, userConfig, string(data))
}

func TestApply(t *testing.T) {
	e, fsys := newTestEngine(t, userConfig, map[string]string{"dracula.yml": draculaTheme})
	before := readYAML(t, fsys, configPath)

	be.NilErr(t, e.Apply(themesDir+"/dracula.yml"))

	after := readYAML(t, fsys, configPath)
	theme := readYAML(t, fsys, themesDir+"/dracula.yml")

	be.DeepEqual(t, theme["colors"], after["colors"])
	for _, key := range []string{"font", "window", "key_bindings"} {
		be.DeepEqual(t, before[key], after[key])
	}
	be.Equal(t, len(before), len(after))

	data, err := afero.ReadFile(fsys, configPath)
	be.NilErr(t, err)
	be.True(t, strings.Contains(string(data), "# managed by hand"))

	info, err := fsys.Stat(configPath)
	be.NilErr(t, err)
	be.Equal(t, "-rw-r-----", info.Mode().Perm().String())
}

func TestApplyCreatesBackupOnce(t *testing.T) {
	e, fsys := newTestEngine(t, userConfig, map[string]string{
		"dracula.yml": draculaTheme,
		"nord.yml":    nordTheme,
	})

	be.NilErr(t, e.Apply(themesDir+"/dracula.yml"))
	be.NilErr(t, e.Apply(themesDir+"/nord.yml"))

	data, err := afero.ReadFile(fsys, backupPath)
	be.NilErr(t, err)
	be.Equal(t, userConfig, string(data))

	name, err := e.CurrentThemeName()
	be.NilErr(t, err)
	be.Equal(t, "Nord", name)
}

func TestApplyIdempotent(t *testing.T) {
	e, fsys := newTestEngine(t, userConfig, map[string]string{"dracula.yml": draculaTheme})

	be.NilErr(t, e.Apply(themesDir+"/dracula.yml"))
	once, err := afero.ReadFile(fsys, configPath)
	be.NilErr(t, err)

	be.NilErr(t, e.Apply(themesDir+"/dracula.yml"))
	twice, err := afero.ReadFile(fsys, configPath)
	be.NilErr(t, err)

	be.Equal(t, string(once), string(twice))
}

func TestApplyAddsMissingColors(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"no colors key", "font:\n  size: 10\n"},
		{"empty config", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fsys := newTestEngine(t, tt.config, map[string]string{"nord.yml": nordTheme})

			be.NilErr(t, e.Apply(themesDir+"/nord.yml"))

			after := readYAML(t, fsys, configPath)
			theme := readYAML(t, fsys, themesDir+"/nord.yml")
			be.DeepEqual(t, theme["colors"], after["colors"])
		})
	}
}

func TestApplyLeavesConfigOnError(t *testing.T) {
	tests := []struct {
		name   string
		config string
		theme  string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "malformed theme",
			config: userConfig,
			theme:  "colors: [",
			check: func(t *testing.T, err error) {
				var pe *palette.ParseError
				be.True(t, errors.As(err, &pe))
			},
		},
		{
			name:   "theme without colors",
			config: userConfig,
			theme:  "",
			check: func(t *testing.T, err error) {
				be.True(t, errors.Is(err, ErrNoColors))
			},
		},
		{
			name:   "malformed config",
			config: "font: [\n",
			theme:  draculaTheme,
			check: func(t *testing.T, err error) {
				var pe *ParseError
				be.True(t, errors.As(err, &pe))
				be.Equal(t, configPath, pe.Path)
			},
		},
		{
			name:   "alias into the replaced colors",
			config: "colors: &c\n  name: Old\nextra: *c\nfont:\n  size: 10\n",
			theme:  nordTheme,
			check: func(t *testing.T, err error) {
				var pe *ParseError
				be.True(t, errors.As(err, &pe))
				be.True(t, strings.Contains(err.Error(), "unknown anchor"))
			},
		},
		{
			name:   "several documents",
			config: "font:\n  size: 10\n---\nwindow:\n  opacity: 0.9\n",
			theme:  nordTheme,
			check: func(t *testing.T, err error) {
				var pe *ParseError
				be.True(t, errors.As(err, &pe))
				be.True(t, errors.Is(err, ErrMultipleDocuments))
			},
		},
		{
			name:   "config is a list",
			config: "- one\n- two\n",
			theme:  draculaTheme,
			check: func(t *testing.T, err error) {
				var pe *ParseError
				be.True(t, errors.As(err, &pe))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fsys := newTestEngine(t, tt.config, map[string]string{"theme.yml": tt.theme})

			err := e.Apply(themesDir + "/theme.yml")
			tt.check(t, err)

			data, readErr := afero.ReadFile(fsys, configPath)
			be.NilErr(t, readErr)
			be.Equal(t, tt.config, string(data))

			exists, statErr := afero.Exists(fsys, backupPath)
			be.NilErr(t, statErr)
			be.False(t, exists)
		})
	}
}

func TestApplyKeepsUnrelatedAnchors(t *testing.T) {
	config := "base: &b\n  size: 10\nfont: *b\ncolors:\n  name: Old\n"
	e, fsys := newTestEngine(t, config, map[string]string{"nord.yml": nordTheme})

	be.NilErr(t, e.Apply(themesDir+"/nord.yml"))

	after := readYAML(t, fsys, configPath)
	be.DeepEqual(t, any(map[string]any{"size": 10}), after["font"])
	be.DeepEqual(t, after["base"], after["font"])
}

// failingBackupFs refuses to create the backup file while fail is set.
type failingBackupFs struct {
	afero.Fs
	fail bool
}

func (f *failingBackupFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.fail && name == backupPath {
		return nil, errors.New("read-only directory")
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestApplyReportsBackupFailure(t *testing.T) {
	_, base := newTestEngine(t, userConfig, map[string]string{"nord.yml": nordTheme})
	fsys := &failingBackupFs{Fs: base, fail: true}
	e := NewEngine(fsys, configPath, log.New(io.Discard))

	be.NilErr(t, e.Apply(themesDir+"/nord.yml"))
	be.Nonzero(t, e.BackupErr())
	be.True(t, strings.Contains(e.BackupErr().Error(), "read-only directory"))

	after := readYAML(t, base, configPath)
	theme := readYAML(t, base, themesDir+"/nord.yml")
	be.DeepEqual(t, theme["colors"], after["colors"])

	// the next apply that manages a backup clears the failure
	fsys.fail = false
	be.NilErr(t, e.Apply(themesDir+"/nord.yml"))
	be.NilErr(t, e.BackupErr())
}

func TestApplyMissingTheme(t *testing.T) {
	e, _ := newTestEngine(t, userConfig, nil)

	err := e.Apply(themesDir + "/missing.yml")
	be.Nonzero(t, err)
	be.True(t, strings.Contains(err.Error(), "missing.yml"))
}

func TestCurrentThemeName(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		expected string
	}{
		{"named", userConfig, "Custom"},
		{"no name", "colors:\n  primary:\n    background: '#000000'\n", NameNotFound},
		{"no colors", "font: {}\n", NameNotFound},
		{"empty", "", NameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, tt.config, nil)

			name, err := e.CurrentThemeName()
			be.NilErr(t, err)
			be.Equal(t, tt.expected, name)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		e, _ := newTestEngine(t, "colors: [", nil)

		_, err := e.CurrentThemeName()
		var pe *ParseError
		be.True(t, errors.As(err, &pe))
	})
}
