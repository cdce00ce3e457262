package palette

import (
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/spf13/afero"
)

const dracula = `colors:
  name: Dracula
  author: Zeno Rocha
  primary:
    background: '#282a36'
    foreground: '#f8f8f2'
  cursor:
    text: CellBackground
    cursor: CellForeground
  normal:
    black:   '#000000'
    red:     '#ff5555'
    green:   '#50fa7b'
    yellow:  '#f1fa8c'
    blue:    '#bd93f9'
    magenta: '#ff79c6'
    cyan:    '#8be9fd'
    white:   '#bfbfbf'
  bright:
    black:   '#4d4d4d'
    red:     '#ff6e67'
    green:   '#5af78e'
    yellow:  '#f4f99d'
    blue:    '#caa9fa'
    magenta: '#ff92d0'
    cyan:    '#9aedfe'
    white:   '#e6e6e6'
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(dracula))
	be.NilErr(t, err)

	be.Equal(t, "Dracula", c.Name)
	be.Equal(t, "Zeno Rocha", c.Author)
	be.Equal(t, "#282a36", c.Primary.Background)
	be.Equal(t, "#f8f8f2", c.Primary.Foreground)
	be.Equal(t, "CellBackground", c.Cursor.Text)
	be.Equal(t, "#ff5555", c.Normal.Red)
	be.Equal(t, "#e6e6e6", c.Bright.White)
}

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, c Colors)
	}{
		{
			name:  "empty document",
			input: "",
			check: func(t *testing.T, c Colors) {
				be.Equal(t, Default(), c)
				be.Equal(t, "", c.Name)
			},
		},
		{
			name:  "missing cursor",
			input: "colors:\n  primary:\n    background: '#111111'\n    foreground: '#eeeeee'\n",
			check: func(t *testing.T, c Colors) {
				be.Equal(t, DefaultColor, c.Cursor.Text)
				be.Equal(t, DefaultColor, c.Cursor.Cursor)
				be.Equal(t, "#111111", c.Primary.Background)
			},
		},
		{
			name:  "partial primary",
			input: "colors:\n  primary:\n    background: '#111111'\n",
			check: func(t *testing.T, c Colors) {
				be.Equal(t, "#111111", c.Primary.Background)
				be.Equal(t, DefaultColor, c.Primary.Foreground)
			},
		},
		{
			name:  "no colors key",
			input: "font:\n  size: 12\n",
			check: func(t *testing.T, c Colors) {
				be.Equal(t, Default(), c)
			},
		},
		{
			name:  "unquoted hex",
			input: "colors:\n  normal:\n    red: 0xcc6666\n",
			check: func(t *testing.T, c Colors) {
				be.Equal(t, "0xcc6666", c.Normal.Red)
				be.Equal(t, DefaultColor, c.Normal.Green)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.input))
			be.NilErr(t, err)
			tt.check(t, c)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{
		"colors: [unterminated",
		"colors: just a string",
		"colors:\n  primary:\n    - '#000000'\n",
	} {
		t.Run(input, func(t *testing.T) {
			c, err := Parse([]byte(input))

			var pe *ParseError
			be.True(t, errors.As(err, &pe))
			be.Equal(t, Default(), c)
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	for _, field := range append(c.Normal.fields(), c.Bright.fields()...) {
		be.Equal(t, DefaultColor, *field)
	}
	be.Equal(t, DefaultColor, c.Primary.Background)
	be.Equal(t, DefaultColor, c.Cursor.Cursor)
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	be.NilErr(t, afero.WriteFile(fsys, "/themes/dracula.yml", []byte(dracula), 0o644))
	be.NilErr(t, afero.WriteFile(fsys, "/themes/broken.yml", []byte("colors: ["), 0o644))

	c, err := Load(fsys, "/themes/dracula.yml")
	be.NilErr(t, err)
	be.Equal(t, "Dracula", c.Name)

	_, err = Load(fsys, "/themes/broken.yml")
	var pe *ParseError
	be.True(t, errors.As(err, &pe))
	be.Equal(t, "/themes/broken.yml", pe.Path)

	_, err = Load(fsys, "/themes/missing.yml")
	be.Nonzero(t, err)
	be.False(t, errors.As(err, &pe))
}

func TestLoadOrDefault(t *testing.T) {
	fsys := afero.NewMemMapFs()
	be.NilErr(t, afero.WriteFile(fsys, "/themes/broken.yml", []byte("colors: ["), 0o644))

	be.Equal(t, Default(), LoadOrDefault(fsys, "/themes/broken.yml"))
	be.Equal(t, Default(), LoadOrDefault(fsys, "/themes/missing.yml"))
}
