// Package palette models the colors section of an Alacritty theme file.
package palette

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultColor is used for every color the theme file leaves out.
const DefaultColor = "#000000"

// Colors is the typed form of a theme's top-level colors key.
type Colors struct {
	Name    string  `yaml:"name,omitempty" json:"name,omitempty"`
	Author  string  `yaml:"author,omitempty" json:"author,omitempty"`
	Primary Primary `yaml:"primary" json:"primary"`
	Cursor  Cursor  `yaml:"cursor" json:"cursor"`
	Normal  ANSI    `yaml:"normal" json:"normal"`
	Bright  ANSI    `yaml:"bright" json:"bright"`
}

// Primary holds the default background and foreground.
type Primary struct {
	Background string `yaml:"background" json:"background"`
	Foreground string `yaml:"foreground" json:"foreground"`
}

// Cursor holds the cursor colors.
type Cursor struct {
	Text   string `yaml:"text" json:"text"`
	Cursor string `yaml:"cursor" json:"cursor"`
}

// ANSI holds the eight named terminal colors of one intensity.
type ANSI struct {
	Black   string `yaml:"black" json:"black"`
	Red     string `yaml:"red" json:"red"`
	Green   string `yaml:"green" json:"green"`
	Yellow  string `yaml:"yellow" json:"yellow"`
	Blue    string `yaml:"blue" json:"blue"`
	Magenta string `yaml:"magenta" json:"magenta"`
	Cyan    string `yaml:"cyan" json:"cyan"`
	White   string `yaml:"white" json:"white"`
}

// document is the whole theme file; only colors is read.
type document struct {
	Colors Colors `yaml:"colors"`
}

// ParseError reports a theme file that is not a valid colors document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse theme: %v", e.Err)
	}
	return fmt.Sprintf("parse theme %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Default returns a fully black palette with no name or author.
func Default() Colors {
	var c Colors
	c.fillDefaults()
	return c
}

// Parse decodes a theme document. Fields missing from data take their
// default; malformed YAML returns a *ParseError.
func Parse(data []byte) (Colors, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (Colors, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}

	doc.Colors.fillDefaults()
	return doc.Colors, nil
}

// Load reads and parses the theme at path.
func Load(fsys afero.Fs, path string) (Colors, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Default(), fmt.Errorf("read theme %s: %w", path, err)
	}

	return parse(data, path)
}

// LoadOrDefault is Load for previews: any failure yields Default so that
// browsing never stops on a broken file.
func LoadOrDefault(fsys afero.Fs, path string) Colors {
	c, err := Load(fsys, path)
	if err != nil {
		return Default()
	}
	return c
}

func (c *Colors) fillDefaults() {
	for _, field := range []*string{
		&c.Primary.Background, &c.Primary.Foreground,
		&c.Cursor.Text, &c.Cursor.Cursor,
	} {
		orDefault(field)
	}
	c.Normal.fillDefaults()
	c.Bright.fillDefaults()
}

func (a *ANSI) fillDefaults() {
	for _, field := range a.fields() {
		orDefault(field)
	}
}

func (a *ANSI) fields() []*string {
	return []*string{&a.Black, &a.Red, &a.Green, &a.Yellow, &a.Blue, &a.Magenta, &a.Cyan, &a.White}
}

func orDefault(s *string) {
	if *s == "" {
		*s = DefaultColor
	}
}
