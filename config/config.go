// Package config holds the settings of alacritty-themes itself, as opposed to
// the Alacritty configuration it edits.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Name is the base name of the settings file, without extension.
const Name = "alacritty-themes"

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// AlacrittyConfig overrides the Alacritty configuration file to edit
	AlacrittyConfig string `toml:"alacritty_config,omitempty" mapstructure:"alacritty_config"`
	// ThemesDir overrides the directory themes are read from
	ThemesDir string `toml:"themes_dir,omitempty" mapstructure:"themes_dir"`
	// ConfirmApply asks before applying a theme from the picker
	ConfirmApply bool `toml:"confirm_apply" mapstructure:"confirm_apply"`
	// Colors customizes the picker itself
	Colors Colors `toml:"colors" mapstructure:"colors"`
}

// Colors are the picker's own colors. Empty values use the built-in ones.
type Colors struct {
	Primary       string `toml:"primary,omitempty" mapstructure:"primary"`
	Error         string `toml:"error,omitempty" mapstructure:"error"`
	Success       string `toml:"success,omitempty" mapstructure:"success"`
	Muted         string `toml:"muted,omitempty" mapstructure:"muted"`
	Border        string `toml:"border,omitempty" mapstructure:"border"`
	Background    string `toml:"background,omitempty" mapstructure:"background"`
	Text          string `toml:"text,omitempty" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text,omitempty" mapstructure:"secondary_text"`
}

// SearchDirs returns the directories searched for the settings file, in
// order of precedence.
func SearchDirs() []string {
	// Current directory (highest precedence)
	dirs := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, Name))
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, homeDir, filepath.Join(homeDir, ".config", Name))
	}

	return dirs
}

// Encode renders c as TOML.
func Encode(c Config) ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
