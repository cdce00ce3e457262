package alacritty

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrConfigNotFound is returned when no Alacritty configuration file exists
// in any of the searched locations.
var ErrConfigNotFound = errors.New("alacritty config file not found")

const configFileName = "alacritty.yml"

// EnvironmentError reports a variable the tool cannot run without.
type EnvironmentError struct {
	Var string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Var)
}

// Environment holds the directories the configuration and themes are found
// relative to. It is resolved once at startup. ConfigHome is empty when
// XDG_CONFIG_HOME is unset.
type Environment struct {
	Home       string
	ConfigHome string
}

// EnvironmentFromOS reads HOME and XDG_CONFIG_HOME. A missing HOME is an
// error right away; a missing XDG_CONFIG_HOME only once a path needs it.
func EnvironmentFromOS() (Environment, error) {
	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		return Environment{}, &EnvironmentError{Var: "HOME"}
	}

	return Environment{Home: home, ConfigHome: os.Getenv("XDG_CONFIG_HOME")}, nil
}

// ConfigCandidates returns the configuration paths in the order they are
// tried. The XDG path is left out when XDG_CONFIG_HOME is unset.
func (e Environment) ConfigCandidates() []string {
	candidates := []string{filepath.Join(e.Home, configFileName)}
	if e.ConfigHome != "" {
		candidates = append(candidates, filepath.Join(e.ConfigHome, "alacritty", configFileName))
	}
	return candidates
}

// ThemesDir is where theme files are read from.
func (e Environment) ThemesDir() (string, error) {
	if e.ConfigHome == "" {
		return "", &EnvironmentError{Var: "XDG_CONFIG_HOME"}
	}
	return filepath.Join(e.ConfigHome, "alacritty", "themes"), nil
}

// Locate returns the first configuration candidate that exists. Without
// $HOME/alacritty.yml, XDG_CONFIG_HOME must be set.
func Locate(fsys afero.Fs, env Environment) (string, error) {
	candidates := env.ConfigCandidates()
	for _, path := range candidates {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		if exists {
			return path, nil
		}
	}

	if env.ConfigHome == "" {
		return "", &EnvironmentError{Var: "XDG_CONFIG_HOME"}
	}

	return "", fmt.Errorf("%w (looked in %v)", ErrConfigNotFound, candidates)
}
