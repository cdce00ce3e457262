package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Rshep3087/alacritty-themes/config"
	"github.com/Rshep3087/alacritty-themes/selection"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const logFile = "alacritty-themes.log"

// Global variables for configuration.
var (
	cfgFile         string
	debug           bool
	printCurrent    bool
	alacrittyConfig string
	themesDir       string
	confirmApply    bool
	appFs           = afero.NewOsFs()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "alacritty-themes [theme]",
	Short: "Browse and apply Alacritty color themes",
	Long: `Browse the themes in your Alacritty themes directory with a live preview,
or apply one by name. The colors section of alacritty.yml is replaced by the
theme's colors; a backup is written next to it before the first change.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Setup logging
		log.SetLevel(log.InfoLevel)
		if loadConfig().Debug {
			log.SetLevel(log.DebugLevel)
		}

		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		cfg := loadConfig()

		w, err := newWorkspace(appFs, cfg)
		if err != nil {
			return err
		}

		switch {
		case printCurrent:
			return printCurrentTheme(c.OutOrStdout(), w)
		case len(args) == 1:
			return applyByName(w, args[0])
		}

		return runPicker(c.Context(), w)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is alacritty-themes.toml in the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&alacrittyConfig, "alacritty-config", "",
		"alacritty.yml to edit (default is searched in $HOME and $XDG_CONFIG_HOME/alacritty)")
	rootCmd.PersistentFlags().StringVar(&themesDir, "themes-dir", "",
		"directory to read themes from (default is $XDG_CONFIG_HOME/alacritty/themes)")

	rootCmd.Flags().BoolVarP(&printCurrent, "print-current-theme", "p", false,
		"print the name of the theme currently applied")
	rootCmd.Flags().BoolVar(&confirmApply, "confirm", false, "ask before applying a theme from the picker")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("alacritty_config", rootCmd.PersistentFlags().Lookup("alacritty-config"))
	_ = viper.BindPFlag("themes_dir", rootCmd.PersistentFlags().Lookup("themes-dir"))
	_ = viper.BindPFlag("confirm_apply", rootCmd.Flags().Lookup("confirm"))

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in multiple locations (in order of precedence)
		viper.SetConfigName(config.Name)
		viper.SetConfigType("toml")

		for _, dir := range config.SearchDirs() {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("ALACRITTY_THEMES")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())
}

// loadConfig merges the config file with the flags. Flags win when set.
func loadConfig() config.Config {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Warn("Invalid config file, using defaults", "error", err)
		cfg = config.Config{}
	}

	cfg.Debug = cfg.Debug || debug
	cfg.ConfirmApply = cfg.ConfirmApply || confirmApply

	return cfg
}

// runPicker starts the interactive picker over the catalog.
func runPicker(ctx context.Context, w workspace) error {
	entries, err := w.themes()
	if err != nil {
		return err
	}

	machine, err := selection.New(entries)
	if err != nil {
		dir, _ := w.themesDir()
		return fmt.Errorf("%w in %s", err, dir)
	}

	engine, err := w.engine()
	if err != nil {
		return err
	}

	// the alternate screen owns stderr while the picker runs
	if w.config.Debug {
		f, err := tea.LogToFile(logFile, config.Name)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	m := newModel(w.fs, machine, engine, w.config)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// Utility functions for output formatting.
func outputJSON(out io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(out, string(jsonData))
	return err
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
