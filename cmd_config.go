package main

import (
	"github.com/Rshep3087/alacritty-themes/config"
	"github.com/spf13/cobra"
)

// configCmd prints the settings in effect after merging file and flags.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Print the settings in effect, after merging the config file and flags, as TOML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.Encode(loadConfig())
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
