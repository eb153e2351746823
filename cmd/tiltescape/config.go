package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ShiJbey/tilt-escape/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config YAML",
	Long: `Print the built-in game configuration.

Redirect it to a file to customize physics and guard tuning:
  tiltescape config > tiltmaze.yaml
  tiltescape play --config ./tiltmaze.yaml

Configs placed at ~/.tiltescape/configs/tiltmaze.yaml or
./configs/tiltmaze.yaml are picked up automatically.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		//nolint:errcheck // Writing to stdout
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
