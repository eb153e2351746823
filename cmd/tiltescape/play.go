package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ShiJbey/tilt-escape/internal/core"
	"github.com/ShiJbey/tilt-escape/internal/games/tiltmaze"
	"github.com/ShiJbey/tilt-escape/internal/platform/tui"
	"github.com/ShiJbey/tilt-escape/internal/registry"
	"github.com/ShiJbey/tilt-escape/internal/storage"
)

var (
	flagConfig    string
	flagLevelsDir string
	flagLevel     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tilt Escape",
	Long: `Start playing Tilt Escape.

Controls:
  WASD/Arrows - Tilt the board
  P           - Pause
  R           - Restart the run
  B/Esc       - View best runs
  Q/Ctrl+C    - Quit

Examples:
  tiltescape play
  tiltescape play --level 3
  tiltescape play --levels ./my-maps
  tiltescape play --config ./tiltmaze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of .map files to play instead of the campaign")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start on (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	tiltmaze.SetConfigPath(flagConfig)
	tiltmaze.SetLevelsDir(flagLevelsDir)
	if flagLevel > 0 {
		tiltmaze.SetStartLevel(flagLevel - 1)
	}

	game, err := registry.Create("tiltmaze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
