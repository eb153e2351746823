// tiltescape is a terminal game: tilt a maze board to roll a ball past
// patrolling guards and out through gaps in the walls.
//
// Usage:
//
//	tiltescape play          - Play the game
//	tiltescape levels        - List the built-in campaign levels
//	tiltescape serve         - Start SSH server for remote play
//	tiltescape scores        - Show best runs
//	tiltescape stats         - Show aggregate run statistics
//	tiltescape config        - Print the default game config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tiltescape/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/ShiJbey/tilt-escape/internal/games/tiltmaze"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltescape",
	Short: "Tilt Escape - Roll your way out of guarded mazes",
	Long: `Tilt Escape is a terminal game where you tilt the maze board to roll
a ball past patrolling guards, around holes, and out through gaps in
the outer walls.

Available commands:
  play     - Play the game
  levels   - List the built-in campaign levels
  serve    - Start SSH server for remote play
  scores   - View best runs
  stats    - View aggregate run statistics
  config   - Print the default game config YAML

Examples:
  tiltescape play
  tiltescape play --level 3
  tiltescape serve --ssh :2222
  tiltescape scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiltescape/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
