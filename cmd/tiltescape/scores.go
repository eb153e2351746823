package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ShiJbey/tilt-escape/internal/platform/tui"
	"github.com/ShiJbey/tilt-escape/internal/storage"
)

var (
	flagScoresInteractive bool
	flagScoresAll         bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display recorded runs, ranked by levels escaped.

Examples:
  tiltescape scores                # Top 10 runs
  tiltescape scores --all          # Every recorded run
  tiltescape scores --interactive  # Browse runs in a full-screen table
  tiltescape scores --clear        # Delete all recorded runs
  tiltescape scores --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns("tiltmaze"); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cleared all recorded runs.")
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, "tiltmaze", "Tilt Escape", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunEntry
	if flagScoresAll {
		runs, err = store.AllRuns("tiltmaze")
	} else {
		runs, err = store.TopRuns("tiltmaze", 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Tilt Escape")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tiltescape play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %s\n", "Rank", "Escapes", "Deaths", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %s\n", "----", "-------", "------", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-8d  %-7d  %-6s  %s\n", i+1, entry.Escapes, entry.Deaths, timeStr, dateStr)
	}

	fmt.Println()
	best, err := store.BestRun("tiltmaze")
	if err == nil {
		fmt.Printf("Best: %d escapes\n", best)
	}
}
