package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShiJbey/tilt-escape/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate run statistics",
	Long: `Display aggregate statistics over all recorded runs.

Examples:
  tiltescape stats
  tiltescape stats --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats("tiltmaze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run Statistics - Tilt Escape")
	fmt.Println()

	if stats.RunCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  Runs:          %d\n", stats.RunCount)
	fmt.Printf("  Best escapes:  %d\n", stats.BestEscapes)
	fmt.Printf("  Avg escapes:   %.1f\n", stats.AvgEscapes)
	fmt.Printf("  Total deaths:  %d\n", stats.TotalDeaths)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
