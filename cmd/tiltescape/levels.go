package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShiJbey/tilt-escape/internal/games/tiltmaze"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in campaign levels",
	Long:  `Shows the built-in campaign levels with their sizes and contents.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	sources := tiltmaze.BuiltinLevels()

	fmt.Printf("Campaign levels (%d):\n", len(sources))
	fmt.Println()
	fmt.Printf("  %-3s  %-12s  %-7s  %-6s  %s\n", "#", "Name", "Size", "Holes", "Guards")
	fmt.Printf("  %-3s  %-12s  %-7s  %-6s  %s\n", "-", "----", "----", "-----", "------")

	for i, src := range sources {
		l := tiltmaze.ParseLevel(src.Lines, tiltmaze.DefaultParams())
		fmt.Printf("  %-3d  %-12s  %-7s  %-6d  %d\n",
			i+1,
			src.Name,
			fmt.Sprintf("%dx%d", l.Width(), l.Height()),
			len(l.Holes),
			len(l.Guards),
		)
	}

	fmt.Println()
	fmt.Println("Run 'tiltescape play --level <#>' to start on a specific level.")
}
