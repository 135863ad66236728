package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels that would be played",
	Long: `Loads and validates the bundled world, or the path given with --levels,
and prints the levels in play order.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	data, err := levels.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2 // "ID" header
	for _, l := range data {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range data {
		fmt.Printf("  %-*s  %-20s  %dx%d\n", maxIDLen, l.ID, l.Name, l.Width, l.Height)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play' to start at the first level.")
}
