package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recorded runs, best first.

In a terminal this opens a scrollable scoreboard; when output is piped
it prints the top runs as plain text.

Examples:
  platformer scores
  platformer scores --limit 20 > runs.txt
  platformer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Runs to print when output is not a terminal")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-20s  %-9s  %s\n", "Rank", "Player", "Score", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-20s  %-9s  %s\n", "----", "------", "-----", "-----", "-------", "----")
	for i, r := range runs {
		level := fmt.Sprintf("%d %s", r.LevelReached, r.LevelName)
		outcome := "Game Over"
		if r.Outcome == storage.OutcomeVictory {
			outcome = "Victory"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-20s  %-9s  %s\n",
			i+1, r.Player, r.Score, level, outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs %d  Wins %d  Best %d  Avg %.0f\n", stats.Runs, stats.Victories, stats.HighScore, stats.AvgScore)
	}
}
