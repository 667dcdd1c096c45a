package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-demos/internal/registry"
	"github.com/vovakirdan/arcade-demos/internal/storage"
)

var (
	flagScoresCSV   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <demo>",
	Short: "Show high scores for a demo",
	Long: `Display the top high scores for the specified demo.

With --csv every recorded run is written to stdout as CSV instead,
including the seed needed to replay it.

Examples:
  demos scores shooter
  demos scores maze --limit 20
  demos scores click --csv > click.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresCSV, "csv", false, "Export all runs as CSV")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if demo exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'demos list' to see available demos.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresCSV {
		if _, err := store.ExportCSV(gameID, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'demos play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-20s  %s\n", "Rank", "Score", "Result", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-20s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6s  %-20d  %s\n", i+1, entry.Score, result, entry.Seed, dateStr)
	}

	// Show aggregates
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Wins: %d  Avg: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	}
}
