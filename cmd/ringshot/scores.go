package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/games/ringshot"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <sector>",
	Short: "Show the best runs of a sector",
	Long: `Display the top 10 runs and statistics for the given sector.

Examples:
  ringshot scores 1
  ringshot scores 12`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: sector must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	_, levels := loadLevels()
	level, ok := ringshot.FindLevel(levels, id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown sector %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'ringshot list' to see available sectors.")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	runs, err := store.TopRuns(id, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", level.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ringshot play %d' to set the first score!\n", id)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-6s  %s\n", "Rank", "Score", "Stars", "Perfect", "Result", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-7s  %-6s  %s\n", "----", "-----", "-----", "-------", "------", "----")

	for i, r := range runs {
		result := "fail"
		if r.Success {
			result = "clear"
		}
		fmt.Printf("  %-4d  %-7d  %-5d  %-7d  %-6s  %s\n",
			i+1, r.Score, r.Stars, r.PerfectHits, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.LevelStats(id); err == nil {
		fmt.Printf("Runs: %d  Clears: %d (%.0f%%)  Best: %d  Avg: %.0f\n",
			stats.Runs, stats.Wins, stats.WinRate()*100, stats.HighScore, stats.AvgScore)
	}
}
