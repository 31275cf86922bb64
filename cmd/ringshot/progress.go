package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/games/ringshot"
)

var flagResetProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset campaign progress",
	Long: `Show unlocked sectors, best stars and high scores.
With --reset, forget all stars and unlocks. Run history is kept.

Examples:
  ringshot progress
  ringshot progress --reset`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagResetProgress, "reset", false, "Reset stars and unlocked sectors")
}

func runProgress(_ *cobra.Command, _ []string) {
	_, levels := loadLevels()

	store := openStore()
	defer store.Close()

	if flagResetProgress {
		if err := store.ResetProgress(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Progress reset. Sector 1 is waiting.")
		return
	}

	progress, err := store.Progress(ringshot.LevelIDs(levels))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	total, _ := store.TotalStars()
	unlocked := 0

	fmt.Printf("  %-3s  %-18s  %-6s  %s\n", "ID", "Name", "Stars", "Best")
	fmt.Printf("  %-3s  %-18s  %-6s  %s\n", "--", "----", "-----", "----")
	for i, p := range progress {
		if !p.Unlocked {
			fmt.Printf("  %-3d  %-18s  %-6s  %s\n", p.LevelID, levels[i].Name, "locked", "-")
			continue
		}
		unlocked++
		best, _ := store.HighScore(p.LevelID)
		stars := strings.Repeat("★", p.Stars) + strings.Repeat("☆", 3-p.Stars)
		fmt.Printf("  %-3d  %-18s  %-6s  %d\n", p.LevelID, levels[i].Name, stars, best)
	}

	fmt.Println()
	fmt.Printf("Unlocked: %d/%d  Total stars: %d/%d\n", unlocked, len(levels), total, 3*len(levels))
}
