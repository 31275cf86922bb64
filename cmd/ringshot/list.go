package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/games/ringshot"
	"github.com/vovakirdan/ringshot/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sectors",
	Long:  `Shows every sector with its phase, ring count and saved stars.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	_, levels := loadLevels()

	var progress []storage.LevelProgress
	if store, err := storage.Open(flagDBPath); err == nil {
		progress, _ = store.Progress(ringshot.LevelIDs(levels))
		store.Close()
	}

	fmt.Println("Sectors:")
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-9s  %-5s  %s\n", "ID", "Name", "Phase", "Rings", "Stars")
	fmt.Printf("  %-3s  %-18s  %-9s  %-5s  %s\n", "--", "----", "-----", "-----", "-----")

	for i, l := range levels {
		stars := "-"
		if i < len(progress) {
			switch {
			case !progress[i].Unlocked:
				stars = "locked"
			default:
				stars = strings.Repeat("★", progress[i].Stars) + strings.Repeat("☆", 3-progress[i].Stars)
			}
		}
		fmt.Printf("  %-3d  %-18s  %-9s  %-5d  %s\n", l.ID, l.Name, l.Phase(), l.RingsToWin, stars)
	}

	fmt.Println()
	fmt.Println("Run 'ringshot play <id>' to play a sector.")
}
