package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/games/ringshot"
	"github.com/vovakirdan/ringshot/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [sector]",
	Short: "Play a sector",
	Long: `Start playing the given sector, or open the sector select when
no sector is given. Locked sectors can still be played directly.

Controls:
  Mouse drag       - Pull back and release to shoot
  Space            - Grab the dart / release the shot
  Arrows/hjkl      - Move the pull point (shift for larger steps)
  X                - Cancel the pull
  P                - Pause
  Esc              - Leave the sector
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  ringshot play
  ringshot play 3
  ringshot play 7 --seed 42
  ringshot play 1 --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runSession(tui.Start{Screen: tui.StartSectors})
		return
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: sector must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	_, levels := loadLevels()
	if _, ok := ringshot.FindLevel(levels, id); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown sector %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'ringshot list' to see available sectors.")
		os.Exit(1)
	}

	runSession(tui.Start{Screen: tui.StartPlay, LevelID: id})
}
