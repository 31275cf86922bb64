package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start ringshot at the main menu",
	Long: `Start ringshot in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Left/Right change settings in place; changes are saved immediately.

Examples:
  ringshot menu
  ringshot menu --fps 30
  ringshot menu --db ./ringshot.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runSession(tui.Start{Screen: tui.StartMenu})
}
