// ringshot is a slingshot dart game for the terminal.
//
// Usage:
//
//	ringshot play [sector]    - Play a sector (sector select when omitted)
//	ringshot menu             - Start at the main menu
//	ringshot list             - List sectors with saved stars
//	ringshot scores <sector>  - Show the best runs of a sector
//	ringshot progress         - Show or reset campaign progress
//	ringshot settings         - Show or change player settings
//	ringshot serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.ringshot/ringshot.db)
//	--config <path>  - Load tuning from a YAML file
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringshot",
	Short: "Ringshot - a slingshot dart game for your terminal",
	Long: `Ringshot is a precision dart game played in the terminal.
Pull back, release, and land darts on a moving target. Clear all 15
sectors, chase three-star ratings and keep your streak alive.

Available commands:
  play      - Play a sector directly
  menu      - Start at the main menu
  list      - Show all sectors
  scores    - View the best runs of a sector
  progress  - View or reset campaign progress
  settings  - View or change settings
  serve     - Start SSH server for remote play

Examples:
  ringshot play
  ringshot play 4
  ringshot menu
  ringshot serve --ssh :2222
  ringshot scores 1`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(settingsCmd)
}
