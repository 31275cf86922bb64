package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringshot/internal/settings"
)

var (
	flagSound  bool
	flagVolume float64
	flagShake  bool
	flagTheme  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Show the saved settings, or change them with flags.

Examples:
  ringshot settings
  ringshot settings --sound=false
  ringshot settings --volume 0.5 --theme neon
  ringshot settings --shake=false`,
	Run: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSound, "sound", true, "Enable sound effects")
	settingsCmd.Flags().Float64Var(&flagVolume, "volume", 0.3, "Master volume from 0 to 1")
	settingsCmd.Flags().BoolVar(&flagShake, "shake", true, "Enable screen shake")
	settingsCmd.Flags().StringVar(&flagTheme, "theme", "default", "Color theme: "+strings.Join(settings.Themes, ", "))
}

func runSettings(cmd *cobra.Command, _ []string) {
	logger, logFile := newLogger()
	if logFile != nil {
		defer logFile.Close()
	}

	sm, err := settings.Open(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("theme") && !settings.ValidTheme(flagTheme) {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q (choose from %s)\n", flagTheme, strings.Join(settings.Themes, ", "))
		os.Exit(1)
	}
	if flags.Changed("volume") && (flagVolume < 0 || flagVolume > 1) {
		fmt.Fprintf(os.Stderr, "Error: volume must be between 0 and 1, got %v\n", flagVolume)
		os.Exit(1)
	}

	sm.Update(func(s *settings.Settings) {
		if flags.Changed("sound") {
			s.SoundEnabled = flagSound
			changed = true
		}
		if flags.Changed("volume") {
			s.Volume = flagVolume
			changed = true
		}
		if flags.Changed("shake") {
			s.ShakeEnabled = flagShake
			changed = true
		}
		if flags.Changed("theme") {
			s.Theme = flagTheme
			changed = true
		}
	})

	if changed {
		if !sm.Persistent() {
			fmt.Fprintln(os.Stderr, "Error: settings storage is unavailable, nothing saved")
			os.Exit(1)
		}
		if err := sm.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Settings saved.")
		fmt.Println()
	}

	s := sm.Get()
	fmt.Printf("  Sound:   %s\n", onOff(s.SoundEnabled))
	fmt.Printf("  Volume:  %d%%\n", int(s.Volume*100+0.5))
	fmt.Printf("  Shake:   %s\n", onOff(s.ShakeEnabled))
	fmt.Printf("  Theme:   %s\n", s.Theme)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
