package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/ringshot/internal/audio"
	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
	"github.com/vovakirdan/ringshot/internal/games/ringshot"
	"github.com/vovakirdan/ringshot/internal/platform/tui"
	"github.com/vovakirdan/ringshot/internal/settings"
	"github.com/vovakirdan/ringshot/internal/storage"
)

// app holds the collaborators built from the global flags.
type app struct {
	logger  *log.Logger
	logFile *os.File
	deps    tui.Deps
	sound   *audio.SoundManager
}

// newLogger returns a logger writing to --log, or discarding output since
// the TUI owns the terminal.
func newLogger() (*log.Logger, *os.File) {
	var w io.Writer = io.Discard
	var f *os.File
	if flagLogPath != "" {
		opened, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			w = opened
			f = opened
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ringshot",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// loadLevels reads tuning and the sector table. Errors are fatal.
func loadLevels() (config.RingshotConfig, []ringshot.LevelConfig) {
	tuning, err := config.LoadRingshot(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levels, err := ringshot.LevelsFromConfig(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return tuning, levels
}

// openStore opens the progress database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// newApp wires storage, settings and audio. Each one degrades with a
// warning instead of aborting.
func newApp(withAudio bool) *app {
	logger, logFile := newLogger()
	tuning, levels := loadLevels()

	a := &app{logger: logger, logFile: logFile}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		store = nil
	}

	sm, err := settings.Open(logger)
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
	}

	a.deps = tui.Deps{
		Store:    store,
		Settings: sm,
		Tuning:   tuning,
		Levels:   levels,
		Logger:   logger,
	}

	if withAudio {
		s := sm.Get()
		a.sound = audio.NewSoundManager(s.Volume, s.SoundEnabled, logger)
		if err := a.sound.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			a.deps.Audio = a.sound
		}
	}

	return a
}

// close releases everything newApp opened.
func (a *app) close() {
	if a.sound != nil {
		a.sound.Cleanup()
	}
	if a.deps.Store != nil {
		a.deps.Store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// runSession starts the interactive front end at the given screen.
func runSession(start tui.Start) {
	a := newApp(true)
	defer a.close()

	a.logger.Info("session starting", "fps", flagFPS, "seed", flagSeed, "sectors", len(a.deps.Levels))
	if err := tui.RunSession(a.deps, runtimeConfig(), start); err != nil {
		a.logger.Error("session failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		a.close()
		os.Exit(1)
	}
}
