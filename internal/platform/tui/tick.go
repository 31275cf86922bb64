// Package tui provides the Bubble Tea front end for ringshot.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Run identifies the play
// screen that scheduled it so ticks from a finished run are dropped.
type TickMsg struct {
	Time time.Time
	Run  uint64
}

var runCounter atomic.Uint64

// nextRunID returns a fresh tick chain identifier.
func nextRunID() uint64 {
	return runCounter.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, run uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Run: run}
	})
}
