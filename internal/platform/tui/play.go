package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
	"github.com/vovakirdan/ringshot/internal/games/ringshot"
)

// PlayParams configures one run of a sector.
type PlayParams struct {
	Level        ringshot.LevelConfig
	Tuning       config.RingshotConfig
	Audio        ringshot.Audio
	Streak       int
	DisableShake bool
	Config       core.RuntimeConfig
	Theme        Theme
}

// runEvents collects game callbacks. It is shared by every copy of a
// PlayModel so callbacks fired inside Step are visible to the caller.
type runEvents struct {
	outcome   ringshot.Outcome
	delivered bool
	exited    bool
}

// PlayModel is the Bubble Tea model for a single ringshot run.
type PlayModel struct {
	game       *ringshot.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	theme      Theme
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	aim        keyAim
	events     *runEvents
	run        uint64
	result     *resultOverlay
	quitting   bool
}

// NewPlayModel creates a play model and resets the run.
func NewPlayModel(p PlayParams) PlayModel {
	cfg := p.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	events := &runEvents{}
	game := ringshot.New(ringshot.Options{
		Level:        p.Level,
		Tuning:       p.Tuning,
		Audio:        p.Audio,
		Streak:       p.Streak,
		DisableShake: p.DisableShake,
		OnOutcome: func(o ringshot.Outcome) {
			events.outcome = o
			events.delivered = true
		},
		OnExit: func() {
			events.exited = true
		},
	})
	game.Reset(cfg)

	return PlayModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		theme:      p.Theme,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		events:     events,
		run:        nextRunID(),
	}
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.run)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.result == nil {
			if ev, ok := mousePointer(msg, m.game.Viewport()); ok {
				m.inputFrame.AddPointer(ev.Kind, ev.Pos)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.SetScreenSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Run != m.run {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.result != nil {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.result.handle(m.keyMapper.MapKeyToMenuAction(msg), msg.String() == "r")
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionAim:
		m.aim.toggle(m.game.SpawnPoint(), &m.inputFrame)
	case core.ActionCancel:
		m.aim.cancel(&m.inputFrame)
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		step := keyNudge
		if m.keyMapper.IsCoarse(msg) {
			step = keyNudgeCoarse
		}
		m.aim.nudge(action, step, &m.inputFrame)
	case core.ActionBack, core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks. The game keeps stepping under the
// result overlay so effects can fade out.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	// Drop a keyboard pull the game refused or already consumed
	if m.aim.active && !m.game.Aiming() {
		m.aim.active = false
	}

	if m.events.exited {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.run)
}

// saveScreenshot saves the current screen to a file.
func (m *PlayModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ringshot", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("sector%02d_%s.txt", m.game.Level().ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.result != nil {
		m.result.draw(m.screen)
	}
	return RenderScreen(m.screen, m.theme)
}

// Outcome returns the delivered outcome that has no result overlay yet.
func (m PlayModel) Outcome() (ringshot.Outcome, bool) {
	if m.result != nil || !m.events.delivered {
		return ringshot.Outcome{}, false
	}
	return m.events.outcome, true
}

// ShowResult opens the result overlay for the delivered outcome.
func (m *PlayModel) ShowResult(o ringshot.Outcome, streak int) {
	m.result = newResultOverlay(o, streak)
}

// Choice returns what the player picked on the result overlay.
func (m PlayModel) Choice() resultChoice {
	if m.result == nil {
		return choiceNone
	}
	return m.result.chosen
}

// Exited returns true if the player left the sector mid-run.
func (m PlayModel) Exited() bool {
	return m.events.exited
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// Level returns the sector being played.
func (m PlayModel) Level() ringshot.LevelConfig {
	return m.game.Level()
}

// Config returns the current runtime config (may have been updated by resize).
func (m PlayModel) Config() core.RuntimeConfig {
	return m.config
}
