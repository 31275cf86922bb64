package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringshot/internal/config"
	"github.com/vovakirdan/ringshot/internal/core"
	"github.com/vovakirdan/ringshot/internal/games/ringshot"
	"github.com/vovakirdan/ringshot/internal/settings"
	"github.com/vovakirdan/ringshot/internal/storage"
)

// Deps are the collaborators shared by every screen of a session.
// Store, Settings and Audio may be nil.
type Deps struct {
	Store    *storage.Store
	Settings *settings.Manager
	Audio    ringshot.Audio
	Tuning   config.RingshotConfig
	Levels   []ringshot.LevelConfig
	Logger   *log.Logger
}

// audioControl is implemented by audio backends whose output follows the
// player settings.
type audioControl interface {
	SetVolume(v float64)
	SetEnabled(enabled bool)
}

// StartScreen selects the first screen of a session.
type StartScreen int

const (
	StartMenu StartScreen = iota
	StartSectors
	StartPlay
)

// Start describes where a session begins. LevelID is used with StartPlay.
type Start struct {
	Screen  StartScreen
	LevelID int
}

type screen int

const (
	screenMenu screen = iota
	screenSectors
	screenPlay
	screenProgress
)

// SessionModel manages the full flow: menu -> sector select -> play -> result.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	username string
	screen   screen
	menu     MenuModel
	sectors  SectorSelectModel
	progress ProgressModel
	play     *PlayModel
	streak   int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, username string, start Start) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Audio == nil {
		deps.Audio = ringshot.NopAudio{}
	}
	if len(deps.Levels) == 0 {
		deps.Levels = ringshot.Sectors()
	}

	m := SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
	}

	switch start.Screen {
	case StartPlay:
		if level, ok := ringshot.FindLevel(deps.Levels, start.LevelID); ok {
			m.startPlay(level)
			break
		}
		m.gotoSectors()
	case StartSectors:
		m.gotoSectors()
	default:
		m.gotoMenu()
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenPlay && m.play != nil {
		return m.play.Init()
	}
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenSectors:
		return m.updateSectors(msg)
	case screenProgress:
		return m.updateProgress(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if item, ok := m.menu.Selected(); ok {
		switch item {
		case itemPlay:
			m.gotoSectors()
		case itemProgress:
			m.gotoProgress()
		}
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateSectors(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.sectors.Update(msg)
	if sectors, ok := next.(SectorSelectModel); ok {
		m.sectors = sectors
	}

	switch {
	case m.sectors.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.sectors.IsGoingBack():
		m.gotoMenu()
		return m, nil
	case m.sectors.Selected() != nil:
		m.startPlay(*m.sectors.Selected())
		return m, m.play.Init()
	}

	return m, cmd
}

func (m SessionModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.progress.Update(msg)
	if progress, ok := next.(ProgressModel); ok {
		m.progress = progress
	}

	switch {
	case m.progress.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.progress.IsGoingBack():
		m.gotoMenu()
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if play, ok := next.(PlayModel); ok {
		m.play = &play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.Exited() {
		m.deps.Logger.Debug("sector aborted", "user", m.username, "sector", m.play.Level().ID)
		m.gotoSectors()
		return m, nil
	}

	if o, ok := m.play.Outcome(); ok {
		m.record(o)
		m.play.ShowResult(o, m.streak)
	}

	level := m.play.Level()
	switch m.play.Choice() {
	case choiceNext:
		if nextLevel, ok := ringshot.NextLevel(m.deps.Levels, level.ID); ok {
			m.startPlay(nextLevel)
			return m, m.play.Init()
		}
		m.gotoSectors()
		return m, nil
	case choiceReplay, choiceRetry:
		m.startPlay(level)
		return m, m.play.Init()
	case choiceMenu:
		m.gotoSectors()
		return m, nil
	}

	return m, cmd
}

// record updates the streak and persists a finished run.
func (m *SessionModel) record(o ringshot.Outcome) {
	if o.Success {
		m.streak++
	} else {
		m.streak = 0
	}

	m.deps.Logger.Info("run finished",
		"user", m.username,
		"sector", o.LevelID,
		"success", o.Success,
		"stars", o.Stars,
		"score", o.Score,
		"streak", m.streak,
	)

	if m.deps.Store == nil {
		return
	}

	if o.Success {
		nextID := 0
		if next, ok := ringshot.NextLevel(m.deps.Levels, o.LevelID); ok {
			nextID = next.ID
		}
		if err := m.deps.Store.SaveLevelComplete(o.LevelID, o.Stars, nextID); err != nil {
			m.deps.Logger.Warn("could not save progress", "sector", o.LevelID, "err", err)
		}
	}

	run := storage.RunRecord{
		LevelID:     o.LevelID,
		Success:     o.Success,
		Stars:       o.Stars,
		Score:       o.Score,
		PerfectHits: o.PerfectHits,
	}
	if _, err := m.deps.Store.SaveRun(run); err != nil {
		m.deps.Logger.Warn("could not save run", "sector", o.LevelID, "err", err)
	}
}

func (m *SessionModel) theme() Theme {
	return ThemeByName(m.deps.Settings.Get().Theme)
}

func (m *SessionModel) startPlay(level ringshot.LevelConfig) {
	s := m.deps.Settings.Get()
	if ac, ok := m.deps.Audio.(audioControl); ok {
		ac.SetEnabled(s.SoundEnabled)
		ac.SetVolume(s.Volume)
	}

	play := NewPlayModel(PlayParams{
		Level:        level,
		Tuning:       m.deps.Tuning,
		Audio:        m.deps.Audio,
		Streak:       m.streak,
		DisableShake: !s.ShakeEnabled,
		Config:       m.config,
		Theme:        m.theme(),
	})
	m.play = &play
	m.screen = screenPlay
}

func (m *SessionModel) gotoMenu() {
	total := 0
	if m.deps.Store != nil {
		stars, err := m.deps.Store.TotalStars()
		if err != nil {
			m.deps.Logger.Warn("could not read stars", "err", err)
		}
		total = stars
	}
	m.menu = NewMenuModel(m.deps.Settings, total, m.config.ScreenW, m.config.ScreenH)
	m.play = nil
	m.screen = screenMenu
}

func (m *SessionModel) gotoSectors() {
	var progress []storage.LevelProgress
	if m.deps.Store != nil {
		p, err := m.deps.Store.Progress(ringshot.LevelIDs(m.deps.Levels))
		if err != nil {
			m.deps.Logger.Warn("could not read progress", "err", err)
		}
		progress = p
	}
	m.sectors = NewSectorSelectModel(m.deps.Levels, progress, m.theme(), m.config.ScreenW, m.config.ScreenH)
	m.play = nil
	m.screen = screenSectors
}

func (m *SessionModel) gotoProgress() {
	m.progress = NewProgressModel(m.deps.Store, m.deps.Levels, m.theme(), m.config.ScreenW, m.config.ScreenH)
	m.screen = screenProgress
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenSectors:
		return m.sectors.View()
	case screenProgress:
		return m.progress.View()
	default:
		return m.menu.View()
	}
}

// Streak returns the current win streak.
func (m SessionModel) Streak() int {
	return m.streak
}

// RunSession runs a full interactive session in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig, start Start) error {
	model := NewSessionModel(deps, cfg, "local", start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
