package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringshot/internal/settings"
)

// menuItem identifies a main menu entry.
type menuItem int

const (
	itemPlay menuItem = iota
	itemProgress
	itemSound
	itemVolume
	itemShake
	itemTheme
	itemQuit
)

var menuItems = []menuItem{itemPlay, itemProgress, itemSound, itemVolume, itemShake, itemTheme, itemQuit}

const volumeStep = 0.1

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor     int
	width      int
	height     int
	keyMapper  *KeyMapper
	settings   *settings.Manager
	totalStars int
	theme      Theme
	status     string
	selected   menuItem
	chosen     bool
	quitting   bool
}

// NewMenuModel creates a new main menu.
func NewMenuModel(sm *settings.Manager, totalStars, width, height int) MenuModel {
	return MenuModel{
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		settings:   sm,
		totalStars: totalStars,
		theme:      ThemeByName(sm.Get().Theme),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	item := menuItems[m.cursor]

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(item, -1)

	case MenuActionRight:
		m.adjust(item, 1)

	case MenuActionSelect:
		switch item {
		case itemPlay, itemProgress:
			m.selected = item
			m.chosen = true
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(item, 1)
		}
	}

	return m, nil
}

// adjust changes a setting entry and saves it.
func (m *MenuModel) adjust(item menuItem, dir int) {
	if m.settings == nil {
		return
	}

	switch item {
	case itemSound:
		m.settings.Update(func(s *settings.Settings) { s.SoundEnabled = !s.SoundEnabled })
	case itemVolume:
		m.settings.Update(func(s *settings.Settings) { s.Volume += float64(dir) * volumeStep })
	case itemShake:
		m.settings.Update(func(s *settings.Settings) { s.ShakeEnabled = !s.ShakeEnabled })
	case itemTheme:
		m.settings.Update(func(s *settings.Settings) { s.Theme = cycleTheme(s.Theme, dir) })
		m.theme = ThemeByName(m.settings.Get().Theme)
	default:
		return
	}

	m.status = ""
	if err := m.settings.Save(); err != nil {
		m.status = "settings not saved: " + err.Error()
	}
}

// cycleTheme returns the theme dir steps away from name.
func cycleTheme(name string, dir int) string {
	n := len(settings.Themes)
	for i, t := range settings.Themes {
		if t == name {
			return settings.Themes[((i+dir)%n+n)%n]
		}
	}
	return settings.Themes[0]
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// label returns the display text of a menu entry.
func (m MenuModel) label(item menuItem) string {
	s := m.settings.Get()
	switch item {
	case itemPlay:
		return "Play Game"
	case itemProgress:
		return "Progress"
	case itemSound:
		return "Sound: " + onOff(s.SoundEnabled)
	case itemVolume:
		return fmt.Sprintf("Volume: %d%%", int(s.Volume*100+0.5))
	case itemShake:
		return "Screen Shake: " + onOff(s.ShakeEnabled)
	case itemTheme:
		return "Theme: " + s.Theme
	case itemQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("R I N G S H O T"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuSubtitle.Render("HYPER PRECISION"), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+m.label(item)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	stars := fmt.Sprintf("TOTAL STARS %s %d", m.theme.Stars.Render("★"), m.totalStars)
	b.WriteString(centerText(stars, m.width))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(centerText(m.theme.MenuDescription.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(m.theme.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, if any.
func (m MenuModel) Selected() (menuItem, bool) {
	return m.selected, m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Theme returns the theme currently picked in the menu.
func (m MenuModel) Theme() Theme {
	return m.theme
}
