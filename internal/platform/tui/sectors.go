package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringshot/internal/games/ringshot"
	"github.com/vovakirdan/ringshot/internal/storage"
)

const sectorColumns = 3

// SectorSelectModel is the sector picker grid.
type SectorSelectModel struct {
	levels    []ringshot.LevelConfig
	progress  []storage.LevelProgress
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	theme     Theme
	selected  *ringshot.LevelConfig
	back      bool
	quitting  bool
}

// NewSectorSelectModel creates the picker. progress must line up with
// levels; a nil progress unlocks only the first sector.
func NewSectorSelectModel(levels []ringshot.LevelConfig, progress []storage.LevelProgress, theme Theme, width, height int) SectorSelectModel {
	if len(progress) != len(levels) {
		progress = make([]storage.LevelProgress, len(levels))
		for i, l := range levels {
			progress[i] = storage.LevelProgress{LevelID: l.ID, Unlocked: i == 0}
		}
	}

	m := SectorSelectModel{
		levels:    levels,
		progress:  progress,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     theme,
	}

	// Start on the furthest unlocked sector
	for i, p := range progress {
		if p.Unlocked {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SectorSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SectorSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m SectorSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.move(-sectorColumns)
	case MenuActionDown:
		m.move(sectorColumns)
	case MenuActionLeft:
		m.move(-1)
	case MenuActionRight:
		m.move(1)
	case MenuActionSelect:
		if len(m.levels) > 0 && m.progress[m.cursor].Unlocked {
			level := m.levels[m.cursor]
			m.selected = &level
		}
	case MenuActionBack:
		m.back = true
	}

	return m, nil
}

// move shifts the cursor, staying inside the grid.
func (m *SectorSelectModel) move(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.levels) {
		m.cursor = next
	}
}

// cellText renders one grid cell.
func (m SectorSelectModel) cellText(i int) string {
	p := m.progress[i]
	if !p.Unlocked {
		return m.theme.MenuItemLocked.Render(fmt.Sprintf(" %02d  ---  ", m.levels[i].ID))
	}

	id := fmt.Sprintf("%02d", m.levels[i].ID)
	if i == m.cursor {
		return m.theme.MenuItemActive.Render("[") + m.theme.MenuItemActive.Render(id) + "  " +
			starString(p.Stars, m.theme) + m.theme.MenuItemActive.Render(" ]")
	}
	return " " + m.theme.MenuItemNormal.Render(id) + "  " + starString(p.Stars, m.theme) + "  "
}

// View renders the sector grid.
func (m SectorSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("SELECT SECTOR"), m.width))
	b.WriteString("\n\n")

	for row := 0; row*sectorColumns < len(m.levels); row++ {
		cells := make([]string, 0, sectorColumns)
		for col := 0; col < sectorColumns; col++ {
			i := row*sectorColumns + col
			if i >= len(m.levels) {
				break
			}
			cells = append(cells, m.cellText(i))
		}
		b.WriteString(centerText(strings.Join(cells, "  "), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.levels) > 0 {
		level := m.levels[m.cursor]
		desc := fmt.Sprintf("%s  |  %s  |  %d rings", level.Title(), level.Phase(), level.RingsToWin)
		if !m.progress[m.cursor].Unlocked {
			desc = fmt.Sprintf("Sector %d is locked", level.ID)
		}
		b.WriteString(centerText(m.theme.MenuDescription.Render(desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Arrows: Move  |  Enter: Play  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(m.theme.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen sector, or nil if none selected.
func (m SectorSelectModel) Selected() *ringshot.LevelConfig {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to the main menu.
func (m SectorSelectModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m SectorSelectModel) IsQuitting() bool {
	return m.quitting
}
