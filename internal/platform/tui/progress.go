package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringshot/internal/games/ringshot"
	"github.com/vovakirdan/ringshot/internal/storage"
)

// Progress layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show sector list sidebar
	sidebarWidth       = 22 // Width of sector list sidebar
	maxRuns            = 100
)

// ProgressKeyMap defines the key bindings for the progress screen.
type ProgressKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextSector key.Binding
	PrevSector key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSector, k.PrevSector, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSector, k.PrevSector},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSector: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next sector"),
		),
		PrevSector: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev sector"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProgressModel shows per-sector stars, statistics and the best runs.
type ProgressModel struct {
	levels      []ringshot.LevelConfig
	progress    []storage.LevelProgress
	cursor      int
	store       *storage.Store
	runs        []storage.RunRecord
	stats       *storage.LevelStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ProgressKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProgressModel creates a new progress model.
func NewProgressModel(store *storage.Store, levels []ringshot.LevelConfig, theme Theme, width, height int) ProgressModel {
	h := help.New()
	h.ShowAll = false

	m := ProgressModel{
		levels:      levels,
		store:       store,
		keys:        DefaultProgressKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		p, err := store.Progress(ringshot.LevelIDs(levels))
		if err != nil {
			m.loadErr = err
		} else {
			m.progress = p
		}
	}

	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadRuns(m.levels[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Stars", Width: 6},
		{Title: "Perfect", Width: 8},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.TableBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// tableHeight leaves room for the header, stats and help.
func tableHeight(screenH int) int {
	return max(screenH-10, 3)
}

// loadRuns loads history for the given sector.
func (m *ProgressModel) loadRuns(levelID int) {
	m.runs = nil
	m.stats = nil
	if m.store != nil {
		runs, err := m.store.TopRuns(levelID, maxRuns)
		if err == nil {
			m.runs = runs
		}
		stats, err := m.store.LevelStats(levelID)
		if err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "fail"
		stars := "-"
		if r.Success {
			result = "clear"
			stars = strings.Repeat("★", r.Stars)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			stars,
			fmt.Sprintf("%d", r.PerfectHits),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress screen.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextSector):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadRuns(m.levels[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSector):
			if len(m.levels) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.levels) - 1
				}
				m.loadRuns(m.levels[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// sectorStars returns the saved stars and lock state for sector i.
func (m ProgressModel) sectorStars(i int) (int, bool) {
	if i < len(m.progress) {
		return m.progress[i].Stars, m.progress[i].Unlocked
	}
	return 0, i == 0
}

// View renders the progress screen.
func (m ProgressModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "PROGRESS"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("PROGRESS - %s", m.levels[m.cursor].Title())
	}
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the sector sidebar next to the table.
func (m ProgressModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Sectors\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.levels {
		stars, unlocked := m.sectorStars(i)
		cursor := "  "
		style := m.theme.MenuItemNormal
		if !unlocked {
			style = m.theme.MenuItemLocked
		}
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(fmt.Sprintf("%s%02d ", cursor, l.ID))
		if unlocked {
			line += starString(stars, m.theme)
		} else {
			line += style.Render("locked")
		}
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)

	right := lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), tableStyle.Render(m.renderTableContent()))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(sidebar.String()), "  ", right)
}

// renderNarrowLayout renders a sector switcher above the table.
func (m ProgressModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.levels) > 0 {
		stars, _ := m.sectorStars(m.cursor)
		tab := fmt.Sprintf("< Sector %d %s >", m.levels[m.cursor].ID, starString(stars, m.theme))
		b.WriteString(centerText(tab, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(m.renderStats(), m.width))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderStats renders the one-line summary for the current sector.
func (m ProgressModel) renderStats() string {
	if m.loadErr != nil {
		return m.theme.MenuDescription.Render("Progress unavailable: " + m.loadErr.Error())
	}
	if m.stats == nil || m.stats.Runs == 0 {
		return m.theme.MenuDescription.Render("No runs yet")
	}
	s := m.stats
	return m.theme.MenuDescription.Render(fmt.Sprintf(
		"Runs %d  |  Clears %d (%.0f%%)  |  Best %d  |  Avg %.0f",
		s.Runs, s.Wins, s.WinRate()*100, s.HighScore, s.AvgScore,
	))
}

// renderTableContent renders the table or empty message.
func (m ProgressModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nClear a sector to set a score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}
