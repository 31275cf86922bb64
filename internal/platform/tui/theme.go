package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringshot/internal/core"
)

// Theme contains all configurable visual styles for the menus and the playfield palette.
type Theme struct {
	Name string

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemLocked  lipgloss.Style
	MenuDescription lipgloss.Style
	Stars           lipgloss.Style
	StarsEmpty      lipgloss.Style
	Help            lipgloss.Style

	// Table styles
	TableBorder   lipgloss.Color
	TableSelected lipgloss.Style

	// Palette overrides the default screen colors.
	Palette map[core.Color]lipgloss.Style
}

// DefaultTheme returns the default neon-on-dark theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
		MenuItemLocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Stars:           lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		StarsEmpty:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Help:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableBorder: lipgloss.Color("240"),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// NeonTheme pushes the playfield to saturated 256-color tones.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.Palette = map[core.Color]lipgloss.Style{
		core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("87")),  // Neon cyan
		core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("199")), // Neon pink
		core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("118")), // Neon green
		core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	}
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("123")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
	theme.Stars = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	theme.Palette = map[core.Color]lipgloss.Style{
		core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("123")), // Pastel cyan
		core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("218")), // Pastel pink
		core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("157")),
		core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("217")),
	}
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.Stars = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.Palette = make(map[core.Color]lipgloss.Style)
	gray := []string{"255", "250", "245", "240"}
	for c := range colorStyles {
		if c == core.ColorDefault {
			continue
		}
		theme.Palette[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(gray[int(c)%len(gray)]))
	}
	return theme
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "pastel":
		return PastelTheme()
	case "mono":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// style returns the lipgloss style for a screen color.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}
