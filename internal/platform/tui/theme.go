package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorsort/internal/core"
)

// Theme contains the visual styles for the board and menus.
type Theme struct {
	// Cell styles keyed by screen color; liquids use the palette entries.
	Cells map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style
}

// DefaultTheme returns the default 256-color theme.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:     lipgloss.NewStyle(),
			core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
			core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
			core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorPurple:      lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
			core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// HighContrastTheme uses the 16 base ANSI colors with bold liquids, for
// terminals with limited palettes or low contrast.
func HighContrastTheme() Theme {
	theme := DefaultTheme()
	bold := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}
	theme.Cells = map[core.Color]lipgloss.Style{
		core.ColorDefault:     lipgloss.NewStyle(),
		core.ColorRed:         bold("9"),
		core.ColorGreen:       bold("10"),
		core.ColorYellow:      bold("11"),
		core.ColorBlue:        bold("12"),
		core.ColorMagenta:     bold("13"),
		core.ColorCyan:        bold("14"),
		core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorBrightWhite: bold("15"),
		core.ColorOrange:      bold("3"),
		core.ColorPurple:      bold("5"),
		core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
	theme.MenuItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	theme.MenuItemActive = bold("11").Reverse(true)
	theme.MenuDescription = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	theme.Controls = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	return theme
}

// PastelTheme returns a softer theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Cells[core.ColorRed] = lipgloss.NewStyle().Foreground(lipgloss.Color("210"))
	theme.Cells[core.ColorGreen] = lipgloss.NewStyle().Foreground(lipgloss.Color("157"))
	theme.Cells[core.ColorYellow] = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	theme.Cells[core.ColorBlue] = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	theme.Cells[core.ColorMagenta] = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	theme.Cells[core.ColorCyan] = lipgloss.NewStyle().Foreground(lipgloss.Color("123"))
	theme.Cells[core.ColorOrange] = lipgloss.NewStyle().Foreground(lipgloss.Color("216"))
	theme.Cells[core.ColorPurple] = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	return theme
}

var themes = map[string]func() Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
	"pastel":        PastelTheme,
}

// ThemeNames returns the names accepted by ThemeByName.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a named theme. An empty name selects the default.
func ThemeByName(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	f, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	return f(), nil
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
