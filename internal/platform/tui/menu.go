package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	Colors    int
	BestMoves int  // 0 when the difficulty has not been solved
	Layouts   bool // Opens the saved layout picker instead of a game
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
	openLayouts    bool      // True if user picked the saved layouts entry
}

// NewMenuModel creates a new menu model listing every registered difficulty.
// store may be nil; best moves are then not shown.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Colors: g.Difficulty,
		}
		if store != nil {
			if best, ok, err := store.BestMoves(g.ID); err == nil && ok {
				item.BestMoves = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			if selected.Layouts {
				m.openLayouts = true
				return m, tea.Quit
			}
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("C O L O R   S O R T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(swatch(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.MenuDescription.Render("Choose a difficulty"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if !item.Layouts {
			best := "unsolved"
			if item.BestMoves > 0 {
				best = fmt.Sprintf("best %d", item.BestMoves)
			}
			line = fmt.Sprintf("%-26s %d colors  %-9s", item.Title, item.Colors, best)
		} else {
			line = fmt.Sprintf("%-46s", line)
		}

		if i == m.cursor {
			line = theme.MenuItemActive.Render("> " + line)
		} else {
			line = theme.MenuItemNormal.Render("  " + line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// swatch renders one block per palette color.
func swatch() string {
	colors := []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow,
		core.ColorMagenta, core.ColorCyan, core.ColorOrange, core.ColorPurple,
	}
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = styleFor(c).Render("██")
	}
	return strings.Join(parts, " ")
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsLayouts returns true if user picked the saved layouts entry.
func (m MenuModel) WantsLayouts() bool {
	return m.openLayouts
}

// WithLayouts adds the saved layouts entry at the end of the list.
func (m MenuModel) WithLayouts() MenuModel {
	m.items = append(m.items, MenuItem{Title: "Saved layouts...", Layouts: true})
	return m
}

// WantsScoreboard returns true if user requested the results screen.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width using its visible width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	WantsLayouts    bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
// withLayouts adds an entry for the saved layout picker.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, withLayouts bool) (MenuResult, error) {
	model := NewMenuModel(store, cfg)
	if withLayouts {
		model = model.WithLayouts()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.WantsLayouts():
		result.WantsLayouts = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result
}
