package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/layouts"
)

// LayoutMenuModel is the picker for saved layout files.
type LayoutMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	layouts      []layouts.Layout
	loadErr      error
	selected     *layouts.Layout
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLayoutMenuModel lists the valid layouts under root.
func NewLayoutMenuModel(root string, width, height int) LayoutMenuModel {
	all, err := layouts.NewLoader(root).LoadAll()

	return LayoutMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		layouts:   all,
		loadErr:   err,
	}
}

// Init initializes the model.
func (m LayoutMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LayoutMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LayoutMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.layouts)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.layouts) > 0 {
			l := m.layouts[m.cursor]
			m.selected = &l
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems returns how many layouts fit between header and footer.
func (m LayoutMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LayoutMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the layout list.
func (m LayoutMenuModel) View() string {
	if m.quitting || m.back || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("S A V E D   L A Y O U T S"), m.width))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText(theme.MenuDescription.Render("No layouts directory found."), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(theme.MenuDescription.Render("Save one with 'colorsort deal --yaml --out ~/.colorsort/layouts/<name>.yaml'"), m.width))
		b.WriteString("\n")
	case len(m.layouts) == 0:
		b.WriteString(centerText(theme.MenuDescription.Render("No valid layouts found."), m.width))
		b.WriteString("\n")
	default:
		b.WriteString(centerText(theme.MenuDescription.Render("Select a layout:"), m.width))
		b.WriteString("\n\n")

		end := min(m.scrollOffset+m.visibleItems(), len(m.layouts))
		if m.scrollOffset > 0 {
			b.WriteString(centerText(theme.MenuDescription.Render("... more above ..."), m.width))
			b.WriteString("\n")
		}
		for i := m.scrollOffset; i < end; i++ {
			l := m.layouts[i]
			cursor := "  "
			style := theme.MenuItemNormal
			if i == m.cursor {
				cursor = "> "
				style = theme.MenuItemActive
			}
			line := fmt.Sprintf("%s%-20s %d colors, %d tubes", cursor, l.Name, l.ColorCount(), len(l.Tubes))
			b.WriteString(centerText(style.Render(line), m.width))
			b.WriteString("\n")
		}
		if end < len(m.layouts) {
			b.WriteString(centerText(theme.MenuDescription.Render("... more below ..."), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := theme.Controls.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Layouts returns the layouts offered.
func (m LayoutMenuModel) Layouts() []layouts.Layout {
	return m.layouts
}

// Selected returns the chosen layout, or nil.
func (m LayoutMenuModel) Selected() *layouts.Layout {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LayoutMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LayoutMenuModel) WantsBack() bool {
	return m.back
}

// RunLayoutSelector runs the layout picker.
// A nil layout with a nil error means the user went back or quit; quit
// reports whether it was a quit.
func RunLayoutSelector(root string, cfg core.RuntimeConfig) (l *layouts.Layout, quit bool, err error) {
	model := NewLayoutMenuModel(root, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LayoutMenuModel)
	if !ok {
		return nil, true, nil
	}

	return m.Selected(), m.IsQuitting(), nil
}
