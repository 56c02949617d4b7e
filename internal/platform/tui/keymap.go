package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// For ActionPick the returned index is the zero-based tube index.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, pick int) {
	key := msg.String()

	// Number keys pick a tube directly
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionPick, int(key[0] - '1')
	}

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0
	case "left", "h", "a":
		return core.ActionLeft, 0
	case "right", "l", "d":
		return core.ActionRight, 0
	case " ", "enter":
		return core.ActionSelect, 0
	case "esc", "b":
		return core.ActionBack, 0
	case "r":
		return core.ActionRestart, 0
	case "n":
		return core.ActionNewGame, 0
	case "c":
		return core.ActionToggleColorblind, 0
	case "p":
		return core.ActionPause, 0
	}

	return core.ActionNone, 0
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns the mapped action; quitting is left to the caller.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action, pick := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit:
	case core.ActionPick:
		frame.SetPick(pick)
	default:
		frame.Set(action)
	}
	return action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
