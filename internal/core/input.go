package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone             Action = iota
	ActionLeft                    // H, Left arrow - move cursor left
	ActionRight                   // L, Right arrow - move cursor right
	ActionSelect                  // Space, Enter - click the tube under the cursor
	ActionPick                    // 1-9 - click a tube directly (see InputFrame.Pick)
	ActionBack                    // Escape, B - drop the current selection
	ActionRestart                 // R - replay the same layout
	ActionNewGame                 // N - deal a new layout
	ActionToggleColorblind        // C - switch colorblind rendering
	ActionPause                   // P - pause/unpause
	ActionQuit                    // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionPick:
		return "Pick"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNewGame:
		return "NewGame"
	case ActionToggleColorblind:
		return "ToggleColorblind"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ClickCursor marks a queued click on the tube under the cursor.
const ClickCursor = -1

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds tube clicks in the order they arrived: a zero-based
	// tube index from a number key, or ClickCursor from Select.
	Clicks []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// ActionSelect also queues a click on the cursor tube.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a == ActionSelect {
		f.Clicks = append(f.Clicks, ClickCursor)
	}
}

// SetPick queues a click on a tube chosen by index.
func (f *InputFrame) SetPick(index int) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[ActionPick] = true
	f.Clicks = append(f.Clicks, index)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append([]int(nil), f.Clicks...)
	return clone
}
