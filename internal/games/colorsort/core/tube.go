// Package core provides the rule engine for the Color Sort puzzle.
// This package is UI-agnostic and deterministic: every operation takes
// values and returns new values, so earlier states stay valid.
package core

// Tube is a capacity-bounded stack of colored units.
// Colors is ordered bottom first; the last element is the pourable top.
type Tube struct {
	ID          int
	Colors      []Color
	MaxCapacity int
}

// NewTube creates a tube holding a copy of colors.
func NewTube(id, capacity int, colors ...Color) Tube {
	return Tube{
		ID:          id,
		Colors:      cloneColors(colors),
		MaxCapacity: capacity,
	}
}

// Len returns the number of units in the tube.
func (t Tube) Len() int {
	return len(t.Colors)
}

// IsEmpty returns true if the tube holds no units.
func (t Tube) IsEmpty() bool {
	return len(t.Colors) == 0
}

// IsFull returns true if the tube is at capacity.
func (t Tube) IsFull() bool {
	return len(t.Colors) >= t.MaxCapacity
}

// FreeSlots returns how many more units fit in the tube.
func (t Tube) FreeSlots() int {
	free := t.MaxCapacity - len(t.Colors)
	if free < 0 {
		return 0
	}
	return free
}

// Top returns the top color, or false for an empty tube.
func (t Tube) Top() (Color, bool) {
	if len(t.Colors) == 0 {
		return 0, false
	}
	return t.Colors[len(t.Colors)-1], true
}

// TopRun returns the length of the consecutive same-colored run at the top.
func (t Tube) TopRun() int {
	top, ok := t.Top()
	if !ok {
		return 0
	}
	run := 0
	for i := len(t.Colors) - 1; i >= 0 && t.Colors[i] == top; i-- {
		run++
	}
	return run
}

// IsSorted returns true if the tube is full and every unit has the same color.
func (t Tube) IsSorted() bool {
	if len(t.Colors) != t.MaxCapacity || len(t.Colors) == 0 {
		return false
	}
	return t.TopRun() == len(t.Colors)
}

// Clone returns a deep copy that shares no storage with t.
func (t Tube) Clone() Tube {
	return Tube{
		ID:          t.ID,
		Colors:      cloneColors(t.Colors),
		MaxCapacity: t.MaxCapacity,
	}
}

func cloneColors(colors []Color) []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}
