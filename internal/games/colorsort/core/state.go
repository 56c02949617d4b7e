package core

// NoSelection marks a GameState with no armed tube.
const NoSelection = -1

// GameState is one puzzle instance. It is replaced, never mutated, on
// every transition.
type GameState struct {
	Tubes          []Tube
	Selected       int // Armed tube id, or NoSelection
	Moves          int
	IsWon          bool
	ColorblindMode bool
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	tubes := make([]Tube, len(s.Tubes))
	for i, t := range s.Tubes {
		tubes[i] = t.Clone()
	}
	s.Tubes = tubes
	return s
}

// HasSelection returns true if a tube is armed for pouring.
func (s GameState) HasSelection() bool {
	return s.Selected != NoSelection
}

// IndexOf returns the position of the tube with the given id, or -1.
func (s GameState) IndexOf(id int) int {
	for i, t := range s.Tubes {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Tube returns the tube with the given id.
func (s GameState) Tube(id int) (Tube, bool) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return Tube{}, false
	}
	return s.Tubes[idx], true
}

// TotalUnits returns the number of units across all tubes.
func (s GameState) TotalUnits() int {
	return CountUnits(s.Tubes)
}

// SortedCount returns how many tubes are full of a single color.
func (s GameState) SortedCount() int {
	n := 0
	for _, t := range s.Tubes {
		if t.IsSorted() {
			n++
		}
	}
	return n
}

// WithColorblind returns a copy with the colorblind preference set.
func (s GameState) WithColorblind(on bool) GameState {
	next := s.Clone()
	next.ColorblindMode = on
	return next
}

// Click applies one player click on the tube with the given id.
//
// Idle: clicking a tube with units arms it; an empty tube is ignored.
// Armed: clicking the armed tube disarms it; clicking another tube pours
// if CanPour allows and always returns to idle. Won states ignore clicks.
func (s GameState) Click(id int) GameState {
	if s.IsWon {
		return s
	}

	if !s.HasSelection() {
		t, ok := s.Tube(id)
		if !ok || t.IsEmpty() {
			return s
		}
		next := s.Clone()
		next.Selected = id
		return next
	}

	if s.Selected == id {
		next := s.Clone()
		next.Selected = NoSelection
		return next
	}

	if next, ok := s.TryPour(s.Selected, id); ok {
		return next
	}

	next := s.Clone()
	next.Selected = NoSelection
	return next
}

// TryPour pours between two tubes by id. It returns the next state with the
// selection cleared, the move counted and the win flag evaluated, or false
// if the pour is not legal.
func (s GameState) TryPour(fromID, toID int) (GameState, bool) {
	if s.IsWon || fromID == toID {
		return s, false
	}

	fromIdx := s.IndexOf(fromID)
	toIdx := s.IndexOf(toID)
	if fromIdx < 0 || toIdx < 0 {
		return s, false
	}

	from, to := s.Tubes[fromIdx], s.Tubes[toIdx]
	if !CanPour(from, to) {
		return s, false
	}

	newFrom, newTo := Pour(from, to)

	next := s.Clone()
	next.Tubes[fromIdx] = newFrom
	next.Tubes[toIdx] = newTo
	next.Selected = NoSelection
	next.Moves = s.Moves + 1
	next.IsWon = CheckWin(next.Tubes) && next.Moves > 0
	return next, true
}
