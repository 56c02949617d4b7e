package core

import "fmt"

// CanPour reports whether the top run of from may be poured into to.
// It does not special-case pouring a tube into itself; callers treat a
// second click on the armed tube as deselection.
func CanPour(from, to Tube) bool {
	if len(from.Colors) == 0 {
		return false
	}
	if len(to.Colors) >= to.MaxCapacity {
		return false
	}
	if len(to.Colors) == 0 {
		return true
	}

	fromTop, _ := from.Top()
	toTop, _ := to.Top()
	return fromTop == toTop
}

// Pour moves the top run of from onto to, stopping early when to fills up.
// It returns new tubes and leaves both arguments untouched.
// Pour panics if CanPour(from, to) is false.
func Pour(from, to Tube) (Tube, Tube) {
	if !CanPour(from, to) {
		panic(fmt.Sprintf("colorsort: illegal pour from tube %d (%d units) to tube %d (%d/%d units)",
			from.ID, len(from.Colors), to.ID, len(to.Colors), to.MaxCapacity))
	}

	newFrom := from.Clone()
	newTo := to.Clone()

	topColor := newFrom.Colors[len(newFrom.Colors)-1]
	for len(newFrom.Colors) > 0 &&
		newFrom.Colors[len(newFrom.Colors)-1] == topColor &&
		len(newTo.Colors) < newTo.MaxCapacity {
		last := len(newFrom.Colors) - 1
		newTo.Colors = append(newTo.Colors, newFrom.Colors[last])
		newFrom.Colors = newFrom.Colors[:last]
	}

	return newFrom, newTo
}

// CheckWin returns true if every tube is either empty or full of one color.
func CheckWin(tubes []Tube) bool {
	for _, t := range tubes {
		if t.IsEmpty() {
			continue
		}
		if !t.IsSorted() {
			return false
		}
	}
	return true
}

// CountUnits returns the total number of units across tubes.
func CountUnits(tubes []Tube) int {
	total := 0
	for _, t := range tubes {
		total += len(t.Colors)
	}
	return total
}

// CountByColor returns the number of units of each color across tubes.
func CountByColor(tubes []Tube) map[Color]int {
	counts := make(map[Color]int)
	for _, t := range tubes {
		for _, c := range t.Colors {
			counts[c]++
		}
	}
	return counts
}
