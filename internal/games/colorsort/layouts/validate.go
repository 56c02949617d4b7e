package layouts

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

// ValidationError contains details about a rejected layout.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a layout can be played:
//   - at least one tube and a positive capacity
//   - no tube over capacity
//   - every color fills whole tubes (count is a multiple of capacity)
func Validate(l Layout) error {
	if len(l.Tubes) == 0 {
		return ValidationError{Code: "NO_TUBES", Message: "layout has no tubes"}
	}
	if l.Capacity < 1 {
		return ValidationError{
			Code:    "INVALID_CAPACITY",
			Message: fmt.Sprintf("capacity %d must be at least 1", l.Capacity),
		}
	}

	counts := make(map[core.Color]int)
	for i, tube := range l.Tubes {
		if len(tube) > l.Capacity {
			return ValidationError{
				Code:    "OVER_CAPACITY",
				Message: fmt.Sprintf("tube %d holds %d units, capacity is %d", i, len(tube), l.Capacity),
			}
		}
		for _, c := range tube {
			if c >= core.ColorCount {
				return ValidationError{
					Code:    "INVALID_COLOR",
					Message: fmt.Sprintf("tube %d: color %d outside palette", i, c),
				}
			}
			counts[c]++
		}
	}

	// Deterministic order for error messages
	colors := make([]core.Color, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		return colors[i] < colors[j]
	})

	for _, c := range colors {
		if counts[c]%l.Capacity != 0 {
			return ValidationError{
				Code:    "UNBALANCED_COLOR",
				Message: fmt.Sprintf("color %s has %d units, not a multiple of %d", c, counts[c], l.Capacity),
			}
		}
	}

	return nil
}
