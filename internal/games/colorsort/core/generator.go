package core

import "fmt"

// Source supplies uniform random integers in [0, n).
// *math/rand.Rand satisfies it; tests pass a seeded one.
type Source interface {
	Intn(n int) int
}

// DefaultCapacity is the tube capacity of the reference configuration.
const DefaultCapacity = 4

// DefaultEmptyTubes is the number of empty tubes appended to a new layout.
const DefaultEmptyTubes = 2

// GenParams configures layout generation.
type GenParams struct {
	Difficulty     int     // Number of colors, and of full tubes
	Capacity       int     // Units per tube
	EmptyTubes     int     // Empty tubes appended after the full ones
	Palette        []Color // Ordered palette; nil means Palette()
	ColorblindMode bool    // Passed through to the new state
}

// DefaultGenParams returns the reference parameters for a difficulty.
func DefaultGenParams(difficulty int) GenParams {
	return GenParams{
		Difficulty: difficulty,
		Capacity:   DefaultCapacity,
		EmptyTubes: DefaultEmptyTubes,
	}
}

// ConfigurationError reports generation parameters that cannot be satisfied.
type ConfigurationError struct {
	Requested int
	Available int
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Available > 0 {
		return fmt.Sprintf("colorsort: %s (requested %d, available %d)", e.Reason, e.Requested, e.Available)
	}
	return fmt.Sprintf("colorsort: %s (got %d)", e.Reason, e.Requested)
}

// NewGame deals a new layout with the reference parameters.
func NewGame(difficulty int, rng Source) (GameState, error) {
	return Generate(rng, DefaultGenParams(difficulty))
}

// Generate builds a shuffled layout: Difficulty full tubes holding each of
// the first Difficulty palette colors exactly Capacity times, followed by
// EmptyTubes empty tubes. Tube ids are sequential from 0.
//
// No solvability check is made.
func Generate(rng Source, p GenParams) (GameState, error) {
	palette := p.Palette
	if palette == nil {
		palette = Palette()
	}

	if p.Difficulty < 1 {
		return GameState{}, &ConfigurationError{Requested: p.Difficulty, Reason: "difficulty must be at least 1"}
	}
	if p.Difficulty > len(palette) {
		return GameState{}, &ConfigurationError{
			Requested: p.Difficulty,
			Available: len(palette),
			Reason:    "difficulty exceeds palette size",
		}
	}
	if p.Capacity < 1 {
		return GameState{}, &ConfigurationError{Requested: p.Capacity, Reason: "tube capacity must be at least 1"}
	}
	if p.EmptyTubes < 0 {
		return GameState{}, &ConfigurationError{Requested: p.EmptyTubes, Reason: "empty tube count must not be negative"}
	}

	colors := palette[:p.Difficulty]

	units := make([]Color, 0, len(colors)*p.Capacity)
	for _, c := range colors {
		for range p.Capacity {
			units = append(units, c)
		}
	}

	Shuffle(rng, units)

	tubes := make([]Tube, 0, p.Difficulty+p.EmptyTubes)
	for i := range p.Difficulty {
		chunk := units[i*p.Capacity : (i+1)*p.Capacity]
		tubes = append(tubes, NewTube(i, p.Capacity, chunk...))
	}
	for i := range p.EmptyTubes {
		tubes = append(tubes, NewTube(p.Difficulty+i, p.Capacity))
	}

	return GameState{
		Tubes:          tubes,
		Selected:       NoSelection,
		Moves:          0,
		IsWon:          false,
		ColorblindMode: p.ColorblindMode,
	}, nil
}

// Shuffle applies a Fisher-Yates permutation to colors in place.
func Shuffle(rng Source, colors []Color) {
	for i := len(colors) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		colors[i], colors[j] = colors[j], colors[i]
	}
}
