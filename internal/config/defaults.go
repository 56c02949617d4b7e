package config

import (
	_ "embed"
)

//go:embed defaults/colorsort.yaml
var defaultColorSortYAML []byte

// DefaultColorSortConfig returns the built-in configuration.
func DefaultColorSortConfig() ColorSortConfig {
	return ColorSortConfig{
		Board: BoardConfig{
			Capacity:   4,
			EmptyTubes: 2,
		},
		Palette: []string{"red", "green", "blue", "yellow", "magenta", "cyan", "orange", "purple"},
		Difficulty: DifficultyConfig{
			Default: "medium",
			Presets: []DifficultyPreset{
				{Name: "easy", Colors: 4},
				{Name: "medium", Colors: 5},
				{Name: "hard", Colors: 6},
				{Name: "expert", Colors: 7},
			},
		},
		Animation: AnimationConfig{
			PourTicks: 9, // 300ms at 30 ticks per second
		},
		Display: DisplayConfig{
			Theme: "default",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultColorSortYAML
}
