// Package config provides YAML-based configuration loading and difficulty
// presets for Color Sort.
package config

// ColorSortConfig contains all configuration for the game.
type ColorSortConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Palette    []string         `yaml:"palette"` // Ordered color names; the first N are dealt
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Animation  AnimationConfig  `yaml:"animation"`
	Display    DisplayConfig    `yaml:"display"`
}

// BoardConfig defines tube geometry.
type BoardConfig struct {
	Capacity   int `yaml:"capacity"`    // Units per tube
	EmptyTubes int `yaml:"empty_tubes"` // Empty tubes added to every deal
}

// DifficultyConfig maps preset names to color counts.
type DifficultyConfig struct {
	Presets []DifficultyPreset `yaml:"presets"`
	Default string             `yaml:"default"`
}

// DifficultyPreset is a named number of colors.
type DifficultyPreset struct {
	Name   string `yaml:"name"`
	Colors int    `yaml:"colors"`
}

// AnimationConfig controls the pour delay.
type AnimationConfig struct {
	PourTicks int `yaml:"pour_ticks"` // Ticks a pour is shown before it lands
}

// DisplayConfig controls rendering defaults.
type DisplayConfig struct {
	Colorblind bool   `yaml:"colorblind"`
	Theme      string `yaml:"theme"` // default, high-contrast or pastel
}
