package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

// ResolveDifficulty turns a preset name or a plain color count into the
// number of colors to deal. An empty string selects the default preset.
func (c ColorSortConfig) ResolveDifficulty(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = c.Difficulty.Default
	}

	for _, p := range c.Difficulty.Presets {
		if p.Name == s {
			return p.Colors, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown difficulty %q (presets: %s)", s, strings.Join(c.PresetNames(), ", "))
	}
	if n < 1 || n > len(c.Palette) {
		return 0, &core.ConfigurationError{
			Requested: n,
			Available: len(c.Palette),
			Reason:    "difficulty out of range",
		}
	}
	return n, nil
}

// PresetNames returns preset names in configured order.
func (c ColorSortConfig) PresetNames() []string {
	names := make([]string, len(c.Difficulty.Presets))
	for i, p := range c.Difficulty.Presets {
		names[i] = p.Name
	}
	return names
}

// PresetName returns the preset name for a color count, or "" if none matches.
func (c ColorSortConfig) PresetName(colors int) string {
	for _, p := range c.Difficulty.Presets {
		if p.Colors == colors {
			return p.Name
		}
	}
	return ""
}

// PaletteColors parses the configured palette.
func (c ColorSortConfig) PaletteColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Palette))
	seen := make(map[core.Color]bool)
	for _, name := range c.Palette {
		col, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("palette: unknown color %q", name)
		}
		if seen[col] {
			return nil, fmt.Errorf("palette: duplicate color %q", name)
		}
		seen[col] = true
		colors = append(colors, col)
	}
	return colors, nil
}

// GenParams converts the config into generator parameters for a difficulty.
func (c ColorSortConfig) GenParams(difficulty int) (core.GenParams, error) {
	palette, err := c.PaletteColors()
	if err != nil {
		return core.GenParams{}, err
	}
	return core.GenParams{
		Difficulty:     difficulty,
		Capacity:       c.Board.Capacity,
		EmptyTubes:     c.Board.EmptyTubes,
		Palette:        palette,
		ColorblindMode: c.Display.Colorblind,
	}, nil
}

// Validate checks the config for values the generator would reject.
func (c ColorSortConfig) Validate() error {
	if c.Board.Capacity < 1 {
		return fmt.Errorf("board.capacity must be at least 1, got %d", c.Board.Capacity)
	}
	if c.Board.EmptyTubes < 0 {
		return fmt.Errorf("board.empty_tubes must not be negative, got %d", c.Board.EmptyTubes)
	}
	if c.Animation.PourTicks < 0 {
		return fmt.Errorf("animation.pour_ticks must not be negative, got %d", c.Animation.PourTicks)
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	for _, p := range c.Difficulty.Presets {
		if p.Colors < 1 || p.Colors > len(c.Palette) {
			return fmt.Errorf("difficulty preset %q: %d colors, palette has %d", p.Name, p.Colors, len(c.Palette))
		}
	}
	if _, err := c.ResolveDifficulty(""); err != nil {
		return fmt.Errorf("difficulty.default: %w", err)
	}
	return nil
}
