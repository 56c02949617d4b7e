// Package layouts reads and writes fixed Color Sort layouts as YAML.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	Name     string            `yaml:"name"`
	Capacity int               `yaml:"capacity,omitempty"`
	Tubes    []string          `yaml:"tubes"` // Bottom first, space separated
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout is a parsed, ready-to-play arrangement of tubes.
type Layout struct {
	Name     string
	Capacity int
	Tubes    [][]core.Color
	Metadata map[string]string
	FilePath string
}

// ParseYAML parses a layout file. Unknown color tokens are an error so a
// typo never silently changes the puzzle.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	capacity := yl.Capacity
	if capacity <= 0 {
		capacity = core.DefaultCapacity
	}

	layout := Layout{
		Name:     yl.Name,
		Capacity: capacity,
		Tubes:    make([][]core.Color, 0, len(yl.Tubes)),
		Metadata: yl.Metadata,
	}

	for i, line := range yl.Tubes {
		fields := strings.Fields(line)
		colors := make([]core.Color, 0, len(fields))
		for _, f := range fields {
			c, ok := core.ParseColor(f)
			if !ok {
				return Layout{}, ValidationError{
					Code:    "INVALID_COLOR",
					Message: fmt.Sprintf("tube %d: unknown color %q", i, f),
				}
			}
			colors = append(colors, c)
		}
		layout.Tubes = append(layout.Tubes, colors)
	}

	return layout, nil
}

// MarshalYAML encodes a layout using color labels.
func MarshalYAML(l Layout) ([]byte, error) {
	yl := YAMLLayout{
		Name:     l.Name,
		Capacity: l.Capacity,
		Tubes:    make([]string, len(l.Tubes)),
		Metadata: l.Metadata,
	}
	for i, tube := range l.Tubes {
		labels := make([]string, len(tube))
		for j, c := range tube {
			labels[j] = c.Label()
		}
		yl.Tubes[i] = strings.Join(labels, " ")
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FromState captures the tubes of a game state as a layout.
func FromState(s core.GameState, name string) Layout {
	capacity := core.DefaultCapacity
	if len(s.Tubes) > 0 {
		capacity = s.Tubes[0].MaxCapacity
	}

	tubes := make([][]core.Color, len(s.Tubes))
	for i, t := range s.Tubes {
		tubes[i] = t.Clone().Colors
	}

	return Layout{
		Name:     name,
		Capacity: capacity,
		Tubes:    tubes,
	}
}

// ToState validates the layout and builds a fresh game state from it.
// Tube ids follow file order.
func (l Layout) ToState() (core.GameState, error) {
	if err := Validate(l); err != nil {
		return core.GameState{}, err
	}

	tubes := make([]core.Tube, len(l.Tubes))
	for i, colors := range l.Tubes {
		tubes[i] = core.NewTube(i, l.Capacity, colors...)
	}

	return core.GameState{
		Tubes:    tubes,
		Selected: core.NoSelection,
	}, nil
}

// ColorCount returns the number of distinct colors in the layout.
func (l Layout) ColorCount() int {
	seen := make(map[core.Color]bool)
	for _, tube := range l.Tubes {
		for _, c := range tube {
			seen[c] = true
		}
	}
	return len(seen)
}
