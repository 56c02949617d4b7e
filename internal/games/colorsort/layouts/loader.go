package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadFile loads and validates a single layout file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := Validate(layout); err != nil {
		return Layout{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	layout.FilePath = path
	return layout, nil
}

// LoadAll recursively loads every valid layout under Root.
// Invalid files are skipped. Results are sorted by name.
func (l *Loader) LoadAll() ([]Layout, error) {
	var all []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		layout, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		all = append(all, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	return all, nil
}

// LoadByName loads the layout with the given name.
func (l *Loader) LoadByName(name string) (Layout, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range all {
		if layout.Name == name {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", name)
}
