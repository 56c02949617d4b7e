package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "colorsort.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.colorsort/configs/colorsort.yaml ->
// ./configs/colorsort.yaml -> embedded default -> DefaultColorSortConfig.
// Fields missing from a file keep their default values.
func Load(customPath string) (ColorSortConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorSortConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ColorSortConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultColorSortYAML)
	if err != nil {
		return DefaultColorSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays YAML onto the built-in defaults and validates the result.
func parse(data []byte) (ColorSortConfig, error) {
	cfg := DefaultColorSortConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColorSortConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ColorSortConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorsort", "configs", filename)
}
