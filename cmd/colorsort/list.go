package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/layouts"
	"github.com/vovakirdan/colorsort/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulties and saved layouts",
	Long: `Shows the difficulty presets and any layout files found in
~/.colorsort/layouts.`,
	Run: runList,
}

// layoutsDir returns the directory searched for named layouts.
func layoutsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".colorsort", "layouts")
	}
	return filepath.Join(home, ".colorsort", "layouts")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	cfg := colorsort.ActiveConfig()

	fmt.Println("Difficulties:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Colors", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")
	for _, g := range games {
		marker := ""
		if g.ID == cfg.Difficulty.Default {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-6d  %s%s\n", maxIDLen, g.ID, g.Difficulty, g.Title, marker)
	}

	fmt.Println()
	fmt.Printf("Any color count from 1 to %d also works, e.g. 'colorsort play 8'.\n", len(cfg.Palette))

	all, err := layouts.NewLoader(layoutsDir()).LoadAll()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("cannot read layouts", "dir", layoutsDir(), "err", err)
	}
	if len(all) > 0 {
		fmt.Println()
		fmt.Println("Layouts:")
		fmt.Println()
		for _, l := range all {
			fmt.Printf("  %-20s  %d colors, %d tubes\n", l.Name, l.ColorCount(), len(l.Tubes))
		}
	}

	fmt.Println()
	fmt.Println("Run 'colorsort play <id>' or 'colorsort play --layout <name>' to play.")
}
