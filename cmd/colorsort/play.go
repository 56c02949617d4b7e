package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/layouts"
	"github.com/vovakirdan/colorsort/internal/platform/tui"
	"github.com/vovakirdan/colorsort/internal/storage"
)

var (
	flagColorblind bool
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a puzzle",
	Long: `Deal a puzzle and play it.

The difficulty is a preset name (easy, medium, hard, expert) or a number
of colors. Without one the configured default is used.

Controls:
  Left/Right  - Move the cursor
  Space/Enter - Pick up from or pour into the tube under the cursor
  1-9         - Pick a tube directly
  Esc/B       - Put the selected tube down
  R           - Replay the same layout
  N           - Deal a new layout
  C           - Toggle colorblind mode
  P           - Pause
  Q/Ctrl+C    - Quit

Examples:
  colorsort play
  colorsort play hard
  colorsort play 7 --seed 42
  colorsort play --colorblind
  colorsort play --layout ./tricky.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagColorblind, "colorblind", false, "Draw units with patterns and labels")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout file, or name of a layout in ~/.colorsort/layouts")
}

// loadLayout reads a layout from a file path or by name from layoutsDir.
func loadLayout(ref string) (layouts.Layout, error) {
	if _, err := os.Stat(ref); err == nil {
		return layouts.LoadFile(ref)
	}
	return layouts.NewLoader(layoutsDir()).LoadByName(ref)
}

// applyColorblind turns on colorblind mode for games created afterwards.
func applyColorblind() {
	if !flagColorblind {
		return
	}
	cfg := colorsort.ActiveConfig()
	cfg.Display.Colorblind = true
	colorsort.SetConfig(cfg)
}

// runtimeConfig builds the platform config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database, or returns nil so play continues
// without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	applyColorblind()

	game, err := resolveGame(args)
	if err != nil {
		exitDifficultyError(err)
	}

	if flagLayout != "" {
		l, err := loadLayout(flagLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		game.SetLayout(&l)
	}

	store := openStore()
	logger.Debug("starting game", "game", game.ID(), "colors", game.Difficulty(), "seed", flagSeed)

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
