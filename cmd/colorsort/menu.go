package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/platform/tui"
	"github.com/vovakirdan/colorsort/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from an interactive menu",
	Long: `Start Color Sort in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a puzzle and Tab to see
the best results. The last entry opens the layouts saved in
~/.colorsort/layouts. Press Esc on a solved or paused puzzle to return here.

Examples:
  colorsort menu
  colorsort menu --colorblind
  colorsort menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagColorblind, "colorblind", false, "Draw units with patterns and labels")
}

func runMenu(_ *cobra.Command, _ []string) {
	applyColorblind()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		var game registry.Game
		if menuResult.WantsLayouts {
			l, quit, lErr := tui.RunLayoutSelector(layoutsDir(), cfg)
			if lErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", lErr)
				continue
			}
			if quit {
				return
			}
			if l == nil {
				continue
			}
			g := colorsort.New(l.ColorCount())
			g.SetLayout(l)
			game = g
		} else {
			game, err = registry.Create(menuResult.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}
		}

		// Each pick deals from a fresh seed unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			return
		}
	}
}
