package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

// resolveGame turns an optional difficulty argument into a game.
// An empty argument selects the configured default.
func resolveGame(args []string) (*colorsort.Game, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	n, err := colorsort.ActiveConfig().ResolveDifficulty(arg)
	if err != nil {
		return nil, err
	}
	return colorsort.New(n), nil
}

// exitDifficultyError reports a bad difficulty and exits.
func exitDifficultyError(err error) {
	var cfgErr *core.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
		fmt.Fprintf(os.Stderr, "Choose between 1 and %d colors.\n", cfgErr.Available)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'colorsort list' to see available difficulties.")
	}
	os.Exit(1)
}
