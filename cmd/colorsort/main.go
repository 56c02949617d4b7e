// colorsort is a liquid-sorting puzzle for the terminal.
//
// Usage:
//
//	colorsort list                  - List difficulties and saved layouts
//	colorsort play [difficulty]     - Play a puzzle
//	colorsort menu                  - Pick a difficulty interactively
//	colorsort deal [difficulty]     - Print a generated layout
//	colorsort scores [difficulty]   - Show best results
//	colorsort serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible deals
//	--db <path>          - Set database path (default: ~/.colorsort/results.db)
//	--config <path>      - Use a custom colorsort.yaml
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogLevel   string
	flagLogFile    string

	// logger is the root logger, built before any command runs.
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorsort",
	Short: "Color Sort - sort colored liquid in your terminal",
	Long: `Color Sort is a liquid-sorting puzzle. Pour the top run of one tube
into another until every tube holds a single color.

Available commands:
  list     - Show difficulties and saved layouts
  play     - Play a puzzle directly
  menu     - Interactive difficulty picker
  deal     - Print a generated layout without playing
  scores   - View best results
  serve    - Start SSH server for remote play

Examples:
  colorsort play
  colorsort play hard --colorblind
  colorsort play 8 --seed 42
  colorsort deal expert --yaml --out expert.yaml
  colorsort serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorsort/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom colorsort.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the root logger and loads the game configuration.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorsort",
		Level:           level,
	})

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	colorsort.SetConfig(cfg)

	theme, err := tui.ThemeByName(cfg.Display.Theme)
	if err != nil {
		return fmt.Errorf("display.theme: %w", err)
	}
	tui.SetTheme(theme)
	logger.Debug("config loaded", "default", cfg.Difficulty.Default, "capacity", cfg.Board.Capacity)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
