package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best results for a difficulty",
	Long: `Display the best results for a difficulty: fewest moves first, then the
fastest solve.

Layouts played with --layout are kept under "layout:<name>".

Examples:
  colorsort scores
  colorsort scores hard
  colorsort scores layout:tricky
  colorsort scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID, title := scoresTarget(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("results cleared", "game", gameID)
		fmt.Printf("Cleared results for %s\n", title)
		return
	}

	results, err := store.BestResults(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No puzzles solved yet.")
		fmt.Println()
		fmt.Printf("Play 'colorsort play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-7s  %-12s  %s\n", "Rank", "Moves", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-5s  %-7s  %-12s  %s\n", "----", "-----", "----", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-5d  %-7s  %-12d  %s\n",
			i+1, r.Moves, r.Duration.Round(time.Second), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Solved: %d  Best: %d moves  Average: %.1f moves  Fastest: %s\n",
		stats.Solved, stats.BestMoves, stats.AvgMoves, stats.BestDuration.Round(time.Second))
}

// scoresTarget maps the argument to the stored game ID and a display title.
// Layout IDs are passed through untouched.
func scoresTarget(args []string) (gameID, title string) {
	if len(args) > 0 {
		if name, ok := strings.CutPrefix(args[0], "layout:"); ok && name != "" {
			return args[0], fmt.Sprintf("Color Sort (%s)", name)
		}
	}

	game, err := resolveGame(args)
	if err != nil {
		exitDifficultyError(err)
	}
	return game.ID(), game.Title()
}
