package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	sortcore "github.com/vovakirdan/colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/layouts"
	"github.com/vovakirdan/colorsort/internal/storage"
)

// newTestModel returns a model on a two-move layout with instant pours.
func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()

	prev := colorsort.ActiveConfig()
	cfg := config.DefaultColorSortConfig()
	cfg.Animation.PourTicks = 0
	colorsort.SetConfig(cfg)
	t.Cleanup(func() { colorsort.SetConfig(prev) })

	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := colorsort.New(2)
	game.SetLayout(&layouts.Layout{
		Name:     "fixed",
		Capacity: 2,
		Tubes: [][]sortcore.Color{
			{sortcore.ColorRed, sortcore.ColorGreen},
			{sortcore.ColorGreen},
			{sortcore.ColorRed},
			{},
		},
	})

	m := NewModel(game, store, core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24, TickRate: 30}, nil)
	m.Init()
	return m, store
}

// press sends a key followed by a tick.
func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	next, _ = next.(Model).Update(TickMsg{})
	return next.(Model)
}

func solve(t *testing.T, m Model) Model {
	t.Helper()
	for _, r := range []rune{'1', '2', '3', '1'} {
		m = press(t, m, r)
	}
	return m
}

func TestModelKeepsClicksWithinOneTick(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next, _ = next.(Model).Update(TickMsg{})
	m = next.(Model)

	if m.Status().Moves != 1 {
		t.Fatalf("moves after two picks in one tick = %d, want 1", m.Status().Moves)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	next, _ = next.(Model).Update(TickMsg{})
	m = next.(Model)
	if st := m.Status(); !st.Won || st.Moves != 2 {
		t.Errorf("expected win in 2 moves, got %+v", st)
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	m, store := newTestModel(t)

	m = solve(t, m)
	if !m.Status().Won || m.Status().Moves != 2 {
		t.Fatalf("expected win in 2 moves, got %+v", m.Status())
	}
	if m.LastSavedID() == 0 {
		t.Error("win should be stored")
	}

	// More ticks on the won board do not store again
	for range 5 {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}

	results, err := store.BestResults("layout:fixed", 10)
	if err != nil {
		t.Fatalf("BestResults() error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if r := results[0]; r.Moves != 2 || r.Seed != 7 || r.Difficulty != 2 {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestModelReplayStoresAgain(t *testing.T) {
	m, store := newTestModel(t)

	m = solve(t, m)
	m = press(t, m, 'r')
	if m.Status().Won {
		t.Fatal("replay should clear the win")
	}
	m = solve(t, m)

	stats, err := store.Stats("layout:fixed")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if stats.Solved != 2 {
		t.Errorf("Solved = %d, want 2", stats.Solved)
	}
}

func TestModelBackLeavesOnlyFinishedGame(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, '1')
	m = press(t, m, 'b')
	if m.BackToMenu() {
		t.Fatal("back during play should only drop the selection")
	}

	m = solve(t, m)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if !next.(Model).BackToMenu() {
		t.Error("back after a win should leave the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).Quitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
