package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{75*time.Second + 400*time.Millisecond, "1:15"},
		{12 * time.Minute, "12:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestScoreboardSwitchesDifficulty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{GameID: "easy", Difficulty: 4, Moves: 15, Duration: time.Minute},
		{GameID: "easy", Difficulty: 4, Moves: 11, Duration: 2 * time.Minute},
		{GameID: "medium", Difficulty: 5, Moves: 30},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := m.Results(); len(got) != 2 || got[0].Moves != 11 {
		t.Fatalf("easy results = %+v", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.Results(); len(got) != 1 || got[0].Moves != 30 {
		t.Errorf("medium results = %+v", got)
	}
	if !strings.Contains(m.View(), "Color Sort (Medium)") {
		t.Error("title should name the difficulty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
