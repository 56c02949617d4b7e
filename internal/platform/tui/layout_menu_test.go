package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writeLayout(t *testing.T, dir, file, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLayoutMenuPicksLayout(t *testing.T) {
	dir := t.TempDir()
	writeLayout(t, dir, "b.yaml", "name: beta\ncapacity: 2\ntubes:\n  - R G\n  - G R\n  - \"\"\n")
	writeLayout(t, dir, "a.yaml", "name: alpha\ncapacity: 2\ntubes:\n  - R R\n  - \"\"\n")
	writeLayout(t, dir, "broken.yaml", "name: broken\ncapacity: 2\ntubes:\n  - R\n")

	m := NewLayoutMenuModel(dir, 80, 24)
	if got := len(m.Layouts()); got != 2 {
		t.Fatalf("got %d layouts, want 2 (invalid files skipped)", got)
	}
	if !strings.Contains(m.View(), "alpha") {
		t.Error("view should list layouts")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(LayoutMenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(LayoutMenuModel)

	if m.Selected() == nil || m.Selected().Name != "beta" {
		t.Fatalf("Selected() = %+v, want beta", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the picker")
	}
}

func TestLayoutMenuMissingDir(t *testing.T) {
	m := NewLayoutMenuModel(filepath.Join(t.TempDir(), "missing"), 80, 24)
	if len(m.Layouts()) != 0 {
		t.Fatal("missing directory should offer no layouts")
	}
	if !strings.Contains(m.View(), "No layouts directory") {
		t.Error("view should explain the missing directory")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(LayoutMenuModel).Selected() != nil {
		t.Error("nothing to select")
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(LayoutMenuModel).WantsBack() {
		t.Error("esc should go back")
	}
}
