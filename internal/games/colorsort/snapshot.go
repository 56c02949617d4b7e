package colorsort

import "github.com/vovakirdan/colorsort/internal/games/colorsort/core"

// Phase names the current game phase.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePouring     Phase = "pouring"
	PhasePaused      Phase = "paused"
	PhaseWon         Phase = "won"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Seed       int64
	Difficulty int
	Moves      int
	Cursor     int
	Selected   int
	Tubes      [][]core.Color // Bottom first, in tube order
	Phase      Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.paused:
		phase = PhasePaused
	case g.state.IsWon:
		phase = PhaseWon
	case g.pending != nil:
		phase = PhasePouring
	}

	tubes := make([][]core.Color, len(g.state.Tubes))
	for i, t := range g.state.Tubes {
		tubes[i] = t.Clone().Colors
	}

	return Snapshot{
		Tick:       g.tick,
		Seed:       g.dealSeed,
		Difficulty: g.difficulty,
		Moves:      g.state.Moves,
		Cursor:     g.cursor,
		Selected:   g.state.Selected,
		Tubes:      tubes,
		Phase:      phase,
	}
}
