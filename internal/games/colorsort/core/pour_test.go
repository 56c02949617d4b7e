package core_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

const (
	R = core.ColorRed
	G = core.ColorGreen
	B = core.ColorBlue
	X = core.ColorYellow
)

func TestCanPour(t *testing.T) {
	tests := []struct {
		name     string
		from     core.Tube
		to       core.Tube
		expected bool
	}{
		{"empty source", core.NewTube(0, 4), core.NewTube(1, 4), false},
		{"full destination", core.NewTube(0, 4, R), core.NewTube(1, 4, R, R, R, R), false},
		{"empty destination", core.NewTube(0, 4, G, R), core.NewTube(1, 4), true},
		{"matching tops", core.NewTube(0, 4, G, R), core.NewTube(1, 4, B, R), true},
		{"different tops", core.NewTube(0, 4, G, R), core.NewTube(1, 4, R, G), false},
		{"full but matching", core.NewTube(0, 4, R), core.NewTube(1, 2, R, R), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.CanPour(tc.from, tc.to); got != tc.expected {
				t.Errorf("CanPour() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPourMovesWholeRun(t *testing.T) {
	from := core.NewTube(0, 4, R, R, G, G)
	to := core.NewTube(1, 4)

	newFrom, newTo := core.Pour(from, to)

	if !slices.Equal(newFrom.Colors, []core.Color{R, R}) {
		t.Errorf("from = %v, want [R R]", newFrom.Colors)
	}
	if !slices.Equal(newTo.Colors, []core.Color{G, G}) {
		t.Errorf("to = %v, want [G G]", newTo.Colors)
	}
}

func TestPourCapacityLimited(t *testing.T) {
	from := core.NewTube(0, 4, B, B, B)
	to := core.NewTube(1, 2, B)

	newFrom, newTo := core.Pour(from, to)

	if !slices.Equal(newFrom.Colors, []core.Color{B, B}) {
		t.Errorf("from = %v, want [B B]", newFrom.Colors)
	}
	if !slices.Equal(newTo.Colors, []core.Color{B, B}) {
		t.Errorf("to = %v, want [B B]", newTo.Colors)
	}
}

func TestPourStopsAtColorBoundary(t *testing.T) {
	from := core.NewTube(0, 4, G, R, G)
	to := core.NewTube(1, 4, G)

	newFrom, newTo := core.Pour(from, to)

	if !slices.Equal(newFrom.Colors, []core.Color{G, R}) {
		t.Errorf("from = %v, want [G R]", newFrom.Colors)
	}
	if !slices.Equal(newTo.Colors, []core.Color{G, G}) {
		t.Errorf("to = %v, want [G G]", newTo.Colors)
	}
}

func TestPourPreservesIdentityAndInputs(t *testing.T) {
	from := core.NewTube(3, 4, R, G)
	to := core.NewTube(7, 4)

	newFrom, newTo := core.Pour(from, to)

	if newFrom.ID != 3 || newTo.ID != 7 {
		t.Errorf("ids changed: from=%d to=%d", newFrom.ID, newTo.ID)
	}
	if newFrom.MaxCapacity != 4 || newTo.MaxCapacity != 4 {
		t.Error("capacity changed")
	}
	if !slices.Equal(from.Colors, []core.Color{R, G}) {
		t.Errorf("source argument mutated: %v", from.Colors)
	}
	if len(to.Colors) != 0 {
		t.Errorf("destination argument mutated: %v", to.Colors)
	}

	// Writing through the result must not reach the argument.
	newFrom.Colors[0] = B
	if from.Colors[0] != R {
		t.Error("result shares storage with argument")
	}
}

func TestPourPanicsWhenIllegal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pour on an illegal pair should panic")
		}
	}()
	core.Pour(core.NewTube(0, 4, R), core.NewTube(1, 4, G))
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name     string
		tubes    []core.Tube
		expected bool
	}{
		{
			name: "sorted",
			tubes: []core.Tube{
				core.NewTube(0, 4),
				core.NewTube(1, 4, R, R, R, R),
				core.NewTube(2, 4, G, G, G, G),
			},
			expected: true,
		},
		{
			name: "mixed full tube",
			tubes: []core.Tube{
				core.NewTube(0, 4),
				core.NewTube(1, 4, R, R, R, G),
				core.NewTube(2, 4, G, G, G, G),
			},
			expected: false,
		},
		{
			name: "partially filled tube",
			tubes: []core.Tube{
				core.NewTube(0, 4, R),
				core.NewTube(1, 4, R, R, R),
				core.NewTube(2, 4, G, G, G, G),
			},
			expected: false,
		},
		{
			name:     "all empty",
			tubes:    []core.Tube{core.NewTube(0, 4), core.NewTube(1, 4)},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.CheckWin(tc.tubes); got != tc.expected {
				t.Errorf("CheckWin() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestRandomPlayInvariants plays random legal pours and checks conservation,
// capacity bounds and pour progress after every move.
func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 50; game++ {
		state, err := core.NewGame(4+game%4, rng)
		if err != nil {
			t.Fatalf("NewGame failed: %v", err)
		}
		total := state.TotalUnits()
		perColor := core.CountByColor(state.Tubes)

		for move := 0; move < 200; move++ {
			i := rng.Intn(len(state.Tubes))
			j := rng.Intn(len(state.Tubes))
			from, to := state.Tubes[i], state.Tubes[j]
			if i == j || !core.CanPour(from, to) {
				continue
			}

			newFrom, newTo := core.Pour(from, to)

			if newFrom.Len()+newTo.Len() != from.Len()+to.Len() {
				t.Fatalf("pour changed unit count: %d+%d -> %d+%d",
					from.Len(), to.Len(), newFrom.Len(), newTo.Len())
			}
			if newFrom.Len() >= from.Len() {
				t.Fatalf("pour did not remove units from source")
			}
			if newTo.Len() > newTo.MaxCapacity {
				t.Fatalf("destination over capacity: %d > %d", newTo.Len(), newTo.MaxCapacity)
			}

			state.Tubes[i], state.Tubes[j] = newFrom, newTo
		}

		if state.TotalUnits() != total {
			t.Errorf("game %d: total units %d, want %d", game, state.TotalUnits(), total)
		}
		for c, n := range core.CountByColor(state.Tubes) {
			if perColor[c] != n {
				t.Errorf("game %d: color %s count %d, want %d", game, c, n, perColor[c])
			}
		}
		for _, tube := range state.Tubes {
			if tube.Len() < 0 || tube.Len() > tube.MaxCapacity {
				t.Errorf("tube %d out of bounds: %d", tube.ID, tube.Len())
			}
		}
	}
}
