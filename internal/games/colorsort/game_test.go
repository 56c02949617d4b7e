package colorsort

import (
	"math/rand"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/colorsort/internal/config"
	platformcore "github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/layouts"
	"github.com/vovakirdan/colorsort/internal/registry"
)

var testCfg = platformcore.RuntimeConfig{
	Seed:     12345,
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 30,
}

// withPourTicks swaps the active config for the duration of a test.
func withPourTicks(t *testing.T, ticks int) {
	t.Helper()
	prev := ActiveConfig()
	cfg := config.DefaultColorSortConfig()
	cfg.Animation.PourTicks = ticks
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

// newFixedGame returns a game on a small known layout:
// tube 1 [R G], tube 2 [G], tube 3 [R], tube 4 [] with capacity 2.
func newFixedGame(t *testing.T) *Game {
	t.Helper()
	l := layouts.Layout{
		Name:     "fixed",
		Capacity: 2,
		Tubes: [][]core.Color{
			{core.ColorRed, core.ColorGreen},
			{core.ColorGreen},
			{core.ColorRed},
			{},
		},
	}
	g := New(2)
	g.SetLayout(&l)
	g.Reset(testCfg)
	if g.Err() != nil {
		t.Fatalf("fixed layout rejected: %v", g.Err())
	}
	return g
}

func pick(i int) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	in.SetPick(i)
	return in
}

func action(a platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	in.Set(a)
	return in
}

func TestRegisteredPresets(t *testing.T) {
	want := map[string]int{"easy": 4, "medium": 5, "hard": 6, "expert": 7}

	for id, colors := range want {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.Difficulty() != colors {
			t.Errorf("%s: Difficulty() = %d, want %d", id, g.Difficulty(), colors)
		}
	}

	if got := NewPreset("hard").Title(); got != "Color Sort (Hard)" {
		t.Errorf("Title() = %q", got)
	}
	if New(6).ID() != "hard" {
		t.Error("New(6) should reuse the hard preset")
	}
	if g := New(8); g.ID() != "8" || g.Difficulty() != 8 {
		t.Errorf("New(8): id=%q difficulty=%d", g.ID(), g.Difficulty())
	}
}

func TestResetDealsLayout(t *testing.T) {
	g := NewPreset("medium")
	g.Reset(testCfg)

	s := g.State()
	if len(s.Tubes) != 7 {
		t.Fatalf("got %d tubes, want 7", len(s.Tubes))
	}
	if s.TotalUnits() != 20 {
		t.Errorf("got %d units, want 20", s.TotalUnits())
	}
	if g.Seed() != testCfg.Seed {
		t.Errorf("Seed() = %d, want %d", g.Seed(), testCfg.Seed)
	}
	if st := g.Status(); st.Moves != 0 || st.Won || st.Paused {
		t.Errorf("unexpected initial status %+v", st)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := NewPreset("expert")
	g1.Reset(testCfg)
	g2 := NewPreset("expert")
	g2.Reset(testCfg)

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		var in platformcore.InputFrame
		switch rng.Intn(4) {
		case 0:
			in = pick(rng.Intn(9))
		case 1:
			in = action(platformcore.ActionRight)
		case 2:
			in = action(platformcore.ActionSelect)
		default:
			in = platformcore.NewInputFrame()
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPourAnimationDelaysOutcome(t *testing.T) {
	withPourTicks(t, 3)
	g := newFixedGame(t)

	g.Step(pick(0))
	g.Step(pick(1))

	if !g.Animating() {
		t.Fatal("pour should be animating")
	}
	if g.Status().Moves != 0 {
		t.Error("move should not count before the pour lands")
	}
	if g.Snapshot().Phase != PhasePouring {
		t.Errorf("Phase = %s, want pouring", g.Snapshot().Phase)
	}

	// Input during the pour is ignored
	g.Step(pick(3))
	g.Step(platformcore.NewInputFrame())
	if !g.Animating() {
		t.Fatal("pour landed too early")
	}
	g.Step(platformcore.NewInputFrame())

	if g.Animating() {
		t.Fatal("pour should have landed")
	}
	s := g.State()
	if s.Moves != 1 || s.HasSelection() {
		t.Errorf("after landing: moves=%d selected=%d", s.Moves, s.Selected)
	}
	if !slices.Equal(s.Tubes[1].Colors, []core.Color{core.ColorGreen, core.ColorGreen}) {
		t.Errorf("tube 2 = %v", s.Tubes[1].Colors)
	}
}

func TestWinAndRestart(t *testing.T) {
	withPourTicks(t, 0)
	g := newFixedGame(t)

	g.Step(pick(0))
	g.Step(pick(1))
	g.Step(pick(2))
	g.Step(pick(0))

	st := g.Status()
	if !st.Won || st.Moves != 2 {
		t.Fatalf("expected win in 2 moves, got %+v", st)
	}
	if g.Snapshot().Phase != PhaseWon {
		t.Errorf("Phase = %s, want won", g.Snapshot().Phase)
	}

	// Clicks after a win are ignored
	g.Step(pick(0))
	if g.State().HasSelection() {
		t.Error("won game should ignore clicks")
	}

	g.Step(action(platformcore.ActionRestart))
	s := g.State()
	if s.Moves != 0 || s.IsWon {
		t.Errorf("restart should reset moves and win, got moves=%d won=%v", s.Moves, s.IsWon)
	}
	if !slices.Equal(s.Tubes[0].Colors, []core.Color{core.ColorRed, core.ColorGreen}) {
		t.Errorf("restart should restore the layout, tube 1 = %v", s.Tubes[0].Colors)
	}
}

func TestCursorAndBack(t *testing.T) {
	withPourTicks(t, 0)
	g := newFixedGame(t)

	g.Step(action(platformcore.ActionLeft))
	if g.Snapshot().Cursor != 3 {
		t.Errorf("cursor should wrap to last tube, got %d", g.Snapshot().Cursor)
	}
	g.Step(action(platformcore.ActionRight))
	g.Step(action(platformcore.ActionSelect))
	if g.State().Selected != 0 {
		t.Fatalf("Select should arm tube under cursor, selected=%d", g.State().Selected)
	}

	g.Step(action(platformcore.ActionBack))
	if g.State().HasSelection() {
		t.Error("Back should drop the selection")
	}

	// Picks past the last tube are ignored
	g.Step(pick(8))
	if g.State().HasSelection() || g.Snapshot().Cursor != 0 {
		t.Error("out of range pick should be ignored")
	}
}

func TestClicksApplyInOrder(t *testing.T) {
	withPourTicks(t, 0)
	g := newFixedGame(t)

	// Pick tube 1 then Select on the cursor, which the pick moved to tube 1
	in := pick(0)
	in.Set(platformcore.ActionSelect)
	g.Step(in)
	if g.State().HasSelection() {
		t.Errorf("second click on the armed tube should disarm it, selected=%d", g.State().Selected)
	}

	in = pick(0)
	in.SetPick(1)
	in.SetPick(2)
	g.Step(in)
	s := g.State()
	if s.Moves != 1 || !s.HasSelection() || s.Selected != 2 {
		t.Errorf("expected one pour then tube 3 armed, got moves=%d selected=%d", s.Moves, s.Selected)
	}
}

func TestClicksWaitForPour(t *testing.T) {
	withPourTicks(t, 2)
	g := newFixedGame(t)

	in := pick(0)
	in.SetPick(1)
	in.SetPick(2)
	g.Step(in)
	if !g.Animating() {
		t.Fatal("pour should be animating")
	}
	g.Step(platformcore.NewInputFrame())
	g.Step(platformcore.NewInputFrame())
	if s := g.State(); s.Moves != 1 || s.HasSelection() {
		t.Errorf("clicks after the pour started should be dropped, moves=%d selected=%d", s.Moves, s.Selected)
	}
}

func TestPauseIgnoresInput(t *testing.T) {
	g := newFixedGame(t)

	g.Step(action(platformcore.ActionPause))
	if !g.Status().Paused {
		t.Fatal("game should be paused")
	}
	g.Step(pick(0))
	if g.State().HasSelection() {
		t.Error("paused game should ignore clicks")
	}
	g.Step(action(platformcore.ActionPause))
	if g.Status().Paused {
		t.Error("second pause should resume")
	}
}

func TestNewGameDealsFromReportedSeed(t *testing.T) {
	withPourTicks(t, 0)
	g := NewPreset("easy")
	g.Reset(testCfg)
	g.Step(pick(0))

	g.Step(action(platformcore.ActionNewGame))
	if g.Seed() == testCfg.Seed {
		t.Fatal("new game should use a new seed")
	}
	if g.State().HasSelection() || g.Status().Moves != 0 {
		t.Error("new game should start idle")
	}

	params, err := ActiveConfig().GenParams(4)
	if err != nil {
		t.Fatal(err)
	}
	want, err := core.Generate(rand.New(rand.NewSource(g.Seed())), params)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.State().Tubes, want.Tubes) {
		t.Error("deal is not reproducible from Seed()")
	}
}

func TestToggleColorblindRender(t *testing.T) {
	g := newFixedGame(t)
	screen := platformcore.NewScreen(testCfg.ScreenW, testCfg.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Moves: 0") {
		t.Error("HUD missing move count")
	}
	if !strings.Contains(screen.String(), "███") {
		t.Error("solid units missing")
	}

	g.Step(action(platformcore.ActionToggleColorblind))
	if !g.State().ColorblindMode {
		t.Fatal("colorblind mode should be on")
	}
	screen.Clear()
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "●R●") || !strings.Contains(out, "▲G▲") {
		t.Errorf("colorblind patterns missing:\n%s", out)
	}

	// Restart keeps the mode
	g.Step(action(platformcore.ActionRestart))
	if !g.State().ColorblindMode {
		t.Error("restart should keep colorblind mode")
	}
}

func TestRenderUsesPaletteColors(t *testing.T) {
	g := newFixedGame(t)
	screen := platformcore.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(screen)

	found := map[platformcore.Color]bool{}
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == '█' {
				found[c.Color] = true
			}
		}
	}
	if !found[platformcore.ColorRed] || !found[platformcore.ColorGreen] {
		t.Errorf("expected red and green units, found %v", found)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewPreset("expert")
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 8})

	if !g.Status().Paused {
		t.Error("small screen should report paused")
	}
	if g.Snapshot().Phase != PhasePausedSmall {
		t.Errorf("Phase = %s", g.Snapshot().Phase)
	}

	screen := platformcore.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("missing too small message")
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	withPourTicks(t, 0)
	g := newFixedGame(t)
	g.Step(pick(0))
	g.Step(pick(1))

	g.Resize(20, 6)
	if !g.Status().Paused {
		t.Error("shrunk window should pause")
	}
	g.Resize(80, 24)
	if g.Status().Paused {
		t.Error("restored window should resume")
	}
	if g.Status().Moves != 1 {
		t.Errorf("resize lost progress, moves = %d", g.Status().Moves)
	}
}

func TestSetLayoutNamesGame(t *testing.T) {
	g := newFixedGame(t)
	if g.ID() != "layout:fixed" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Color Sort (fixed)" {
		t.Errorf("Title() = %q", g.Title())
	}
	if g.Difficulty() != 2 {
		t.Errorf("Difficulty() = %d, want 2", g.Difficulty())
	}
}

func TestSortedCountsTubesNotColors(t *testing.T) {
	l := layouts.Layout{
		Name:     "split",
		Capacity: 2,
		Tubes: [][]core.Color{
			{core.ColorRed, core.ColorRed},
			{core.ColorRed, core.ColorGreen},
			{core.ColorGreen, core.ColorRed},
			{},
		},
	}
	g := New(2)
	g.SetLayout(&l)
	g.Reset(testCfg)
	if g.Err() != nil {
		t.Fatalf("layout rejected: %v", g.Err())
	}

	screen := platformcore.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Sorted: 1/3") {
		t.Errorf("HUD should count 3 target tubes:\n%s", screen.String())
	}
}

func TestPresetFallsBackToBuiltin(t *testing.T) {
	prev := ActiveConfig()
	cfg := config.DefaultColorSortConfig()
	cfg.Difficulty.Presets = cfg.Difficulty.Presets[:1]
	cfg.Difficulty.Default = "missing"
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })

	if got := NewPreset("hard").Difficulty(); got != 6 {
		t.Errorf("NewPreset(hard).Difficulty() = %d, want 6", got)
	}
	if got := NewPreset("nonsense").Difficulty(); got < 1 {
		t.Errorf("unknown preset should get the built-in default, got %d", got)
	}
}
