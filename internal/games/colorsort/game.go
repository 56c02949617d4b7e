// Package colorsort provides the Color Sort liquid-sorting puzzle for the
// terminal platform. Rules live in the core subpackage; this package maps
// platform input to clicks, animates pours, and renders the board.
package colorsort

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/colorsort/internal/config"
	platformcore "github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/layouts"
	"github.com/vovakirdan/colorsort/internal/registry"
)

// Package-level configuration shared by every preset.
var activeConfig = config.DefaultColorSortConfig()

// SetConfig replaces the configuration used by games created afterwards
// and by the next Reset of existing ones.
func SetConfig(cfg config.ColorSortConfig) {
	activeConfig = cfg
}

// ActiveConfig returns the configuration games are using.
func ActiveConfig() config.ColorSortConfig {
	return activeConfig
}

func init() {
	for _, p := range config.DefaultColorSortConfig().Difficulty.Presets {
		name := p.Name
		registry.Register(name, func() registry.Game {
			return NewPreset(name)
		})
	}
}

// Game implements registry.Game for one difficulty.
type Game struct {
	id         string
	title      string
	difficulty int

	rng      *rand.Rand
	dealSeed int64 // Seed that reproduces the current deal
	fixed    *layouts.Layout

	initial core.GameState // State at deal time, for restart
	state   core.GameState
	cursor  int

	// Pour animation: the decided state waits pendingTicks before landing.
	pending      *core.GameState
	pendingTicks int
	pouring      int // Tube id the pour leaves, or core.NoSelection
	receiving    int // Tube id the pour enters, or core.NoSelection

	// Screen dimensions
	screenW int
	screenH int

	tick      uint64
	playTicks uint64 // Unpaused ticks since the deal, stopped on win
	paused    bool
	tooSmall  bool
	err       error
}

// NewPreset creates a game for a named difficulty preset.
// A name the active config does not resolve falls back to the built-in
// preset of that name, then to the built-in default.
func NewPreset(name string) *Game {
	n, err := activeConfig.ResolveDifficulty(name)
	if err != nil {
		builtin := config.DefaultColorSortConfig()
		if n, err = builtin.ResolveDifficulty(name); err != nil {
			n, _ = builtin.ResolveDifficulty("")
		}
	}
	return &Game{
		id:         name,
		title:      fmt.Sprintf("Color Sort (%s)", titleCase(name)),
		difficulty: n,
		pouring:    core.NoSelection,
		receiving:  core.NoSelection,
	}
}

// New creates a game for an arbitrary number of colors.
// A matching preset name is used as the ID when one exists.
func New(difficulty int) *Game {
	if name := activeConfig.PresetName(difficulty); name != "" {
		return NewPreset(name)
	}
	return &Game{
		id:         strconv.Itoa(difficulty),
		title:      fmt.Sprintf("Color Sort (%d colors)", difficulty),
		difficulty: difficulty,
		pouring:    core.NoSelection,
		receiving:  core.NoSelection,
	}
}

// SetLayout makes Reset load a fixed layout instead of dealing one.
// The game ID becomes "layout:<name>" so results are kept per layout.
// Passing nil returns to random deals.
func (g *Game) SetLayout(l *layouts.Layout) {
	g.fixed = l
	if l != nil {
		g.difficulty = l.ColorCount()
		name := l.Name
		if name == "" {
			name = "custom"
		}
		g.id = "layout:" + name
		g.title = fmt.Sprintf("Color Sort (%s)", name)
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Difficulty returns the number of colors dealt.
func (g *Game) Difficulty() int {
	return g.difficulty
}

// Seed returns the seed that reproduces the current deal.
func (g *Game) Seed() int64 {
	return g.dealSeed
}

// PlayTicks returns the unpaused ticks spent on the current deal.
func (g *Game) PlayTicks() uint64 {
	return g.playTicks
}

// Err returns the error from the last deal, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current rule state, excluding any pending pour.
func (g *Game) State() core.GameState {
	return g.state.Clone()
}

// Reset seeds the RNG and deals a fresh layout.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.paused = false

	g.deal(cfg.Seed, activeConfig.Display.Colorblind)
	g.checkScreenSize()
}

// deal builds a new layout from seed and resets per-deal state.
func (g *Game) deal(seed int64, colorblind bool) {
	g.dealSeed = seed
	g.err = nil

	var (
		state core.GameState
		err   error
	)
	if g.fixed != nil {
		state, err = g.fixed.ToState()
	} else {
		var params core.GenParams
		params, err = activeConfig.GenParams(g.difficulty)
		if err == nil {
			state, err = core.Generate(rand.New(rand.NewSource(seed)), params)
		}
	}
	if err != nil {
		g.err = err
		state = core.GameState{Selected: core.NoSelection}
	}

	state.ColorblindMode = colorblind
	g.initial = state.Clone()
	g.start(state)
}

// start puts a state on the board and clears transient view flags.
func (g *Game) start(state core.GameState) {
	g.state = state
	g.cursor = 0
	g.playTicks = 0
	g.clearPending()
}

func (g *Game) clearPending() {
	g.pending = nil
	g.pendingTicks = 0
	g.pouring = core.NoSelection
	g.receiving = core.NoSelection
}

// Resize updates the screen size without dealing a new layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the board fits the screen.
func (g *Game) checkScreenSize() {
	minW, minH := boardSize(len(g.state.Tubes), g.capacity())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

func (g *Game) capacity() int {
	if len(g.state.Tubes) > 0 {
		return g.state.Tubes[0].MaxCapacity
	}
	return activeConfig.Board.Capacity
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{Status: g.Status()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{Status: g.Status()}
	}

	// A pour in flight ignores input until it lands.
	if g.pending != nil {
		g.playTicks++
		g.pendingTicks--
		if g.pendingTicks <= 0 {
			g.state = *g.pending
			g.clearPending()
		}
		return platformcore.StepResult{Status: g.Status()}
	}

	if in.Has(platformcore.ActionToggleColorblind) {
		g.state = g.state.WithColorblind(!g.state.ColorblindMode)
		g.initial = g.initial.WithColorblind(g.state.ColorblindMode)
	}

	switch {
	case in.Has(platformcore.ActionNewGame):
		g.deal(g.rng.Int63(), g.state.ColorblindMode)
		return platformcore.StepResult{Status: g.Status()}
	case in.Has(platformcore.ActionRestart):
		g.start(g.initial.WithColorblind(g.state.ColorblindMode))
		return platformcore.StepResult{Status: g.Status()}
	}

	if g.state.IsWon {
		return platformcore.StepResult{Status: g.Status()}
	}
	g.playTicks++

	n := len(g.state.Tubes)
	switch {
	case in.Has(platformcore.ActionLeft):
		g.cursor = platformcore.Wrap(g.cursor-1, n)
	case in.Has(platformcore.ActionRight):
		g.cursor = platformcore.Wrap(g.cursor+1, n)
	}

	if in.Has(platformcore.ActionBack) {
		g.state.Selected = core.NoSelection
	}

	// Clicks apply in arrival order until a pour starts or the puzzle is won.
	for _, c := range in.Clicks {
		if g.pending != nil || g.state.IsWon || n == 0 {
			break
		}
		switch {
		case c == platformcore.ClickCursor:
		case c >= 0 && c < n:
			g.cursor = c
		default:
			continue
		}
		g.click(g.state.Tubes[g.cursor].ID)
	}

	return platformcore.StepResult{Status: g.Status()}
}

// click applies a tube click. A pour is decided now and lands after the
// configured animation delay.
func (g *Game) click(id int) {
	from := g.state.Selected
	next := g.state.Click(id)

	if next.Moves == g.state.Moves {
		g.state = next
		return
	}

	ticks := activeConfig.Animation.PourTicks
	if ticks <= 0 {
		g.state = next
		return
	}
	g.pending = &next
	g.pendingTicks = ticks
	g.pouring = from
	g.receiving = id
}

// Animating reports whether a pour is in flight.
func (g *Game) Animating() bool {
	return g.pending != nil
}

// Status returns moves, win and pause flags.
func (g *Game) Status() platformcore.Status {
	return platformcore.Status{
		Moves:  g.state.Moves,
		Won:    g.state.IsWon,
		Paused: g.paused || g.tooSmall,
	}
}

// titleCase upper-cases the first letter of s.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
