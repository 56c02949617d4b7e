package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

// replayable is implemented by games that can report the seed of the
// current deal and the time spent on it.
type replayable interface {
	Seed() int64
	PlayTicks() uint64
}

// resizable is implemented by games that can adapt to a new window size
// without dealing a new layout.
type resizable interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	status     core.Status

	quitting    bool
	backToMenu  bool // Player asked to leave the game
	quitOnBack  bool // Leaving the game ends the program
	resultSaved bool // Whether the current win has been recorded
	lastSaved   int64
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init deals the first layout and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("deal", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Back leaves a finished or paused game; otherwise it only drops the selection.
		if m.status.Won || m.status.Paused {
			m.inputFrame.Clear()
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.status.Won {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	prev := m.status
	result := m.game.Step(m.inputFrame)
	m.status = result.Status

	if m.status.Moves > prev.Moves {
		m.logger.Debug("pour", "game", m.game.ID(), "moves", m.status.Moves)
	}

	// A new deal or restart clears the win; the next win is recorded again.
	if !m.status.Won {
		m.resultSaved = false
	}
	if m.status.Won && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the solved puzzle once.
func (m *Model) saveResult() {
	r := storage.Result{
		GameID:     m.game.ID(),
		Difficulty: m.game.Difficulty(),
		Moves:      m.status.Moves,
	}
	if rp, ok := m.game.(replayable); ok {
		r.Seed = rp.Seed()
		r.Duration = time.Duration(rp.PlayTicks()) * time.Second / time.Duration(m.config.TickRate)
	}

	m.logger.Info("solved", "game", r.GameID, "moves", r.Moves, "seed", r.Seed, "duration", r.Duration)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveResult(r)
	if err != nil {
		m.logger.Warn("cannot save result", "err", err)
		return
	}
	m.lastSaved = id
	m.logger.Debug("result saved", "id", id)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".colorsort", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.backToMenu && m.quitOnBack) {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Status returns the last status reported by the game.
func (m Model) Status() core.Status {
	return m.status
}

// BackToMenu reports whether the player left the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// LastSavedID returns the ID of the last stored result, or 0.
func (m Model) LastSavedID() int64 {
	return m.lastSaved
}

// Run plays one game until the player quits or goes back.
// It reports whether the player asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	model := NewModel(game, store, cfg, logger)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
