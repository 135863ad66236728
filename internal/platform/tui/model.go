package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model for a platformer session.
type Model struct {
	game     *platformer.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	holds    *Holds
	input    core.InputFrame
	player   string
	logger   *log.Logger
	quitting bool
	runSaved bool // Whether the finished run has been saved
	lastRun  *storage.Run
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name stored with finished runs.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithModelLogger sets the logger for storage failures.
func WithModelLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(game *platformer.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		holds:  NewHolds(cfg.TickRate),
		input:  core.NewInputFrame(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey records the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case holdable(action):
		m.holds.Press(action)
	}
	m.input.Set(action)

	return m, nil
}

// handleResize keeps the session and only resizes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.input)
	m.game.Step(m.input)
	m.holds.Tick()
	m.input.Clear()

	stage := m.game.Stage()
	switch {
	case stage.Over() && !m.runSaved:
		m.saveRun(stage)
		m.runSaved = true
		m.holds.Release()
	case !stage.Over():
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Failures are logged; play continues.
func (m *Model) saveRun(stage platformer.Stage) {
	run := RunFromGame(m.game, m.player)
	m.lastRun = &run
	if m.store == nil {
		return
	}
	saved, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRun = &saved
	m.logger.Info("run saved", "run", saved.RunID, "score", saved.Score, "outcome", saved.Outcome, "stage", stage)
}

// RunFromGame summarises a finished session for storage.
func RunFromGame(g *platformer.Game, player string) storage.Run {
	p := g.Player()
	outcome := storage.OutcomeGameOver
	if g.Stage() == platformer.StageVictory {
		outcome = storage.OutcomeVictory
	}
	return storage.Run{
		Player:       player,
		Score:        p.Score,
		LevelReached: g.LevelIndex() + 1,
		LevelName:    g.Level().Name,
		Coins:        p.TotalCoins,
		Enemies:      p.EnemiesDefeated,
		PowerUps:     p.PowerUps,
		Outcome:      outcome,
	}
}

// LastRun returns the most recently finished run, or nil.
func (m Model) LastRun() *storage.Run {
	return m.lastRun
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(game *platformer.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
