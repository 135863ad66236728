package platformer

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithCueSink routes audio cues to sink.
func WithCueSink(sink CueSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.sink = sink
		}
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMuted starts the session with cues muted.
func WithMuted(muted bool) Option {
	return func(g *Game) {
		g.muted = muted
	}
}

// Game is one play session: the stage machine, the player, the active level
// and the countdown. It is not safe for concurrent use.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	levels  []LevelData
	rules   Interactions

	stage      Stage
	levelIndex int
	level      *Level
	player     *Player

	viewW, viewH int // Viewport in world pixels

	timeLeft   int // seconds
	timerTicks int
	powerTicks int
	tickCount  uint64

	sink   CueSink
	muted  bool
	logger *log.Logger
}

// New creates a session over the given levels. Every level is built once up
// front so malformed data fails here rather than mid-game.
func New(levels []LevelData, cfg config.PlatformerConfig, opts ...Option) (*Game, error) {
	if len(levels) == 0 {
		return nil, errors.New("platformer: no levels")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("platformer: invalid config: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		levels: levels,
		viewW:  cfg.View.ViewportWidth,
		viewH:  cfg.View.ViewportHeight,
		sink:   discardSink{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	for i, data := range levels {
		if _, err := BuildLevel(data, g.geometry()); err != nil {
			return nil, fmt.Errorf("platformer: level %d: %w", i+1, err)
		}
	}

	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset starts a fresh session: new player, first level, splash screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.setViewport(runtime.ScreenW, runtime.ScreenH)
	g.rules = NewInteractions(g.cfg, runtime.TickRate)
	g.tickCount = 0
	g.restart()
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.setViewport(w, h)
}

// setViewport derives the visible world area from a screen of cols x rows
// cells. Non-positive sizes keep the current viewport.
func (g *Game) setViewport(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	g.viewW = cols * g.cfg.View.CellWidth
	g.viewH = max(rows-hudRows, 0) * g.cfg.View.CellHeight
}

// Viewport returns the visible world area in pixels.
func (g *Game) Viewport() (w, h int) {
	return g.viewW, g.viewH
}

func (g *Game) geometry() Geometry {
	return Geometry{
		GridSize:         g.cfg.Physics.GridSize,
		Gravity:          g.cfg.Physics.Gravity,
		TerminalVelocity: g.cfg.Physics.TerminalVelocity,
		PatrolSpeed:      g.cfg.Enemies.PatrolSpeed,
	}
}

// restart discards the player and returns to the first level's splash.
func (g *Game) restart() {
	g.player = NewPlayer(g.cfg.Player)
	g.levelIndex = 0
	g.start()
	g.stage = StageSplash
	g.logger.Debug("session reset", "level", g.level.Name)
}

// start loads the current level and places the player at its start.
func (g *Game) start() {
	lvl, err := BuildLevel(g.levels[g.levelIndex], g.geometry())
	if err != nil {
		// Levels were validated in New
		panic(err)
	}
	g.level = lvl
	g.player.Respawn(lvl)
	g.resetTimers()
	g.logger.Debug("level loaded", "index", g.levelIndex, "name", lvl.Name)
}

func (g *Game) resetTimers() {
	g.timeLeft = g.cfg.Timing.TimeLimit
	g.timerTicks = 0
	g.powerTicks = 0
}

// advance moves to the next level with one more heart slot.
func (g *Game) advance() {
	g.levelIndex++
	g.player.MaxHearts++
	g.start()
	g.setStage(StageStart)
}

// setStage applies a transition if the machine allows it.
func (g *Game) setStage(to Stage) bool {
	if !CanTransition(g.stage, to) {
		g.logger.Debug("transition ignored", "from", g.stage, "to", to)
		return false
	}
	g.logger.Debug("stage", "from", g.stage, "to", to)
	g.stage = to
	return true
}

func (g *Game) emit(c Cue) {
	if g.muted {
		return
	}
	g.sink.Play(c)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++
	g.handleInput(in)

	if g.stage == StagePlaying {
		g.applyMovement(in)
		g.tickTimers()
		g.update()
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies the per-stage key handlers. Keys a stage does not
// handle are ignored.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionToggleSound) {
		g.toggleSound()
	}

	switch g.stage {
	case StageSplash, StageStart:
		if in.AnyPressed(core.ActionToggleSound, core.ActionQuit) {
			g.setStage(StagePlaying)
			g.emit(CueMusicStart)
		}

	case StagePlaying:
		if in.Has(core.ActionJump) && g.player.Jump(g.level.resolver, g.cfg.Physics.JumpImpulse) {
			g.emit(CueJump)
		}
		if in.Has(core.ActionPause) {
			g.setStage(StagePaused)
		}

	case StagePaused:
		if in.Has(core.ActionPause) {
			g.setStage(StagePlaying)
		}

	case StageLevelCompleted:
		if in.AnyPressed(core.ActionToggleSound, core.ActionQuit) {
			g.advance()
		}

	case StageGameOver, StageVictory:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
	}
}

// toggleSound mutes or unmutes cues, stopping or resuming music mid-level.
func (g *Game) toggleSound() {
	if g.muted {
		g.muted = false
		if g.stage == StagePlaying || g.stage == StagePaused {
			g.emit(CueMusicStart)
		}
		return
	}
	if g.stage == StagePlaying || g.stage == StagePaused {
		g.emit(CueMusicStop)
	}
	g.muted = true
}

// applyMovement turns held direction and crouch keys into velocity.
func (g *Game) applyMovement(in core.InputFrame) {
	p := g.player
	p.Crouching = in.Holding(core.ActionDuck)
	switch {
	case in.Holding(core.ActionLeft):
		p.MoveLeft()
	case in.Holding(core.ActionRight):
		p.MoveRight()
	default:
		p.Stop()
	}
}

// tickTimers counts down the power-up timer and the level clock once per
// second of simulated time.
func (g *Game) tickTimers() {
	rate := g.runtime.TickRate
	p := g.player

	if p.PowerUpTime > 0 {
		g.powerTicks++
		if g.powerTicks%rate == 0 {
			p.PowerUpTime--
		}
		if p.PowerUpTime == 0 {
			p.BaseSpeed = g.cfg.Player.BaseSpeed
			g.powerTicks = 0
		}
	}

	if g.timeLeft > 0 {
		g.timerTicks++
		if g.timerTicks%rate == 0 {
			g.timeLeft--
		}
		if g.timeLeft == 0 {
			g.logger.Debug("time up", "level", g.level.Name)
			p.Hearts = 0
			g.timerTicks = 0
			g.timeLeft = g.cfg.Timing.TimeLimit
		}
	}
}

// update runs the player, then the enemies, then re-evaluates the stage.
func (g *Game) update() {
	g.updatePlayer()
	cull := g.cfg.Enemies.CullViewports * g.cfg.View.ViewportWidth
	updateEnemies(g.level, g.player.X, cull, g.cfg.Enemies.AnimPeriod)
	g.evaluate()
}

// updatePlayer is the player's per-tick sequence.
func (g *Game) updatePlayer() {
	p, lvl := g.player, g.level
	sink := CueFunc(g.emit)

	g.rules.Enemies(p, lvl, sink)
	p.ApplyGravity(lvl.Gravity, lvl.TerminalVelocity)
	c := lvl.resolver.Move(&p.Body, Policy{Lateral: LateralStop})
	p.Grounded = c.Grounded
	p.checkBounds(lvl)

	p.advanceRun()
	p.Visual = SelectVisual(p, p.Visual.Frame)

	if p.Hearts > 0 {
		g.rules.Pickups(p, lvl, g.timeLeft, sink)
		p.applyCrouch()
		if p.Invincibility > 0 {
			p.Invincibility--
		}
		return
	}

	cue := p.die()
	g.logger.Debug("player died", "lives", p.Lives, "level", lvl.Name)
	g.emit(cue)
}

// evaluate moves the stage machine after a tick of play.
func (g *Game) evaluate() {
	p := g.player
	switch {
	case g.level.Completed:
		if g.levelIndex < len(g.levels)-1 {
			g.setStage(StageLevelCompleted)
		} else {
			g.setStage(StageVictory)
		}
		g.emit(CueMusicStop)

	case p.Lives <= 0:
		g.setStage(StageGameOver)
		g.emit(CueMusicStop)

	case p.Hearts <= 0:
		// Soft reset: same stage, fresh live sets
		g.level.Reset()
		p.Respawn(g.level)
		g.logger.Debug("soft reset", "level", g.level.Name, "lives", p.Lives)
	}
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		GameOver: g.stage.Over(),
		Paused:   g.stage == StagePaused,
	}
}

// Stage returns the current stage.
func (g *Game) Stage() Stage { return g.stage }

// Player returns the player. Callers must not keep it across Reset.
func (g *Game) Player() *Player { return g.player }

// Level returns the active level session.
func (g *Game) Level() *Level { return g.level }

// LevelIndex returns the zero-based index of the active level.
func (g *Game) LevelIndex() int { return g.levelIndex }

// LevelCount returns how many levels the session has.
func (g *Game) LevelCount() int { return len(g.levels) }

// TimeLeft returns the level countdown in seconds.
func (g *Game) TimeLeft() int { return g.timeLeft }

// Muted reports whether cues are muted.
func (g *Game) Muted() bool { return g.muted }

// Config returns the tuning in use.
func (g *Game) Config() config.PlatformerConfig { return g.cfg }
