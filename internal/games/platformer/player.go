package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Pose is the player's visual state.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
	PoseFall
	PoseCrouch
	PoseHurt
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseRun:
		return "run"
	case PoseJump:
		return "jump"
	case PoseFall:
		return "fall"
	case PoseCrouch:
		return "crouch"
	case PoseHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// Visual is what the renderer needs to draw the player.
type Visual struct {
	Pose        Pose
	Frame       int // run frame, 0 or 1
	FacingRight bool
}

const runFrames = 2

// Player is the hero. It is created once per game session and repositioned,
// not recreated, on respawn.
type Player struct {
	Body

	FacingRight bool
	Grounded    bool
	Crouching   bool
	HasKey      bool

	Speed     int // current horizontal speed
	BaseSpeed int // speed when not crouching; changed by speed power-ups

	Hearts    int
	MaxHearts int
	Lives     int

	Score           int
	Coins           int // session counter, wraps into extra lives
	TotalCoins      int
	PowerUps        int
	EnemiesDefeated int

	Invincibility int // frames
	PowerUpTime   int // seconds

	Visual Visual

	cfg      config.PlayerConfig
	runSteps int
}

// NewPlayer creates a player with full health at the origin.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		Body:        NewBody(0, 0, cfg.Width, cfg.Height),
		FacingRight: true,
		Grounded:    true,
		Speed:       cfg.BaseSpeed,
		BaseSpeed:   cfg.BaseSpeed,
		Hearts:      cfg.Hearts,
		MaxHearts:   cfg.Hearts,
		Lives:       cfg.Lives,
		Visual:      Visual{Pose: PoseIdle, FacingRight: true},
		cfg:         cfg,
	}
}

// MoveLeft sets leftward velocity at the current speed.
func (p *Player) MoveLeft() {
	p.VX = -p.Speed
	p.FacingRight = false
}

// MoveRight sets rightward velocity at the current speed.
func (p *Player) MoveRight() {
	p.VX = p.Speed
	p.FacingRight = true
}

// Stop zeroes horizontal velocity.
func (p *Player) Stop() {
	p.VX = 0
}

// Jump launches the player if a one-pixel downward probe hits a block.
// It reports whether the jump happened.
func (p *Player) Jump(r *Resolver, impulse int) bool {
	if len(r.Probe(&p.Body, 0, 1)) == 0 {
		return false
	}
	p.VY = -impulse
	return true
}

// Respawn moves the player to the level start, restores health and clears
// the score. Lives and the coin counter are kept.
func (p *Player) Respawn(lvl *Level) {
	p.X, p.Y = lvl.StartX, lvl.StartY
	p.Score = 0
	p.VX, p.VY = 0, 0
	p.Hearts = p.MaxHearts
	p.PowerUpTime = 0
	p.BaseSpeed = p.cfg.BaseSpeed
	p.Speed = p.BaseSpeed
	p.Invincibility = 0
	p.HasKey = false
	p.Crouching = false
	p.runSteps = 0
	p.Visual = Visual{Pose: PoseIdle, FacingRight: p.FacingRight}
}

// die spends a life and returns the matching cue.
func (p *Player) die() Cue {
	p.Lives--
	p.Speed = p.BaseSpeed
	if p.Lives > 0 {
		return CueDeath
	}
	return CueGameOver
}

// applyCrouch sets the speed modifier: crouch speed while crouching on the
// ground, base speed when standing. Crouching in the air keeps the speed.
func (p *Player) applyCrouch() {
	switch {
	case p.Crouching && p.Grounded:
		p.Speed = p.cfg.CrouchSpeed
	case !p.Crouching:
		p.Speed = p.BaseSpeed
	}
}

// checkBounds clamps the player horizontally to the level and zeroes hearts
// after falling out of the world.
func (p *Player) checkBounds(lvl *Level) {
	if p.X < 0 {
		p.X = 0
	} else if p.Right() > lvl.Width {
		p.SetRight(lvl.Width)
	}
	if p.Y > lvl.Height && !p.Grounded {
		p.Hearts = 0
	}
}

// advanceRun steps the run animation. The frame changes once every Speed
// ticks so faster running animates faster.
func (p *Player) advanceRun() {
	if !p.Grounded || p.VX == 0 {
		return
	}
	period := max(p.Speed, 1)
	p.runSteps = (p.runSteps + 1) % period
	if p.runSteps == 0 {
		p.Visual.Frame = (p.Visual.Frame + 1) % runFrames
	}
}

// SelectVisual picks the pose from physical state. It has no gameplay effect.
func SelectVisual(p *Player, runFrame int) Visual {
	v := Visual{Frame: runFrame, FacingRight: p.FacingRight}
	switch {
	case p.Invincibility > 0:
		v.Pose = PoseHurt
	case p.Grounded && p.Crouching:
		v.Pose = PoseCrouch
	case p.Grounded && p.VX != 0:
		v.Pose = PoseRun
	case p.Grounded:
		v.Pose = PoseIdle
	case p.VY > 0:
		v.Pose = PoseFall
	default:
		v.Pose = PoseJump
	}
	return v
}

// Visible reports whether the player is drawn this frame; it blinks while
// invincible.
func (p *Player) Visible() bool {
	return p.Invincibility%3 < 2
}
