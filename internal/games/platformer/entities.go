package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// EntityKind names a spawnable entity in level data and render views.
type EntityKind string

const (
	KindPatroller EntityKind = "patroller"
	KindWalker    EntityKind = "walker"
	KindFlyer     EntityKind = "flyer"
	KindCoin      EntityKind = "coin"
	KindAltCoin   EntityKind = "alt_coin"
	KindSpeedUp   EntityKind = "speed_up"
	KindSpeedDown EntityKind = "speed_down"
	KindHeart     EntityKind = "heart"
	KindOneUp     EntityKind = "one_up"
	KindPrize     EntityKind = "prize"
	KindKey       EntityKind = "key"
	KindChest     EntityKind = "chest"
	KindFlag      EntityKind = "flag"
)

// AllKinds lists every spawnable kind in a stable order.
var AllKinds = []EntityKind{
	KindPatroller, KindWalker, KindFlyer,
	KindCoin, KindAltCoin,
	KindSpeedUp, KindSpeedDown, KindHeart, KindOneUp,
	KindPrize, KindKey, KindChest, KindFlag,
}

// Valid reports whether k is a known kind.
func (k EntityKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsEnemy reports whether k spawns an enemy.
func (k EntityKind) IsEnemy() bool {
	return k == KindPatroller || k == KindWalker || k == KindFlyer
}

// EnemyKind is the closed set of enemy behaviours.
type EnemyKind int

const (
	// EnemyPatroller walks platforms and turns around at edges.
	EnemyPatroller EnemyKind = iota
	// EnemyWalker walks and falls off edges.
	EnemyWalker
	// EnemyFlyer ignores gravity.
	EnemyFlyer
)

// Points returns the score for defeating an enemy of this kind.
func (k EnemyKind) Points() int {
	switch k {
	case EnemyPatroller:
		return 100
	case EnemyWalker:
		return 50
	case EnemyFlyer:
		return 150
	default:
		return 0
	}
}

// Frames returns the animation frame count.
func (k EnemyKind) Frames() int {
	if k == EnemyPatroller {
		return 2
	}
	return 1
}

// Entity returns the level-data kind for k.
func (k EnemyKind) Entity() EntityKind {
	switch k {
	case EnemyWalker:
		return KindWalker
	case EnemyFlyer:
		return KindFlyer
	default:
		return KindPatroller
	}
}

func (k EnemyKind) policy() Policy {
	return Policy{
		Lateral:    LateralReverse,
		LandOnRest: k == EnemyPatroller,
	}
}

func (k EnemyKind) hasGravity() bool {
	return k != EnemyFlyer
}

// enemyKindFor maps a spawn kind to an enemy kind.
func enemyKindFor(k EntityKind) (EnemyKind, bool) {
	switch k {
	case KindPatroller:
		return EnemyPatroller, true
	case KindWalker:
		return EnemyWalker, true
	case KindFlyer:
		return EnemyFlyer, true
	default:
		return 0, false
	}
}

// Enemy is a patrolling hazard. It keeps its spawn state so a level reset
// can restore it exactly.
type Enemy struct {
	Body
	Kind EnemyKind

	spawn  Body
	steps  int // frames since the last animation step
	cursor int // next frame to show
	frame  int
}

func newEnemy(kind EnemyKind, x, y, w, h, speed int) Enemy {
	b := NewBody(x, y, w, h)
	b.VX = -speed
	return Enemy{Body: b, Kind: kind, spawn: b}
}

// Frame returns the current animation frame.
func (e *Enemy) Frame() int { return e.frame }

// FacingRight reports whether the enemy is moving right.
func (e *Enemy) FacingRight() bool { return e.VX > 0 }

// reset restores the spawn position, velocity and animation.
func (e *Enemy) reset() {
	e.Body = e.spawn
	e.steps = 0
	e.cursor = 0
	e.frame = 0
}

// Item is a static pickup, hazard or trigger.
type Item struct {
	Kind EntityKind
	Rect core.Rect
}
