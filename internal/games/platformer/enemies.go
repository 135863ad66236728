package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// updateEnemies advances every enemy within cullRange pixels of the player.
// Enemies further away are frozen and resume from the same state later.
func updateEnemies(lvl *Level, playerX, cullRange, animPeriod int) {
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		if core.Abs(e.X-playerX) >= cullRange {
			continue
		}
		e.update(lvl, animPeriod)
	}
}

// update runs one tick of the enemy's behaviour.
func (e *Enemy) update(lvl *Level, animPeriod int) {
	if e.Kind.hasGravity() {
		e.ApplyGravity(lvl.Gravity, lvl.TerminalVelocity)
	}

	c := lvl.resolver.Move(&e.Body, e.Kind.policy())
	if e.Kind == EnemyPatroller && len(c.Landed) > 0 && !supported(&e.Body, c.Landed) {
		e.VX = -e.VX
	}

	e.checkBounds(lvl)
	e.animate(animPeriod)
}

// supported reports whether any landing block still holds the leading edge,
// i.e. the next step will not walk off a ledge.
func supported(b *Body, landed []core.Rect) bool {
	for _, blk := range landed {
		if b.VX > 0 && b.Right() <= blk.Right() {
			return true
		}
		if b.VX < 0 && b.X >= blk.X {
			return true
		}
	}
	return false
}

// checkBounds reverses at the level edges.
func (e *Enemy) checkBounds(lvl *Level) {
	if e.X < 0 {
		e.X = 0
		e.VX = -e.VX
	} else if e.Right() > lvl.Width {
		e.SetRight(lvl.Width)
		e.VX = -e.VX
	}
}

// animate shows the next frame once every period ticks.
func (e *Enemy) animate(period int) {
	if e.steps == 0 {
		e.frame = e.cursor
		e.cursor = (e.cursor + 1) % e.Kind.Frames()
	}
	e.steps = (e.steps + 1) % max(period, 1)
}
