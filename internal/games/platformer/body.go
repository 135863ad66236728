// Package platformer implements the per-frame simulation of a side-scrolling
// platformer: kinematic bodies, per-axis collision against static blocks,
// enemy patrols, pickups, and the game stage machine.
//
// All positions are integer world pixels with y growing downward. The
// simulation is single-threaded and fully deterministic for a given level
// set, configuration and input sequence.
package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is an axis-aligned box with a velocity. Its size is fixed at
// construction; only position and velocity change afterwards.
type Body struct {
	X, Y   int // Top-left corner
	VX, VY int // Pixels per tick
	w, h   int
}

// NewBody creates a body at rest.
func NewBody(x, y, w, h int) Body {
	return Body{X: x, Y: y, w: w, h: h}
}

// W returns the body width.
func (b *Body) W() int { return b.w }

// H returns the body height.
func (b *Body) H() int { return b.h }

// Rect returns the current bounding box.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.w, b.h)
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() int { return b.X + b.w }

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() int { return b.Y + b.h }

// SetRight moves the body so its right edge sits at x.
func (b *Body) SetRight(x int) { b.X = x - b.w }

// SetBottom moves the body so its bottom edge sits at y.
func (b *Body) SetBottom(y int) { b.Y = y - b.h }

// CenterX returns the horizontal center.
func (b *Body) CenterX() int { return b.X + b.w/2 }

// ApplyGravity accelerates the body downward, capped at terminal velocity.
func (b *Body) ApplyGravity(gravity, terminal int) {
	b.VY = min(b.VY+gravity, terminal)
}
