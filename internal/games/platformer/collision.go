package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// LateralResponse selects what happens to vx when a body is stopped by a
// block on the X pass.
type LateralResponse int

const (
	LateralStop    LateralResponse = iota // vx = 0 (player)
	LateralReverse                        // vx = -vx (enemies)
)

// Policy tunes the resolver per mover kind.
type Policy struct {
	Lateral LateralResponse
	// LandOnRest treats a block touched with vy == 0 as a landing. Ground
	// patrollers need it to detect platform edges while walking.
	LandOnRest bool
}

// Contacts lists the blocks a Move call resolved against, per axis.
type Contacts struct {
	Lateral  []core.Rect
	Landed   []core.Rect
	Ceiling  []core.Rect
	Grounded bool
}

// Resolver moves bodies against an immutable set of static blocks, one axis
// at a time. Blocks are tested in the order they were supplied.
type Resolver struct {
	blocks []core.Rect
}

// NewResolver creates a resolver over the given blocks.
func NewResolver(blocks []core.Rect) *Resolver {
	return &Resolver{blocks: blocks}
}

// Blocks returns the static geometry.
func (r *Resolver) Blocks() []core.Rect {
	return r.blocks
}

// Overlapping returns every block sharing area with box, in block order.
func (r *Resolver) Overlapping(box core.Rect) []core.Rect {
	var hits []core.Rect
	for _, blk := range r.blocks {
		if box.Intersects(blk) {
			hits = append(hits, blk)
		}
	}
	return hits
}

// Probe returns the blocks a copy of b displaced by (dx, dy) would overlap.
// The body itself is not moved.
func (r *Resolver) Probe(b *Body, dx, dy int) []core.Rect {
	return r.Overlapping(b.Rect().Moved(dx, dy))
}

// Move displaces b by its velocity and resolves overlaps: the X axis is
// fully resolved before the Y axis starts. Every block overlapped on an axis
// is applied in order, so with several hits the last one decides the final
// position.
func (r *Resolver) Move(b *Body, p Policy) Contacts {
	var c Contacts

	b.X += b.VX
	if hits := r.Overlapping(b.Rect()); len(hits) > 0 {
		switch p.Lateral {
		case LateralReverse:
			// Clamp against the direction of travel, then turn around once
			dir := b.VX
			for _, blk := range hits {
				if clampX(b, blk, dir) {
					c.Lateral = append(c.Lateral, blk)
				}
			}
			if len(c.Lateral) > 0 {
				b.VX = -b.VX
			}
		default:
			for _, blk := range hits {
				if clampX(b, blk, b.VX) {
					c.Lateral = append(c.Lateral, blk)
					b.VX = 0
				}
			}
		}
	}

	c.Grounded = false
	b.Y += b.VY
	for _, blk := range r.Overlapping(b.Rect()) {
		switch {
		case b.VY > 0 || (p.LandOnRest && b.VY == 0):
			b.SetBottom(blk.Y)
			b.VY = 0
			c.Grounded = true
			c.Landed = append(c.Landed, blk)
		case b.VY < 0:
			b.Y = blk.Bottom()
			b.VY = 0
			c.Ceiling = append(c.Ceiling, blk)
		}
	}

	return c
}

// clampX pushes b out of blk against travel direction dir.
func clampX(b *Body, blk core.Rect, dir int) bool {
	switch {
	case dir > 0:
		b.SetRight(blk.X)
	case dir < 0:
		b.X = blk.Right()
	default:
		return false
	}
	return true
}
