package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// LevelData is the parsed form of a level file, in grid cells.
type LevelData struct {
	ID               string
	Name             string
	Width, Height    int // Cells
	StartX, StartY   int // Cells
	Gravity          int // Pixels per tick squared; 0 uses the configured default
	TerminalVelocity int // Pixels per tick; 0 uses the configured default
	Blocks           []Tile
	Spawns           []Spawn
}

// Tile is one solid grid cell. Tag selects its look (e.g. "TM", "CN").
type Tile struct {
	X, Y int
	Tag  string
}

// Spawn places an entity template at a grid cell.
type Spawn struct {
	Kind EntityKind
	X, Y int
}

// Block is a solid tile in world pixels.
type Block struct {
	Rect core.Rect
	Tag  string
}

// EntitySet holds one owned slice per entity category.
type EntitySet struct {
	Enemies  []Enemy
	Coins    []Item
	AltCoins []Item
	PowerUps []Item // speed up, speed down, heart, one-up
	Prizes   []Item
	Keys     []Item
	Chests   []Item
	Flags    []Item
}

// clone returns a deep copy so live sets never alias templates.
func (s EntitySet) clone() EntitySet {
	return EntitySet{
		Enemies:  append([]Enemy(nil), s.Enemies...),
		Coins:    append([]Item(nil), s.Coins...),
		AltCoins: append([]Item(nil), s.AltCoins...),
		PowerUps: append([]Item(nil), s.PowerUps...),
		Prizes:   append([]Item(nil), s.Prizes...),
		Keys:     append([]Item(nil), s.Keys...),
		Chests:   append([]Item(nil), s.Chests...),
		Flags:    append([]Item(nil), s.Flags...),
	}
}

// Level is a level session: static geometry, spawn templates and the live
// entity sets consumed during play.
type Level struct {
	EntitySet // live

	Name             string
	Width, Height    int // Pixels
	StartX, StartY   int // Pixels
	Gravity          int
	TerminalVelocity int
	Blocks           []Block

	Completed   bool
	ChestOpened bool

	templates EntitySet
	resolver  *Resolver
}

// BuildLevel converts level data into a playable session. Every block and
// entity occupies one grid cell.
func BuildLevel(data LevelData, geo Geometry) (*Level, error) {
	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("platformer: level %q: size %dx%d must be positive", data.Name, data.Width, data.Height)
	}
	grid := geo.GridSize
	if grid <= 0 {
		return nil, fmt.Errorf("platformer: level %q: grid size %d must be positive", data.Name, grid)
	}

	lvl := &Level{
		Name:             data.Name,
		Width:            data.Width * grid,
		Height:           data.Height * grid,
		StartX:           data.StartX * grid,
		StartY:           data.StartY * grid,
		Gravity:          data.Gravity,
		TerminalVelocity: data.TerminalVelocity,
	}
	if lvl.Gravity == 0 {
		lvl.Gravity = geo.Gravity
	}
	if lvl.TerminalVelocity == 0 {
		lvl.TerminalVelocity = geo.TerminalVelocity
	}

	rects := make([]core.Rect, 0, len(data.Blocks))
	for _, t := range data.Blocks {
		r := core.NewRect(t.X*grid, t.Y*grid, grid, grid)
		lvl.Blocks = append(lvl.Blocks, Block{Rect: r, Tag: t.Tag})
		rects = append(rects, r)
	}
	lvl.resolver = NewResolver(rects)

	t := &lvl.templates
	for _, sp := range data.Spawns {
		x, y := sp.X*grid, sp.Y*grid
		if ek, ok := enemyKindFor(sp.Kind); ok {
			t.Enemies = append(t.Enemies, newEnemy(ek, x, y, grid, grid, geo.PatrolSpeed))
			continue
		}
		it := Item{Kind: sp.Kind, Rect: core.NewRect(x, y, grid, grid)}
		switch sp.Kind {
		case KindCoin:
			t.Coins = append(t.Coins, it)
		case KindAltCoin:
			t.AltCoins = append(t.AltCoins, it)
		case KindSpeedUp, KindSpeedDown, KindHeart, KindOneUp:
			t.PowerUps = append(t.PowerUps, it)
		case KindPrize:
			t.Prizes = append(t.Prizes, it)
		case KindKey:
			t.Keys = append(t.Keys, it)
		case KindChest:
			t.Chests = append(t.Chests, it)
		case KindFlag:
			t.Flags = append(t.Flags, it)
		default:
			return nil, fmt.Errorf("platformer: level %q: unknown entity kind %q", data.Name, sp.Kind)
		}
	}

	lvl.Reset()
	return lvl, nil
}

// Geometry carries the configured values BuildLevel needs.
type Geometry struct {
	GridSize         int
	Gravity          int
	TerminalVelocity int
	PatrolSpeed      int
}

// Reset rebuilds every live set from the templates and relocks the chest.
// Templates are never modified.
func (l *Level) Reset() {
	l.EntitySet = l.templates.clone()
	for i := range l.Enemies {
		l.Enemies[i].reset()
	}
	l.ChestOpened = false
}

// Resolver returns the collision resolver over the level's blocks.
func (l *Level) Resolver() *Resolver {
	return l.resolver
}

// Templates returns a copy of the spawn templates.
func (l *Level) Templates() EntitySet {
	return l.templates.clone()
}

// take removes and returns every item in set overlapping box, preserving the
// order of the remaining items.
func take(set *[]Item, box core.Rect) []Item {
	var hit []Item
	kept := (*set)[:0]
	for _, it := range *set {
		if it.Rect.Intersects(box) {
			hit = append(hit, it)
			continue
		}
		kept = append(kept, it)
	}
	*set = kept
	return hit
}

// touching reports whether any item in set overlaps box.
func touching(set []Item, box core.Rect) bool {
	for _, it := range set {
		if it.Rect.Intersects(box) {
			return true
		}
	}
	return false
}
