package platformer

import (
	"hash/fnv"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Camera returns the horizontal scroll offset for a viewport following the
// player: zero until the player's center passes half the viewport, then
// centered on the player, stopping at the level's right edge. Never negative.
func Camera(centerX, levelWidth, viewportWidth int) int {
	half := viewportWidth / 2
	var x int
	switch {
	case centerX < half:
		x = 0
	case centerX > levelWidth-half:
		x = levelWidth - viewportWidth
	default:
		x = centerX - half
	}
	return max(x, 0)
}

// Stats is everything the HUD shows.
type Stats struct {
	LevelName       string
	LevelIndex      int
	LevelCount      int
	Hearts          int
	MaxHearts       int
	Lives           int
	Score           int
	Coins           int
	TotalCoins      int
	PowerUps        int
	EnemiesDefeated int
	TimeLeft        int
	PowerUpTime     int
	HasKey          bool
	Muted           bool
}

// PlayerView is the player's render state.
type PlayerView struct {
	Rect    core.Rect
	Visual  Visual
	Visible bool // false on blink frames while invincible
}

// EntityView is one live entity's render state.
type EntityView struct {
	Kind        EntityKind
	Rect        core.Rect
	Frame       int
	FacingRight bool
	Hidden      bool // prizes stay hidden until the chest is opened
}

// Snapshot is a read-only copy of the session for renderers and tests.
type Snapshot struct {
	Tick     uint64
	Stage    Stage
	Stats    Stats
	Player   PlayerView
	Entities []EntityView
	CameraX  int // Scroll offset in world pixels
	CameraY  int
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	p, lvl := g.player, g.level
	return Snapshot{
		Tick:  g.tickCount,
		Stage: g.stage,
		Stats: Stats{
			LevelName:       lvl.Name,
			LevelIndex:      g.levelIndex,
			LevelCount:      len(g.levels),
			Hearts:          p.Hearts,
			MaxHearts:       p.MaxHearts,
			Lives:           p.Lives,
			Score:           p.Score,
			Coins:           p.Coins,
			TotalCoins:      p.TotalCoins,
			PowerUps:        p.PowerUps,
			EnemiesDefeated: p.EnemiesDefeated,
			TimeLeft:        g.timeLeft,
			PowerUpTime:     p.PowerUpTime,
			HasKey:          p.HasKey,
			Muted:           g.muted,
		},
		Player: PlayerView{
			Rect:    p.Rect(),
			Visual:  p.Visual,
			Visible: p.Visible(),
		},
		Entities: entityViews(lvl),
		CameraX:  Camera(p.CenterX(), lvl.Width, g.viewW),
		CameraY:  cameraY(p.Y+p.H()/2, lvl.Height, g.viewH),
	}
}

// cameraY centers the player vertically, clamped to the level. Levels no
// taller than the viewport never scroll.
func cameraY(centerY, levelHeight, viewportHeight int) int {
	return core.Clamp(centerY-viewportHeight/2, 0, max(levelHeight-viewportHeight, 0))
}

// entityViews lists live entities in draw order: flags, items, enemies.
func entityViews(lvl *Level) []EntityView {
	var views []EntityView
	items := func(set []Item, hidden bool) {
		for _, it := range set {
			views = append(views, EntityView{Kind: it.Kind, Rect: it.Rect, Hidden: hidden})
		}
	}
	items(lvl.Flags, false)
	items(lvl.Coins, false)
	items(lvl.AltCoins, false)
	items(lvl.PowerUps, false)
	items(lvl.Keys, false)
	items(lvl.Chests, false)
	items(lvl.Prizes, !lvl.ChestOpened)
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		views = append(views, EntityView{
			Kind:        e.Kind.Entity(),
			Rect:        e.Rect(),
			Frame:       e.Frame(),
			FacingRight: e.FacingRight(),
		})
	}
	return views
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	mixBool := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}
	mixRect := func(r core.Rect) {
		mix(r.X)
		mix(r.Y)
		mix(r.W)
		mix(r.H)
	}

	mix(int(snap.Stage))
	s := snap.Stats
	mix(s.LevelIndex)
	mix(s.Hearts)
	mix(s.MaxHearts)
	mix(s.Lives)
	mix(s.Score)
	mix(s.Coins)
	mix(s.TotalCoins)
	mix(s.PowerUps)
	mix(s.EnemiesDefeated)
	mix(s.TimeLeft)
	mix(s.PowerUpTime)
	mixBool(s.HasKey)
	mixBool(s.Muted)

	mixRect(snap.Player.Rect)
	mix(int(snap.Player.Visual.Pose))
	mix(snap.Player.Visual.Frame)
	mixBool(snap.Player.Visual.FacingRight)
	mixBool(snap.Player.Visible)

	for _, e := range snap.Entities {
		f := fnv.New64a()
		_, _ = f.Write([]byte(e.Kind))
		h = h*31 + f.Sum64()
		mixRect(e.Rect)
		mix(e.Frame)
		mixBool(e.FacingRight)
		mixBool(e.Hidden)
	}

	mix(snap.CameraX)
	mix(snap.CameraY)
	return h
}
