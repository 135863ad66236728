package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Interactions applies overlap effects between the player and the live
// entity sets. Each consumed entity is removed in the same call that applies
// its effect, so nothing can be collected twice.
type Interactions struct {
	cfg      config.PlatformerConfig
	tickRate int
}

// NewInteractions creates a resolver for the given tuning and tick rate.
func NewInteractions(cfg config.PlatformerConfig, tickRate int) Interactions {
	return Interactions{cfg: cfg, tickRate: tickRate}
}

// invincibilityFrames converts the configured window to ticks.
func (in Interactions) invincibilityFrames() int {
	return int(in.cfg.Player.InvincibilitySecs * float64(in.tickRate))
}

// Enemies applies contact damage and stomps.
//
// Touching any enemy while not invincible and not moving vertically costs a
// heart. Independently, falling onto enemies while airborne defeats every
// overlapped enemy and bounces the player up.
func (in Interactions) Enemies(p *Player, lvl *Level, sink CueSink) {
	box := p.Rect()

	hit := false
	for i := range lvl.Enemies {
		if lvl.Enemies[i].Rect().Intersects(box) {
			hit = true
			break
		}
	}
	if hit && p.Invincibility == 0 && p.VY == 0 {
		p.Hearts--
		p.Invincibility = in.invincibilityFrames()
		sink.Play(CueHurt)
	}

	if p.Grounded || p.VY <= 0 {
		return
	}
	stomped := 0
	kept := lvl.Enemies[:0]
	for _, e := range lvl.Enemies {
		if e.Rect().Intersects(box) {
			p.Score += e.Kind.Points()
			p.EnemiesDefeated++
			stomped++
			continue
		}
		kept = append(kept, e)
	}
	lvl.Enemies = kept
	if stomped > 0 {
		p.VY = -in.cfg.Physics.StompBounce
	}
}

// Pickups applies every item effect in fixed order: coins, alt-coins,
// power-ups, prizes, keys, chests, then the flag. remaining is the level
// countdown in seconds, used for the completion bonus.
func (in Interactions) Pickups(p *Player, lvl *Level, remaining int, sink CueSink) {
	box := p.Rect()
	sc := in.cfg.Scoring

	for range take(&lvl.Coins, box) {
		in.collectCoin(p, sc.Coin, sink)
	}
	for range take(&lvl.AltCoins, box) {
		in.collectCoin(p, sc.AltCoin, sink)
	}

	for _, it := range take(&lvl.PowerUps, box) {
		p.PowerUps++
		sink.Play(CuePowerUp)
		in.applyPowerUp(p, it.Kind)
	}

	for range take(&lvl.Prizes, box) {
		p.Score += sc.Prize
		p.Lives++
	}

	for range take(&lvl.Keys, box) {
		p.HasKey = true
		sink.Play(CuePowerUp)
	}

	in.openChests(p, lvl)

	if !lvl.Completed && touching(lvl.Flags, box) {
		lvl.Completed = true
		p.Score += TimeBonus(remaining)
		sink.Play(CueLevelUp)
	}
}

func (in Interactions) collectCoin(p *Player, value int, sink CueSink) {
	sink.Play(CueCoin)
	p.Score += value
	p.Coins++
	p.TotalCoins++
	if p.Coins == in.cfg.Scoring.CoinsPerLife {
		p.Lives++
		p.Coins = 0
	}
}

func (in Interactions) applyPowerUp(p *Player, kind EntityKind) {
	sc := in.cfg.Scoring
	pc := in.cfg.Player
	secs := in.cfg.Timing.PowerUpSecs

	switch kind {
	case KindSpeedUp:
		p.Score += sc.SpeedUp
		p.BaseSpeed += pc.SpeedStep
		p.PowerUpTime += secs
	case KindSpeedDown:
		p.Score += sc.SpeedDown
		p.BaseSpeed = max(p.BaseSpeed-pc.SpeedStep, pc.MinSpeed)
		p.PowerUpTime += secs
	case KindHeart:
		// Wasted at the cap: no heart and no score
		if p.Hearts < p.MaxHearts {
			p.Hearts++
			p.Score += sc.Heart
		}
	case KindOneUp:
		p.Score += sc.OneUp
		p.Lives++
	}
}

// openChests unlocks overlapped chests, one key per chest. Without a key a
// chest stays in place.
func (in Interactions) openChests(p *Player, lvl *Level) {
	if !p.HasKey {
		return
	}
	box := p.Rect()
	kept := lvl.Chests[:0]
	for _, c := range lvl.Chests {
		if p.HasKey && c.Rect.Intersects(box) {
			p.HasKey = false
			lvl.ChestOpened = true
			continue
		}
		kept = append(kept, c)
	}
	lvl.Chests = kept
}

// TimeBonus returns the level completion bonus for the seconds remaining.
// Anything below 50, zero and negative values included, earns the last tier.
func TimeBonus(remaining int) int {
	if remaining >= 330 {
		return 500
	} else if remaining >= 150 {
		return 250
	} else if remaining >= 50 {
		return 175
	}
	return 105
}
