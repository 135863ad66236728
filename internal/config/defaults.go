package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hard-coded default configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			GridSize:         64,
			JumpImpulse:      20,
			StompBounce:      15,
			Gravity:          1,
			TerminalVelocity: 20,
		},
		Player: PlayerConfig{
			Width:             64,
			Height:            64,
			BaseSpeed:         5,
			CrouchSpeed:       2,
			SpeedStep:         2,
			MinSpeed:          1,
			Lives:             3,
			Hearts:            3,
			InvincibilitySecs: 0.75,
		},
		Enemies: EnemyConfig{
			PatrolSpeed:   2,
			AnimPeriod:    20,
			CullViewports: 2,
		},
		Scoring: ScoringConfig{
			Coin:         100,
			AltCoin:      200,
			SpeedUp:      50,
			SpeedDown:    -50,
			Heart:        100,
			OneUp:        200,
			Prize:        200,
			CoinsPerLife: 10,
		},
		Timing: TimingConfig{
			TimeLimit:   300,
			PowerUpSecs: 10,
		},
		View: ViewConfig{
			ViewportWidth:  960,
			ViewportHeight: 640,
			CellWidth:      32,
			CellHeight:     64,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `platformer config`
// style dumps and tests.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
