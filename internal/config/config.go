// Package config provides YAML-based tuning for the platformer: physics
// constants, player stats, enemy behaviour, scoring and timing.
package config

// PlatformerConfig contains all tunable values for the platformer.
type PlatformerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	View    ViewConfig    `yaml:"view"`
}

// PhysicsConfig defines world-level physics parameters.
// Gravity and terminal velocity come from each level file; the values here
// are used only when a level leaves them unset.
type PhysicsConfig struct {
	GridSize         int `yaml:"grid_size"` // Pixels per level cell
	JumpImpulse      int `yaml:"jump_impulse"`
	StompBounce      int `yaml:"stomp_bounce"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
}

// PlayerConfig defines the hero's size, speeds and health.
type PlayerConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	BaseSpeed         int     `yaml:"base_speed"`
	CrouchSpeed       int     `yaml:"crouch_speed"`
	SpeedStep         int     `yaml:"speed_step"` // Base speed change per speed power-up
	MinSpeed          int     `yaml:"min_speed"`
	Lives             int     `yaml:"lives"`
	Hearts            int     `yaml:"hearts"`
	InvincibilitySecs float64 `yaml:"invincibility_secs"`
}

// EnemyConfig defines shared enemy behaviour.
type EnemyConfig struct {
	PatrolSpeed   int `yaml:"patrol_speed"`
	AnimPeriod    int `yaml:"anim_period"`    // Frames per animation step
	CullViewports int `yaml:"cull_viewports"` // Freeze radius in viewport widths
}

// ScoringConfig defines score awarded per pickup.
type ScoringConfig struct {
	Coin         int `yaml:"coin"`
	AltCoin      int `yaml:"alt_coin"`
	SpeedUp      int `yaml:"speed_up"`
	SpeedDown    int `yaml:"speed_down"`
	Heart        int `yaml:"heart"`
	OneUp        int `yaml:"one_up"`
	Prize        int `yaml:"prize"`
	CoinsPerLife int `yaml:"coins_per_life"`
}

// TimingConfig defines the level countdown and power-up duration, in seconds.
type TimingConfig struct {
	TimeLimit   int `yaml:"time_limit"`
	PowerUpSecs int `yaml:"power_up_secs"`
}

// ViewConfig defines the virtual viewport in world pixels and how many
// pixels one terminal cell covers.
type ViewConfig struct {
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`
	CellWidth      int `yaml:"cell_width"`
	CellHeight     int `yaml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}
