package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDir     = ".platformer"
	configFile = "platformer.yaml"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default -> hard-coded default.
// Keys missing from a file keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Custom path is the only source whose errors are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("physics.grid_size", c.Physics.GridSize)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.base_speed", c.Player.BaseSpeed)
	positive("player.min_speed", c.Player.MinSpeed)
	positive("player.lives", c.Player.Lives)
	positive("player.hearts", c.Player.Hearts)
	positive("enemies.anim_period", c.Enemies.AnimPeriod)
	positive("scoring.coins_per_life", c.Scoring.CoinsPerLife)
	positive("timing.time_limit", c.Timing.TimeLimit)
	positive("view.viewport_width", c.View.ViewportWidth)
	positive("view.viewport_height", c.View.ViewportHeight)
	positive("view.cell_width", c.View.CellWidth)
	positive("view.cell_height", c.View.CellHeight)
	if c.Player.InvincibilitySecs < 0 {
		errs = append(errs, fmt.Errorf("player.invincibility_secs must not be negative, got %v", c.Player.InvincibilitySecs))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.Hearts = 4
		cfg.Timing.TimeLimit = 400
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.Hearts = 2
		cfg.Timing.TimeLimit = 200
	}
}
