// Package formats provides the level file parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Size             YAMLSize    `yaml:"size"`
	Start            YAMLPoint   `yaml:"start"`
	Gravity          int         `yaml:"gravity,omitempty"`
	TerminalVelocity int         `yaml:"terminal_velocity,omitempty"`
	Blocks           []YAMLBlock `yaml:"blocks"`
	Spawns           []YAMLSpawn `yaml:"spawns"`
}

// YAMLSize represents level dimensions in cells.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint is a grid cell.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLBlock is a run of solid tiles. W and H default to 1.
type YAMLBlock struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	W   int    `yaml:"w,omitempty"`
	H   int    `yaml:"h,omitempty"`
	Tag string `yaml:"tag"`
}

// YAMLSpawn places Count entities of one kind in a row. Count defaults to 1.
type YAMLSpawn struct {
	Kind  string `yaml:"kind"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Count int    `yaml:"count,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (platformer.LevelData, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return platformer.LevelData{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := platformer.LevelData{
		ID:               yl.ID,
		Name:             yl.Name,
		Width:            yl.Size.W,
		Height:           yl.Size.H,
		StartX:           yl.Start.X,
		StartY:           yl.Start.Y,
		Gravity:          yl.Gravity,
		TerminalVelocity: yl.TerminalVelocity,
	}

	for _, b := range yl.Blocks {
		w, h := max(b.W, 1), max(b.H, 1)
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				level.Blocks = append(level.Blocks, platformer.Tile{X: b.X + dx, Y: b.Y + dy, Tag: b.Tag})
			}
		}
	}

	for _, s := range yl.Spawns {
		for i, n := 0, max(s.Count, 1); i < n; i++ {
			level.Spawns = append(level.Spawns, platformer.Spawn{
				Kind: platformer.EntityKind(s.Kind),
				X:    s.X + i,
				Y:    s.Y,
			})
		}
	}

	return level, nil
}
