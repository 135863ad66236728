package formats

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// LegacyLevel is the JSON world format of the desktop release. Every entity
// list holds [x, y] cell pairs; blocks hold [x, y, tag].
type LegacyLevel struct {
	Name             string  `json:"name"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Start            []int   `json:"start"`
	Gravity          float64 `json:"gravity"`
	TerminalVelocity float64 `json:"terminal-velocity"`
	Blocks           [][]any `json:"blocks"`
	Bears            [][]int `json:"bears"`
	Monsters         [][]int `json:"monsters"`
	Birds            [][]int `json:"birds"`
	Coins            [][]int `json:"coins"`
	AltCoins         [][]int `json:"alt_coin"`
	OneUps           [][]int `json:"oneups"`
	Hearts           [][]int `json:"hearts"`
	SpeedUps         [][]int `json:"speedups"`
	SpeedDowns       [][]int `json:"speeddowns"`
	Keys             [][]int `json:"keys"`
	Chests           [][]int `json:"chests"`
	Prizes           [][]int `json:"prizes"`
	Flag             [][]int `json:"flag"`
}

// ParseJSON parses a legacy JSON world file. Presentation keys (background,
// scenery, music) are ignored.
func ParseJSON(data []byte) (platformer.LevelData, error) {
	var jl LegacyLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return platformer.LevelData{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if len(jl.Start) != 2 {
		return platformer.LevelData{}, fmt.Errorf("start: expected [x, y], got %d values", len(jl.Start))
	}

	level := platformer.LevelData{
		Name:             jl.Name,
		Width:            jl.Width,
		Height:           jl.Height,
		StartX:           jl.Start[0],
		StartY:           jl.Start[1],
		Gravity:          int(math.Round(jl.Gravity)),
		TerminalVelocity: int(math.Round(jl.TerminalVelocity)),
	}

	for i, b := range jl.Blocks {
		tile, err := legacyTile(b)
		if err != nil {
			return platformer.LevelData{}, fmt.Errorf("blocks[%d]: %w", i, err)
		}
		level.Blocks = append(level.Blocks, tile)
	}

	groups := []struct {
		name   string
		kind   platformer.EntityKind
		points [][]int
	}{
		{"bears", platformer.KindWalker, jl.Bears},
		{"monsters", platformer.KindPatroller, jl.Monsters},
		{"birds", platformer.KindFlyer, jl.Birds},
		{"coins", platformer.KindCoin, jl.Coins},
		{"alt_coin", platformer.KindAltCoin, jl.AltCoins},
		{"oneups", platformer.KindOneUp, jl.OneUps},
		{"hearts", platformer.KindHeart, jl.Hearts},
		{"speedups", platformer.KindSpeedUp, jl.SpeedUps},
		{"speeddowns", platformer.KindSpeedDown, jl.SpeedDowns},
		{"keys", platformer.KindKey, jl.Keys},
		{"chests", platformer.KindChest, jl.Chests},
		{"prizes", platformer.KindPrize, jl.Prizes},
		{"flag", platformer.KindFlag, jl.Flag},
	}
	for _, g := range groups {
		for i, pt := range g.points {
			if len(pt) < 2 {
				return platformer.LevelData{}, fmt.Errorf("%s[%d]: expected [x, y]", g.name, i)
			}
			level.Spawns = append(level.Spawns, platformer.Spawn{Kind: g.kind, X: pt[0], Y: pt[1]})
		}
	}

	return level, nil
}

func legacyTile(v []any) (platformer.Tile, error) {
	if len(v) != 3 {
		return platformer.Tile{}, fmt.Errorf("expected [x, y, tag], got %d values", len(v))
	}
	x, okX := v[0].(float64)
	y, okY := v[1].(float64)
	tag, okT := v[2].(string)
	if !okX || !okY || !okT {
		return platformer.Tile{}, fmt.Errorf("expected [x, y, tag], got %v", v)
	}
	return platformer.Tile{X: int(x), Y: int(y), Tag: tag}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
