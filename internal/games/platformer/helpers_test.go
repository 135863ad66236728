package platformer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

const grid = 64

func testGeometry() Geometry {
	return Geometry{GridSize: grid, Gravity: 1, TerminalVelocity: 20, PatrolSpeed: 2}
}

// floorLevel is w cells wide and 10 tall, with a solid floor on row 9 and the
// start one cell above it at column 1.
func floorLevel(w int, spawns ...Spawn) LevelData {
	data := LevelData{
		ID:               "test",
		Name:             "Test Level",
		Width:            w,
		Height:           10,
		StartX:           1,
		StartY:           8,
		Gravity:          1,
		TerminalVelocity: 20,
		Spawns:           spawns,
	}
	for x := 0; x < w; x++ {
		data.Blocks = append(data.Blocks, Tile{X: x, Y: 9, Tag: "TM"})
	}
	return data
}

func buildLevel(t *testing.T, data LevelData) *Level {
	t.Helper()
	lvl, err := BuildLevel(data, testGeometry())
	require.NoError(t, err)
	return lvl
}

// newTestGame creates a session and moves it to PLAYING.
func newTestGame(t *testing.T, cfg config.PlatformerConfig, levels ...LevelData) (*Game, *CueRecorder) {
	t.Helper()
	rec := &CueRecorder{}
	g, err := New(levels, cfg, WithCueSink(rec))
	require.NoError(t, err)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g, rec
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionConfirm))
	require.Equal(t, StagePlaying, g.Stage())
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// placePlayer puts the player at a cell of the given level, at rest.
func placePlayer(p *Player, cx, cy int) {
	p.X, p.Y = cx*grid, cy*grid
	p.VX, p.VY = 0, 0
}
