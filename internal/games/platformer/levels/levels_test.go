package levels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func TestDefaultWorld(t *testing.T) {
	world, err := Default()
	require.NoError(t, err)
	require.Len(t, world, 2)
	assert.Equal(t, "1-1", world[0].ID)
	assert.Equal(t, "1-2", world[1].ID)

	for _, lvl := range world {
		solid := make(map[[2]int]bool, len(lvl.Blocks))
		for _, b := range lvl.Blocks {
			solid[[2]int{b.X, b.Y}] = true
		}
		assert.False(t, solid[[2]int{lvl.StartX, lvl.StartY}], "%s: start inside a block", lvl.ID)
		assert.True(t, solid[[2]int{lvl.StartX, lvl.StartY + 1}], "%s: start has no ground", lvl.ID)
	}

	_, err = platformer.New(world, config.DefaultPlatformerConfig())
	assert.NoError(t, err)
}

func TestLoadAllSortsByID(t *testing.T) {
	world, err := NewLoader("testdata/world").LoadAll()
	require.NoError(t, err)
	require.Len(t, world, 2, "README.txt is ignored")
	assert.Equal(t, "a-meadow", world[0].ID)
	assert.Equal(t, "world-1", world[1].ID)
}

func TestParseYAMLExpandsRuns(t *testing.T) {
	lvl, err := NewLoader("testdata/world").LoadFile("a-meadow.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Meadow", lvl.Name)
	assert.Equal(t, 12, lvl.Width)
	assert.Equal(t, 6, lvl.Height)
	assert.Equal(t, 1, lvl.StartX)
	assert.Equal(t, 4, lvl.StartY)
	assert.Len(t, lvl.Blocks, 12+4)
	assert.Contains(t, lvl.Blocks, platformer.Tile{X: 5, Y: 3, Tag: "CN"})

	require.Len(t, lvl.Spawns, 5)
	for i, x := range []int{2, 3, 4} {
		assert.Equal(t, platformer.Spawn{Kind: platformer.KindCoin, X: x, Y: 4}, lvl.Spawns[i])
	}
	assert.Zero(t, lvl.Gravity, "unset physics falls back to the configured defaults")
}

func TestParseLegacyJSON(t *testing.T) {
	lvl, err := NewLoader("testdata/world").LoadFile("world-1.json")
	require.NoError(t, err)

	assert.Equal(t, "world-1", lvl.ID)
	assert.Equal(t, "Legacy World", lvl.Name)
	assert.Equal(t, 10, lvl.Width)
	assert.Equal(t, 6, lvl.Height)
	assert.Equal(t, 1, lvl.StartX)
	assert.Equal(t, 4, lvl.StartY)
	assert.Equal(t, 1, lvl.Gravity)
	assert.Equal(t, 20, lvl.TerminalVelocity)

	require.Len(t, lvl.Blocks, 5)
	assert.Equal(t, platformer.Tile{X: 0, Y: 5, Tag: "TL"}, lvl.Blocks[0])

	require.Len(t, lvl.Spawns, 13)
	assert.Equal(t, platformer.Spawn{Kind: platformer.KindWalker, X: 2, Y: 4}, lvl.Spawns[0])
	assert.Equal(t, platformer.Spawn{Kind: platformer.KindPatroller, X: 3, Y: 4}, lvl.Spawns[1])
	assert.Equal(t, platformer.Spawn{Kind: platformer.KindFlyer, X: 6, Y: 1}, lvl.Spawns[2])

	counts := make(map[platformer.EntityKind]int)
	for _, s := range lvl.Spawns {
		counts[s.Kind]++
	}
	assert.Equal(t, 2, counts[platformer.KindCoin])
	assert.Equal(t, 1, counts[platformer.KindAltCoin])
	assert.Equal(t, 2, counts[platformer.KindFlag])
	assert.Zero(t, counts[platformer.KindOneUp])
}

func TestInvalidLevels(t *testing.T) {
	tests := []struct {
		file string
		code string
	}{
		{"bad_size.yaml", CodeInvalidSize},
		{"no_flag.yaml", CodeMissingFlag},
		{"spawn_outside.yaml", CodeSpawnOutside},
		{"start_outside.yaml", CodeStartOutside},
		{"unknown_kind.yaml", CodeUnknownKind},
		{"negative_gravity.json", CodeInvalidPhysics},
	}

	l := NewLoader("testdata/invalid")
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := l.LoadFile(tt.file)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
			assert.Equal(t, tt.code, verr.Code)
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestMalformedFiles(t *testing.T) {
	l := NewLoader("testdata/invalid")
	for _, file := range []string{"broken.yaml", "bad_block.json"} {
		_, err := l.LoadFile(file)
		require.Error(t, err, file)

		var verr *ValidationError
		assert.False(t, errors.As(err, &verr), "%s is a parse error", file)
		assert.Contains(t, err.Error(), "parsing file")
	}
}

func TestLoadAllFailsOnInvalidFile(t *testing.T) {
	_, err := NewLoader("testdata/invalid").LoadAll()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	world, err := Load("")
	require.NoError(t, err)
	assert.Len(t, world, 2)

	world, err = Load("testdata/world/world-1.json")
	require.NoError(t, err)
	require.Len(t, world, 1)
	assert.Equal(t, "world-1", world[0].ID)

	world, err = Load("testdata/world")
	require.NoError(t, err)
	assert.Len(t, world, 2)

	_, err = Load("testdata/missing")
	assert.Error(t, err)
}

func TestLoadByIDAndListIDs(t *testing.T) {
	l := Embedded()

	ids, err := l.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"1-1", "1-2"}, ids)

	lvl, err := l.LoadByID("1-2")
	require.NoError(t, err)
	assert.Equal(t, "Sky Bridges", lvl.Name)

	_, err = l.LoadByID("9-9")
	assert.ErrorContains(t, err, "level not found")
}

func TestValidate(t *testing.T) {
	base := platformer.LevelData{
		Width: 4, Height: 4, StartX: 0, StartY: 0,
		Spawns: []platformer.Spawn{{Kind: platformer.KindFlag, X: 3, Y: 3}},
	}
	assert.NoError(t, Validate(base))

	neg := base
	neg.StartX = -1
	err := Validate(neg)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeStartOutside, verr.Code)
	assert.Equal(t, "[START_OUT_OF_BOUNDS] start (-1,0) outside 4x4", err.Error())
}
