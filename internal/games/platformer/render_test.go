package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(12))
	startPlaying(t, g)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	hud := scr.Row(0)
	assert.Contains(t, hud, "Test Level")
	assert.Contains(t, hud, "Time 300")
	assert.Contains(t, hud, "♥♥♥")
	assert.Contains(t, hud, "Lives 3")
	assert.True(t, strings.HasSuffix(hud, "Score 0  Coins x0"), "score is right-aligned: %q", hud)
}

func TestRenderWorld(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(12,
		Spawn{Kind: KindCoin, X: 5, Y: 8},
	))
	startPlaying(t, g)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// One grid cell is two columns wide and one row tall; row 9 sits below the HUD.
	assert.Equal(t, strings.Repeat("▀", 24), strings.TrimRight(scr.Row(11), " "))
	assert.Equal(t, "@>", scr.Row(10)[len("  "):len("  ")+len("@>")])
	assert.Equal(t, '(', scr.Get(10, 10))
	assert.Equal(t, core.ColorYellow, scr.GetCell(10, 10).Color)
}

func TestRenderFlagsInHUD(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(12))
	startPlaying(t, g)
	g.Player().HasKey = true
	g.Player().PowerUpTime = 7
	g.Step(press(core.ActionToggleSound))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	flags := scr.Row(1)
	assert.Contains(t, flags, "Got the Key.")
	assert.Contains(t, flags, "Power-up 7s")
	assert.Contains(t, flags, "Sound off")
}

func TestRenderStageOverlays(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(12))
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	assert.Contains(t, scr.String(), "PLATFORMER")

	startPlaying(t, g)
	g.Render(scr)
	assert.NotContains(t, scr.String(), "PLATFORMER")

	g.Step(press(core.ActionPause))
	g.Render(scr)
	assert.Contains(t, scr.String(), "Paused")
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(12))

	scr := core.NewScreen(20, 5)
	g.Render(scr)

	assert.Contains(t, scr.String(), "Window too small")
}

func TestRenderBlinksWhileInvincible(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(12))
	startPlaying(t, g)

	scr := core.NewScreen(80, 24)
	g.Player().Invincibility = 2
	g.Render(scr)
	assert.NotContains(t, scr.Row(10), "@")

	g.Player().Invincibility = 3
	g.Render(scr)
	assert.Contains(t, scr.Row(10), "@")
}

func TestMirror(t *testing.T) {
	assert.Equal(t, "<@", mirror("@>"))
	assert.Equal(t, "ᗣ»", mirror("«ᗣ"))
	assert.Equal(t, "", mirror(""))
}

func TestRenderDrawsAtSnapshotCamera(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(80))
	startPlaying(t, g)
	placePlayer(g.Player(), 25, 8)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	snap := g.Snapshot()

	vw, _ := g.Viewport()
	assert.Equal(t, 80*32, vw, "viewport follows the screen")
	// Player center 1632, half viewport 1280
	assert.Equal(t, 352, snap.CameraX)

	col := (snap.Player.Rect.X - snap.CameraX) / 32
	assert.Equal(t, 39, col)
	assert.Equal(t, "@>", scr.Row(10)[col:col+2])
}

func TestResizeMovesCamera(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultPlatformerConfig(), floorLevel(80))
	startPlaying(t, g)
	placePlayer(g.Player(), 25, 8)

	g.Resize(40, 24)
	narrow := g.Snapshot().CameraX
	g.Resize(80, 24)
	wide := g.Snapshot().CameraX

	assert.Equal(t, 1632-640, narrow)
	assert.Equal(t, 352, wide)

	scr := core.NewScreen(40, 24)
	g.Render(scr)
	assert.Equal(t, narrow, g.Snapshot().CameraX, "rendering a smaller screen resizes the viewport")
}
