package platformer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const (
	hudRows    = 2
	minScreenW = 24
	minScreenH = hudRows + 4
)

type glyph struct {
	text  string
	color core.Color
}

var tileGlyphs = map[string]glyph{
	"TL": {"▛▀", core.ColorGreen},
	"TM": {"▀▀", core.ColorGreen},
	"TR": {"▀▜", core.ColorGreen},
	"TP": {"▀▀", core.ColorBrightGreen},
	"EL": {"▐█", core.ColorGreen},
	"ER": {"█▌", core.ColorGreen},
	"LF": {"▀▀", core.ColorBrightGreen},
	"CN": {"██", core.ColorBrown},
	"SP": {"▒▒", core.ColorMagenta},
}

var defaultTile = glyph{"██", core.ColorGray}

var itemGlyphs = map[EntityKind]glyph{
	KindCoin:      {"()", core.ColorYellow},
	KindAltCoin:   {"<>", core.ColorBrightCyan},
	KindSpeedUp:   {"»»", core.ColorBrightGreen},
	KindSpeedDown: {"««", core.ColorOrange},
	KindHeart:     {"♥+", core.ColorBrightRed},
	KindOneUp:     {"1U", core.ColorBrightRed},
	KindPrize:     {"★★", core.ColorBrightYellow},
	KindKey:       {"o─", core.ColorYellow},
	KindChest:     {"[]", core.ColorBrown},
	KindFlag:      {"|>", core.ColorBrightMagenta},
}

// enemyGlyphs holds left-facing frames; right-facing frames are mirrored.
var enemyGlyphs = map[EntityKind][]glyph{
	KindPatroller: {{"<ᗣ", core.ColorRed}, {"«ᗣ", core.ColorRed}},
	KindWalker:    {{"<ʕ", core.ColorOrange}},
	KindFlyer:     {{"<w", core.ColorCyan}},
}

var poseGlyphs = map[Pose][]string{
	PoseIdle:   {"@>"},
	PoseRun:    {"@»", "@›"},
	PoseJump:   {"@^"},
	PoseFall:   {"@v"},
	PoseCrouch: {"@_"},
	PoseHurt:   {"@!"},
}

var mirrored = map[rune]rune{
	'<': '>', '>': '<', '«': '»', '»': '«', '‹': '›', '›': '‹',
	'▛': '▜', '▜': '▛', '▐': '▌', '▌': '▐',
}

// mirror reverses a glyph so it faces the other way.
func mirror(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	for i, c := range r {
		if m, ok := mirrored[c]; ok {
			r[i] = m
		}
	}
	return string(r)
}

// view maps world pixels to screen cells.
type view struct {
	camX, camY int
	cw, ch     int
}

func roundDiv(a, b int) int {
	return core.FloorDiv(a+b/2, b)
}

// draw paints a sprite covering rect, repeating the glyph across its cells.
func (v view) draw(dst *core.Screen, r core.Rect, g glyph) {
	col := roundDiv(r.X-v.camX, v.cw)
	row := hudRows + roundDiv(r.Y-v.camY, v.ch)
	cols := max(1, (r.W+v.cw-1)/v.cw)
	rows := max(1, (r.H+v.ch-1)/v.ch)
	runes := []rune(g.text)
	if len(runes) == 0 {
		return
	}

	for dy := 0; dy < rows; dy++ {
		if row+dy < hudRows {
			continue
		}
		for dx := 0; dx < cols; dx++ {
			dst.SetColored(col+dx, row+dy, runes[dx%len(runes)], g.color)
		}
	}
}

// Render draws the level around the player, the HUD and any stage overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// The screen being drawn is the viewport.
	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		g.Resize(dst.Width(), dst.Height())
	}
	snap := g.Snapshot()
	v := view{
		camX: snap.CameraX,
		camY: snap.CameraY,
		cw:   g.cfg.View.CellWidth,
		ch:   g.cfg.View.CellHeight,
	}

	for _, b := range g.level.Blocks {
		gl, ok := tileGlyphs[b.Tag]
		if !ok {
			gl = defaultTile
		}
		v.draw(dst, b.Rect, gl)
	}

	for _, e := range snap.Entities {
		if e.Hidden {
			continue
		}
		if frames, ok := enemyGlyphs[e.Kind]; ok {
			gl := frames[e.Frame%len(frames)]
			if e.FacingRight {
				gl.text = mirror(gl.text)
			}
			v.draw(dst, e.Rect, gl)
			continue
		}
		v.draw(dst, e.Rect, itemGlyphs[e.Kind])
	}

	if snap.Player.Visible {
		v.draw(dst, snap.Player.Rect, playerGlyph(snap.Player.Visual))
	}

	g.renderHUD(dst, snap.Stats)
	g.renderStage(dst, snap)
}

func playerGlyph(v Visual) glyph {
	frames := poseGlyphs[v.Pose]
	text := frames[v.Frame%len(frames)]
	if !v.FacingRight {
		text = mirror(text)
	}
	color := core.ColorBrightCyan
	if v.Pose == PoseHurt {
		color = core.ColorBrightRed
	}
	return glyph{text, color}
}

// renderHUD draws level, time and health on the left and score on the right.
func (g *Game) renderHUD(dst *core.Screen, s Stats) {
	hearts := strings.Repeat("♥", max(s.Hearts, 0)) + strings.Repeat("♡", max(s.MaxHearts-s.Hearts, 0))
	left := fmt.Sprintf("%s  Time %d  %s  Lives %d", s.LevelName, s.TimeLeft, hearts, s.Lives)
	dst.DrawText(0, 0, left)

	right := fmt.Sprintf("Score %d  Coins x%d", s.Score, s.Coins)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightYellow)

	var flags []string
	if s.HasKey && g.stage == StagePlaying {
		flags = append(flags, "Got the Key.")
	}
	if s.PowerUpTime > 0 {
		flags = append(flags, fmt.Sprintf("Power-up %ds", s.PowerUpTime))
	}
	if s.Muted {
		flags = append(flags, "Sound off")
	}
	dst.DrawTextColored(0, 1, strings.Join(flags, "  "), core.ColorGray)
}

// renderStage draws the message box for non-playing stages.
func (g *Game) renderStage(dst *core.Screen, snap Snapshot) {
	s := snap.Stats
	switch snap.Stage {
	case StageSplash:
		g.renderOverlay(dst, "PLATFORMER", "Press any key to start.")
	case StageStart:
		g.renderOverlay(dst, "Ready?!!!", "Press any key to start.")
	case StagePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StageLevelCompleted:
		g.renderOverlay(dst, "Level Complete", "Press any key to continue.")
		g.renderTotals(dst, s)
	case StageVictory:
		g.renderOverlay(dst, "You Win!", "Press 'R' to restart.")
		g.renderTotals(dst, s)
	case StageGameOver:
		g.renderOverlay(dst, "Game Over", "Press 'R' to restart.")
	}
}

// renderTotals lists end-of-level counters along the bottom rows.
func (g *Game) renderTotals(dst *core.Screen, s Stats) {
	lines := []string{
		fmt.Sprintf("Total Coins Collected: %d", s.TotalCoins),
		fmt.Sprintf("Ending Score: %d", s.Score),
		fmt.Sprintf("Total Powerups Collected: %d", s.PowerUps),
		fmt.Sprintf("Enemies Defeated: %d", s.EnemiesDefeated),
	}
	top := dst.Height() - len(lines)
	for i, l := range lines {
		dst.DrawTextColored(1, top+i, l, core.ColorWhite)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawRect(core.NewRect(x, y, w, h), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, w, h))
	dst.DrawTextColored(x+(w-len([]rune(line1)))/2, y+1, line1, core.ColorBrightYellow)
	dst.DrawText(x+(w-len([]rune(line2)))/2, y+2, line2)
}
