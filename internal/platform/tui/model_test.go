package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// testLevel is 12x10 cells with the start at (1,8). With floor set, row 9 is
// solid.
func testLevel(floor bool) platformer.LevelData {
	lvl := platformer.LevelData{
		ID:     "t",
		Name:   "Test",
		Width:  12,
		Height: 10,
		StartX: 1,
		StartY: 8,
		Spawns: []platformer.Spawn{{Kind: platformer.KindFlag, X: 11, Y: 8}},
	}
	if floor {
		for x, n := 0, lvl.Width; x < n; x++ {
			lvl.Blocks = append(lvl.Blocks, platformer.Tile{X: x, Y: 9, Tag: "TM"})
		}
	}
	return lvl
}

func newTestModel(t *testing.T, lvl platformer.LevelData, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultPlatformerConfig()
	cfg.Player.Lives = 1
	game, err := platformer.New([]platformer.LevelData{lvl}, cfg)
	if err != nil {
		t.Fatalf("platformer.New() failed: %v", err)
	}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, WithPlayer("tester"))
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func ticks(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = send(t, m, TickMsg{})
	}
	return m
}

func TestModelStartsAndHoldsMovement(t *testing.T) {
	m := newTestModel(t, testLevel(true), nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)
	if m.game.Stage() != platformer.StagePlaying {
		t.Fatalf("Expected playing, got %s", m.game.Stage())
	}
	startX := m.game.Player().X

	// One key press keeps moving for several ticks without repeats
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = ticks(t, m, 5)
	if got := m.game.Player().X; got != startX-25 {
		t.Errorf("Expected X=%d after 5 held ticks, got %d", startX-25, got)
	}

	m = ticks(t, m, m.holds.initial)
	stopped := m.game.Player().X
	m = ticks(t, m, 5)
	if m.game.Player().X != stopped {
		t.Error("Expected movement to stop once the hold expires")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No floor: the player falls out of the world and the only life is lost
	m := newTestModel(t, testLevel(false), store)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 60)
	if m.game.Stage() != platformer.StageGameOver {
		t.Fatalf("Expected game over, got %s", m.game.Stage())
	}
	m = ticks(t, m, 60)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected exactly 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Outcome != storage.OutcomeGameOver || r.Player != "tester" || r.LevelReached != 1 || r.LevelName != "Test" {
		t.Errorf("Unexpected run: %+v", r)
	}
	if m.LastRun() == nil || m.LastRun().RunID != r.RunID {
		t.Error("Expected LastRun to match the saved run")
	}

	// Restart and lose again: a second run is recorded
	m = send(t, m, runeKey("r"))
	m = ticks(t, m, 1)
	if m.game.Stage() != platformer.StageSplash {
		t.Fatalf("Expected splash after restart, got %s", m.game.Stage())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	ticks(t, m, 60)

	runs, err = store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("Expected 2 runs after second game over, got %d", len(runs))
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, testLevel(true), nil)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if next.(Model).View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, testLevel(true), nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = ticks(t, m, 1)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.game.Stage() != platformer.StagePlaying {
		t.Errorf("Expected resize to keep playing, got %s", m.game.Stage())
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("Expected 100x30 screen, got %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("Expected HUD in view")
	}
}

func TestScoreboardView(t *testing.T) {
	empty := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(empty.View(), "No runs recorded yet.") {
		t.Error("Expected empty message without a store")
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{Player: "tester", Score: 4321, LevelReached: 2, LevelName: "Sky", Outcome: storage.OutcomeVictory}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	view := NewScoreboardModel(store, 100, 30).View()
	for _, want := range []string{"HIGH SCORES", "4321", "tester", "Victory", "Runs 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected scoreboard to contain %q", want)
		}
	}
}
