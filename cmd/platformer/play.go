package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/audio"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game on the bundled world, or on the levels given with --levels.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump
  Down/S           - Duck
  P/Esc            - Pause
  R                - Restart (after game over or victory)
  Z/M              - Toggle sound
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, hearts and time
  normal - Default tuning
  hard   - One life, less time

Examples:
  platformer play
  platformer play --difficulty easy
  platformer play --levels ./testdata/world --sound
  platformer play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.platformer/platformer.log", "Log file while playing (the terminal belongs to the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one local session.
func play() error {
	logOut, closeLog := openLogFile(flagLogFile)
	defer closeLog()
	logger := newLoggerTo(logOut, "platformer")

	cfg, data, err := loadSetup()
	if err != nil {
		return err
	}

	opts := []platformer.Option{platformer.WithLogger(logger)}
	if flagSound {
		player, audioErr := audio.Open(logger)
		if audioErr != nil {
			logger.Warn("sound disabled", "err", audioErr)
		} else {
			defer player.Close()
			opts = append(opts, platformer.WithCueSink(player))
		}
	}

	game, err := platformer.New(data, cfg, opts...)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if err := tui.Run(game, store, runtime,
		tui.WithPlayer(playerName()),
		tui.WithModelLogger(logger),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile appends to path, expanding a leading ~. An empty path or an
// unwritable file discards logs so nothing reaches the game's terminal.
func openLogFile(path string) (io.Writer, func()) {
	noop := func() {}
	if path == "" {
		return io.Discard, noop
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard, noop
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, noop
	}
	return f, func() { _ = f.Close() }
}

func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}
