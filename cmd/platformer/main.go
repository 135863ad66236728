// platformer is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	platformer play            - Play the bundled world (or --levels)
//	platformer serve           - Start SSH server for remote play
//	platformer scores          - Show the run history
//	platformer levels          - List levels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/runs.db)
//	--levels <path>       - Level file or directory (default: bundled world)
//	--difficulty <name>   - easy, normal or hard
//	--config <path>       - Custom tuning YAML
//	--sound               - Play audio cues
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevels     string
	flagDifficulty string
	flagConfig     string
	flagSound      bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and stomp in your terminal",
	Long: `Platformer is a side-scrolling platform game for the terminal.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View the run history
  levels   - List the levels that would be played

Examples:
  platformer play
  platformer play --difficulty hard --sound
  platformer play --levels ./my-world
  platformer serve --ssh :2222
  platformer scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level file or directory (default: bundled world)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play audio cues")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func newLogger(prefix string) *log.Logger {
	return newLoggerTo(os.Stderr, prefix)
}

func newLoggerTo(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadSetup reads tuning and levels from the global flags.
func loadSetup() (config.PlatformerConfig, []platformer.LevelData, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.PlatformerConfig{}, nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyPreset(&cfg, preset)

	data, err := levels.Load(flagLevels)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, data, nil
}
