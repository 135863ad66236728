// Package levels loads platformer levels from YAML and legacy JSON files.
// This package depends on platformer but platformer does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed worlds/*.yaml
var worldFS embed.FS

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Embedded returns a loader over the built-in world.
func Embedded() *Loader {
	sub, _ := fs.Sub(worldFS, "worlds")
	return &Loader{Root: "embedded", fsys: sub}
}

// Default loads the built-in world.
func Default() ([]platformer.LevelData, error) {
	return Embedded().LoadAll()
}

// Load loads levels from path: every level under a directory, or a single
// file. An empty path selects the built-in world.
func Load(p string) ([]platformer.LevelData, error) {
	if p == "" {
		return Default()
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if info.IsDir() {
		return NewLoader(p).LoadAll()
	}
	l := NewLoader(filepath.Dir(p))
	lvl, err := l.LoadFile(filepath.Base(p))
	if err != nil {
		return nil, err
	}
	return []platformer.LevelData{lvl}, nil
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Any invalid file
// fails the whole load.
func (l *Loader) LoadAll() ([]platformer.LevelData, error) {
	var levels []platformer.LevelData

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", l.Root)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file. The ID defaults to the
// file name without extension, the name to the ID.
func (l *Loader) LoadFile(p string) (platformer.LevelData, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return platformer.LevelData{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	level, err := parseByExtension(data, ext)
	if err != nil {
		return platformer.LevelData{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if err := Validate(level); err != nil {
		return platformer.LevelData{}, fmt.Errorf("validating file %s: %w", p, err)
	}

	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (platformer.LevelData, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return platformer.LevelData{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return platformer.LevelData{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (platformer.LevelData, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return platformer.LevelData{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
