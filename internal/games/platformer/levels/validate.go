package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Validation error codes.
const (
	CodeInvalidSize    = "INVALID_SIZE"
	CodeInvalidPhysics = "INVALID_PHYSICS"
	CodeStartOutside   = "START_OUT_OF_BOUNDS"
	CodeSpawnOutside   = "SPAWN_OUT_OF_BOUNDS"
	CodeUnknownKind    = "UNKNOWN_KIND"
	CodeMissingFlag    = "MISSING_FLAG"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level can be built and finished.
// Checks:
//   - Size is positive
//   - Gravity and terminal velocity are not negative
//   - Start and every spawn lie inside the level
//   - Every spawn kind is known
//   - There is at least one flag
func Validate(l platformer.LevelData) error {
	if l.Width <= 0 || l.Height <= 0 {
		return &ValidationError{
			Code:    CodeInvalidSize,
			Message: fmt.Sprintf("size %dx%d must be positive", l.Width, l.Height),
		}
	}

	if l.Gravity < 0 || l.TerminalVelocity < 0 {
		return &ValidationError{
			Code:    CodeInvalidPhysics,
			Message: fmt.Sprintf("gravity %d and terminal velocity %d must not be negative", l.Gravity, l.TerminalVelocity),
		}
	}

	if !inside(l, l.StartX, l.StartY) {
		return &ValidationError{
			Code:    CodeStartOutside,
			Message: fmt.Sprintf("start (%d,%d) outside %dx%d", l.StartX, l.StartY, l.Width, l.Height),
		}
	}

	flags := 0
	for _, s := range l.Spawns {
		if !s.Kind.Valid() {
			return &ValidationError{
				Code:    CodeUnknownKind,
				Message: fmt.Sprintf("unknown entity kind %q at (%d,%d)", s.Kind, s.X, s.Y),
			}
		}
		if !inside(l, s.X, s.Y) {
			return &ValidationError{
				Code:    CodeSpawnOutside,
				Message: fmt.Sprintf("%s at (%d,%d) outside %dx%d", s.Kind, s.X, s.Y, l.Width, l.Height),
			}
		}
		if s.Kind == platformer.KindFlag {
			flags++
		}
	}

	if flags == 0 {
		return &ValidationError{
			Code:    CodeMissingFlag,
			Message: "level has no flag",
		}
	}

	return nil
}

func inside(l platformer.LevelData, x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}
