package platformer

// Stage is the top-level game state.
type Stage int

const (
	StageSplash Stage = iota
	StageStart
	StagePlaying
	StagePaused
	StageLevelCompleted
	StageGameOver
	StageVictory
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageSplash:
		return "splash"
	case StageStart:
		return "start"
	case StagePlaying:
		return "playing"
	case StagePaused:
		return "paused"
	case StageLevelCompleted:
		return "level_completed"
	case StageGameOver:
		return "game_over"
	case StageVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended and waits for a restart.
func (s Stage) Over() bool {
	return s == StageGameOver || s == StageVictory
}

var transitions = map[Stage][]Stage{
	StageSplash:         {StagePlaying},
	StageStart:          {StagePlaying},
	StagePlaying:        {StagePaused, StageLevelCompleted, StageVictory, StageGameOver},
	StagePaused:         {StagePlaying},
	StageLevelCompleted: {StageStart},
	StageGameOver:       {StageSplash},
	StageVictory:        {StageSplash},
}

// CanTransition reports whether the machine allows from -> to.
func CanTransition(from, to Stage) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
