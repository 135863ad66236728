package platformer

// Cue is a discrete audio event raised by the simulation.
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CuePowerUp
	CueHurt
	CueDeath
	CueLevelUp
	CueGameOver
	CueMusicStart
	CueMusicStop
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CuePowerUp:
		return "power-up"
	case CueHurt:
		return "hurt"
	case CueDeath:
		return "death"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	case CueMusicStart:
		return "music-start"
	case CueMusicStop:
		return "music-stop"
	default:
		return "unknown"
	}
}

// CueSink receives cues. Play must not block the simulation.
type CueSink interface {
	Play(Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(Cue)

// Play calls f(c).
func (f CueFunc) Play(c Cue) { f(c) }

type discardSink struct{}

func (discardSink) Play(Cue) {}

// CueRecorder collects cues in order. Useful in tests and replays.
type CueRecorder struct {
	Cues []Cue
}

// Play appends c.
func (r *CueRecorder) Play(c Cue) { r.Cues = append(r.Cues, c) }

// Reset drops all recorded cues.
func (r *CueRecorder) Reset() { r.Cues = r.Cues[:0] }

// Count returns how many times c was recorded.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}
