// Package audio plays platformer cues as synthesised tones.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

const (
	rest = 0.0
	c4   = 261.63
	e4   = 329.63
	g4   = 392.00
	a4   = 440.00
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	g5   = 783.99
	b5   = 987.77
	c6   = 1046.50
	e6   = 1318.51
)

var effectNotes = map[platformer.Cue][]note{
	platformer.CueJump:    {{a4, 40 * time.Millisecond}, {e5, 60 * time.Millisecond}},
	platformer.CueCoin:    {{b5, 60 * time.Millisecond}, {e6, 140 * time.Millisecond}},
	platformer.CuePowerUp: {{c5, 50 * time.Millisecond}, {e5, 50 * time.Millisecond}, {g5, 50 * time.Millisecond}, {c6, 120 * time.Millisecond}},
	platformer.CueHurt:    {{g4, 60 * time.Millisecond}, {c4, 120 * time.Millisecond}},
	platformer.CueDeath:   {{g4, 120 * time.Millisecond}, {e4, 120 * time.Millisecond}, {c4, 300 * time.Millisecond}},
	platformer.CueLevelUp: {{c5, 100 * time.Millisecond}, {e5, 100 * time.Millisecond}, {g5, 100 * time.Millisecond}, {rest, 50 * time.Millisecond}, {c6, 300 * time.Millisecond}},
	platformer.CueGameOver: {{g4, 200 * time.Millisecond}, {rest, 50 * time.Millisecond}, {e4, 200 * time.Millisecond},
		{rest, 50 * time.Millisecond}, {c4, 500 * time.Millisecond}},
}

// melody is one pass of the background loop.
var melody = []note{
	{c5, 200 * time.Millisecond}, {e5, 200 * time.Millisecond}, {g5, 200 * time.Millisecond}, {e5, 200 * time.Millisecond},
	{d5, 200 * time.Millisecond}, {g4, 200 * time.Millisecond}, {c5, 400 * time.Millisecond},
	{a4, 200 * time.Millisecond}, {c5, 200 * time.Millisecond}, {e5, 200 * time.Millisecond}, {c5, 200 * time.Millisecond},
	{g4, 400 * time.Millisecond}, {rest, 400 * time.Millisecond},
}

// Synth builds streamers for cues.
type Synth struct {
	sr          beep.SampleRate
	effectsGain float64
	musicGain   float64
}

// NewSynth creates a synth. Gains are linear in [0, 1].
func NewSynth(sr beep.SampleRate, effectsGain, musicGain float64) *Synth {
	return &Synth{sr: sr, effectsGain: effectsGain, musicGain: musicGain}
}

// Effect returns a finite streamer for c, or nil for music cues.
func (s *Synth) Effect(c platformer.Cue) beep.Streamer {
	notes, ok := effectNotes[c]
	if !ok {
		return nil
	}
	return volume(s.sequence(notes), s.effectsGain)
}

// Music returns an endless background loop.
func (s *Synth) Music() beep.Streamer {
	return &loop{next: func() beep.Streamer {
		return volume(s.sequence(melody), s.musicGain)
	}}
}

func (s *Synth) sequence(notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, s.tone(n))
	}
	return beep.Seq(parts...)
}

func (s *Synth) tone(n note) beep.Streamer {
	samples := s.sr.N(n.dur)
	if n.freq == rest {
		return beep.Silence(samples)
	}
	return &square{freq: n.freq, rate: s.sr, left: samples}
}

// square is a fixed-length square wave with a short linear fade-out.
type square struct {
	freq  float64
	rate  beep.SampleRate
	phase float64
	left  int
}

const fadeSamples = 256

func (q *square) Stream(samples [][2]float64) (int, bool) {
	if q.left <= 0 {
		return 0, false
	}
	for i := range samples {
		if q.left <= 0 {
			return i, true
		}
		val := 1.0
		if q.phase >= 0.5 {
			val = -1.0
		}
		if q.left < fadeSamples {
			val *= float64(q.left) / fadeSamples
		}
		samples[i][0] = val
		samples[i][1] = val

		q.phase += q.freq / float64(q.rate)
		q.phase -= math.Floor(q.phase)
		q.left--
	}
	return len(samples), true
}

func (q *square) Err() error { return nil }

// volume scales s by a linear gain. Zero or less is silent.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// loop restarts a finite streamer whenever it drains.
type loop struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (l *loop) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if l.cur == nil {
			l.cur = l.next()
		}
		n, ok := l.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			l.cur = nil
		}
	}
	return filled, true
}

func (l *loop) Err() error { return nil }
