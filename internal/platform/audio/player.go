package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// queueSize bounds pending cues; extra cues are dropped.
const queueSize = 32

// Player is a platformer.CueSink that mixes cues into the system speaker.
// Play never blocks.
type Player struct {
	synth  *Synth
	mixer  *beep.Mixer
	music  *beep.Ctrl
	cues   chan platformer.Cue
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
	lock   func()
	unlock func()
	logger *log.Logger
}

var _ platformer.CueSink = (*Player)(nil)

// Open initialises the speaker and starts the mixer.
func Open(logger *log.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	p := newPlayer(NewSynth(sampleRate, 0.25, 0.1), speaker.Lock, speaker.Unlock, logger)
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(synth *Synth, lock, unlock func(), logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		synth:  synth,
		mixer:  &beep.Mixer{},
		cues:   make(chan platformer.Cue, queueSize),
		done:   make(chan struct{}),
		lock:   lock,
		unlock: unlock,
		logger: logger,
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Play queues c. A full queue drops it.
func (p *Player) Play(c platformer.Cue) {
	select {
	case <-p.done:
	case p.cues <- c:
	default:
		p.logger.Debug("cue dropped", "cue", c)
	}
}

func (p *Player) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case c := <-p.cues:
			p.handle(c)
		}
	}
}

func (p *Player) handle(c platformer.Cue) {
	p.lock()
	defer p.unlock()

	switch c {
	case platformer.CueMusicStart:
		if p.music == nil {
			p.music = &beep.Ctrl{Streamer: p.synth.Music()}
			p.mixer.Add(p.music)
		}
		p.music.Paused = false
	case platformer.CueMusicStop:
		if p.music != nil {
			p.music.Paused = true
		}
	default:
		if s := p.synth.Effect(c); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops the worker and silences the mixer.
func (p *Player) Close() {
	p.once.Do(func() {
		close(p.done)
		p.wg.Wait()

		p.lock()
		p.mixer.Clear()
		p.music = nil
		p.unlock()
	})
}
