package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Duck       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Sound      key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Duck, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Duck},
		{k.Pause, k.Restart, k.Sound, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "crouch"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Sound: key.NewBinding(
			key.WithKeys("z", "m"),
			key.WithHelp("z", "sound"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action. Keys without a binding
// confirm, so "press any key" screens accept them.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Duck):
		return core.ActionDuck
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Sound):
		return core.ActionToggleSound
	case key.Matches(msg, k.Screenshot):
		return core.ActionNone
	}
	return core.ActionConfirm
}

// holdable reports whether an action is a held control. Terminals send no
// key-release events, so these are emulated by Holds.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionDuck
}

// Holds keeps movement keys held between terminal key repeats. A first press
// holds for the initial window, long enough to bridge the keyboard's repeat
// delay; each repeat extends the hold by the shorter repeat window.
type Holds struct {
	remaining map[core.Action]int
	initial   int
	repeat    int
}

// NewHolds creates a tracker sized for the given tick rate.
func NewHolds(tickRate int) *Holds {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Holds{
		remaining: make(map[core.Action]int),
		initial:   max(tickRate*35/100, 1),
		repeat:    max(tickRate*12/100, 1),
	}
}

// Press starts or extends the hold for a. Pressing one direction releases
// the other.
func (h *Holds) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}

	if h.remaining[a] > 0 {
		h.remaining[a] = max(h.remaining[a], h.repeat)
		return
	}
	h.remaining[a] = h.initial
}

// Held reports whether a is currently held.
func (h *Holds) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Apply marks every held action on the frame.
func (h *Holds) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			frame.Hold(a)
		}
	}
}

// Tick ages every hold by one simulation tick.
func (h *Holds) Tick() {
	for a := range h.remaining {
		h.remaining[a]--
		if h.remaining[a] <= 0 {
			delete(h.remaining, a)
		}
	}
}

// Release drops every hold.
func (h *Holds) Release() {
	clear(h.remaining)
}
