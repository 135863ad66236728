package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - run left (held)
	ActionRight              // D, Right arrow - run right (held)
	ActionJump               // Space, W, Up - jump
	ActionDuck               // S, Down - crouch (held)
	ActionPause              // P - pause/unpause
	ActionRestart            // R - restart after game over or victory
	ActionToggleSound        // Z - mute/unmute cues
	ActionConfirm            // Enter - any-key prompts
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for a single simulation tick.
// Pressed holds edge-triggered actions (key went down this tick); Held holds
// level-triggered actions that stay active while the key is down.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Holding returns true if the action is held or was pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// AnyPressed returns true if any action other than those listed in except was
// pressed this frame.
func (f InputFrame) AnyPressed(except ...Action) bool {
	for a, on := range f.Pressed {
		if !on || a == ActionNone {
			continue
		}
		skip := false
		for _, e := range except {
			if a == e {
				skip = true
				break
			}
		}
		if !skip {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	for k, v := range f.Held {
		c.Held[k] = v
	}
	return c
}
