package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (paddle, ship)
	ActionRight          // D, Right arrow - move right (paddle, ship)
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionJump           // Space, W, Up - primary action (flap, launch)
	ActionFire           // Space, X - shoot
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer carries the current mouse/touch state for one frame.
// JustPressed and JustReleased are edge flags: the platform sets them when
// the transition happens and clears them at the end of the frame callback,
// so they are visible for exactly one frame regardless of frame timing.
type Pointer struct {
	X, Y         int
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// InputFrame represents the input state for a single simulation frame.
// It contains all actions that were triggered during this frame plus the
// pointer state.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all per-frame state for the next frame: triggered actions and
// the pointer edge flags. Pointer position and the held-down state persist
// across frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.JustPressed = false
	f.Pointer.JustReleased = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
