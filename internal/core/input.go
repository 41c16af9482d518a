package core

// Intent is a discrete input intent consumed by the simulation once per
// frame. Intents are decoupled from physical key events: the platform layer
// owns raw input and translates it, including synthesizing the *Stop intents
// on terminals that never report key releases.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeftStart
	IntentMoveLeftStop
	IntentMoveRightStart
	IntentMoveRightStop
	IntentFire
	IntentRestart
	IntentPause
	IntentQuit // Handled by the platform; the simulation ignores it
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeftStart:
		return "MoveLeftStart"
	case IntentMoveLeftStop:
		return "MoveLeftStop"
	case IntentMoveRightStart:
		return "MoveRightStart"
	case IntentMoveRightStop:
		return "MoveRightStop"
	case IntentFire:
		return "Fire"
	case IntentRestart:
		return "Restart"
	case IntentPause:
		return "Pause"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents buffered for one simulation tick.
type InputFrame struct {
	intents map[Intent]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{intents: make(map[Intent]bool)}
}

// Set marks an intent as triggered for this frame.
func (f *InputFrame) Set(i Intent) {
	if f.intents == nil {
		f.intents = make(map[Intent]bool)
	}
	f.intents[i] = true
}

// Has reports whether the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	return f.intents[i]
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.intents {
		delete(f.intents, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.intents {
		clone.intents[k] = v
	}
	return clone
}
