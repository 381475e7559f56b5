package input

import "github.com/lixenwraith/grid-snake/grid"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Gameplay
	IntentDirection // wasd, hjkl, arrows
	IntentPause     // p
	IntentMute      // m
	IntentRestart   // r, honored only after game over
)

func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "none"
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentDirection:
		return "direction"
	case IntentPause:
		return "pause"
	case IntentMute:
		return "mute"
	case IntentRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Intent is the result of translating one terminal event
type Intent struct {
	Type      IntentType
	Direction grid.Direction // Set for IntentDirection
}
