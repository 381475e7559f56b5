package session

// State is the session lifecycle, Running until the single terminal transition
type State uint8

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Cause is why the session ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player for the cause
func (c Cause) Message() string {
	switch c {
	case CauseWall:
		return "You hit the wall!"
	case CauseSelf:
		return "You collided with yourself!"
	case CauseBoardFull:
		return "You filled the board!"
	default:
		return ""
	}
}

// Win reports whether the cause counts as a win
func (c Cause) Win() bool {
	return c == CauseBoardFull
}
