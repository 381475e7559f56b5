package session

import "github.com/lixenwraith/grid-snake/grid"

// Snapshot is an immutable view of a session for the render sink
type Snapshot struct {
	ID        string
	Tick      uint64
	HalfWidth int
	Segments  []grid.Position // Head first
	Direction grid.Direction
	Apple     grid.Position
	HasApple  bool
	Score     int
	State     State
	Cause     Cause
	Message   string
}

// Snapshot copies the renderable state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.id,
		Tick:      s.tick,
		HalfWidth: s.arena.HalfWidth,
		Segments:  s.snake.Segments(),
		Direction: s.snake.Committed(),
		Apple:     s.apple,
		HasApple:  s.hasApple,
		Score:     s.score,
		State:     s.state,
		Cause:     s.cause,
		Message:   s.cause.Message(),
	}
}
