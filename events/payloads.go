package events

import (
	"github.com/lixenwraith/grid-snake/grid"
)

// AppleEatenPayload carries the consumed cell and the score after scoring
type AppleEatenPayload struct {
	Position grid.Position
	Score    int
}

// AppleSpawnedPayload carries the new apple cell
type AppleSpawnedPayload struct {
	Position grid.Position
}

// GameOverPayload carries the terminal cause and final score
type GameOverPayload struct {
	Cause   string // "wall", "self" or "board-full"
	Message string // Human-readable, shown on the game over overlay
	Score   int
}

// DirectionChangedPayload carries the staged direction
type DirectionChangedPayload struct {
	Direction grid.Direction
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
