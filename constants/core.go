package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MoveInterval is the simulation step interval, one snake move per interval
	MoveInterval = 200 * time.Millisecond

	// MinMoveInterval guards against configurations that would step every frame
	MinMoveInterval = 20 * time.Millisecond

	// MaxFrameDelta caps a single frame delta so a stalled terminal cannot fast-forward time
	MaxFrameDelta = time.Second
)

// Event Queue Limits
const (
	// EventQueueSize is the pending event budget between two dispatches
	// A tick emits at most eaten, spawned and game over; the rest is input headroom
	EventQueueSize = 64
)

// Game Defaults
const (
	// ArenaHalfWidth is L, the arena spans [-L, L] on both axes
	ArenaHalfWidth = 10

	// MaxArenaHalfWidth keeps the rendered arena within common terminal sizes
	MaxArenaHalfWidth = 60

	// InitialSegments is the starting body length
	InitialSegments = 3
)
