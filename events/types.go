package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventAppleEaten signals a consumed apple
	// Trigger: Session.CheckAppleConsumption
	// Consumer: audio (eaten cue), logging | Payload: *AppleEatenPayload
	EventAppleEaten EventType = iota

	// EventAppleSpawned signals a new apple placement
	// Trigger: Session construction and every consumption | Payload: *AppleSpawnedPayload
	EventAppleSpawned

	// EventGameOver signals the one-way Running → GameOver transition
	// Trigger: Session.CheckTermination, board full on respawn
	// Consumer: audio (game over cue), main loop | Payload: *GameOverPayload
	EventGameOver

	// EventDirectionChanged signals an accepted direction intent
	// Trigger: Session.SetDirection | Payload: *DirectionChangedPayload
	EventDirectionChanged

	// EventPauseToggled signals the frame clock being paused or resumed
	// Trigger: input handler | Payload: *PausePayload
	EventPauseToggled
)

func (t EventType) String() string {
	switch t {
	case EventAppleEaten:
		return "AppleEaten"
	case EventAppleSpawned:
		return "AppleSpawned"
	case EventGameOver:
		return "GameOver"
	case EventDirectionChanged:
		return "DirectionChanged"
	case EventPauseToggled:
		return "PauseToggled"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Simulation tick that raised the event
	Timestamp time.Time
}
