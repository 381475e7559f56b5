package constants

import (
	"testing"
	"time"
)

// TestDefaultArenaFitsStandardTerminal verifies the default layout fits 80x24
func TestDefaultArenaFitsStandardTerminal(t *testing.T) {
	side := 2*ArenaHalfWidth + 1

	width := (side + 2*WallThickness) * CellWidth
	height := side + 2*WallThickness + HeaderRows

	if width > 80 {
		t.Errorf("Default arena needs %d columns, want <= 80", width)
	}
	if height > 24 {
		t.Errorf("Default arena needs %d rows, want <= 24", height)
	}
}

// TestTimingRelations verifies the tick interval leaves room for several frames
func TestTimingRelations(t *testing.T) {
	if MoveInterval < MinMoveInterval {
		t.Errorf("MoveInterval %v below MinMoveInterval %v", MoveInterval, MinMoveInterval)
	}
	if MoveInterval/FrameUpdateInterval < 2 {
		t.Errorf("Expected at least 2 frames per move, got %d", MoveInterval/FrameUpdateInterval)
	}
	if MaxFrameDelta < MoveInterval {
		t.Errorf("MaxFrameDelta %v must not be shorter than a move", MaxFrameDelta)
	}
	if ScoreBlinkTimeout <= 0*time.Millisecond {
		t.Error("ScoreBlinkTimeout must be positive")
	}
}

func TestEventQueueBudget(t *testing.T) {
	// One tick emits up to three events: eaten, spawned and game over
	if EventQueueSize < 3 {
		t.Errorf("EventQueueSize %d cannot hold one tick of events", EventQueueSize)
	}
}
