package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/grid-snake/constants"
)

func TestTickSchedulerSingleStepPerInterval(t *testing.T) {
	ts := NewTickScheduler(200 * time.Millisecond)

	steps := 0
	for i := 0; i < 60; i++ { // 60 frames of 16ms = 960ms
		if ts.Feed(16 * time.Millisecond) {
			steps++
		}
	}
	// Leftover is dropped on each step, so 13 frames (208ms) per step
	if steps != 4 {
		t.Errorf("Steps = %d, want 4", steps)
	}
}

func TestTickSchedulerNoCatchUp(t *testing.T) {
	ts := NewTickScheduler(200 * time.Millisecond)

	if !ts.Feed(time.Second) {
		t.Fatal("Expected a step after a long frame")
	}
	if ts.Elapsed() != 0 {
		t.Errorf("Elapsed after step = %v, want 0", ts.Elapsed())
	}
	if ts.Feed(0) {
		t.Error("Backlog produced a burst step")
	}
}

func TestTickSchedulerDefaults(t *testing.T) {
	ts := NewTickScheduler(0)
	if ts.Interval() != constants.MoveInterval {
		t.Errorf("Interval = %v, want %v", ts.Interval(), constants.MoveInterval)
	}

	ts.Feed(-time.Second)
	if ts.Elapsed() != 0 {
		t.Error("Negative delta must not accumulate")
	}

	ts.Feed(150 * time.Millisecond)
	ts.Reset()
	if ts.Feed(100 * time.Millisecond) {
		t.Error("Reset should drop accumulated time")
	}
}
