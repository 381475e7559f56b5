package engine

import (
	"time"

	"github.com/lixenwraith/grid-snake/constants"
)

// TickScheduler converts frame deltas into discrete simulation steps
// At most one step is reported per Feed; leftover time is discarded
type TickScheduler struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTickScheduler creates a scheduler, non-positive interval selects the default
func NewTickScheduler(interval time.Duration) *TickScheduler {
	if interval <= 0 {
		interval = constants.MoveInterval
	}
	return &TickScheduler{interval: interval}
}

// Feed accumulates delta and reports whether a step is due
func (ts *TickScheduler) Feed(delta time.Duration) bool {
	if delta > 0 {
		ts.elapsed += delta
	}
	if ts.elapsed < ts.interval {
		return false
	}
	ts.elapsed = 0
	return true
}

// Interval returns the step interval
func (ts *TickScheduler) Interval() time.Duration {
	return ts.interval
}

// Elapsed returns time accumulated toward the next step
func (ts *TickScheduler) Elapsed() time.Duration {
	return ts.elapsed
}

// Reset drops accumulated time
func (ts *TickScheduler) Reset() {
	ts.elapsed = 0
}
