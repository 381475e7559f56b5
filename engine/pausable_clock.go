package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that freezes while paused
// The frame loop reads it so a paused game sees zero deltas
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock over the given real time source
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// Frozen at pause point
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.provider.Now().Add(-pc.totalPausedTime)
}

// RealTime returns actual wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement, returns false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.isPaused.CompareAndSwap(false, true) {
		return false
	}
	pc.pauseStartTime = pc.provider.Now()
	return true
}

// Resume continues game time advancement, returns false if not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.isPaused.CompareAndSwap(true, false) {
		return false
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	return true
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.Resume() {
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
