package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/events"
)

// ErrLoopRunning is returned when Run is called on a loop that is already running
var ErrLoopRunning = errors.New("engine: frame loop already running")

// Clock is the game time source read once per frame
type Clock interface {
	Now() time.Time
}

// FrameLoopConfig wires the per-frame callbacks
type FrameLoopConfig struct {
	Clock         Clock
	Scheduler     *TickScheduler
	Router        *events.Router
	FrameInterval time.Duration

	// Input runs first in every frame, before time is sampled
	Input func()
	// Step runs on each scheduled tick, returning true ends the loop after this frame renders
	Step func() bool
	// Render runs last in every frame
	Render func()
}

// FrameLoop is the host driver: clock, scheduler, step, event dispatch, render
type FrameLoop struct {
	clock         Clock
	scheduler     *TickScheduler
	router        *events.Router
	frameInterval time.Duration

	input  func()
	step   func() bool
	render func()

	lastFrame time.Time
	started   bool

	frameCount atomic.Uint64
	tickCount  atomic.Uint64

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
	finished atomic.Bool
}

// NewFrameLoop creates a loop; missing clock and scheduler fall back to defaults
func NewFrameLoop(cfg FrameLoopConfig) *FrameLoop {
	if cfg.Clock == nil {
		cfg.Clock = NewPausableClock(nil)
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTickScheduler(constants.MoveInterval)
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constants.FrameUpdateInterval
	}
	return &FrameLoop{
		clock:         cfg.Clock,
		scheduler:     cfg.Scheduler,
		router:        cfg.Router,
		frameInterval: cfg.FrameInterval,
		input:         cfg.Input,
		step:          cfg.Step,
		render:        cfg.Render,
		stopChan:      make(chan struct{}),
	}
}

// Frame runs a single frame, returns false once the loop is stopped or finished
func (fl *FrameLoop) Frame() bool {
	if fl.finished.Load() || fl.Stopped() {
		return false
	}

	if fl.input != nil {
		fl.input()
	}

	now := fl.clock.Now()
	var delta time.Duration
	if fl.started {
		delta = now.Sub(fl.lastFrame)
	}
	fl.started = true
	fl.lastFrame = now

	// Large gaps (suspend, debugger) count as one capped delta
	if delta < 0 {
		delta = 0
	} else if delta > constants.MaxFrameDelta {
		delta = constants.MaxFrameDelta
	}

	done := false
	if fl.scheduler.Feed(delta) {
		fl.tickCount.Add(1)
		if fl.step != nil {
			done = fl.step()
		}
	}

	if fl.router != nil {
		fl.router.DispatchAll()
	}
	if fl.render != nil {
		fl.render()
	}
	fl.frameCount.Add(1)

	if done {
		fl.finished.Store(true)
		return false
	}
	return true
}

// Run drives frames on a ticker until the step reports termination, Stop, or ctx cancellation
func (fl *FrameLoop) Run(ctx context.Context) error {
	if !fl.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer fl.running.Store(false)

	ticker := time.NewTicker(fl.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-fl.stopChan:
			return nil
		case <-ticker.C:
		}

		if !fl.Frame() {
			return nil
		}
	}
}

// Stop halts the loop, safe to call multiple times
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() {
		close(fl.stopChan)
	})
}

// Stopped reports whether Stop was called
func (fl *FrameLoop) Stopped() bool {
	select {
	case <-fl.stopChan:
		return true
	default:
		return false
	}
}

// Finished reports whether the step callback ended the loop
func (fl *FrameLoop) Finished() bool {
	return fl.finished.Load()
}

// IsRunning returns whether Run is active
func (fl *FrameLoop) IsRunning() bool {
	return fl.running.Load()
}

// FrameCount returns the number of rendered frames
func (fl *FrameLoop) FrameCount() uint64 {
	return fl.frameCount.Load()
}

// TickCount returns the number of scheduled steps
func (fl *FrameLoop) TickCount() uint64 {
	return fl.tickCount.Load()
}
