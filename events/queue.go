package events

import (
	"errors"

	"github.com/lixenwraith/grid-snake/constants"
)

// ErrQueueFull is returned by Push once the pending event budget is spent
var ErrQueueFull = errors.New("events: queue full")

// EventQueue is a bounded FIFO of pending session events
// Owned by one session; Push and Consume both run on the frame loop goroutine
// Overflow: the new event is rejected and counted, queued events are never overwritten
type EventQueue struct {
	pending  []GameEvent
	capacity int
	dropped  int
}

// NewEventQueue creates a queue sized to the per-frame event budget
func NewEventQueue() *EventQueue {
	return NewEventQueueSize(constants.EventQueueSize)
}

// NewEventQueueSize creates a queue holding at most capacity pending events
func NewEventQueueSize(capacity int) *EventQueue {
	if capacity < 1 {
		capacity = constants.EventQueueSize
	}
	return &EventQueue{
		pending:  make([]GameEvent, 0, capacity),
		capacity: capacity,
	}
}

// Push appends event, returning ErrQueueFull when the budget is exhausted
func (eq *EventQueue) Push(event GameEvent) error {
	if len(eq.pending) >= eq.capacity {
		eq.dropped++
		return ErrQueueFull
	}
	eq.pending = append(eq.pending, event)
	return nil
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is detached from the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.pending))
	copy(out, eq.pending)
	eq.pending = eq.pending[:0]
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int { return len(eq.pending) }

// Cap returns the pending event budget
func (eq *EventQueue) Cap() int { return eq.capacity }

// Dropped returns how many pushes were rejected since creation
func (eq *EventQueue) Dropped() int { return eq.dropped }
