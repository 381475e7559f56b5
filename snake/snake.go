package snake

import (
	"github.com/lixenwraith/grid-snake/grid"
)

// DefaultSegments is the body length of a freshly spawned snake
const DefaultSegments = 3

// Outcome classifies the result of a single Advance
type Outcome uint8

const (
	// Moved means the prospective body was valid and has been committed
	Moved Outcome = iota
	// OutOfBounds means the prospective head left the arena, nothing was committed
	OutOfBounds
	// SelfCollision means the prospective head landed on the body, nothing was committed
	SelfCollision
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case OutOfBounds:
		return "out-of-bounds"
	case SelfCollision:
		return "self-collision"
	default:
		return "unknown"
	}
}

// Step is the result of Advance
type Step struct {
	Head    grid.Position // Prospective head, committed only when Outcome == Moved
	Outcome Outcome
	Grew    bool // A queued growth segment was appended during commit
}

// Snake is the ordered body, head at index 0
// Not safe for concurrent use; owned by the session's frame loop
type Snake struct {
	arena grid.Arena

	segments  []grid.Position
	direction grid.Direction // Pending, applied on the next Advance
	committed grid.Direction // Direction used by the most recent successful Advance

	growth []grid.Position // FIFO of cells awaiting a tail append

	scratch []grid.Position // Reused prospective body buffer
}

// New creates a snake of n segments with the head at the origin
// The body trails behind the head, opposite dir, so north lays it along +z
func New(arena grid.Arena, n int, dir grid.Direction) *Snake {
	if n < 1 {
		n = 1
	}
	if !dir.Valid() {
		dir = grid.North
	}
	back := dir.Opposite().Vector()
	body := make([]grid.Position, n)
	for i := 1; i < n; i++ {
		body[i] = body[i-1].Add(back)
	}
	return FromSegments(arena, body, dir)
}

// FromSegments creates a snake with an explicit body, head first
// The slice is copied
func FromSegments(arena grid.Arena, body []grid.Position, dir grid.Direction) *Snake {
	if !dir.Valid() {
		dir = grid.North
	}
	segs := make([]grid.Position, len(body), len(body)+8)
	copy(segs, body)
	return &Snake{
		arena:     arena,
		segments:  segs,
		direction: dir,
		committed: dir,
	}
}

// SetDirection stages a direction change for the next Advance
// Accepted only when d is perpendicular to the last committed direction, which also
// rejects the exact reversal; repeated calls between ticks overwrite each other
func (s *Snake) SetDirection(d grid.Direction) bool {
	if d == s.committed.Opposite() || !d.Orthogonal(s.committed) {
		return false
	}
	s.direction = d
	return true
}

// Advance performs one simulation step: shift, advance head, validate, commit
// On OutOfBounds or SelfCollision the snake is left untouched
func (s *Snake) Advance() Step {
	n := len(s.segments)
	if n == 0 {
		return Step{Outcome: OutOfBounds}
	}

	head := s.segments[0].Step(s.direction)

	// Segment i takes i-1's pre-move cell
	if cap(s.scratch) < n {
		s.scratch = make([]grid.Position, n, cap(s.segments))
	}
	next := s.scratch[:n]
	next[0] = head
	copy(next[1:], s.segments[:n-1])

	if !s.arena.Contains(head) {
		return Step{Head: head, Outcome: OutOfBounds}
	}
	if grid.Contains(next[1:], head) {
		return Step{Head: head, Outcome: SelfCollision}
	}

	// Commit
	s.segments, s.scratch = next, s.segments
	s.committed = s.direction

	return Step{Head: head, Outcome: Moved, Grew: s.GrowIfNeeded()}
}

// CheckSelfCollision reports whether p overlaps any committed segment except the head
func (s *Snake) CheckSelfCollision(p grid.Position) bool {
	if len(s.segments) < 2 {
		return false
	}
	return grid.Contains(s.segments[1:], p)
}

// AddGrowth queues a tail append for when the tail reaches p
func (s *Snake) AddGrowth(p grid.Position) {
	s.growth = append(s.growth, p)
}

// GrowIfNeeded appends a segment at the front growth target once the tail sits on it
func (s *Snake) GrowIfNeeded() bool {
	if len(s.growth) == 0 || len(s.segments) == 0 {
		return false
	}
	target := s.growth[0]
	if s.Tail() != target {
		return false
	}
	s.segments = append(s.segments, target)
	s.growth = s.growth[1:]
	return true
}

// Head returns the head cell
func (s *Snake) Head() grid.Position {
	return s.segments[0]
}

// Tail returns the last segment cell
func (s *Snake) Tail() grid.Position {
	return s.segments[len(s.segments)-1]
}

// Len returns the segment count
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []grid.Position {
	out := make([]grid.Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment, head included, is on p
func (s *Snake) Occupies(p grid.Position) bool {
	return grid.Contains(s.segments, p)
}

// Direction returns the pending direction
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// Committed returns the direction of the last committed move
func (s *Snake) Committed() grid.Direction {
	return s.committed
}

// PendingGrowth returns a copy of the growth queue
func (s *Snake) PendingGrowth() []grid.Position {
	out := make([]grid.Position, len(s.growth))
	copy(out, s.growth)
	return out
}
