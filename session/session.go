package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/grid-snake/events"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/snake"
	"github.com/lixenwraith/grid-snake/spawn"
)

// Config holds the parameters of a single game
type Config struct {
	HalfWidth       int
	InitialSegments int
	Direction       grid.Direction
	Seed            uint64 // 0 = clock based
}

// DefaultConfig returns the classic 21x21 arena with a 3 segment snake heading north
func DefaultConfig() Config {
	return Config{
		HalfWidth:       grid.DefaultHalfWidth,
		InitialSegments: snake.DefaultSegments,
		Direction:       grid.North,
	}
}

// Spawner places apples; *spawn.Spawner is the production implementation
type Spawner interface {
	Spawn(occupied []grid.Position) (grid.Position, error)
}

// Option customises a Session at construction
type Option func(*Session)

// WithSpawner replaces the random spawner, used for scripted apple placement
func WithSpawner(sp Spawner) Option {
	return func(s *Session) { s.spawner = sp }
}

// WithSnake replaces the initial snake
func WithSnake(sn *snake.Snake) Option {
	return func(s *Session) { s.snake = sn }
}

// Session owns one game: snake, apple, score and lifecycle
// Not safe for concurrent use; all mutation happens on the frame loop goroutine
type Session struct {
	id    string
	arena grid.Arena
	snake *snake.Snake
	queue *events.EventQueue
	now   func() time.Time

	spawner Spawner

	apple    grid.Position
	hasApple bool

	score int
	state State
	cause Cause

	tick         uint64
	consumedTick uint64 // Tick of the last scored apple, guards double counting
	consumed     bool
}

// New creates a session and places the first apple
func New(cfg Config, opts ...Option) (*Session, error) {
	if cfg.HalfWidth < 1 {
		return nil, fmt.Errorf("session: half width %d must be at least 1", cfg.HalfWidth)
	}
	if cfg.InitialSegments < 1 || cfg.InitialSegments > cfg.HalfWidth+1 {
		return nil, fmt.Errorf("session: %d initial segments do not fit half width %d", cfg.InitialSegments, cfg.HalfWidth)
	}
	if !cfg.Direction.Valid() {
		cfg.Direction = grid.North
	}

	arena := grid.NewArena(cfg.HalfWidth)
	s := &Session{
		id:    uuid.NewString(),
		arena: arena,
		queue: events.NewEventQueue(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.snake == nil {
		s.snake = snake.New(arena, cfg.InitialSegments, cfg.Direction)
	}
	if s.spawner == nil {
		s.spawner = spawn.New(arena, cfg.Seed)
	}

	if err := s.spawnApple(); err != nil {
		return nil, err
	}

	log.Printf("session %s: started, arena %dx%d, %d segments heading %v",
		s.id, arena.Side(), arena.Side(), s.snake.Len(), s.snake.Direction())
	return s, nil
}

// Tick runs one simulation step: advance, then termination or consumption
// No-op once the session is over
func (s *Session) Tick() {
	if s.state == StateGameOver {
		return
	}
	s.tick++

	step := s.snake.Advance()
	if step.Outcome != snake.Moved {
		s.CheckTermination(step.Head)
		return
	}

	s.CheckAppleConsumption(step.Head)
}

// CheckAppleConsumption scores and respawns when head is on the apple
// At most one apple is scored per tick
func (s *Session) CheckAppleConsumption(head grid.Position) bool {
	if s.state == StateGameOver || !s.hasApple || head != s.apple {
		return false
	}
	if s.consumed && s.consumedTick == s.tick {
		return false
	}

	eaten := s.apple
	s.score++
	s.consumed = true
	s.consumedTick = s.tick
	s.snake.AddGrowth(eaten)

	s.push(events.EventAppleEaten, &events.AppleEatenPayload{Position: eaten, Score: s.score})
	log.Printf("session %s: apple eaten at %v, score %d", s.id, eaten, s.score)

	if err := s.spawnApple(); err != nil {
		if errors.Is(err, spawn.ErrBoardFull) {
			s.terminate(CauseBoardFull)
		} else {
			log.Printf("session %s: respawn failed: %v", s.id, err)
		}
	}
	return true
}

// CheckTermination ends the session when head is out of bounds or on the body
// Returns true if this call performed the transition
func (s *Session) CheckTermination(head grid.Position) bool {
	if s.state == StateGameOver {
		return false
	}
	switch {
	case !s.arena.Contains(head):
		s.terminate(CauseWall)
	case s.snake.CheckSelfCollision(head):
		s.terminate(CauseSelf)
	default:
		return false
	}
	return true
}

// SetDirection forwards a direction intent to the snake
func (s *Session) SetDirection(d grid.Direction) bool {
	if s.state == StateGameOver {
		return false
	}
	if !s.snake.SetDirection(d) {
		return false
	}
	s.push(events.EventDirectionChanged, &events.DirectionChangedPayload{Direction: d})
	return true
}

func (s *Session) terminate(c Cause) {
	s.state = StateGameOver
	s.cause = c

	s.push(events.EventGameOver, &events.GameOverPayload{
		Cause:   c.String(),
		Message: c.Message(),
		Score:   s.score,
	})
	log.Printf("session %s: game over (%v) after %d ticks, score %d", s.id, c, s.tick, s.score)
}

// spawnApple replaces the current apple with a fresh one off the snake
func (s *Session) spawnApple() error {
	p, err := s.spawner.Spawn(s.snake.Segments())
	if err != nil {
		s.hasApple = false
		return fmt.Errorf("session: spawn apple: %w", err)
	}
	s.apple = p
	s.hasApple = true
	s.push(events.EventAppleSpawned, &events.AppleSpawnedPayload{Position: p})
	return nil
}

func (s *Session) push(t events.EventType, payload any) {
	err := s.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      s.tick,
		Timestamp: s.now(),
	})
	if err != nil {
		log.Printf("session %s: dropped %s event at tick %d: %v", s.id, t, s.tick, err)
	}
}

// ID returns the session uuid
func (s *Session) ID() string { return s.id }

// Score returns the number of apples eaten
func (s *Session) Score() int { return s.score }

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Cause returns why the session ended, CauseNone while running
func (s *Session) Cause() Cause { return s.cause }

// Over reports whether the session has ended
func (s *Session) Over() bool { return s.state == StateGameOver }

// Apple returns the current apple and whether one exists
func (s *Session) Apple() (grid.Position, bool) { return s.apple, s.hasApple }

// Snake returns the session's snake
func (s *Session) Snake() *snake.Snake { return s.snake }

// Arena returns the play field
func (s *Session) Arena() grid.Arena { return s.arena }

// Ticks returns the number of processed simulation steps
func (s *Session) Ticks() uint64 { return s.tick }

// Events returns the queue this session pushes to
func (s *Session) Events() *events.EventQueue { return s.queue }
