package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lixenwraith/grid-snake/events"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/snake"
	"github.com/lixenwraith/grid-snake/spawn"
)

// scriptedSpawner returns queued positions in order, then the fallback error
type scriptedSpawner struct {
	cells []grid.Position
	err   error
	calls int
}

func (s *scriptedSpawner) Spawn(occupied []grid.Position) (grid.Position, error) {
	s.calls++
	if len(s.cells) == 0 {
		if s.err != nil {
			return grid.Position{}, s.err
		}
		return grid.Position{}, errors.New("script exhausted")
	}
	p := s.cells[0]
	s.cells = s.cells[1:]
	return p, nil
}

func countEvents(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newScripted(t *testing.T, cfg Config, sn *snake.Snake, cells ...grid.Position) (*Session, *scriptedSpawner) {
	t.Helper()
	sp := &scriptedSpawner{cells: cells}
	opts := []Option{WithSpawner(sp)}
	if sn != nil {
		opts = append(opts, WithSnake(sn))
	}
	s, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, sp
}

func TestNewPlacesFirstApple(t *testing.T) {
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	apple, ok := s.Apple()
	if !ok {
		t.Fatal("No apple after New")
	}
	if !s.Arena().Contains(apple) {
		t.Errorf("Apple %v outside arena", apple)
	}
	if s.Snake().Occupies(apple) {
		t.Errorf("Apple %v placed on snake", apple)
	}
	if s.State() != StateRunning || s.Score() != 0 {
		t.Errorf("Initial state = %v score %d, want running 0", s.State(), s.Score())
	}
	if s.ID() == "" {
		t.Error("Session ID is empty")
	}

	evs := s.Events().Consume()
	if countEvents(evs, events.EventAppleSpawned) != 1 {
		t.Errorf("Expected one apple-spawned event, got %v", evs)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero half width", Config{HalfWidth: 0, InitialSegments: 1, Direction: grid.North}},
		{"no segments", Config{HalfWidth: 5, InitialSegments: 0, Direction: grid.North}},
		{"segments overflow", Config{HalfWidth: 2, InitialSegments: 4, Direction: grid.North}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

// TestWallCollisionSignalsOnce moves east past the boundary and keeps ticking
// TestEveryConfiguredDirectionIsPlayable checks the first tick moves for each heading
func TestEveryConfiguredDirectionIsPlayable(t *testing.T) {
	for _, dir := range grid.Directions() {
		t.Run(dir.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Direction = dir
			s, _ := newScripted(t, cfg, nil, grid.P(9, 9))

			s.Tick()

			if s.Over() {
				t.Fatalf("Session ended on tick 1 with cause %v", s.Cause())
			}
			if got, want := s.Snake().Head(), grid.P(0, 0).Step(dir); got != want {
				t.Errorf("Head = %v, want %v", got, want)
			}
			if s.Snake().Len() != cfg.InitialSegments {
				t.Errorf("Len = %d, want %d", s.Snake().Len(), cfg.InitialSegments)
			}
		})
	}
}

func TestWallCollisionSignalsOnce(t *testing.T) {
	cfg := Config{HalfWidth: 2, InitialSegments: 3, Direction: grid.East}
	arena := grid.NewArena(2)
	sn := snake.FromSegments(arena, []grid.Position{grid.P(2, 0), grid.P(1, 0), grid.P(0, 0)}, grid.East)
	s, _ := newScripted(t, cfg, sn, grid.P(-2, -2))
	s.Events().Consume()

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	if s.State() != StateGameOver {
		t.Fatalf("State = %v, want game-over", s.State())
	}
	if s.Cause() != CauseWall {
		t.Errorf("Cause = %v, want wall", s.Cause())
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1 (no ticks after game over)", s.Ticks())
	}
	if s.Snake().Head() != grid.P(2, 0) {
		t.Errorf("Head = %v, want last valid (2,0)", s.Snake().Head())
	}

	evs := s.Events().Consume()
	if n := countEvents(evs, events.EventGameOver); n != 1 {
		t.Fatalf("Game over events = %d, want 1", n)
	}
	for _, ev := range evs {
		if ev.Type != events.EventGameOver {
			continue
		}
		p, ok := ev.Payload.(*events.GameOverPayload)
		if !ok {
			t.Fatalf("Payload type %T", ev.Payload)
		}
		if p.Cause != "wall" || p.Message != "You hit the wall!" {
			t.Errorf("Payload = %+v", p)
		}
	}
}

func TestSelfCollisionCause(t *testing.T) {
	cfg := Config{HalfWidth: 5, InitialSegments: 1, Direction: grid.North}
	sn := snake.FromSegments(grid.NewArena(5), []grid.Position{
		grid.P(0, 1), grid.P(1, 1), grid.P(1, 0), grid.P(0, 0), grid.P(-1, 0),
	}, grid.North)
	s, _ := newScripted(t, cfg, sn, grid.P(4, 4))

	s.Tick()

	if s.Cause() != CauseSelf {
		t.Fatalf("Cause = %v, want self", s.Cause())
	}
	if got := s.Snapshot().Message; got != "You collided with yourself!" {
		t.Errorf("Message = %q", got)
	}
	if s.SetDirection(grid.East) {
		t.Error("SetDirection accepted after game over")
	}
}

func TestEatingScoresAndRespawns(t *testing.T) {
	s, sp := newScripted(t, DefaultConfig(), nil, grid.P(0, -1), grid.P(5, 5))
	s.Events().Consume()

	s.Tick()

	if s.Score() != 1 {
		t.Fatalf("Score = %d, want 1", s.Score())
	}
	if apple, _ := s.Apple(); apple != grid.P(5, 5) {
		t.Errorf("Apple = %v, want respawned (5,5)", apple)
	}
	if sp.calls != 2 {
		t.Errorf("Spawner calls = %d, want 2", sp.calls)
	}
	if got := s.Snake().PendingGrowth(); len(got) != 1 || got[0] != grid.P(0, -1) {
		t.Errorf("PendingGrowth = %v, want [(0,-1)]", got)
	}

	evs := s.Events().Consume()
	if countEvents(evs, events.EventAppleEaten) != 1 || countEvents(evs, events.EventAppleSpawned) != 1 {
		t.Errorf("Events = %v", evs)
	}
	for _, ev := range evs {
		if p, ok := ev.Payload.(*events.AppleEatenPayload); ok {
			if p.Score != 1 || p.Position != grid.P(0, -1) {
				t.Errorf("AppleEatenPayload = %+v", p)
			}
			if ev.Tick != 1 {
				t.Errorf("Event tick = %d, want 1", ev.Tick)
			}
		}
	}

	// Growth lands once the tail reaches the eaten cell
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if s.Snake().Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Snake().Len())
	}
}

func TestConsumptionIdempotentPerTick(t *testing.T) {
	s, _ := newScripted(t, DefaultConfig(), nil, grid.P(0, -1), grid.P(0, -1), grid.P(7, 7))

	s.Tick()
	if s.Score() != 1 {
		t.Fatalf("Score = %d, want 1", s.Score())
	}

	// The respawned apple is under the head again; repeated checks in the same tick must not score
	if s.CheckAppleConsumption(s.Snake().Head()) {
		t.Error("Second consumption in the same tick was accepted")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d after repeated check, want 1", s.Score())
	}
}

func TestBoardFullEndsAsWin(t *testing.T) {
	sp := &scriptedSpawner{cells: []grid.Position{grid.P(0, -1)}, err: fmt.Errorf("wrapped: %w", spawn.ErrBoardFull)}
	s, err := New(DefaultConfig(), WithSpawner(sp))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Tick()

	if s.Cause() != CauseBoardFull {
		t.Fatalf("Cause = %v, want board-full", s.Cause())
	}
	if !s.Cause().Win() {
		t.Error("Board full should count as a win")
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}
	if _, ok := s.Apple(); ok {
		t.Error("Apple should be absent on a full board")
	}
	if n := countEvents(s.Events().Consume(), events.EventGameOver); n != 1 {
		t.Errorf("Game over events = %d, want 1", n)
	}
}

// TestEventOrderThroughGameOver eats one apple then runs north into the wall
func TestEventOrderThroughGameOver(t *testing.T) {
	s, _ := newScripted(t, DefaultConfig(), nil, grid.P(0, -1), grid.P(5, 5))

	for i := 0; i < 20 && !s.Over(); i++ {
		s.Tick()
	}
	if s.Cause() != CauseWall {
		t.Fatalf("Cause = %v, want wall", s.Cause())
	}

	want := []events.EventType{
		events.EventAppleSpawned, // first apple placed by New
		events.EventAppleEaten,
		events.EventAppleSpawned,
		events.EventGameOver,
	}
	evs := s.Events().Consume()
	if len(evs) != len(want) {
		t.Fatalf("Events = %v, want %d", evs, len(want))
	}
	for i, ev := range evs {
		if ev.Type != want[i] {
			t.Errorf("Event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
	if evs[1].Tick != evs[2].Tick {
		t.Errorf("Eaten tick %d and respawn tick %d differ", evs[1].Tick, evs[2].Tick)
	}
	if s.Events().Dropped() != 0 {
		t.Errorf("Dropped = %d, want 0", s.Events().Dropped())
	}
}

func TestNewFailsOnFullBoard(t *testing.T) {
	arena := grid.NewArena(1)
	sn := snake.FromSegments(arena, []grid.Position{
		grid.P(0, 0), grid.P(0, 1), grid.P(1, 1), grid.P(1, 0), grid.P(1, -1),
		grid.P(0, -1), grid.P(-1, -1), grid.P(-1, 0), grid.P(-1, 1),
	}, grid.North)

	_, err := New(Config{HalfWidth: 1, InitialSegments: 1, Direction: grid.North}, WithSnake(sn))
	if !errors.Is(err, spawn.ErrBoardFull) {
		t.Errorf("err = %v, want ErrBoardFull", err)
	}
}

// TestRandomWalkInvariants drives the real spawner with a seeded sequence of turns
func TestRandomWalkInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	turns := []grid.Direction{grid.East, grid.South, grid.West, grid.North}
	prevScore := 0
	prevLen := s.Snake().Len()
	for i := 0; i < 500 && !s.Over(); i++ {
		if i%4 == 0 {
			s.SetDirection(turns[(i/4)%len(turns)])
		}
		s.Tick()

		if s.Score() < prevScore {
			t.Fatalf("Score decreased at tick %d", i)
		}
		if s.Snake().Len() < prevLen {
			t.Fatalf("Length decreased at tick %d", i)
		}
		if apple, ok := s.Apple(); ok && !s.Over() && s.Snake().Occupies(apple) {
			t.Fatalf("Apple %v on snake at tick %d", apple, i)
		}
		prevScore, prevLen = s.Score(), s.Snake().Len()
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := newScripted(t, DefaultConfig(), nil, grid.P(3, 3))
	snap := s.Snapshot()
	snap.Segments[0] = grid.P(9, 9)

	if s.Snake().Head() == grid.P(9, 9) {
		t.Error("Snapshot shares segment storage")
	}
	if snap.HalfWidth != grid.DefaultHalfWidth || !snap.HasApple || snap.Apple != grid.P(3, 3) {
		t.Errorf("Snapshot = %+v", snap)
	}
}

func TestCauseStrings(t *testing.T) {
	tests := []struct {
		cause Cause
		name  string
	}{
		{CauseNone, "none"},
		{CauseWall, "wall"},
		{CauseSelf, "self"},
		{CauseBoardFull, "board-full"},
	}
	for _, tt := range tests {
		if tt.cause.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", tt.cause, tt.cause.String(), tt.name)
		}
	}
	if StateGameOver.String() != "game-over" {
		t.Errorf("StateGameOver.String() = %q", StateGameOver.String())
	}
}
