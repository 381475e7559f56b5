package spawn

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/grid"
)

// ErrBoardFull is returned when every arena cell is occupied
var ErrBoardFull = errors.New("spawn: no free cell left in arena")

// Spawner places apples on random free cells
type Spawner struct {
	arena grid.Arena
	rng   *rand.Rand

	attempts int // Sample count of the most recent Spawn call
}

// New creates a spawner over arena, seed 0 derives the seed from the clock
func New(arena grid.Arena, seed uint64) *Spawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewWithSource(arena, rand.NewSource(seed))
}

// NewWithSource creates a spawner drawing from src
func NewWithSource(arena grid.Arena, src rand.Source) *Spawner {
	return &Spawner{
		arena: arena,
		rng:   rand.New(src),
	}
}

// Spawn samples uniformly in [-L, L]² until the cell is in bounds and not in occupied
// Retries are unbounded while a free cell exists
func (s *Spawner) Spawn(occupied []grid.Position) (grid.Position, error) {
	s.attempts = 0
	if s.isFull(occupied) {
		return grid.Position{}, ErrBoardFull
	}

	l := s.arena.HalfWidth
	side := s.arena.Side()
	for {
		s.attempts++
		p := grid.P(s.rng.Intn(side)-l, s.rng.Intn(side)-l)
		if !s.arena.Contains(p) {
			continue
		}
		if grid.Contains(occupied, p) {
			continue
		}
		return p, nil
	}
}

// isFull counts distinct in-bounds occupied cells against arena capacity
func (s *Spawner) isFull(occupied []grid.Position) bool {
	capacity := s.arena.Cells()
	if len(occupied) < capacity {
		return false
	}
	seen := make(map[grid.Position]struct{}, capacity)
	for _, p := range occupied {
		if s.arena.Contains(p) {
			seen[p] = struct{}{}
		}
	}
	return len(seen) >= capacity
}

// Attempts returns the sample count of the most recent Spawn call
func (s *Spawner) Attempts() int { return s.attempts }
