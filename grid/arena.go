package grid

// DefaultHalfWidth is the arena half-width L; the playable square spans [-L, L] on both axes
const DefaultHalfWidth = 10

// Arena is the bounded square play field centred on the origin
type Arena struct {
	HalfWidth int
}

// NewArena creates an arena with half-width l
func NewArena(l int) Arena {
	return Arena{HalfWidth: l}
}

// Contains reports whether p lies inside the arena
func (a Arena) Contains(p Position) bool {
	return WithinBounds(p, a.HalfWidth)
}

// Side returns the number of cells along one edge
func (a Arena) Side() int {
	return 2*a.HalfWidth + 1
}

// Cells returns the total number of cells in the arena
func (a Arena) Cells() int {
	s := a.Side()
	return s * s
}

// WithinBounds reports |p.X| <= l and |p.Z| <= l
func WithinBounds(p Position, l int) bool {
	return abs(p.X) <= l && abs(p.Z) <= l
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
