package grid

import "fmt"

// Position is a cell on the play lattice
// X runs west to east, Z runs north to south
type Position struct {
	X int
	Z int
}

// P is a convenience constructor for Position
func P(x, z int) Position {
	return Position{X: x, Z: z}
}

// Add returns the component-wise sum
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Z: p.Z + o.Z}
}

// Negate returns the position mirrored through the origin
func (p Position) Negate() Position {
	return Position{X: -p.X, Z: -p.Z}
}

// Dot returns x1*x2 + z1*z2
func (p Position) Dot(o Position) int {
	return p.X*o.X + p.Z*o.Z
}

// Step returns the neighbouring cell in direction d
func (p Position) Step(d Direction) Position {
	return p.Add(d.Vector())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Z)
}

// IndexOf returns the index of p in cells, -1 if absent
func IndexOf(cells []Position, p Position) int {
	for i, c := range cells {
		if c == p {
			return i
		}
	}
	return -1
}

// Contains reports whether p appears in cells
func Contains(cells []Position, p Position) bool {
	return IndexOf(cells, p) >= 0
}
