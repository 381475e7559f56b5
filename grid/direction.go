package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four lattice unit vectors
type Direction uint8

const (
	DirNone Direction = iota
	North
	South
	West
	East
)

var directionVectors = [...]Position{
	DirNone: {0, 0},
	North:   {0, -1},
	South:   {0, 1},
	West:    {-1, 0},
	East:    {1, 0},
}

var directionNames = [...]string{
	DirNone: "none",
	North:   "north",
	South:   "south",
	West:    "west",
	East:    "east",
}

// Vector returns the unit displacement, zero for DirNone or unknown values
func (d Direction) Vector() Position {
	if int(d) >= len(directionVectors) {
		return Position{}
	}
	return directionVectors[d]
}

// Opposite returns the 180 degree reversal
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	default:
		return DirNone
	}
}

// Dot returns the dot product of the two unit vectors
func (d Direction) Dot(o Direction) int {
	return d.Vector().Dot(o.Vector())
}

// Orthogonal reports whether d and o are perpendicular non-zero directions
func (d Direction) Orthogonal(o Direction) bool {
	return d.Valid() && o.Valid() && d.Dot(o) == 0
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	return d >= North && d <= East
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection maps a name ("north", "s", "east", ...) to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	case "east", "e", "right":
		return East, nil
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}

// Directions lists the four cardinal directions
func Directions() [4]Direction {
	return [4]Direction{North, South, West, East}
}
