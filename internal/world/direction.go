package world

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions is the canonical order used for options.
var Directions = []Direction{North, East, South, West}

var directionNames = [...]string{North: "north", East: "east", South: "south", West: "west"}

// Delta returns the coordinate change for d. North decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Title returns the capitalised name used in option labels.
func (d Direction) Title() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDirection accepts "north", "east", "south" or "west" in any case.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
