package simulator

import "strings"

// Direction is a compass facing in the fixed cyclic order
// North, East, South, West.

type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// step offsets in the same order as the enum
var directionSteps = [...][2]int{
	{0, 1},  // North
	{1, 0},  // East
	{0, -1}, // South
	{-1, 0}, // West
}

// Left returns the previous direction in cyclic order (North wraps to West).
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the next direction in cyclic order (West wraps to North).
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Step returns the (dx, dy) unit offset for one move along d.
func (d Direction) Step() (int, int) {
	s := directionSteps[d]
	return s[0], s[1]
}

func (d Direction) String() string {
	return directionNames[d]
}

// ParseDirection matches a direction keyword, case-insensitively.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToUpper(token) {
	case "NORTH":
		return North, true
	case "EAST":
		return East, true
	case "SOUTH":
		return South, true
	case "WEST":
		return West, true
	}
	return North, false
}
