package world

// Direction represents a cardinal direction.
// The order is clockwise-cyclic and load-bearing: neighbour offsets and
// doorway left/right derivation index by it.
type Direction int

// Direction constants
const (
	East Direction = iota
	North
	West
	South
)

// DirectionCount is the number of cardinal directions
const DirectionCount = 4

// AllDirections returns all valid directions in their fixed order
func AllDirections() []Direction {
	return []Direction{East, North, West, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= East && d <= South
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	return (d + 2) % DirectionCount
}

// Left returns the next direction in the cyclic order (d+1)
func (d Direction) Left() Direction {
	return (d + 1) % DirectionCount
}

// Right returns the previous direction in the cyclic order (d-1)
func (d Direction) Right() Direction {
	return (d + DirectionCount - 1) % DirectionCount
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case East:
		return 0, 1
	case North:
		return -1, 0
	case West:
		return 0, -1
	case South:
		return 1, 0
	default:
		return 0, 0
	}
}
