package pathfind

import (
	"fmt"
	"math"
)

// Heuristic selects the distance estimate used by the pathfinder
type Heuristic int

const (
	Euclidean Heuristic = iota
	Octile
	Chebyshev
	Manhattan
)

// octileStraightBias nudges straight steps so ties break consistently
const octileStraightBias = 1.001

func (h Heuristic) String() string {
	switch h {
	case Euclidean:
		return "euclidean"
	case Octile:
		return "octile"
	case Chebyshev:
		return "chebyshev"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// ParseHeuristic returns the heuristic with the given name
func ParseHeuristic(name string) (Heuristic, error) {
	for _, h := range []Heuristic{Euclidean, Octile, Chebyshev, Manhattan} {
		if h.String() == name {
			return h, nil
		}
	}
	return Euclidean, fmt.Errorf("unknown heuristic %q", name)
}

// Distance estimates the cost between two tiles dx, dy apart
func (h Heuristic) Distance(dx, dy int) float64 {
	x := math.Abs(float64(dx))
	y := math.Abs(float64(dy))
	switch h {
	case Octile:
		lo, hi := math.Min(x, y), math.Max(x, y)
		return lo*math.Sqrt2 + (hi-lo)*octileStraightBias
	case Chebyshev:
		return math.Max(x, y)
	case Manhattan:
		return x + y
	default:
		return math.Sqrt(x*x + y*y)
	}
}
