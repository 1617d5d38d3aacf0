package decor

import (
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/world"
)

// GenerateRivers scans rows (eastward runs) then columns (southward runs).
// Every candidate start tile is gated by the river probability and carving
// stops once the configured maximum is reached. Returns the number of
// rivers carved.
func (e *Engine) GenerateRivers() int {
	rivers := 0
	limit := e.settings.Rivers.MaxCount

	for row := 0; row < e.grid.Rows(); row++ {
		for col := 0; col < e.grid.Cols(); col++ {
			if rivers >= limit {
				return rivers
			}
			if e.rng.Chance(e.settings.Rivers.Probability) && e.carveRiver(world.Index{Row: row, Col: col}, world.East) {
				rivers++
			}
		}
	}

	for col := 0; col < e.grid.Cols(); col++ {
		for row := 0; row < e.grid.Rows(); row++ {
			if rivers >= limit {
				return rivers
			}
			if e.rng.Chance(e.settings.Rivers.Probability) && e.carveRiver(world.Index{Row: row, Col: col}, world.South) {
				rivers++
			}
		}
	}

	return rivers
}

// carveRiver tries a straight run of room tiles from start. The attempt is
// abandoned if the run leaves the grid or a room, or touches a hallway.
func (e *Engine) carveRiver(start world.Index, dir world.Direction) bool {
	length := e.rng.IntRange(e.settings.Rivers.MinSize, e.settings.Rivers.MaxSize+1)

	run := make([]*world.Tile, 0, length)
	idx := start
	for i := 0; i < length; i++ {
		t := e.grid.Tile(idx)
		if !t.IsRoom() || e.touchesHallway(t) {
			return false
		}
		run = append(run, t)
		idx = idx.Step(dir)
	}

	for _, t := range run {
		t.Environment = world.Water
	}

	// bridging only reads water, so the check order doesn't matter
	candidates := mapset.New[*world.Tile]()
	for _, t := range run {
		candidates.Put(t)
		for _, d := range world.AllDirections() {
			if n := e.grid.Neighbor(t, d); n != nil {
				candidates.Put(n)
			}
		}
	}
	candidates.Each(e.bridgeIfSurrounded)
	e.placeMiddleBridges(run, dir)

	return true
}

func (e *Engine) touchesHallway(t *world.Tile) bool {
	for _, d := range world.AllDirections() {
		if e.grid.Neighbor(t, d).IsHallway() {
			return true
		}
	}
	return false
}

// bridgeIfSurrounded bridges t and all of its neighbours when all four
// neighbours are water
func (e *Engine) bridgeIfSurrounded(t *world.Tile) {
	if t == nil {
		return
	}

	var neighbors [world.DirectionCount]*world.Tile
	for _, d := range world.AllDirections() {
		n := e.grid.Neighbor(t, d)
		if !n.IsWater() {
			return
		}
		neighbors[d] = n
	}

	t.Decor = world.DecorBridge
	for _, n := range neighbors {
		n.Decor = world.DecorBridge
	}
}

// placeMiddleBridges bridges the middle of a run: one tile for an odd
// length, two for an even one. A bridge tile needs room tiles on both sides
// across the river.
func (e *Engine) placeMiddleBridges(run []*world.Tile, dir world.Direction) {
	n := len(run)
	if n == 0 {
		return
	}

	middles := []int{n / 2}
	if n%2 == 0 {
		middles = []int{n/2 - 1, n / 2}
	}

	for _, i := range middles {
		t := run[i]
		if e.grid.Neighbor(t, dir.Left()).IsRoom() && e.grid.Neighbor(t, dir.Right()).IsRoom() {
			t.Decor = world.DecorBridge
		}
	}
}

// CleanupBridges demotes bridges that do not reach land on at least two
// sides, unless they are fully surrounded by bridges. Bridges are checked
// in row-major order and demotions take effect immediately, so a demotion
// can strand a bridge checked earlier in the sweep. Sweeps repeat until one
// demotes nothing. Returns the number of bridges demoted.
func (e *Engine) CleanupBridges() int {
	demoted := 0
	for {
		n := e.sweepBridges()
		if n == 0 {
			return demoted
		}
		demoted += n
	}
}

func (e *Engine) sweepBridges() int {
	demoted := 0
	e.grid.ForEachTile(func(t *world.Tile) {
		if !t.IsBridge() {
			return
		}
		if e.landConnections(t) >= 2 || e.bridgeSurrounded(t) {
			return
		}
		t.Decor = world.DecorNone
		demoted++
	})
	return demoted
}

// landConnections counts the sides of t that reach land, directly or by
// following a straight chain of bridges
func (e *Engine) landConnections(t *world.Tile) int {
	land := 0
	for _, d := range world.AllDirections() {
		if e.reachesLand(t, d) {
			land++
		}
	}
	return land
}

func (e *Engine) reachesLand(from *world.Tile, dir world.Direction) bool {
	for cur := e.grid.Neighbor(from, dir); cur != nil; cur = e.grid.Neighbor(cur, dir) {
		if !cur.IsWater() {
			return true
		}
		if !cur.IsBridge() {
			return false
		}
	}
	return false
}

func (e *Engine) bridgeSurrounded(t *world.Tile) bool {
	for _, d := range world.AllDirections() {
		if !e.grid.Neighbor(t, d).IsBridge() {
			return false
		}
	}
	return true
}
