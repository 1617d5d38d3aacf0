// Package decor grows environments inside rooms, carves rivers with bridges
// and scatters decorations. Every probability check draws from the single
// RNG the engine was built with.
package decor

import (
	"github.com/zyedidia/generic/stack"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// Engine applies environment and decor passes to a grid
type Engine struct {
	grid     *world.Grid
	rng      *world.RNG
	settings config.Settings
}

// New creates an engine over grid. Settings must be valid.
func New(grid *world.Grid, rng *world.RNG, settings config.Settings) *Engine {
	return &Engine{
		grid:     grid,
		rng:      rng,
		settings: settings,
	}
}

// SeedEnvironment seeds a room's tiles with the configured environment types
// and spreads each accepted seed. The room budget is drawn from the summed
// per-type ranges and clamped to the room size. Each type then draws from
// its own range, clamped to what is left of the budget; the last type takes
// the remainder. Returns the number of seeds accepted.
func (e *Engine) SeedEnvironment(tiles []*world.Tile) int {
	types := e.settings.Environment.Types
	if len(types) == 0 || len(tiles) == 0 {
		return 0
	}

	lo, hi := 0, 0
	for _, et := range types {
		lo += et.SeedCountMin
		hi += et.SeedCountMax
	}
	remaining := e.rng.IntRange(lo, hi+1)
	if remaining > len(tiles) {
		remaining = len(tiles)
	}

	seeded := 0
	for i, et := range types {
		count := remaining
		if i < len(types)-1 {
			count = e.rng.IntRange(et.SeedCountMin, et.SeedCountMax+1)
			if count > remaining {
				count = remaining
			}
		}
		remaining -= count

		env := et.Environment()
		for slot := 0; slot < count; slot++ {
			dirt := dirtTiles(tiles)
			if len(dirt) == 0 {
				return seeded
			}
			tile := dirt[e.rng.Intn(len(dirt))]
			if !e.rng.Chance(et.Probability) {
				continue
			}
			tile.Environment = env
			seeded++
			e.Spread(tile, et)
		}
	}

	return seeded
}

func dirtTiles(tiles []*world.Tile) []*world.Tile {
	var dirt []*world.Tile
	for _, t := range tiles {
		if t.Environment == world.Dirt {
			dirt = append(dirt, t)
		}
	}
	return dirt
}

// spreadFrame is one level of the spread walk
type spreadFrame struct {
	tile  *world.Tile
	depth int
	next  int
}

// Spread grows from's environment into neighbouring Dirt tiles. Every
// neighbour is gated on its own by the spread probability, and growth stops
// at a depth drawn from the type's spread range on each call. Neighbours
// are visited depth first in direction order. Returns the number of tiles
// converted.
func (e *Engine) Spread(from *world.Tile, et config.EnvironmentType) int {
	maxDepth := e.rng.IntRange(et.SpreadMin, et.SpreadMax+1)
	env := from.Environment
	dirs := world.AllDirections()
	converted := 0

	frames := stack.New[*spreadFrame]()
	frames.Push(&spreadFrame{tile: from})

	for frames.Size() > 0 {
		f := frames.Peek()
		if f.depth >= maxDepth || f.next >= len(dirs) {
			frames.Pop()
			continue
		}

		dir := dirs[f.next]
		f.next++

		if !e.rng.Chance(et.SpreadProbability) {
			continue
		}
		n := e.grid.Neighbor(f.tile, dir)
		if n == nil || n.BasicType() == world.Empty || n.Environment != world.Dirt {
			continue
		}

		n.Environment = env
		converted++
		frames.Push(&spreadFrame{tile: n, depth: f.depth + 1})
	}

	return converted
}

// PlaceDecor scatters pebbles on Dirt and Stone and grass tufts on Grass.
// Tiles that already carry decor (bridges) are skipped. Returns the number
// of tiles decorated.
func (e *Engine) PlaceDecor(tiles []*world.Tile) int {
	placed := 0
	for _, t := range tiles {
		if t.Decor != world.DecorNone {
			continue
		}

		switch t.Environment {
		case world.Dirt, world.Stone:
			if e.rng.Chance(e.settings.Decor.PebblesProbability) {
				t.Decor = world.DecorPebbles
				placed++
			}
		case world.Grass:
			if e.rng.Chance(e.settings.Decor.GrassProbability) {
				t.Decor = world.DecorGrass
				placed++
			}
		}
	}
	return placed
}
