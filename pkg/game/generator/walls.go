package generator

import "dungeongen/pkg/engine/world"

// DeriveWalls classifies every wall of every registered tile
func DeriveWalls(grid *world.Grid) {
	grid.ForEachTile(func(t *world.Tile) {
		DeriveTileWalls(grid, t)
	})
}

// DeriveTileWalls classifies the four walls of a single tile from its neighbours
func DeriveTileWalls(grid *world.Grid, t *world.Tile) {
	for _, dir := range world.AllDirections() {
		t.Walls[dir] = deriveWall(grid, t, dir)
	}
}

func deriveWall(grid *world.Grid, t *world.Tile, dir world.Direction) world.Wall {
	neighbor := grid.NeighborType(t, dir)

	switch t.BasicType() {
	case world.Room:
		if neighbor == world.Empty {
			return world.WallBasic
		}
		return world.WallNone

	case world.Hallway:
		switch neighbor {
		case world.Hallway:
			return world.WallNone
		case world.Room:
			return doorway(grid, t, dir)
		default:
			return world.WallBasic
		}
	}

	return world.WallNone
}

// doorway shapes a hallway wall facing a room. The left lateral is dir+1 and
// the right lateral dir-1; a lateral only counts when it also faces a room
// in dir. A room on the left only gives DoorwayRight and vice versa.
func doorway(grid *world.Grid, t *world.Tile, dir world.Direction) world.Wall {
	left := lateralFacesRoom(grid, t, dir, dir.Left())
	right := lateralFacesRoom(grid, t, dir, dir.Right())

	switch {
	case left && right:
		return world.DoorwayMiddle
	case left:
		return world.DoorwayRight
	case right:
		return world.DoorwayLeft
	default:
		return world.DoorwayFull
	}
}

func lateralFacesRoom(grid *world.Grid, t *world.Tile, dir, side world.Direction) bool {
	lateral := grid.Neighbor(t, side)
	if lateral == nil {
		return false
	}
	return grid.NeighborType(lateral, dir) == world.Room
}
