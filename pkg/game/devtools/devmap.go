package devtools

import (
	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// Showcase dimensions
const (
	showcaseRows = 12
	showcaseCols = 38
)

// Showcase builds a hard-coded developer dungeon that contains every tile
// kind: two rooms, a single-width hallway with full doorways, a three-wide
// hallway with left, middle and right doorways, a river with a two-tile
// bridge, and every environment and decor type.
func Showcase() *generator.Dungeon {
	grid := world.NewGrid(showcaseRows, showcaseCols)

	west := generator.CarveRoom(grid, 0, generator.Rect{Row: 2, Col: 2, Height: 8, Width: 12})
	east := generator.CarveRoom(grid, 1, generator.Rect{Row: 2, Col: 24, Height: 8, Width: 12})
	rooms := []*generator.Room{west, east}

	// Single-width hallway along row 4
	var narrow []world.Index
	for col := 14; col < 24; col++ {
		narrow = append(narrow, world.Index{Row: 4, Col: col})
	}

	// Three-wide hallway over rows 6 to 8
	var wide []world.Index
	for row := 6; row <= 8; row++ {
		for col := 14; col < 24; col++ {
			wide = append(wide, world.Index{Row: row, Col: col})
		}
	}

	hallways := []generator.Hallway{
		{From: west, To: east, Path: narrow, Carved: generator.CarveHallway(grid, narrow)},
		{From: west, To: east, Path: wide, Carved: generator.CarveHallway(grid, wide)},
	}

	// West room: stone band, grass patch, pebbles on dirt and stone
	for col := 3; col < 7; col++ {
		grid.TileAt(3, col).Environment = world.Stone
	}
	for row := 6; row < 9; row++ {
		for col := 8; col < 12; col++ {
			grid.TileAt(row, col).Environment = world.Grass
		}
	}
	grid.TileAt(7, 9).Decor = world.DecorGrass
	grid.TileAt(6, 4).Decor = world.DecorPebbles
	grid.TileAt(3, 5).Decor = world.DecorPebbles

	// East room: river across the full height, bridged in the middle
	for row := 2; row < 10; row++ {
		grid.TileAt(row, 30).Environment = world.Water
	}
	grid.TileAt(5, 30).Decor = world.DecorBridge
	grid.TileAt(6, 30).Decor = world.DecorBridge

	generator.DeriveWalls(grid)

	return &generator.Dungeon{
		Grid:          grid,
		Rooms:         rooms,
		Triangulation: generator.TriangulateRooms(rooms),
		SpanningTree:  []geom.Edge{geom.NewEdge(west.Center(), east.Center())},
		Hallways:      hallways,
		Rivers:        1,
	}
}
