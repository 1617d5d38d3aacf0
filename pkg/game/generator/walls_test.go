package generator

import (
	"testing"

	"dungeongen/pkg/engine/world"
)

// neighbourhood builds a 3x3 grid with a hallway at 1:1 facing a room at 0:1
func neighbourhood(left, right, laterals bool) *world.Grid {
	grid := world.NewGrid(3, 3)
	set := func(row, col int, bt world.BasicType) {
		grid.Claim(world.Index{Row: row, Col: col}).SetBasicType(bt)
	}

	set(1, 1, world.Hallway)
	set(0, 1, world.Room)
	if laterals {
		set(1, 0, world.Hallway)
		set(1, 2, world.Hallway)
	}
	// North's left lateral is West, its right lateral is East
	if left {
		set(0, 0, world.Room)
	}
	if right {
		set(0, 2, world.Room)
	}
	return grid
}

func TestDeriveWalls_DoorwayShaping(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        world.Wall
	}{
		{"neither", false, false, world.DoorwayFull},
		{"left only", true, false, world.DoorwayRight},
		{"right only", false, true, world.DoorwayLeft},
		{"both", true, true, world.DoorwayMiddle},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			grid := neighbourhood(c.left, c.right, true)
			DeriveWalls(grid)
			hall := grid.TileAt(1, 1)
			if got := hall.Walls[world.North]; got != c.want {
				t.Errorf("north wall = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDeriveWalls_MissingLateralDoesNotCount(t *testing.T) {
	grid := neighbourhood(true, true, false)
	DeriveWalls(grid)
	if got := grid.TileAt(1, 1).Walls[world.North]; got != world.DoorwayFull {
		t.Errorf("north wall = %v, want %v", got, world.DoorwayFull)
	}
}

func TestDeriveWalls_HallwayAndRoomSides(t *testing.T) {
	grid := neighbourhood(false, false, true)
	DeriveWalls(grid)

	hall := grid.TileAt(1, 1)
	want := [world.DirectionCount]world.Wall{
		world.East:  world.WallNone,
		world.North: world.DoorwayFull,
		world.West:  world.WallNone,
		world.South: world.WallBasic,
	}
	if hall.Walls != want {
		t.Errorf("hallway walls = %v, want %v", hall.Walls, want)
	}

	room := grid.TileAt(0, 1)
	want = [world.DirectionCount]world.Wall{
		world.East:  world.WallBasic,
		world.North: world.WallBasic,
		world.West:  world.WallBasic,
		world.South: world.WallNone,
	}
	if room.Walls != want {
		t.Errorf("room walls = %v, want %v", room.Walls, want)
	}
}

func TestDeriveWalls_RoomsNeverWallEachOther(t *testing.T) {
	grid := world.NewGrid(2, 2)
	for _, idx := range []world.Index{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}} {
		grid.Claim(idx).SetBasicType(world.Room)
	}
	DeriveWalls(grid)

	tile := grid.TileAt(0, 0)
	if tile.Walls[world.East] != world.WallNone || tile.Walls[world.South] != world.WallNone {
		t.Errorf("inner walls = %v, want none", tile.Walls)
	}
	if tile.Walls[world.North] != world.WallBasic || tile.Walls[world.West] != world.WallBasic {
		t.Errorf("outer walls = %v, want basic", tile.Walls)
	}
}
