package generator

import (
	"testing"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{Row: 2, Col: 2, Height: 3, Width: 3}
	cases := []struct {
		name   string
		other  Rect
		margin int
		want   bool
	}{
		{"overlapping", Rect{Row: 4, Col: 4, Height: 2, Width: 2}, 0, true},
		{"touching", Rect{Row: 2, Col: 5, Height: 3, Width: 2}, 0, false},
		{"touching with margin", Rect{Row: 2, Col: 5, Height: 3, Width: 2}, 1, true},
		{"one tile gap with margin", Rect{Row: 2, Col: 6, Height: 3, Width: 2}, 1, false},
		{"far", Rect{Row: 10, Col: 10, Height: 1, Width: 1}, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other, c.margin); got != c.want {
				t.Errorf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.other.Intersects(base, c.margin); got != c.want {
				t.Errorf("reversed Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestPlaceRooms(t *testing.T) {
	grid := world.NewGrid(30, 30)
	settings := config.RoomSettings{Count: 6, MinSize: 3, MaxSize: 5, Attempts: 100, Spacing: 1}
	rooms := PlaceRooms(grid, world.NewRNG(4), settings)

	if len(rooms) == 0 || len(rooms) > settings.Count {
		t.Fatalf("placed %d rooms", len(rooms))
	}

	tiles := 0
	for i, r := range rooms {
		if r.ID != i {
			t.Errorf("room %d has ID %d", i, r.ID)
		}
		b := r.Bounds
		if b.Height < 3 || b.Height > 5 || b.Width < 3 || b.Width > 5 {
			t.Errorf("room %d size %dx%d out of range", i, b.Height, b.Width)
		}
		if b.Row < 0 || b.Col < 0 || b.Row+b.Height > 30 || b.Col+b.Width > 30 {
			t.Errorf("room %d %+v leaves the grid", i, b)
		}
		if len(r.Tiles) != b.Height*b.Width {
			t.Errorf("room %d claimed %d tiles, want %d", i, len(r.Tiles), b.Height*b.Width)
		}
		for _, tile := range r.Tiles {
			if !tile.IsRoom() || tile.RoomID != r.ID || !b.Contains(tile.Index()) {
				t.Errorf("room %d tile %v: type %v id %d", i, tile.Index(), tile.BasicType(), tile.RoomID)
			}
		}
		tiles += len(r.Tiles)

		for j := i + 1; j < len(rooms); j++ {
			if b.Intersects(rooms[j].Bounds, settings.Spacing) {
				t.Errorf("rooms %d and %d are closer than the spacing", i, j)
			}
		}
	}

	if grid.TileCount() != tiles {
		t.Errorf("grid has %d tiles, rooms claimed %d", grid.TileCount(), tiles)
	}
}

func TestPlaceRooms_SkipsRoomsThatDoNotFit(t *testing.T) {
	grid := world.NewGrid(5, 5)
	settings := config.RoomSettings{Count: 3, MinSize: 5, MaxSize: 5, Attempts: 20}
	rooms := PlaceRooms(grid, world.NewRNG(1), settings)
	if len(rooms) != 1 {
		t.Errorf("placed %d rooms, want 1", len(rooms))
	}
}

func TestRoomCenter(t *testing.T) {
	r := &Room{Bounds: Rect{Row: 2, Col: 4, Height: 3, Width: 4}}
	if got := r.Center(); got.X != 6 || got.Y != 3.5 {
		t.Errorf("Center() = %+v, want X 6 Y 3.5", got)
	}
	if got := r.CenterIndex(); got != (world.Index{Row: 3, Col: 6}) {
		t.Errorf("CenterIndex() = %v, want 3:6", got)
	}
	if RoomAt([]*Room{r}, world.Index{Row: 4, Col: 7}) != r {
		t.Error("RoomAt missed a tile inside the room")
	}
	if RoomAt([]*Room{r}, world.Index{Row: 5, Col: 7}) != nil {
		t.Error("RoomAt matched a tile outside the room")
	}
}

func TestCarveHallway(t *testing.T) {
	grid := world.NewGrid(1, 5)
	grid.Claim(world.Index{Row: 0, Col: 2}).SetBasicType(world.Room)

	path := []world.Index{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}
	if got := CarveHallway(grid, path); got != 3 {
		t.Errorf("CarveHallway = %d, want 3", got)
	}
	if grid.TileType(world.Index{Row: 0, Col: 2}) != world.Room {
		t.Error("room tile was overwritten")
	}
	if got := CarveHallway(grid, path); got != 0 {
		t.Errorf("second CarveHallway = %d, want 0", got)
	}
}
