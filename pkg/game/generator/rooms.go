package generator

import (
	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// Rect is an axis-aligned block of tiles
type Rect struct {
	Row, Col      int
	Height, Width int
}

// Contains returns true if idx lies inside the rectangle
func (r Rect) Contains(idx world.Index) bool {
	return idx.Row >= r.Row && idx.Row < r.Row+r.Height &&
		idx.Col >= r.Col && idx.Col < r.Col+r.Width
}

// Intersects returns true if the rectangles overlap once each is grown by margin tiles
func (r Rect) Intersects(o Rect, margin int) bool {
	return r.Row-margin < o.Row+o.Height && o.Row-margin < r.Row+r.Height &&
		r.Col-margin < o.Col+o.Width && o.Col-margin < r.Col+r.Width
}

// Room is a placed rectangular room and the tiles it claimed
type Room struct {
	ID     int
	Bounds Rect
	Tiles  []*world.Tile
}

// Center returns the room's geometric centre in tile units (X = column, Y = row)
func (r *Room) Center() geom.Vertex {
	return geom.V2(
		float64(r.Bounds.Col)+float64(r.Bounds.Width)/2,
		float64(r.Bounds.Row)+float64(r.Bounds.Height)/2,
	)
}

// CenterIndex returns the tile at the room's centre
func (r *Room) CenterIndex() world.Index {
	return world.Index{
		Row: r.Bounds.Row + r.Bounds.Height/2,
		Col: r.Bounds.Col + r.Bounds.Width/2,
	}
}

// PlaceRooms places up to settings.Count non-overlapping rooms. Each room
// gets settings.Attempts tries; a room that never fits is skipped.
func PlaceRooms(grid *world.Grid, rng *world.RNG, settings config.RoomSettings) []*Room {
	var rooms []*Room

	for i := 0; i < settings.Count; i++ {
		bounds, ok := findSpace(grid, rng, settings, rooms)
		if !ok {
			continue
		}
		rooms = append(rooms, CarveRoom(grid, len(rooms), bounds))
	}

	return rooms
}

// findSpace tries random rectangles until one clears every placed room
func findSpace(grid *world.Grid, rng *world.RNG, settings config.RoomSettings, placed []*Room) (Rect, bool) {
	for attempt := 0; attempt < settings.Attempts; attempt++ {
		height := rng.IntRange(settings.MinSize, settings.MaxSize+1)
		width := rng.IntRange(settings.MinSize, settings.MaxSize+1)
		if height > grid.Rows() || width > grid.Cols() {
			continue
		}

		candidate := Rect{
			Row:    rng.IntRange(0, grid.Rows()-height+1),
			Col:    rng.IntRange(0, grid.Cols()-width+1),
			Height: height,
			Width:  width,
		}

		clear := true
		for _, other := range placed {
			if candidate.Intersects(other.Bounds, settings.Spacing) {
				clear = false
				break
			}
		}
		if clear {
			return candidate, true
		}
	}
	return Rect{}, false
}

// CarveRoom claims every tile of bounds as a Room tile owned by room id
func CarveRoom(grid *world.Grid, id int, bounds Rect) *Room {
	room := &Room{ID: id, Bounds: bounds}

	for row := bounds.Row; row < bounds.Row+bounds.Height; row++ {
		for col := bounds.Col; col < bounds.Col+bounds.Width; col++ {
			tile := grid.Claim(world.Index{Row: row, Col: col})
			if tile == nil || !tile.SetBasicType(world.Room) {
				continue
			}
			tile.RoomID = id
			room.Tiles = append(room.Tiles, tile)
		}
	}

	return room
}

// RoomAt returns the room containing idx, or nil
func RoomAt(rooms []*Room, idx world.Index) *Room {
	for _, r := range rooms {
		if r.Bounds.Contains(idx) {
			return r
		}
	}
	return nil
}
