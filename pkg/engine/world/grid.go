package world

// Grid owns the dungeon tiles. Slots start unassigned; stages register
// tiles with AddTile as they claim them.
type Grid struct {
	tiles []*Tile
	rows  int
	cols  int
	count int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// TileCount returns the number of registered tiles
func (g *Grid) TileCount() int {
	return g.count
}

// Build (re)initializes the grid with the given dimensions, dropping all tiles
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.count = 0
	g.tiles = make([]*Tile, rows*cols)
}

// IsValidIndex checks if an index is within grid bounds
func (g *Grid) IsValidIndex(idx Index) bool {
	return idx.Row >= 0 && idx.Row < g.rows && idx.Col >= 0 && idx.Col < g.cols
}

// Offset returns the flat slot of a valid index, or -1
func (g *Grid) Offset(idx Index) int {
	if !g.IsValidIndex(idx) {
		return -1
	}
	return idx.Row*g.cols + idx.Col
}

// IndexAt is the inverse of Offset
func (g *Grid) IndexAt(offset int) Index {
	return Index{Row: offset / g.cols, Col: offset % g.cols}
}

// Tile returns the tile at the given index, or nil if out of bounds or unassigned
func (g *Grid) Tile(idx Index) *Tile {
	off := g.Offset(idx)
	if off < 0 {
		return nil
	}
	return g.tiles[off]
}

// TileAt is Tile by row and column
func (g *Grid) TileAt(row, col int) *Tile {
	return g.Tile(Index{Row: row, Col: col})
}

// TileType returns the basic type at the given index. Out of range or
// unassigned slots are Empty.
func (g *Grid) TileType(idx Index) BasicType {
	return g.Tile(idx).BasicType()
}

// AddTile registers a tile at its own index. Returns false if the tile is nil,
// out of bounds, or the slot is already taken.
func (g *Grid) AddTile(t *Tile) bool {
	if t == nil {
		return false
	}
	off := g.Offset(t.Index())
	if off < 0 || g.tiles[off] != nil {
		return false
	}
	g.tiles[off] = t
	g.count++
	return true
}

// Claim returns the tile at idx, creating and registering an Empty tile if
// the slot is unassigned. Returns nil when idx is out of bounds.
func (g *Grid) Claim(idx Index) *Tile {
	if t := g.Tile(idx); t != nil {
		return t
	}
	if !g.IsValidIndex(idx) {
		return nil
	}
	t := NewTile(idx)
	g.AddTile(t)
	return t
}

// Neighbor returns the tile adjacent to t in the given direction, or nil
func (g *Grid) Neighbor(t *Tile, dir Direction) *Tile {
	if t == nil || !dir.IsValid() {
		return nil
	}
	return g.Tile(t.Index().Step(dir))
}

// NeighborType returns the basic type adjacent to t in the given direction
func (g *Grid) NeighborType(t *Tile, dir Direction) BasicType {
	return g.Neighbor(t, dir).BasicType()
}

// ForEachTile calls fn for every registered tile in row-major order
func (g *Grid) ForEachTile(fn func(t *Tile)) {
	for _, t := range g.tiles {
		if t != nil {
			fn(t)
		}
	}
}

// CountTiles returns how many registered tiles satisfy pred
func (g *Grid) CountTiles(pred func(t *Tile) bool) int {
	n := 0
	g.ForEachTile(func(t *Tile) {
		if pred(t) {
			n++
		}
	})
	return n
}

// TileState is a value copy of a tile, used for snapshots
type TileState struct {
	Basic       BasicType
	Environment EnvironmentType
	Decor       DecorType
	Walls       [DirectionCount]Wall
}

// Snapshot copies the grid into a row-major slice of tile states.
// Unassigned slots are the zero TileState (Empty).
func (g *Grid) Snapshot() []TileState {
	out := make([]TileState, len(g.tiles))
	for i, t := range g.tiles {
		if t == nil {
			continue
		}
		out[i] = TileState{
			Basic:       t.BasicType(),
			Environment: t.Environment,
			Decor:       t.Decor,
			Walls:       t.Walls,
		}
	}
	return out
}
