// Package world provides the tile grid that every generation stage reads and
// mutates: tiles, walls, directions and the shared random source.
package world

import "fmt"

// BasicType is the structural kind of a tile
type BasicType int

const (
	Empty BasicType = iota
	Room
	Hallway
)

// BasicTypeCount is the number of basic tile types (sizes cost tables)
const BasicTypeCount = 3

func (b BasicType) String() string {
	switch b {
	case Empty:
		return "Empty"
	case Room:
		return "Room"
	case Hallway:
		return "Hallway"
	default:
		return "Unknown"
	}
}

// EnvironmentType is the ground material of a tile
type EnvironmentType int

const (
	Dirt EnvironmentType = iota
	Water
	Stone
	Grass
)

func (e EnvironmentType) String() string {
	switch e {
	case Dirt:
		return "Dirt"
	case Water:
		return "Water"
	case Stone:
		return "Stone"
	case Grass:
		return "Grass"
	default:
		return "Unknown"
	}
}

// ParseEnvironmentType returns the environment type with the given name
func ParseEnvironmentType(name string) (EnvironmentType, error) {
	for _, e := range []EnvironmentType{Dirt, Water, Stone, Grass} {
		if e.String() == name {
			return e, nil
		}
	}
	return Dirt, fmt.Errorf("unknown environment type %q", name)
}

// DecorType is an optional decoration placed on top of a tile
type DecorType int

const (
	DecorNone DecorType = iota
	DecorBridge
	DecorPebbles
	DecorGrass
)

func (d DecorType) String() string {
	switch d {
	case DecorNone:
		return "None"
	case DecorBridge:
		return "Bridge"
	case DecorPebbles:
		return "Pebbles"
	case DecorGrass:
		return "Grass"
	default:
		return "Unknown"
	}
}

// Wall is the geometry on one side of a tile. WallNone means no geometry.
type Wall int

const (
	WallNone Wall = iota
	WallBasic
	DoorwayFull
	DoorwayLeft
	DoorwayMiddle
	DoorwayRight
)

func (w Wall) String() string {
	switch w {
	case WallNone:
		return "None"
	case WallBasic:
		return "Wall"
	case DoorwayFull:
		return "DoorwayFull"
	case DoorwayLeft:
		return "DoorwayLeft"
	case DoorwayMiddle:
		return "DoorwayMiddle"
	case DoorwayRight:
		return "DoorwayRight"
	default:
		return "Unknown"
	}
}

// IsEmpty returns true if the wall carries no geometry
func (w Wall) IsEmpty() bool {
	return w == WallNone
}

// IsDoorway returns true for any of the doorway variants
func (w Wall) IsDoorway() bool {
	return w >= DoorwayFull && w <= DoorwayRight
}

// Index is a tile position on the grid
type Index struct {
	Row int
	Col int
}

// Step returns the index one tile away in the given direction
func (i Index) Step(dir Direction) Index {
	dr, dc := dir.Delta()
	return Index{Row: i.Row + dr, Col: i.Col + dc}
}

func (i Index) String() string {
	return fmt.Sprintf("%d:%d", i.Row, i.Col)
}

// Tile is a single grid cell.
// Its index is fixed at construction and its basic type leaves Empty at most once.
type Tile struct {
	index     Index
	basicType BasicType

	Environment EnvironmentType
	Decor       DecorType

	// Walls is indexed by Direction
	Walls [DirectionCount]Wall

	// RoomID is the owning room for Room tiles, -1 otherwise
	RoomID int
}

// NewTile creates an Empty, Dirt tile at the given index
func NewTile(index Index) *Tile {
	return &Tile{
		index:  index,
		RoomID: -1,
	}
}

// Index returns the tile's grid index
func (t *Tile) Index() Index {
	return t.index
}

// BasicType returns the tile's structural kind
func (t *Tile) BasicType() BasicType {
	if t == nil {
		return Empty
	}
	return t.basicType
}

// SetBasicType moves the tile out of Empty. Returns false if the tile was
// already assigned or if bt is Empty.
func (t *Tile) SetBasicType(bt BasicType) bool {
	if t == nil || t.basicType != Empty || bt == Empty {
		return false
	}
	t.basicType = bt
	return true
}

// IsRoom returns true for Room tiles
func (t *Tile) IsRoom() bool {
	return t.BasicType() == Room
}

// IsHallway returns true for Hallway tiles
func (t *Tile) IsHallway() bool {
	return t.BasicType() == Hallway
}

// IsWater returns true if the tile exists and its environment is Water
func (t *Tile) IsWater() bool {
	return t != nil && t.Environment == Water
}

// IsBridge returns true if the tile exists and carries a bridge
func (t *Tile) IsBridge() bool {
	return t != nil && t.Decor == DecorBridge
}
