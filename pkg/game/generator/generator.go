// Package generator runs the dungeon pipeline: rooms, triangulation,
// spanning tree, hallways, walls, environment, rivers and decor.
package generator

import (
	"fmt"

	"dungeongen/pkg/engine/delaunay"
	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/decor"
)

// Logger receives progress and recoverable failures
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Stage identifies a step of the pipeline
type Stage int

const (
	StageRooms Stage = iota
	StageTriangulation
	StageSpanningTree
	StageHallways
	StageWalls
	StageEnvironment
	StageRivers
	StageDecor
)

// StageCount is the number of pipeline stages
const StageCount = 8

func (s Stage) String() string {
	switch s {
	case StageRooms:
		return "rooms"
	case StageTriangulation:
		return "triangulation"
	case StageSpanningTree:
		return "spanning tree"
	case StageHallways:
		return "hallways"
	case StageWalls:
		return "walls"
	case StageEnvironment:
		return "environment"
	case StageRivers:
		return "rivers"
	case StageDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// StepFunc is called after each stage with the dungeon built so far
type StepFunc func(stage Stage, d *Dungeon)

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStepFunc registers a hook run after every stage
func WithStepFunc(fn StepFunc) Option {
	return func(g *Generator) {
		g.step = fn
	}
}

// Generator owns the grid and pathfinder reused by every run. A Dungeon
// returned by Generate shares the grid and is only valid until the next run.
type Generator struct {
	settings   config.Settings
	logger     Logger
	step       StepFunc
	grid       *world.Grid
	pathfinder *pathfind.Pathfinder
}

// New validates settings and creates a generator
func New(settings config.Settings, opts ...Option) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create generator: %w", err)
	}

	g := &Generator{
		settings: settings,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.grid = world.NewGrid(settings.Rows, settings.Cols)
	g.pathfinder = pathfind.New(g.grid, settings.Pathfinding.Options())

	return g, nil
}

// Settings returns the generator's settings
func (g *Generator) Settings() config.Settings {
	return g.settings
}

// Generate runs the pipeline with the configured seed
func (g *Generator) Generate() *Dungeon {
	return g.GenerateSeed(g.settings.Seed)
}

// GenerateSeed runs the full pipeline with the given seed (0 picks one).
// The grid and pathfinder are reset first.
func (g *Generator) GenerateSeed(seed int64) *Dungeon {
	rng := world.NewRNG(seed)
	s := g.settings

	g.grid.Build(s.Rows, s.Cols)
	g.pathfinder.Resize()

	d := &Dungeon{Seed: rng.Seed(), Grid: g.grid}
	g.logger.Printf("generating %dx%d dungeon with seed %d", s.Rows, s.Cols, d.Seed)

	d.Rooms = PlaceRooms(g.grid, rng, s.Rooms)
	if len(d.Rooms) < s.Rooms.Count {
		g.logger.Printf("placed %d of %d rooms", len(d.Rooms), s.Rooms.Count)
	}
	g.emit(StageRooms, d)

	d.Triangulation = TriangulateRooms(d.Rooms)
	if d.Triangulation.IsEmpty() && len(d.Rooms) > 2 {
		g.logger.Printf("triangulation of %d rooms is degenerate", len(d.Rooms))
	}
	g.emit(StageTriangulation, d)

	d.SpanningTree = SpanningTree(CandidateEdges(d.Rooms, d.Triangulation), rng)
	g.emit(StageSpanningTree, d)

	d.Hallways, d.FailedHallways = CarveHallways(g.grid, g.pathfinder, d.Rooms, d.SpanningTree)
	if d.FailedHallways > 0 {
		g.logger.Printf("%d hallways could not be routed", d.FailedHallways)
	}
	g.emit(StageHallways, d)

	DeriveWalls(g.grid)
	g.emit(StageWalls, d)

	engine := decor.New(g.grid, rng, s)
	for _, room := range d.Rooms {
		engine.SeedEnvironment(room.Tiles)
	}
	g.emit(StageEnvironment, d)

	d.Rivers = engine.GenerateRivers()
	// the second call finds nothing to demote; it guards the fixed point
	d.BridgesDemoted = engine.CleanupBridges()
	d.BridgesDemoted += engine.CleanupBridges()
	g.emit(StageRivers, d)

	for _, room := range d.Rooms {
		engine.PlaceDecor(room.Tiles)
	}
	g.emit(StageDecor, d)

	g.logger.Printf("done: %s", d.Stats())
	return d
}

func (g *Generator) emit(stage Stage, d *Dungeon) {
	if g.step != nil {
		g.step(stage, d)
	}
}

// Dungeon is the result of one generation run
type Dungeon struct {
	Seed int64
	Grid *world.Grid

	Rooms          []*Room
	Triangulation  *delaunay.Triangulation
	SpanningTree   []geom.Edge
	Hallways       []Hallway
	FailedHallways int

	Rivers         int
	BridgesDemoted int
}

// Stats summarises a dungeon
type Stats struct {
	Rooms          int
	RoomTiles      int
	Hallways       int
	HallwayTiles   int
	FailedHallways int
	Rivers         int
	WaterTiles     int
	BridgeTiles    int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d rooms (%d tiles), %d hallways (%d tiles, %d failed), %d rivers (%d water, %d bridges)",
		s.Rooms, s.RoomTiles, s.Hallways, s.HallwayTiles, s.FailedHallways, s.Rivers, s.WaterTiles, s.BridgeTiles)
}

// Stats counts the dungeon's rooms, hallways and water
func (d *Dungeon) Stats() Stats {
	s := Stats{
		Rooms:          len(d.Rooms),
		Hallways:       len(d.Hallways),
		FailedHallways: d.FailedHallways,
		Rivers:         d.Rivers,
	}
	d.Grid.ForEachTile(func(t *world.Tile) {
		switch t.BasicType() {
		case world.Room:
			s.RoomTiles++
		case world.Hallway:
			s.HallwayTiles++
		}
		if t.IsWater() {
			s.WaterTiles++
		}
		if t.IsBridge() {
			s.BridgeTiles++
		}
	})
	return s
}
