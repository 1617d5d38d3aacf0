// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// dumpSymbols maps map styles to the single ASCII character used in dumps
var dumpSymbols = map[renderer.TextStyle]rune{
	renderer.StyleNormal:  ' ',
	renderer.StyleWall:    '#',
	renderer.StyleFloor:   '.',
	renderer.StyleHallway: 'h',
	renderer.StyleDoorway: 'D',
	renderer.StyleWater:   '~',
	renderer.StyleBridge:  '=',
	renderer.StyleStone:   's',
	renderer.StyleGrass:   '"',
	renderer.StylePebbles: 'o',
}

// symbol returns the ASCII character for a rendered cell
func symbol(c renderer.Cell) rune {
	if r, ok := dumpSymbols[c.Style]; ok {
		return r
	}
	return '?'
}

// wallSymbol returns a one-character code for a wall
func wallSymbol(w world.Wall) byte {
	switch w {
	case world.WallBasic:
		return 'W'
	case world.DoorwayFull:
		return 'F'
	case world.DoorwayLeft:
		return 'L'
	case world.DoorwayMiddle:
		return 'M'
	case world.DoorwayRight:
		return 'R'
	default:
		return '-'
	}
}

// DumpMap writes a full debug dump of d to path and returns the absolute
// path: metadata, legend, map, rooms, spanning tree, hallways and doorways.
func DumpMap(path string, d *generator.Dungeon) (string, error) {
	if d == nil || d.Grid == nil {
		return "", fmt.Errorf("no dungeon")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, d); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", absPath, err)
	}
	return absPath, f.Close()
}

// dumpWriter remembers the first write error so the dump reads top to bottom
type dumpWriter struct {
	w   io.Writer
	err error
}

func (dw *dumpWriter) printf(format string, a ...any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, a...)
}

// WriteDump writes the debug dump of d to w
func WriteDump(w io.Writer, d *generator.Dungeon) error {
	out := &dumpWriter{w: w}
	rows, cols := d.Grid.Rows(), d.Grid.Cols()
	stats := d.Stats()

	// --- Metadata ---
	out.printf("=== DUNGEON DUMP (layout, connections, environment) ===\n\n")
	out.printf("--- Metadata ---\n")
	out.printf("seed: %d\n", d.Seed)
	out.printf("grid_rows: %d\n", rows)
	out.printf("grid_cols: %d\n", cols)
	out.printf("coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	out.printf("rooms: %d\n", stats.Rooms)
	out.printf("room_tiles: %d\n", stats.RoomTiles)
	out.printf("hallways: %d\n", stats.Hallways)
	out.printf("hallway_tiles: %d\n", stats.HallwayTiles)
	out.printf("failed_hallways: %d\n", stats.FailedHallways)
	triangles := 0
	if !d.Triangulation.IsEmpty() {
		triangles = len(d.Triangulation.Triangles)
	}
	out.printf("triangles: %d\n", triangles)
	out.printf("rivers: %d\n", stats.Rivers)
	out.printf("water_tiles: %d\n", stats.WaterTiles)
	out.printf("bridge_tiles: %d\n", stats.BridgeTiles)
	out.printf("bridges_demoted: %d\n\n", d.BridgesDemoted)

	// --- Legend ---
	out.printf("--- Legend (tile symbols) ---\n")
	out.printf("# = wall  . = room floor  h = hallway  D = hallway with doorway  ~ = water  = = bridge  s = stone  \" = grass  o = pebbles\n")
	out.printf("walls: E N W S order, W = wall  F/L/M/R = doorway full/left/middle/right  - = none\n\n")

	// --- Map ---
	out.printf("--- Map ---\n")
	for _, line := range renderer.Layout(d.Grid.Snapshot(), rows, cols) {
		row := make([]rune, len(line))
		for i, c := range line {
			row[i] = symbol(c)
		}
		out.printf("%s\n", string(row))
	}
	out.printf("\n")

	// --- Rooms ---
	out.printf("--- Rooms (id: row,col size) ---\n")
	for _, r := range d.Rooms {
		b := r.Bounds
		out.printf("%d: %d,%d %dx%d center=%s tiles=%d\n", r.ID, b.Row, b.Col, b.Height, b.Width, r.CenterIndex(), len(r.Tiles))
	}
	out.printf("\n")

	// --- Spanning tree ---
	out.printf("--- Spanning tree (x,y room centres) ---\n")
	for _, e := range d.SpanningTree {
		out.printf("%.1f,%.1f -> %.1f,%.1f\n", e.A.X, e.A.Y, e.B.X, e.B.Y)
	}
	out.printf("\n")

	// --- Hallways ---
	out.printf("--- Hallways (from -> to) ---\n")
	for _, h := range d.Hallways {
		out.printf("%d -> %d: path=%d carved=%d\n", h.From.ID, h.To.ID, len(h.Path), h.Carved)
	}
	out.printf("\n")

	// --- Doorways ---
	out.printf("--- Doorways (row,col walls) ---\n")
	d.Grid.ForEachTile(func(t *world.Tile) {
		if !t.IsHallway() {
			return
		}
		walls := make([]byte, 0, world.DirectionCount)
		hasDoorway := false
		for _, w := range t.Walls {
			walls = append(walls, wallSymbol(w))
			hasDoorway = hasDoorway || w.IsDoorway()
		}
		if hasDoorway {
			out.printf("%s %s\n", t.Index(), walls)
		}
	})

	return out.err
}
