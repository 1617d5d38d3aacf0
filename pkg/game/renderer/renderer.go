package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// Icon constants, one per map cell
const (
	IconVoid    = " "
	IconWall    = "▒"
	IconFloor   = "·"
	IconHallway = "░"
	IconDoorway = "▫"
	IconWater   = "≈"
	IconBridge  = "="
	IconStone   = "▪"
	IconGrass   = ","
	IconPebbles = "∘"
)

// dynamicGet looks up translation keys that arrive through markup
var dynamicGet = gotext.Get

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([a-z A-Z0-9_,:.%]+)}`)

// Cell is one rendered map position
type Cell struct {
	Icon  string
	Style TextStyle
}

// Layout turns a row-major grid snapshot into rows of cells
func Layout(states []world.TileState, rows, cols int) [][]Cell {
	out := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = cellAt(states, rows, cols, r, c)
		}
	}
	return out
}

func cellAt(states []world.TileState, rows, cols, row, col int) Cell {
	s := states[row*cols+col]

	switch s.Basic {
	case world.Empty:
		if facesWall(states, rows, cols, row, col) {
			return Cell{IconWall, StyleWall}
		}
		return Cell{IconVoid, StyleNormal}

	case world.Hallway:
		for _, w := range s.Walls {
			if w.IsDoorway() {
				return Cell{IconDoorway, StyleDoorway}
			}
		}
		return Cell{IconHallway, StyleHallway}
	}

	switch {
	case s.Decor == world.DecorBridge:
		return Cell{IconBridge, StyleBridge}
	case s.Environment == world.Water:
		return Cell{IconWater, StyleWater}
	case s.Decor == world.DecorPebbles:
		return Cell{IconPebbles, StylePebbles}
	case s.Decor == world.DecorGrass, s.Environment == world.Grass:
		return Cell{IconGrass, StyleGrass}
	case s.Environment == world.Stone:
		return Cell{IconStone, StyleStone}
	default:
		return Cell{IconFloor, StyleFloor}
	}
}

// facesWall returns true if a neighbour has a basic wall on the side facing row:col
func facesWall(states []world.TileState, rows, cols, row, col int) bool {
	for _, d := range world.AllDirections() {
		dr, dc := d.Delta()
		r, c := row+dr, col+dc
		if r < 0 || r >= rows || c < 0 || c >= cols {
			continue
		}
		if states[r*cols+c].Walls[d.Opposite()] == world.WallBasic {
			return true
		}
	}
	return false
}

// LegendEntry explains one icon
type LegendEntry struct {
	Icon  string
	Style TextStyle
	Label string
}

// Legend returns the translated map legend
func Legend() []LegendEntry {
	return []LegendEntry{
		{IconWall, StyleWall, gotext.Get("LEGEND_WALL")},
		{IconFloor, StyleFloor, gotext.Get("LEGEND_FLOOR")},
		{IconHallway, StyleHallway, gotext.Get("LEGEND_HALLWAY")},
		{IconDoorway, StyleDoorway, gotext.Get("LEGEND_DOORWAY")},
		{IconWater, StyleWater, gotext.Get("LEGEND_WATER")},
		{IconBridge, StyleBridge, gotext.Get("LEGEND_BRIDGE")},
		{IconStone, StyleStone, gotext.Get("LEGEND_STONE")},
		{IconGrass, StyleGrass, gotext.Get("LEGEND_GRASS")},
		{IconPebbles, StylePebbles, gotext.Get("LEGEND_PEBBLES")},
	}
}

// Summary returns the translated summary lines for d
func Summary(d *generator.Dungeon) []string {
	s := d.Stats()
	return []string{
		fmt.Sprintf(gotext.Get("SEED"), d.Seed),
		fmt.Sprintf(gotext.Get("SIZE"), d.Grid.Rows(), d.Grid.Cols()),
		fmt.Sprintf(gotext.Get("SUMMARY_ROOMS"), s.Rooms, s.RoomTiles),
		fmt.Sprintf(gotext.Get("SUMMARY_HALLWAYS"), s.Hallways, s.HallwayTiles, s.FailedHallways),
		fmt.Sprintf(gotext.Get("SUMMARY_RIVERS"), s.Rivers, s.WaterTiles, s.BridgeTiles),
	}
}

// FormatMarkup formats msg and expands markup such as GT{KEY} (translate),
// HEAD{text} and SUBTLE{text} using style
func FormatMarkup(style func(string, TextStyle) string, msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function, operand := match[1], match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "HEAD":
			val = style(dynamicGet(operand), StyleHeading)
		case "SUBTLE":
			val = style(operand, StyleSubtle)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// Write renders d through r: map, legend and summary. The map is cropped to
// maxRows x maxCols when either is positive.
func Write(w io.Writer, r Renderer, d *generator.Dungeon, maxRows, maxCols int) error {
	rows, cols := d.Grid.Rows(), d.Grid.Cols()
	showRows, showCols := rows, cols
	if maxRows > 0 && maxRows < showRows {
		showRows = maxRows
	}
	if maxCols > 0 && maxCols < showCols {
		showCols = maxCols
	}

	var b strings.Builder
	cells := Layout(d.Grid.Snapshot(), rows, cols)
	for _, line := range cells[:showRows] {
		for _, c := range line[:showCols] {
			b.WriteString(r.StyleText(c.Icon, c.Style))
		}
		b.WriteByte('\n')
	}
	if showRows < rows || showCols < cols {
		b.WriteString(r.StyleText(fmt.Sprintf(gotext.Get("CROPPED"), showRows, showCols), StyleSubtle))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(r.FormatText("HEAD{LEGEND}"))
	b.WriteByte('\n')
	for _, e := range Legend() {
		fmt.Fprintf(&b, "  %s %s\n", r.StyleText(e.Icon, e.Style), e.Label)
	}

	b.WriteByte('\n')
	for _, line := range Summary(d) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Plain renders without colour, for files and pipes
type Plain struct{}

// Init does nothing
func (Plain) Init() {}

// StyleText returns text unchanged
func (Plain) StyleText(text string, _ TextStyle) string {
	return text
}

// FormatText expands markup without colour
func (p Plain) FormatText(msg string, args ...any) string {
	return FormatMarkup(p.StyleText, msg, args...)
}

// RenderDungeon writes the full, uncropped dungeon
func (p Plain) RenderDungeon(w io.Writer, d *generator.Dungeon) error {
	return Write(w, p, d, 0, 0)
}
