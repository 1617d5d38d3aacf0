package tui

import (
	"io"
	"os"
	"os/exec"

	"github.com/gookit/color"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// ReservedRows is the number of terminal lines kept free below the map
// for the legend and summary
const ReservedRows = 18

// TUIRenderer is the coloured terminal renderer
type TUIRenderer struct {
	colorFloor   color.Style
	colorHallway color.Style
	colorWall    color.Style
	colorDoorway color.Style
	colorWater   color.Style
	colorBridge  color.Style
	colorStone   color.Style
	colorGrass   color.Style
	colorPebbles color.Style
	colorSubtle  color.Style
	colorHeading color.Style

	// Crop limits the map to the terminal when set
	Crop bool
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{Crop: true}
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorFloor = color.Style{color.FgGray}
	t.colorHallway = color.Style{color.FgCyan}
	t.colorWall = color.Style{color.FgWhite}
	t.colorDoorway = color.Style{color.FgYellow, color.OpBold}
	t.colorWater = color.Style{color.FgBlue, color.OpBold}
	t.colorBridge = color.Style{color.FgYellow} // brown/dark yellow planks
	t.colorStone = color.Style{color.FgWhite, color.OpBold}
	t.colorGrass = color.Style{color.FgGreen}
	t.colorPebbles = color.Style{color.FgGray, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleHallway:
		return t.colorHallway.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleDoorway:
		return t.colorDoorway.Sprint(text)
	case renderer.StyleWater:
		return t.colorWater.Sprint(text)
	case renderer.StyleBridge:
		return t.colorBridge.Sprint(text)
	case renderer.StyleStone:
		return t.colorStone.Sprint(text)
	case renderer.StyleGrass:
		return t.colorGrass.Sprint(text)
	case renderer.StylePebbles:
		return t.colorPebbles.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatMarkup(t.StyleText, msg, args...)
}

// RenderDungeon writes the coloured map, cropped to the terminal when Crop is set
func (t *TUIRenderer) RenderDungeon(w io.Writer, d *generator.Dungeon) error {
	rows, cols := 0, 0
	if t.Crop {
		rows, cols = terminal.MapArea(ReservedRows)
	}
	return renderer.Write(w, t, d, rows, cols)
}
