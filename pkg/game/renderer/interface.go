package renderer

import (
	"io"

	"dungeongen/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleHallway
	StyleWall
	StyleDoorway
	StyleWater
	StyleBridge
	StyleStone
	StyleGrass
	StylePebbles
	StyleSubtle
	StyleHeading
)

// Renderer draws a generated dungeon as text
// Implementations include the coloured terminal renderer and Plain.
type Renderer interface {
	// Init prepares styles
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// RenderDungeon writes the map, legend and summary of d to w
	RenderDungeon(w io.Writer, d *generator.Dungeon) error
}
