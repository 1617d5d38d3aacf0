// Package ebiten provides an Ebiten window that replays the generation stages.
package ebiten

import (
	"image/color"

	"dungeongen/pkg/game/renderer"
)

// Color palette for the viewer
var (
	colorBackground    = color.RGBA{26, 26, 46, 255} // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255} // Darker for map area
)

// tileColors maps map styles to fill colours. Styles without an entry are
// left as map background.
var tileColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleFloor:   {100, 100, 120, 255}, // Medium gray
	renderer.StyleHallway: {160, 160, 180, 255}, // Lighter gray
	renderer.StyleWall:    {60, 60, 80, 255},
	renderer.StyleDoorway: {255, 255, 0, 255}, // Bright yellow
	renderer.StyleWater:   {60, 110, 230, 255},
	renderer.StyleBridge:  {200, 180, 100, 255}, // Tan/brown
	renderer.StyleStone:   {150, 150, 160, 255},
	renderer.StyleGrass:   {60, 170, 80, 255},
	renderer.StylePebbles: {120, 130, 180, 255}, // Soft blue-purple-gray
}

// Tile size constraints
const (
	minTileSize     = 4
	maxTileSize     = 48
	defaultTileSize = 12
	tileSizeStep    = 2
	headerHeight    = 20 // room for the debug print line
)
