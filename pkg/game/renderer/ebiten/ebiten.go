package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/game/renderer"
)

// Viewer steps through recorded generation frames in a window
type Viewer struct {
	frames  []renderer.Frame
	current int

	rows, cols int
	tileSize   int
}

// New creates a viewer over frames. It starts on the last frame.
func New(frames []renderer.Frame) *Viewer {
	v := &Viewer{
		frames:   frames,
		tileSize: defaultTileSize,
	}
	if len(frames) > 0 {
		v.current = len(frames) - 1
		v.rows = len(frames[0].Cells)
		if v.rows > 0 {
			v.cols = len(frames[0].Cells[0])
		}
	}
	return v
}

// Update handles input. Left/right step between stages, +/- zoom and
// Q or Escape closes the window.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && v.current < len(v.frames)-1 {
		v.current++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && v.current > 0 {
		v.current--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		v.current = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) && len(v.frames) > 0 {
		v.current = len(v.frames) - 1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && v.tileSize < maxTileSize {
		v.tileSize += tileSizeStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && v.tileSize > minTileSize {
		v.tileSize -= tileSizeStep
	}

	return nil
}

// Draw renders the current frame
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if len(v.frames) == 0 {
		return
	}

	frame := v.frames[v.current]
	size := float32(v.tileSize)
	vector.DrawFilledRect(screen, 0, headerHeight, size*float32(v.cols), size*float32(v.rows), colorMapBackground, false)

	for r, line := range frame.Cells {
		for c, cell := range line {
			clr, ok := tileColors[cell.Style]
			if !ok {
				continue
			}
			x := float32(c) * size
			y := headerHeight + float32(r)*size
			vector.DrawFilledRect(screen, x, y, size, size, clr, false)
		}
	}

	help := fmt.Sprintf(gotext.Get("VIEWER_HELP"), v.current+1, len(v.frames), frame.Stage)
	ebitenutil.DebugPrintAt(screen, help, 4, 2)
}

// Layout returns the logical screen size, which follows the map and zoom
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := v.cols * v.tileSize
	h := v.rows*v.tileSize + headerHeight
	if w < 320 {
		w = 320
	}
	return w, h
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run() error {
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gotext.Get("VIEWER_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
