package renderer

import (
	"dungeongen/pkg/game/generator"
)

// Frame is the laid out map after one pipeline stage
type Frame struct {
	Stage generator.Stage
	Cells [][]Cell
}

// Recorder captures a frame after every stage. Pass its Step method to
// generator.WithStepFunc.
type Recorder struct {
	frames []Frame
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Step records the dungeon as it stands after stage
func (r *Recorder) Step(stage generator.Stage, d *generator.Dungeon) {
	grid := d.Grid
	r.frames = append(r.frames, Frame{
		Stage: stage,
		Cells: Layout(grid.Snapshot(), grid.Rows(), grid.Cols()),
	})
}

// Frames returns the recorded frames in stage order
func (r *Recorder) Frames() []Frame {
	return r.frames
}
