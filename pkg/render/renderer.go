// pkg/render/renderer.go
package render

import (
	"context"
	"image/color"

	"github.com/opd-ai/centered-triangle/pkg/logging"
	"github.com/opd-ai/centered-triangle/pkg/physics"
)

// Viewport is the size of the drawable surface for one frame, in window units.
type Viewport struct {
	Width  float64
	Height float64
}

// Renderer receives the draw calls of one frame: Clear, any number of
// FillTriangle calls, then Present.
type Renderer interface {
	Clear(viewport Viewport, background color.Color)
	FillTriangle(vertices [3]physics.Vector2D, fill color.Color)
	Present()
}

// NullRenderer draws nothing and logs each call at debug level.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear(viewport Viewport, background color.Color) {
	d.logger.Debug(context.Background(), "Clear called",
		"width", viewport.Width,
		"height", viewport.Height,
	)
}

// FillTriangle implements Renderer.
func (d *NullRenderer) FillTriangle(vertices [3]physics.Vector2D, fill color.Color) {
	d.logger.Debug(context.Background(), "FillTriangle called",
		"x0", vertices[0].X, "y0", vertices[0].Y,
		"x1", vertices[1].X, "y1", vertices[1].Y,
		"x2", vertices[2].X, "y2", vertices[2].Y,
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// Op names a recorded draw call.
type Op string

const (
	OpClear        Op = "clear"
	OpFillTriangle Op = "fill_triangle"
	OpPresent      Op = "present"
)

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op       Op
	Viewport Viewport
	Vertices [3]physics.Vector2D
	Color    color.Color
}

// Recorder keeps every draw call it receives, for tests and headless runs.
type Recorder struct {
	Commands []Command
	Frames   int
}

// Clear implements Renderer.
func (r *Recorder) Clear(viewport Viewport, background color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Viewport: viewport, Color: background})
}

// FillTriangle implements Renderer.
func (r *Recorder) FillTriangle(vertices [3]physics.Vector2D, fill color.Color) {
	r.Commands = append(r.Commands, Command{Op: OpFillTriangle, Vertices: vertices, Color: fill})
}

// Present implements Renderer.
func (r *Recorder) Present() {
	r.Commands = append(r.Commands, Command{Op: OpPresent})
	r.Frames++
}

// LastTriangle returns the most recent FillTriangle command.
func (r *Recorder) LastTriangle() (Command, bool) {
	for i := len(r.Commands) - 1; i >= 0; i-- {
		if r.Commands[i].Op == OpFillTriangle {
			return r.Commands[i], true
		}
	}
	return Command{}, false
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Commands = nil
	r.Frames = 0
}
