package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/opd-ai/centered-triangle/pkg/physics"
)

// FillRune is drawn in cells covered by a triangle.
const FillRune = '█'

// Cell is one character cell of a terminal frame.
type Cell struct {
	Rune rune
	Fg   color.Color
	Bg   color.Color
}

// Sink receives a finished terminal frame.
type Sink interface {
	SetCell(x, y int, cell Cell)
	Show()
}

// TerminalRenderer rasterises triangles into a grid of character cells.
// Each cell covers cellWidth x cellHeight window units and is filled when
// its centre lies inside a triangle.
type TerminalRenderer struct {
	width      int
	height     int
	buffer     [][]Cell
	cellWidth  float64
	cellHeight float64
	background color.Color
	sink       Sink
}

// NewTerminalRenderer creates a terminal renderer that flushes to sink on
// Present. sink may be nil.
func NewTerminalRenderer(cellWidth, cellHeight float64, sink Sink) *TerminalRenderer {
	return &TerminalRenderer{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		background: color.Black,
		sink:       sink,
	}
}

// CellsFor returns how many columns and rows cover viewport.
func (r *TerminalRenderer) CellsFor(viewport Viewport) (cols, rows int) {
	cols = int(viewport.Width / r.cellWidth)
	rows = int(viewport.Height / r.cellHeight)
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

// Size returns the current buffer size in cells.
func (r *TerminalRenderer) Size() (cols, rows int) {
	return r.width, r.height
}

// Clear implements Renderer. The buffer is resized to the viewport.
func (r *TerminalRenderer) Clear(viewport Viewport, background color.Color) {
	cols, rows := r.CellsFor(viewport)
	if cols != r.width || rows != r.height {
		r.width, r.height = cols, rows
		r.buffer = make([][]Cell, rows)
		for i := range r.buffer {
			r.buffer[i] = make([]Cell, cols)
		}
	}

	r.background = background
	blank := Cell{Rune: ' ', Fg: background, Bg: background}
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = blank
		}
	}
}

// FillTriangle implements Renderer.
func (r *TerminalRenderer) FillTriangle(vertices [3]physics.Vector2D, fill color.Color) {
	a, b, c := vertices[0], vertices[1], vertices[2]

	minX := math.Min(a.X, math.Min(b.X, c.X))
	maxX := math.Max(a.X, math.Max(b.X, c.X))
	minY := math.Min(a.Y, math.Min(b.Y, c.Y))
	maxY := math.Max(a.Y, math.Max(b.Y, c.Y))

	x0 := clampInt(int(math.Floor(minX/r.cellWidth)), 0, r.width)
	x1 := clampInt(int(math.Ceil(maxX/r.cellWidth)), 0, r.width)
	y0 := clampInt(int(math.Floor(minY/r.cellHeight)), 0, r.height)
	y1 := clampInt(int(math.Ceil(maxY/r.cellHeight)), 0, r.height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			centre := physics.Vector2D{
				X: (float64(x) + 0.5) * r.cellWidth,
				Y: (float64(y) + 0.5) * r.cellHeight,
			}
			if physics.InTriangle(centre, a, b, c) {
				r.buffer[y][x] = Cell{Rune: FillRune, Fg: fill, Bg: r.background}
			}
		}
	}
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	if r.sink == nil {
		return
	}
	for y := range r.buffer {
		for x, cell := range r.buffer[y] {
			r.sink.SetCell(x, y, cell)
		}
	}
	r.sink.Show()
}

// CellAt returns the cell at column x, row y.
func (r *TerminalRenderer) CellAt(x, y int) (Cell, bool) {
	if y < 0 || y >= r.height || x < 0 || x >= r.width {
		return Cell{}, false
	}
	return r.buffer[y][x], true
}

// String renders the buffer as text, '#' for filled cells and '.' otherwise.
func (r *TerminalRenderer) String() string {
	var sb strings.Builder
	for _, row := range r.buffer {
		for _, cell := range row {
			if cell.Rune == FillRune {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
