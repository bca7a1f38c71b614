package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/opd-ai/centered-triangle/pkg/physics"
)

type recordingSink struct {
	cells map[[2]int]Cell
	shows int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{cells: make(map[[2]int]Cell)}
}

func (s *recordingSink) SetCell(x, y int, cell Cell) {
	s.cells[[2]int{x, y}] = cell
}

func (s *recordingSink) Show() {
	s.shows++
}

func TestTerminalRenderer_CellsFor(t *testing.T) {
	tests := []struct {
		name         string
		cellW, cellH float64
		viewport     Viewport
		cols, rows   int
	}{
		{"default_window", 8, 16, Viewport{Width: 500, Height: 350}, 62, 21},
		{"square_cells", 10, 10, Viewport{Width: 100, Height: 100}, 10, 10},
		{"empty_viewport", 8, 16, Viewport{}, 0, 0},
		{"negative_viewport", 8, 16, Viewport{Width: -80, Height: -16}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTerminalRenderer(tt.cellW, tt.cellH, nil)
			cols, rows := r.CellsFor(tt.viewport)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("CellsFor() = (%d, %d), want (%d, %d)", cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestTerminalRenderer_ClearResizesBuffer(t *testing.T) {
	r := NewTerminalRenderer(10, 10, nil)
	green := color.RGBA{G: 0xff, A: 0xff}

	r.Clear(Viewport{Width: 100, Height: 50}, green)
	if cols, rows := r.Size(); cols != 10 || rows != 5 {
		t.Fatalf("Size() = (%d, %d), want (10, 5)", cols, rows)
	}

	cell, ok := r.CellAt(9, 4)
	if !ok {
		t.Fatal("CellAt(9, 4) out of range")
	}
	if cell.Rune != ' ' || cell.Bg != green {
		t.Errorf("cleared cell = %+v, want blank green", cell)
	}

	r.Clear(Viewport{Width: 200, Height: 200}, green)
	if cols, rows := r.Size(); cols != 20 || rows != 20 {
		t.Errorf("Size() after resize = (%d, %d), want (20, 20)", cols, rows)
	}

	if _, ok := r.CellAt(20, 0); ok {
		t.Error("CellAt outside the buffer reported ok")
	}
}

func TestTerminalRenderer_FillTriangle(t *testing.T) {
	r := NewTerminalRenderer(10, 10, nil)
	red := color.RGBA{R: 0xff, A: 0xff}
	r.Clear(Viewport{Width: 100, Height: 100}, color.Black)
	r.FillTriangle(testTriangle, red)

	tests := []struct {
		name   string
		x, y   int
		filled bool
	}{
		{"interior", 4, 4, true},
		{"on_base_edge", 4, 7, true},
		{"base_left_vertex", 2, 7, true},
		{"base_right_vertex", 7, 7, true},
		{"beside_apex", 5, 2, false},
		{"left_of_slope", 2, 6, false},
		{"corner", 0, 0, false},
		{"below_base", 5, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, _ := r.CellAt(tt.x, tt.y)
			if filled := cell.Rune == FillRune; filled != tt.filled {
				t.Errorf("cell (%d,%d) filled = %v, want %v", tt.x, tt.y, filled, tt.filled)
			}
			if tt.filled && cell.Fg != red {
				t.Errorf("cell (%d,%d) fg = %v, want red", tt.x, tt.y, cell.Fg)
			}
		})
	}
}

func TestTerminalRenderer_FillTriangleOffscreenIsClipped(t *testing.T) {
	r := NewTerminalRenderer(10, 10, nil)
	r.Clear(Viewport{Width: 100, Height: 100}, color.Black)

	offscreen := [3]physics.Vector2D{
		{X: 500, Y: -300},
		{X: 450, Y: -200},
		{X: 550, Y: -200},
	}
	r.FillTriangle(offscreen, color.White)

	if strings.Contains(r.String(), "#") {
		t.Errorf("off-screen triangle drew cells:\n%s", r.String())
	}

	// partially visible triangle must not panic and must draw something
	partial := [3]physics.Vector2D{
		{X: 0, Y: -50},
		{X: -50, Y: 50},
		{X: 50, Y: 50},
	}
	r.FillTriangle(partial, color.White)
	if !strings.Contains(r.String(), "#") {
		t.Errorf("partially visible triangle drew nothing:\n%s", r.String())
	}
}

func TestTerminalRenderer_PresentFlushesToSink(t *testing.T) {
	sink := newRecordingSink()
	r := NewTerminalRenderer(10, 10, sink)

	r.Clear(Viewport{Width: 100, Height: 100}, color.Black)
	r.FillTriangle(testTriangle, color.White)
	r.Present()

	if sink.shows != 1 {
		t.Errorf("Show() called %d times, want 1", sink.shows)
	}
	if len(sink.cells) != 100 {
		t.Errorf("sink received %d cells, want 100", len(sink.cells))
	}
	if sink.cells[[2]int{4, 4}].Rune != FillRune {
		t.Error("interior cell was not flushed as filled")
	}
}

func TestTerminalRenderer_PresentWithoutSink(t *testing.T) {
	r := NewTerminalRenderer(10, 10, nil)
	r.Clear(Viewport{Width: 30, Height: 20}, color.Black)
	r.Present()

	if got := r.String(); got != "...\n...\n" {
		t.Errorf("String() = %q", got)
	}
}
