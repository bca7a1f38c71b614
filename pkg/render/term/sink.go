package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/centered-triangle/pkg/render"
)

// ScreenSink writes terminal frames to a tcell screen
type ScreenSink struct {
	screen tcell.Screen
}

var _ render.Sink = (*ScreenSink)(nil)

// NewScreenSink wraps screen.
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// SetCell implements render.Sink
func (s *ScreenSink) SetCell(x, y int, cell render.Cell) {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(cell.Fg)).
		Background(toTcellColor(cell.Bg))
	s.screen.SetContent(x, y, cell.Rune, nil, style)
}

// Show implements render.Sink
func (s *ScreenSink) Show() {
	s.screen.Show()
}

func toTcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
