// pkg/render/ebiten/renderer.go
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/centered-triangle/pkg/physics"
	"github.com/opd-ai/centered-triangle/pkg/render"
)

// triangleIndices draws the three vertices as one triangle
var triangleIndices = []uint16{0, 1, 2}

// EbitenRenderer implements render.Renderer by drawing onto the screen
// image of the current frame. Game sets the target before each render.
type EbitenRenderer struct {
	target *ebiten.Image
	white  *ebiten.Image
	opts   ebiten.DrawTrianglesOptions
}

var _ render.Renderer = (*EbitenRenderer)(nil)

// NewEbitenRenderer creates a renderer with no target.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{
		opts: ebiten.DrawTrianglesOptions{AntiAlias: true},
	}
}

// SetTarget selects the image the next frame is drawn onto.
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Clear implements render.Renderer
func (r *EbitenRenderer) Clear(_ render.Viewport, background color.Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(background)
}

// FillTriangle implements render.Renderer
func (r *EbitenRenderer) FillTriangle(vertices [3]physics.Vector2D, fill color.Color) {
	if r.target == nil {
		return
	}
	if r.white == nil {
		// sampling the middle pixel of a 3x3 image avoids edge bleeding
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	r.target.DrawTriangles(triangleVertices(vertices, fill), triangleIndices, r.white, &r.opts)
}

// Present implements render.Renderer. Ebiten presents after Draw returns.
func (r *EbitenRenderer) Present() {}

// triangleVertices converts screen-space corners and a fill colour to
// Ebiten vertices sampling the single white source pixel.
func triangleVertices(vertices [3]physics.Vector2D, fill color.Color) []ebiten.Vertex {
	cr, cg, cb, ca := colorScale(fill)
	out := make([]ebiten.Vertex, 0, len(vertices))
	for _, v := range vertices {
		out = append(out, ebiten.Vertex{
			DstX:   float32(v.X),
			DstY:   float32(v.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	return out
}

// colorScale returns c as premultiplied components in [0, 1].
func colorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
