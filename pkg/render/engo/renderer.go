// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/centered-triangle/pkg/physics"
	"github.com/opd-ai/centered-triangle/pkg/render"
)

// triangleEntity is the single drawable the renderer manages
type triangleEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements render.Renderer on top of Engo's RenderSystem.
// The triangle's buffer is built once from the local shape; each frame
// only moves and rotates the space component, so the vertices passed to
// FillTriangle must be a rigid transform of that shape.
type EngoRenderer struct {
	shape    [3]physics.Vector2D
	boxMin   physics.Vector2D
	triangle *triangleEntity
}

var _ render.Renderer = (*EngoRenderer)(nil)

// NewEngoRenderer creates a renderer for triangles congruent to shape.
func NewEngoRenderer(shape [3]physics.Vector2D) *EngoRenderer {
	boxMin, boxMax := boundingBox(shape)
	width := boxMax.X - boxMin.X
	height := boxMax.Y - boxMin.Y

	points := make([]engo.Point, 0, len(shape))
	for _, v := range shape {
		points = append(points, engo.Point{
			X: float32((v.X - boxMin.X) / width),
			Y: float32((v.Y - boxMin.Y) / height),
		})
	}

	triangle := &triangleEntity{BasicEntity: ecs.NewBasic()}
	triangle.RenderComponent = common.RenderComponent{
		Drawable: common.ComplexTriangles{Points: points},
		Color:    color.White,
	}
	triangle.SpaceComponent = common.SpaceComponent{
		Width:  float32(width),
		Height: float32(height),
	}

	return &EngoRenderer{
		shape:    shape,
		boxMin:   boxMin,
		triangle: triangle,
	}
}

// Attach registers the triangle with every RenderSystem in world.
func (r *EngoRenderer) Attach(world *ecs.World) {
	for _, system := range world.Systems() {
		switch sys := system.(type) {
		case *common.RenderSystem:
			sys.Add(&r.triangle.BasicEntity, &r.triangle.RenderComponent, &r.triangle.SpaceComponent)
		}
	}
}

// Clear implements render.Renderer. Engo clears the frame itself; only the
// background colour is set here.
func (r *EngoRenderer) Clear(_ render.Viewport, background color.Color) {
	common.SetBackground(background)
}

// FillTriangle implements render.Renderer
func (r *EngoRenderer) FillTriangle(vertices [3]physics.Vector2D, fill color.Color) {
	position, rotation := placement(r.shape, r.boxMin, vertices)
	r.triangle.SpaceComponent.Position = engo.Point{X: float32(position.X), Y: float32(position.Y)}
	r.triangle.SpaceComponent.Rotation = float32(rotation)
	r.triangle.RenderComponent.Color = fill
	r.triangle.RenderComponent.Hidden = false
}

// Present implements render.Renderer. Engo's RenderSystem draws after all
// other systems have updated.
func (r *EngoRenderer) Present() {}

// Hide stops drawing the triangle.
func (r *EngoRenderer) Hide() {
	r.triangle.RenderComponent.Hidden = true
}

// placement recovers the space component's top-left position and rotation
// (degrees) that map shape onto vertices. Rotation is taken from the edge
// between the second and third vertices.
func placement(shape [3]physics.Vector2D, boxMin physics.Vector2D, vertices [3]physics.Vector2D) (physics.Vector2D, float64) {
	localEdge := shape[2].Sub(shape[1])
	worldEdge := vertices[2].Sub(vertices[1])
	rad := math.Atan2(worldEdge.Y, worldEdge.X) - math.Atan2(localEdge.Y, localEdge.X)

	// vertices[0] = origin + R*shape[0]
	origin := vertices[0].Sub(shape[0].Rotate(rad))
	position := origin.Add(boxMin.Rotate(rad))
	return position, rad * 180 / math.Pi
}

func boundingBox(points [3]physics.Vector2D) (minV, maxV physics.Vector2D) {
	minV, maxV = points[0], points[0]
	for _, p := range points[1:] {
		minV.X = math.Min(minV.X, p.X)
		minV.Y = math.Min(minV.Y, p.Y)
		maxV.X = math.Max(maxV.X, p.X)
		maxV.Y = math.Max(maxV.Y, p.Y)
	}
	return minV, maxV
}
