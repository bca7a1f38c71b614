// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/centered-triangle/pkg/physics"
)

const (
	// HalfExtent is half the side of the triangle's 50x50 bounding box.
	HalfExtent = 25.0

	// DefaultSpeed is the translation speed in units per second.
	DefaultSpeed = 200.0
)

// Shape is the triangle in local coordinates, apex up, centred on the origin.
var Shape = [3]physics.Vector2D{
	{X: 0, Y: -HalfExtent},
	{X: -HalfExtent, Y: HalfExtent},
	{X: HalfExtent, Y: HalfExtent},
}

// Bounds is the cached size of the drawable surface.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the middle of the surface in screen coordinates.
func (b Bounds) Center() physics.Vector2D {
	return physics.Vector2D{X: b.Width / 2, Y: b.Height / 2}
}

// Limits returns the largest |x| and |y| a centred entity with the given
// half extent may reach while staying fully inside the bounds.
func (b Bounds) Limits(halfExtent float64) (maxX, maxY float64) {
	return b.Width/2 - halfExtent, b.Height/2 - halfExtent
}

// Contains reports whether p is inside the clamp range for halfExtent.
func (b Bounds) Contains(p physics.Vector2D, halfExtent float64) bool {
	maxX, maxY := b.Limits(halfExtent)
	return p.X >= -maxX && p.X <= maxX && p.Y >= -maxY && p.Y <= maxY
}

// Entity is the moving, rotating triangle.
type Entity struct {
	// Position is the offset from the window centre.
	Position physics.Vector2D
	// Rotation is in degrees and accumulates without wraparound.
	Rotation   float64
	Speed      float64
	HalfExtent float64
}

// New creates an entity at the window centre with no rotation.
func New(speed float64) *Entity {
	return &Entity{
		Speed:      speed,
		HalfExtent: HalfExtent,
	}
}

// Vertices returns the triangle's corners in screen coordinates: each
// vertex of Shape is rotated by Rotation, then moved to the centre of
// bounds offset by Position.
func (e *Entity) Vertices(bounds Bounds) [3]physics.Vector2D {
	origin := bounds.Center().Add(e.Position)

	var out [3]physics.Vector2D
	for i, v := range Shape {
		out[i] = v.RotateDeg(e.Rotation).Add(origin)
	}
	return out
}
