package engine

import (
	"math"

	"github.com/opd-ai/centered-triangle/pkg/event"
	"github.com/opd-ai/centered-triangle/pkg/input"
)

// step applies one update. Keys are checked in a fixed order and each
// movement key clamps only in its own direction, so holding opposing keys
// gives two sequential clamps rather than cancelling out.
func (a *App) step(dt float64) {
	e := a.entity
	move := e.Speed * dt
	clamps := a.variant.Clamps()
	maxX, maxY := a.bounds.Limits(e.HalfExtent)

	// edges the entity already rests on; hitting them again is not news
	pinned := map[event.Edge]bool{
		event.EdgeTop:    e.Position.Y == -maxY,
		event.EdgeBottom: e.Position.Y == maxY,
		event.EdgeLeft:   e.Position.X == -maxX,
		event.EdgeRight:  e.Position.X == maxX,
	}
	var reached []event.Edge

	if a.held.Held(input.MoveUp) {
		y := e.Position.Y - move
		if clamps && y < -maxY {
			y = math.Max(y, -maxY)
			reached = append(reached, event.EdgeTop)
		}
		e.Position.Y = y
	}
	if a.held.Held(input.MoveDown) {
		y := e.Position.Y + move
		if clamps && y > maxY {
			y = math.Min(y, maxY)
			reached = append(reached, event.EdgeBottom)
		}
		e.Position.Y = y
	}
	if a.held.Held(input.MoveLeft) {
		x := e.Position.X - move
		if clamps && x < -maxX {
			x = math.Max(x, -maxX)
			reached = append(reached, event.EdgeLeft)
		}
		e.Position.X = x
	}
	if a.held.Held(input.MoveRight) {
		x := e.Position.X + move
		if clamps && x > maxX {
			x = math.Min(x, maxX)
			reached = append(reached, event.EdgeRight)
		}
		e.Position.X = x
	}

	if a.variant.Rotates() {
		turn := a.rotationSpeed * dt
		if a.held.Held(input.RotateLeft) {
			e.Rotation -= turn
		}
		if a.held.Held(input.RotateRight) {
			e.Rotation += turn
		}
		// reset wins over any rotation applied in the same frame
		if a.held.Held(input.ResetRotation) {
			if e.Rotation != 0 {
				a.bus.Publish(&event.BaseEvent{EventType: event.RotationReset, Source: a})
			}
			e.Rotation = 0
		}
	}

	for _, edge := range reached {
		if !pinned[edge] {
			a.logger.Debug(a.ctx, "boundary reached", "edge", string(edge))
			a.bus.Publish(event.NewBoundaryEvent(a, edge, e.Position))
		}
	}

	if a.held.Held(input.Quit) {
		a.terminate("quit key")
	}
}
