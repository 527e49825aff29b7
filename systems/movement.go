package systems

import (
	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/input"
)

// MovementSystem applies held direction keys to human-controlled ships
type MovementSystem struct {
	arena core.Arena
}

// NewMovementSystem creates a movement system over the context arena
func NewMovementSystem(ctx *engine.GameContext) *MovementSystem {
	return &MovementSystem{arena: ctx.Arena}
}

// Apply moves ship within its own half of the arena
func (s *MovementSystem) Apply(ship *components.Ship, intent input.SideIntent) {
	ApplyManual(ship, intent, s.arena.MovementBounds(ship.Side))
}

// ApplyManual moves each requested axis by one velocity step when the result
// stays strictly inside bounds; a blocked step is dropped, not shortened.
// Diagonals move at full speed on both axes.
func ApplyManual(ship *components.Ship, intent input.SideIntent, bounds core.Rect) {
	v := float64(constants.ShipVelocity)
	r := &ship.Rect

	if intent.Left && r.X-v > bounds.X {
		r.X -= v
	}
	if intent.Right && r.X+v+r.W < bounds.Right() {
		r.X += v
	}
	if intent.Up && r.Y-v > bounds.Y {
		r.Y -= v
	}
	if intent.Down && r.Y+v+r.H < bounds.Bottom() {
		r.Y += v
	}
}

// Clamp forces ship back inside bounds, edges inclusive
func Clamp(ship *components.Ship, bounds core.Rect) {
	r := &ship.Rect
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}
}
