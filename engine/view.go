package engine

import (
	"time"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
)

// ShipView is the presentation data for one ship
type ShipView struct {
	Side             core.Side
	Rect             core.Rect
	Health           int
	Ammo             int // Remaining projectile capacity
	MultiShotSeconds int // Whole seconds left, rounded up; zero when inactive
}

// View is a read-only snapshot handed to the renderer
// Slices are copies; mutating them does not affect the round
type View struct {
	Arena       core.Arena
	Mode        core.Mode
	Tick        uint64
	Ships       [2]ShipView
	Projectiles []components.Projectile
	PowerUps    []components.PowerUp
}

// NewView snapshots rs for presentation at game time now
func NewView(rs *RoundState, arena core.Arena, now time.Time) View {
	v := View{
		Arena: arena,
		Mode:  rs.Mode,
		Tick:  rs.Tick,
	}

	for _, side := range core.Sides {
		ship := rs.Ships[side]
		remaining := ship.MultiShotRemaining(now)
		v.Ships[side] = ShipView{
			Side:             side,
			Rect:             ship.Rect,
			Health:           ship.Health,
			Ammo:             constants.MaxProjectiles - rs.ProjectileCount(side),
			MultiShotSeconds: int((remaining + time.Second - 1) / time.Second),
		}
		v.Projectiles = append(v.Projectiles, rs.Projectiles[side]...)
	}

	v.PowerUps = append([]components.PowerUp(nil), rs.PowerUps...)
	return v
}
