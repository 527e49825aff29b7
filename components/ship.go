package components

import (
	"time"

	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
)

// Ship is one player's craft
// Health stays within [0, MaxHealth]; a zero LastFire means the ship has not fired yet
type Ship struct {
	Side           core.Side
	Rect           core.Rect
	Health         int
	LastFire       time.Time
	MultiShotUntil time.Time // Zero when the buff was never collected
}

// NewShip places a full-health ship at the given top-left corner
func NewShip(side core.Side, x, y float64) *Ship {
	return &Ship{
		Side:   side,
		Rect:   core.NewRect(x, y, constants.ShipWidth, constants.ShipHeight),
		Health: constants.MaxHealth,
	}
}

// MultiShotActive reports whether the buff is live at now
func (s *Ship) MultiShotActive(now time.Time) bool {
	return now.Before(s.MultiShotUntil)
}

// MultiShotRemaining returns buff time left, zero when inactive
func (s *Ship) MultiShotRemaining(now time.Time) time.Duration {
	if !s.MultiShotActive(now) {
		return 0
	}
	return s.MultiShotUntil.Sub(now)
}

// Damage removes amount health with a floor at zero
func (s *Ship) Damage(amount int) {
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
}

// Heal adds amount health capped at MaxHealth
func (s *Ship) Heal(amount int) {
	s.Health += amount
	if s.Health > constants.MaxHealth {
		s.Health = constants.MaxHealth
	}
}

// Alive reports whether the ship still has health
func (s *Ship) Alive() bool {
	return s.Health > 0
}

// FirePort returns the muzzle point projectiles leave from
// Left ships fire from their right edge, right ships from their left edge
func (s *Ship) FirePort() (x, y float64) {
	y = s.Rect.Y + float64(int(s.Rect.H)/2) - constants.PortOffsetY
	if s.Side == core.SideLeft {
		return s.Rect.Right(), y
	}
	return s.Rect.X, y
}
