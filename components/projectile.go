package components

import (
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
)

// Projectile is a single bullet travelling horizontally away from its owner
type Projectile struct {
	ID        uint64
	Owner     core.Side
	Rect      core.Rect
	Direction float64 // +1 rightward, -1 leftward
}

// NewProjectile creates a projectile with its top-left at x, y
func NewProjectile(id uint64, owner core.Side, x, y float64) Projectile {
	return Projectile{
		ID:        id,
		Owner:     owner,
		Rect:      core.NewRect(x, y, constants.ProjectileWidth, constants.ProjectileHeight),
		Direction: owner.Direction(),
	}
}

// Step advances the projectile by one tick
func (p *Projectile) Step() {
	p.Rect = p.Rect.Translate(p.Direction*constants.ProjectileVelocity, 0)
}

// OutOfArena reports whether the projectile passed the far wall
func (p *Projectile) OutOfArena(width float64) bool {
	if p.Direction > 0 {
		return p.Rect.X > width
	}
	return p.Rect.X < 0
}
