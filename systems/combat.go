package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/status"
)

// CombatSystem gates firing and resolves projectile flight and hits
type CombatSystem struct {
	arena core.Arena

	// Cached metric pointers
	statShots   *atomic.Int64
	statVolleys *atomic.Int64
	statHits    *atomic.Int64
}

// NewCombatSystem creates a combat system
func NewCombatSystem(ctx *engine.GameContext) *CombatSystem {
	return &CombatSystem{
		arena:       ctx.Arena,
		statShots:   ctx.Status.Ints.Get(status.KeyCombatShots),
		statVolleys: ctx.Status.Ints.Get(status.KeyCombatVolleys),
		statHits:    ctx.Status.Ints.Get(status.KeyCombatHits),
	}
}

// VolleySize returns how many projectiles a firing action produces at now
func VolleySize(ship *components.Ship, now time.Time) int {
	if ship.MultiShotActive(now) {
		return constants.MultiShotCount
	}
	return 1
}

// CanFire reports whether side may fire at now under cooldown
// Requires the cooldown to have strictly elapsed and room for the whole volley
func CanFire(rs *engine.RoundState, side core.Side, cooldown time.Duration, now time.Time) bool {
	ship := rs.Ship(side)
	if !ship.LastFire.IsZero() && now.Sub(ship.LastFire) <= cooldown {
		return false
	}
	return rs.ProjectileCount(side) <= constants.MaxProjectiles-VolleySize(ship, now)
}

// TryFire creates a single shot or a three-shot volley; suppressed attempts
// change nothing and emit nothing
func (s *CombatSystem) TryFire(rs *engine.RoundState, side core.Side, cooldown time.Duration, now time.Time, out *engine.EventBuffer) bool {
	if !CanFire(rs, side, cooldown, now) {
		return false
	}

	ship := rs.Ship(side)
	count := VolleySize(ship, now)
	x, y := ship.FirePort()

	if count == 1 {
		rs.Projectiles[side] = append(rs.Projectiles[side],
			components.NewProjectile(rs.NextEntityID(), side, x, y))
	} else {
		for _, off := range [...]float64{-constants.MultiShotSpread, 0, constants.MultiShotSpread} {
			rs.Projectiles[side] = append(rs.Projectiles[side],
				components.NewProjectile(rs.NextEntityID(), side, x, y+off))
		}
		s.statVolleys.Add(1)
	}

	ship.LastFire = now
	s.statShots.Add(int64(count))
	out.Push(engine.EventShotFired, engine.ShotFiredPayload{Side: side, Count: count}, now)
	return true
}

// Advance moves every projectile one step and resolves hits and exits
// A hit removes the projectile and costs the target one health, floored at zero
func (s *CombatSystem) Advance(rs *engine.RoundState, now time.Time, out *engine.EventBuffer) {
	for _, side := range core.Sides {
		target := rs.Opponent(side)
		live := make([]components.Projectile, 0, len(rs.Projectiles[side]))

		for _, p := range rs.Projectiles[side] {
			p.Step()
			if target.Rect.Intersects(p.Rect) {
				target.Damage(1)
				s.statHits.Add(1)
				out.Push(engine.EventHitRegistered, engine.HitPayload{Target: target.Side, Health: target.Health}, now)
				continue
			}
			if p.OutOfArena(s.arena.Width) {
				continue
			}
			live = append(live, p)
		}

		rs.Projectiles[side] = live
	}
}
