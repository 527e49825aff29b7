package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/status"
	"github.com/lixenwraith/space-blaster/vmath"
)

// PowerUpSystem runs the power-up lifecycle: expiry, timed spawning, pickup
type PowerUpSystem struct {
	arena core.Arena
	rng   *vmath.FastRand

	// Cached metric pointers
	statSpawned   *atomic.Int64
	statSkipped   *atomic.Int64
	statExpired   *atomic.Int64
	statCollected *atomic.Int64
}

// NewPowerUpSystem creates a power-up system
func NewPowerUpSystem(ctx *engine.GameContext) *PowerUpSystem {
	return &PowerUpSystem{
		arena:         ctx.Arena,
		rng:           ctx.Rand,
		statSpawned:   ctx.Status.Ints.Get(status.KeyPowerUpSpawned),
		statSkipped:   ctx.Status.Ints.Get(status.KeyPowerUpSpawnSkipped),
		statExpired:   ctx.Status.Ints.Get(status.KeyPowerUpExpired),
		statCollected: ctx.Status.Ints.Get(status.KeyPowerUpCollected),
	}
}

// RollSpawnInterval draws the wait before the next spawn attempt
func RollSpawnInterval(rng *vmath.FastRand) time.Duration {
	return rng.DurationRange(constants.PowerUpSpawnMin, constants.PowerUpSpawnMax)
}

// Expire removes power-ups older than their lifespan
func (s *PowerUpSystem) Expire(rs *engine.RoundState, now time.Time, out *engine.EventBuffer) {
	live := make([]components.PowerUp, 0, len(rs.PowerUps))
	for _, p := range rs.PowerUps {
		if p.Expired(now) {
			s.statExpired.Add(1)
			out.Push(engine.EventPowerUpExpired, s.payload(p, s.sideOf(p)), now)
			continue
		}
		live = append(live, p)
	}
	rs.PowerUps = live
}

// Spawn places one power-up when the field has room and the rolled interval
// has strictly elapsed since the last attempt. The attempt is recorded even
// when every placement sample overlaps a ship.
func (s *PowerUpSystem) Spawn(rs *engine.RoundState, now time.Time, out *engine.EventBuffer) bool {
	if len(rs.PowerUps) >= constants.MaxPowerUps {
		return false
	}
	if now.Sub(rs.LastPowerUpSpawn) <= rs.NextSpawnInterval {
		return false
	}

	rs.LastPowerUpSpawn = now
	rs.NextSpawnInterval = RollSpawnInterval(s.rng)

	side := core.Sides[s.rng.Intn(len(core.Sides))]
	kind := components.PowerUpKinds[s.rng.ChooseWeighted(components.PowerUpWeights)]
	zone := s.arena.SpawnZone(side)

	for attempt := 0; attempt < constants.MaxSpawnAttempts; attempt++ {
		x := float64(s.rng.IntRange(int(zone.X), int(zone.Right())))
		y := float64(s.rng.IntRange(int(zone.Y), int(zone.Bottom())))
		rect := core.NewRect(x, y, constants.PowerUpSize, constants.PowerUpSize)

		if rect.Intersects(rs.Ships[core.SideLeft].Rect) || rect.Intersects(rs.Ships[core.SideRight].Rect) {
			continue
		}

		p := components.NewPowerUp(rs.NextEntityID(), kind, x, y, now)
		rs.PowerUps = append(rs.PowerUps, p)
		s.statSpawned.Add(1)
		out.Push(engine.EventPowerUpSpawned, s.payload(p, side), now)
		return true
	}

	s.statSkipped.Add(1)
	return false
}

// Collect applies pickups; the left ship is checked before the right, so a
// power-up touched by both goes to the left ship
func (s *PowerUpSystem) Collect(rs *engine.RoundState, now time.Time, out *engine.EventBuffer) {
	live := make([]components.PowerUp, 0, len(rs.PowerUps))
	for _, p := range rs.PowerUps {
		collector, ok := s.collector(rs, p)
		if !ok {
			live = append(live, p)
			continue
		}

		switch p.Kind {
		case components.PowerUpHealth:
			collector.Heal(constants.HealthPowerUpAmount)
		case components.PowerUpMultiShot:
			collector.MultiShotUntil = now.Add(constants.MultiShotDuration)
		}

		s.statCollected.Add(1)
		out.Push(engine.EventPowerUpCollected, s.payload(p, collector.Side), now)
	}
	rs.PowerUps = live
}

func (s *PowerUpSystem) collector(rs *engine.RoundState, p components.PowerUp) (*components.Ship, bool) {
	for _, side := range core.Sides {
		if ship := rs.Ship(side); ship.Rect.Intersects(p.Rect) {
			return ship, true
		}
	}
	return nil, false
}

func (s *PowerUpSystem) sideOf(p components.PowerUp) core.Side {
	if s.arena.IsOnSide(core.SideLeft, p.Rect.CenterX()) {
		return core.SideLeft
	}
	return core.SideRight
}

func (s *PowerUpSystem) payload(p components.PowerUp, side core.Side) engine.PowerUpPayload {
	return engine.PowerUpPayload{ID: p.ID, Kind: p.Kind, Side: side}
}
