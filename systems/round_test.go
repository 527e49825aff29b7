package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/input"
	"github.com/lixenwraith/space-blaster/status"
	"github.com/lixenwraith/space-blaster/vmath"
)

func TestNewRound(t *testing.T) {
	rc := NewRoundController(newTestContext(t, 1))
	rs := rc.NewRound(core.ModeAI, epoch)

	assert.Equal(t, core.ModeAI, rs.Mode)
	assert.Equal(t, constants.MaxHealth, rs.Ship(core.SideLeft).Health)
	assert.Equal(t, constants.MaxHealth, rs.Ship(core.SideRight).Health)
	assert.Empty(t, rs.PowerUps)
	assert.GreaterOrEqual(t, rs.NextSpawnInterval, constants.PowerUpSpawnMin)
	assert.LessOrEqual(t, rs.NextSpawnInterval, constants.PowerUpSpawnMax)
	assert.Equal(t, int64(1), rc.ctx.Status.Ints.Get(status.KeyRoundStarted).Load())
}

// TestTickLethalHitEndsRound checks health 1 + hit ends the round on that tick
func TestTickLethalHitEndsRound(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	rs.Ship(core.SideRight).Health = 1
	placeProjectile(rs, core.SideLeft, 684, 318)

	res := rc.Tick(rs, input.Snapshot{}, epoch)

	assert.Equal(t, 0, rs.Ship(core.SideRight).Health)
	require.True(t, res.Outcome.Over)
	assert.Equal(t, core.SideLeft, res.Outcome.Winner)
	assert.Equal(t, constants.LabelLeftWins, res.Outcome.Label)
	assert.Equal(t, 1, countEvents(res.Events, engine.EventHitRegistered))
	assert.Equal(t, 1, countEvents(res.Events, engine.EventRoundOver))
	assert.Equal(t, engine.EventRoundOver, res.Events[len(res.Events)-1].Type)
}

func TestTickRightWinLabels(t *testing.T) {
	tests := []struct {
		mode  core.Mode
		label string
	}{
		{core.ModePVP, constants.LabelRightWins},
		{core.ModeAI, constants.LabelComputerWins},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			rc, rs := newTestRound(t, tt.mode)
			rs.Ship(core.SideLeft).Health = 1
			placeProjectile(rs, core.SideRight, 155, 318)

			res := rc.Tick(rs, input.Snapshot{}, epoch)

			require.True(t, res.Outcome.Over)
			assert.Equal(t, core.SideRight, res.Outcome.Winner)
			assert.Equal(t, tt.label, res.Outcome.Label)
		})
	}
}

// TestTickDoubleZeroFavorsLeft verifies the right ship's defeat is checked first
func TestTickDoubleZeroFavorsLeft(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	rs.Ship(core.SideLeft).Health = 1
	rs.Ship(core.SideRight).Health = 1
	placeProjectile(rs, core.SideLeft, 684, 318)
	placeProjectile(rs, core.SideRight, 155, 318)

	res := rc.Tick(rs, input.Snapshot{}, epoch)

	require.True(t, res.Outcome.Over)
	assert.Equal(t, core.SideLeft, res.Outcome.Winner)
	assert.Equal(t, constants.LabelLeftWins, res.Outcome.Label)
}

// TestTickExpiredPowerUpRemoved checks a stale power-up is gone after the next tick
func TestTickExpiredPowerUpRemoved(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	placePowerUp(rs, components.PowerUpHealth, 300, 60, epoch)

	res := rc.Tick(rs, input.Snapshot{}, epoch.Add(constants.PowerUpLifespan))
	assert.Len(t, rs.PowerUps, 1)
	assert.Equal(t, 0, countEvents(res.Events, engine.EventPowerUpExpired))

	res = rc.Tick(rs, input.Snapshot{}, epoch.Add(constants.PowerUpLifespan+16*time.Millisecond))
	assert.Empty(t, rs.PowerUps)
	assert.Equal(t, 1, countEvents(res.Events, engine.EventPowerUpExpired))
}

func TestTickNoThirdPowerUp(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	rs.NextSpawnInterval = time.Second
	now := epoch.Add(time.Second)
	placePowerUp(rs, components.PowerUpHealth, 300, 60, now)
	placePowerUp(rs, components.PowerUpHealth, 600, 60, now)

	for i := 0; i < 100; i++ {
		now = now.Add(16 * time.Millisecond)
		rc.Tick(rs, input.Snapshot{}, now)
		assert.LessOrEqual(t, len(rs.PowerUps), 2)
	}
	assert.Equal(t, int64(0), rc.ctx.Status.Ints.Get(status.KeyPowerUpSpawned).Load())
}

// TestTickPickupSameTickAsMove verifies movement happens before pickups
func TestTickPickupSameTickAsMove(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	left := rs.Ship(core.SideLeft)
	left.Health = 4
	// Power-up starts 3 units right of the ship edge; one step right reaches it
	placePowerUp(rs, components.PowerUpHealth, left.Rect.Right()+3, 310, epoch)

	res := rc.Tick(rs, input.Snapshot{Left: input.SideIntent{Right: true}}, epoch)

	assert.Equal(t, 6, left.Health)
	assert.Equal(t, 1, countEvents(res.Events, engine.EventPowerUpCollected))
}

// TestTickFiringInputs checks manual fire edges and AI fire policy per mode
func TestTickFiringInputs(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	res := rc.Tick(rs, input.Snapshot{Left: input.SideIntent{Fire: true}, Right: input.SideIntent{Fire: true}}, epoch)
	assert.Equal(t, 2, countEvents(res.Events, engine.EventShotFired))
	// Fresh projectiles already advanced once this tick
	assert.Equal(t, 162.0, rs.Projectiles[core.SideLeft][0].Rect.X)
	assert.Equal(t, 693.0, rs.Projectiles[core.SideRight][0].Rect.X)

	rc, rs = newTestRound(t, core.ModeAI)
	res = rc.Tick(rs, input.Snapshot{Right: input.SideIntent{Fire: true}}, epoch)
	require.Equal(t, 1, countEvents(res.Events, engine.EventShotFired), "AI fires on alignment, ignoring right-side keys")
	assert.Equal(t, 1, rs.ProjectileCount(core.SideRight))

	res = rc.Tick(rs, input.Snapshot{}, epoch.Add(constants.DifficultyEasy.AICooldown))
	assert.Equal(t, 0, countEvents(res.Events, engine.EventShotFired))
	res = rc.Tick(rs, input.Snapshot{}, epoch.Add(constants.DifficultyEasy.AICooldown+time.Millisecond))
	assert.Equal(t, 1, countEvents(res.Events, engine.EventShotFired))
}

func TestTickPVPIgnoresAI(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	rs.Ship(core.SideLeft).Rect.Y = 50

	for i := 0; i < 50; i++ {
		rc.Tick(rs, input.Snapshot{}, epoch)
	}
	assert.Equal(t, 700.0, rs.Ship(core.SideRight).Rect.X)
	assert.Equal(t, 300.0, rs.Ship(core.SideRight).Rect.Y)
}

// TestTickInvariantsUnderRandomPlay drives long random rounds and checks
// every invariant after each tick
func TestTickInvariantsUnderRandomPlay(t *testing.T) {
	for _, mode := range []core.Mode{core.ModePVP, core.ModeAI} {
		t.Run(mode.String(), func(t *testing.T) {
			rc := NewRoundController(newTestContext(t, 7))
			arena := rc.ctx.Arena
			keys := vmath.NewFastRand(99)
			now := epoch
			rs := rc.NewRound(mode, now)
			rounds := 0

			for i := 0; i < 20000; i++ {
				now = now.Add(16 * time.Millisecond)
				snap := input.Snapshot{
					Left:  randomIntent(keys),
					Right: randomIntent(keys),
				}
				res := rc.Tick(rs, snap, now)

				for _, side := range core.Sides {
					ship := rs.Ship(side)
					require.GreaterOrEqual(t, ship.Health, 0)
					require.LessOrEqual(t, ship.Health, constants.MaxHealth)
					require.LessOrEqual(t, rs.ProjectileCount(side), constants.MaxProjectiles)
					require.True(t, arena.MovementBounds(side).Contains(ship.Rect), "ship %s out of bounds: %v", side, ship.Rect)
				}
				require.LessOrEqual(t, len(rs.PowerUps), constants.MaxPowerUps)
				for _, p := range rs.PowerUps {
					require.False(t, p.Expired(now))
				}

				if res.Outcome.Over {
					rounds++
					rs = rc.NewRound(mode, now)
				}
			}
			assert.Greater(t, rc.ctx.Status.Ints.Get(status.KeyCombatHits).Load(), int64(0))
			t.Logf("%s: %d rounds finished", mode, rounds)
		})
	}
}

func randomIntent(r *vmath.FastRand) input.SideIntent {
	return input.SideIntent{
		Up:    r.Intn(3) == 0,
		Down:  r.Intn(3) == 0,
		Left:  r.Intn(3) == 0,
		Right: r.Intn(3) == 0,
		Fire:  r.Intn(4) == 0,
	}
}

func TestEvaluateOngoing(t *testing.T) {
	_, rs := newTestRound(t, core.ModeAI)
	assert.False(t, Evaluate(rs).Over)
}

func TestView(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	rc.Tick(rs, input.Snapshot{Left: input.SideIntent{Fire: true}}, epoch)

	v := rc.View(rs, epoch)
	assert.Equal(t, uint64(1), v.Tick)
	assert.Equal(t, constants.MaxProjectiles-1, v.Ships[core.SideLeft].Ammo)
	assert.Len(t, v.Projectiles, 1)
}
