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
	"github.com/lixenwraith/space-blaster/status"
)

func TestExpireRemovesOnlyStale(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)

	placePowerUp(rs, components.PowerUpHealth, 60, 60, epoch)
	placePowerUp(rs, components.PowerUpMultiShot, 600, 60, epoch.Add(time.Millisecond))

	now := epoch.Add(constants.PowerUpLifespan + time.Millisecond)
	rc.PowerUps.Expire(rs, now, out)

	require.Len(t, rs.PowerUps, 1)
	assert.Equal(t, components.PowerUpMultiShot, rs.PowerUps[0].Kind)

	events := out.Drain()
	require.Len(t, events, 1)
	payload := events[0].Payload.(engine.PowerUpPayload)
	assert.Equal(t, components.PowerUpHealth, payload.Kind)
	assert.Equal(t, core.SideLeft, payload.Side)
}

// TestSpawnRespectsInterval verifies the interval must strictly elapse
func TestSpawnRespectsInterval(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)
	rs.NextSpawnInterval = 10 * time.Second

	assert.False(t, rc.PowerUps.Spawn(rs, epoch.Add(10*time.Second), out))
	assert.Empty(t, rs.PowerUps)

	now := epoch.Add(10*time.Second + time.Millisecond)
	require.True(t, rc.PowerUps.Spawn(rs, now, out))
	require.Len(t, rs.PowerUps, 1)

	assert.Equal(t, now, rs.LastPowerUpSpawn)
	assert.GreaterOrEqual(t, rs.NextSpawnInterval, constants.PowerUpSpawnMin)
	assert.LessOrEqual(t, rs.NextSpawnInterval, constants.PowerUpSpawnMax)
	assert.Equal(t, 1, out.Count(engine.EventPowerUpSpawned))
}

// TestSpawnPlacement checks many spawns land inside a spawn zone and clear of both ships
func TestSpawnPlacement(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	arena := rc.ctx.Arena
	now := epoch

	kinds := map[components.PowerUpKind]int{}
	sides := map[core.Side]int{}
	for i := 0; i < 400; i++ {
		rs.PowerUps = nil
		now = now.Add(time.Minute)
		out := engine.NewEventBuffer(uint64(i))
		require.True(t, rc.PowerUps.Spawn(rs, now, out))

		p := rs.PowerUps[0]
		inLeft := p.Rect.X >= 50 && p.Rect.X <= 395
		inRight := p.Rect.X >= 505 && p.Rect.X <= 850
		assert.True(t, inLeft || inRight, "x out of zones: %v", p.Rect.X)
		assert.True(t, p.Rect.Y >= 50 && p.Rect.Y <= 450, "y out of zone: %v", p.Rect.Y)
		assert.Equal(t, p.Rect.X, float64(int(p.Rect.X)), "integer placement")
		for _, side := range core.Sides {
			assert.False(t, p.Rect.Intersects(rs.Ship(side).Rect))
		}

		payload := out.Drain()[0].Payload.(engine.PowerUpPayload)
		assert.Equal(t, arena.IsOnSide(core.SideLeft, p.Rect.CenterX()), payload.Side == core.SideLeft)
		kinds[p.Kind]++
		sides[payload.Side]++
	}

	assert.Greater(t, kinds[components.PowerUpHealth], kinds[components.PowerUpMultiShot])
	assert.Greater(t, sides[core.SideLeft], 100)
	assert.Greater(t, sides[core.SideRight], 100)
}

// TestSpawnCapacity verifies no third power-up spawns while two are live
func TestSpawnCapacity(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)

	placePowerUp(rs, components.PowerUpHealth, 60, 60, epoch)
	placePowerUp(rs, components.PowerUpHealth, 600, 60, epoch)

	assert.False(t, rc.PowerUps.Spawn(rs, epoch.Add(2*time.Hour), out))
	assert.Len(t, rs.PowerUps, 2)
	assert.Equal(t, epoch, rs.LastPowerUpSpawn, "capacity block is not an attempt")
}

// TestSpawnExhaustionSkips covers the field with ships so every sample collides
func TestSpawnExhaustionSkips(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)
	rs.Ship(core.SideLeft).Rect = core.NewRect(0, 0, 450, 500)
	rs.Ship(core.SideRight).Rect = core.NewRect(450, 0, 450, 500)
	rs.NextSpawnInterval = time.Second

	now := epoch.Add(2 * time.Second)
	assert.False(t, rc.PowerUps.Spawn(rs, now, out))
	assert.Empty(t, rs.PowerUps)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, now, rs.LastPowerUpSpawn, "failed attempt still resets the timer")
	assert.Equal(t, int64(1), rc.ctx.Status.Ints.Get(status.KeyPowerUpSpawnSkipped).Load())
}

func TestCollectHealthCapped(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)
	left := rs.Ship(core.SideLeft)

	left.Health = 9
	placePowerUp(rs, components.PowerUpHealth, 110, 310, epoch)
	rc.PowerUps.Collect(rs, epoch, out)
	assert.Equal(t, 10, left.Health)
	assert.Empty(t, rs.PowerUps)

	placePowerUp(rs, components.PowerUpHealth, 110, 310, epoch)
	rc.PowerUps.Collect(rs, epoch, out)
	assert.Equal(t, constants.MaxHealth, left.Health)

	left.Health = 3
	placePowerUp(rs, components.PowerUpHealth, 110, 310, epoch)
	rc.PowerUps.Collect(rs, epoch, out)
	assert.Equal(t, 5, left.Health)

	assert.Equal(t, 3, out.Count(engine.EventPowerUpCollected))
}

// TestCollectMultiShotOverwrites verifies a second pickup resets expiry from its own time
func TestCollectMultiShotOverwrites(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)
	right := rs.Ship(core.SideRight)

	placePowerUp(rs, components.PowerUpMultiShot, 710, 310, epoch)
	rc.PowerUps.Collect(rs, epoch, out)
	assert.Equal(t, epoch.Add(constants.MultiShotDuration), right.MultiShotUntil)

	second := epoch.Add(2 * time.Second)
	placePowerUp(rs, components.PowerUpMultiShot, 710, 310, second)
	rc.PowerUps.Collect(rs, second, out)
	assert.Equal(t, second.Add(constants.MultiShotDuration), right.MultiShotUntil)
}

// TestCollectLeftFirst verifies a power-up touching both ships goes to the left ship
func TestCollectLeftFirst(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)
	left, right := rs.Ship(core.SideLeft), rs.Ship(core.SideRight)
	left.Rect.X, left.Rect.Y = 380, 100
	right.Rect.X, right.Rect.Y = 410, 100
	left.Health, right.Health = 5, 5

	placePowerUp(rs, components.PowerUpHealth, 420, 110, epoch)
	rc.PowerUps.Collect(rs, epoch, out)

	assert.Equal(t, 7, left.Health)
	assert.Equal(t, 5, right.Health)
	events := out.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, core.SideLeft, events[0].Payload.(engine.PowerUpPayload).Side)
}

func TestCollectUntouchedStays(t *testing.T) {
	rc, rs := newTestRound(t, core.ModePVP)
	out := engine.NewEventBuffer(1)

	placePowerUp(rs, components.PowerUpHealth, 300, 60, epoch)
	rc.PowerUps.Collect(rs, epoch, out)

	assert.Len(t, rs.PowerUps, 1)
	assert.Equal(t, 0, out.Len())
}
