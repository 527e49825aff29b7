package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestContext builds a deterministic context on a mock clock
func newTestContext(t *testing.T, seed uint64) *engine.GameContext {
	t.Helper()
	return engine.NewGameContext(constants.DifficultyEasy, seed, engine.NewMockTimeProvider(epoch))
}

// newTestRound returns a controller and a fresh round with spawning pushed far out
func newTestRound(t *testing.T, mode core.Mode) (*RoundController, *engine.RoundState) {
	t.Helper()
	rc := NewRoundController(newTestContext(t, 1))
	rs := rc.NewRound(mode, epoch)
	rs.NextSpawnInterval = time.Hour
	return rc, rs
}

// placeProjectile puts a projectile owned by side at x, y
func placeProjectile(rs *engine.RoundState, side core.Side, x, y float64) {
	rs.Projectiles[side] = append(rs.Projectiles[side], components.NewProjectile(rs.NextEntityID(), side, x, y))
}

// placePowerUp puts a power-up of kind at x, y spawned at now
func placePowerUp(rs *engine.RoundState, kind components.PowerUpKind, x, y float64, now time.Time) {
	rs.PowerUps = append(rs.PowerUps, components.NewPowerUp(rs.NextEntityID(), kind, x, y, now))
}

func countEvents(events []engine.GameEvent, t engine.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
