package components

import (
	"time"

	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
)

// PowerUpKind selects the pickup effect
type PowerUpKind uint8

const (
	// PowerUpHealth restores health up to the cap
	PowerUpHealth PowerUpKind = iota
	// PowerUpMultiShot turns single shots into three-shot volleys for a while
	PowerUpMultiShot
)

// PowerUpKinds in spawn weight order
var PowerUpKinds = []PowerUpKind{PowerUpHealth, PowerUpMultiShot}

// PowerUpWeights parallels PowerUpKinds
var PowerUpWeights = []int{constants.HealthSpawnWeight, constants.MultiShotSpawnWeight}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpMultiShot:
		return "multi_shot"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible lying in the arena
type PowerUp struct {
	ID        uint64
	Kind      PowerUpKind
	Rect      core.Rect
	SpawnedAt time.Time
}

// NewPowerUp creates a power-up at x, y
func NewPowerUp(id uint64, kind PowerUpKind, x, y float64, now time.Time) PowerUp {
	return PowerUp{
		ID:        id,
		Kind:      kind,
		Rect:      core.NewRect(x, y, constants.PowerUpSize, constants.PowerUpSize),
		SpawnedAt: now,
	}
}

// Age returns time since spawn
func (p PowerUp) Age(now time.Time) time.Duration {
	return now.Sub(p.SpawnedAt)
}

// Expired reports whether the power-up outlived its lifespan
func (p PowerUp) Expired(now time.Time) bool {
	return p.Age(now) > constants.PowerUpLifespan
}
