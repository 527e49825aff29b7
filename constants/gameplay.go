// @focus: #constants { gameplay }
package constants

import "time"

// Ships
const (
	// ShipWidth and ShipHeight are the fixed ship bounding box
	ShipWidth  = 55
	ShipHeight = 40

	// ShipVelocity is the manual movement step per tick on each axis
	ShipVelocity = 5

	// MaxHealth is both the starting health and the pickup cap
	MaxHealth = 10
)

// Projectiles
const (
	ProjectileWidth  = 10
	ProjectileHeight = 5

	// ProjectileVelocity is the horizontal step per tick
	ProjectileVelocity = 7

	// MaxProjectiles is the live projectile capacity per side
	MaxProjectiles = 5

	// PlayerFireCooldown is the minimum time between manual firing actions
	PlayerFireCooldown = 500 * time.Millisecond

	// MultiShotCount is the number of projectiles in a multi-shot volley
	MultiShotCount = 3

	// MultiShotSpread is the vertical offset between volley projectiles
	MultiShotSpread = 10

	// PortOffsetY shifts the firing port up from the ship's vertical center
	PortOffsetY = 2
)

// Power-ups
const (
	PowerUpSize = 20

	// MaxPowerUps is the number of power-ups allowed on the field at once
	MaxPowerUps = 2

	// PowerUpLifespan is the maximum age before forced removal
	PowerUpLifespan = 5 * time.Second

	// PowerUpSpawnMin and PowerUpSpawnMax bound the rolled spawn interval
	PowerUpSpawnMin = 8 * time.Second
	PowerUpSpawnMax = 15 * time.Second

	// MaxSpawnAttempts is the number of placement samples before a cycle is skipped
	MaxSpawnAttempts = 20

	// HealthPowerUpAmount is the health restored by a HEALTH pickup
	HealthPowerUpAmount = 2

	// MultiShotDuration is the buff length granted by a MULTI_SHOT pickup
	MultiShotDuration = 5 * time.Second

	// HealthSpawnWeight and MultiShotSpawnWeight set the kind ratio (3:1)
	HealthSpawnWeight    = 3
	MultiShotSpawnWeight = 1
)

// AI
const (
	// AIAimTolerance is the max vertical center distance at which the AI fires
	AIAimTolerance = 50

	// AIJitterRoll and AIJitterThreshold give a ~2% per tick horizontal wiggle
	// when no power-up target exists: roll in [0, AIJitterRoll), move if > threshold
	AIJitterRoll      = 101
	AIJitterThreshold = 98
)
