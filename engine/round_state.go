package engine

import (
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/core"
)

// RoundState is the complete mutable state of one round
// Created on round start, discarded on round end; only the tick goroutine touches it
type RoundState struct {
	ID        uuid.UUID
	Mode      core.Mode
	StartedAt time.Time
	Tick      uint64

	Ships       [2]*components.Ship
	Projectiles [2][]components.Projectile // Indexed by owning side
	PowerUps    []components.PowerUp

	LastPowerUpSpawn  time.Time     // Time of the last spawn attempt
	NextSpawnInterval time.Duration // Rolled after each attempt

	nextID uint64
}

// NewRoundState creates a round with both ships at their start slots
func NewRoundState(arena core.Arena, mode core.Mode, now time.Time, spawnInterval time.Duration) *RoundState {
	rs := &RoundState{
		ID:                uuid.NewV4(),
		Mode:              mode,
		StartedAt:         now,
		LastPowerUpSpawn:  now,
		NextSpawnInterval: spawnInterval,
	}
	for _, side := range core.Sides {
		x, y := arena.StartSlot(side)
		rs.Ships[side] = components.NewShip(side, x, y)
	}
	return rs
}

// Ship returns the ship on side
func (rs *RoundState) Ship(side core.Side) *components.Ship {
	return rs.Ships[side]
}

// Opponent returns the ship facing side
func (rs *RoundState) Opponent(side core.Side) *components.Ship {
	return rs.Ships[side.Opponent()]
}

// ProjectileCount returns live projectiles owned by side
func (rs *RoundState) ProjectileCount(side core.Side) int {
	return len(rs.Projectiles[side])
}

// NextEntityID returns a round-unique identifier for projectiles and power-ups
func (rs *RoundState) NextEntityID() uint64 {
	rs.nextID++
	return rs.nextID
}

// Elapsed returns game time since the round started
func (rs *RoundState) Elapsed(now time.Time) time.Duration {
	return now.Sub(rs.StartedAt)
}

// Outcome is the result of termination evaluation
type Outcome struct {
	Over   bool
	Winner core.Side
	Label  string
}

// TickResult is everything one tick produced for collaborators
type TickResult struct {
	Events  []GameEvent
	Outcome Outcome
}
