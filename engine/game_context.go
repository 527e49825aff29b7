package engine

import (
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/status"
	"github.com/lixenwraith/space-blaster/vmath"
)

// GameContext bundles the long-lived collaborators shared by systems and the session
type GameContext struct {
	// ===== Immutable After Init =====

	Arena      core.Arena
	Difficulty constants.DifficultyPreset // Chosen once at startup

	// ===== Tick Goroutine Exclusive =====

	Rand   *vmath.FastRand // Spawn placement, spawn intervals, AI jitter
	Router *EventRouter    // Handlers registered before the loop starts

	// ===== Self-Synchronized =====

	Clock  *PausableClock    // Game time; paused outside PLAYING
	Status *status.Registry // Atomic metrics
}

// NewGameContext wires a context over the given time source
func NewGameContext(difficulty constants.DifficultyPreset, seed uint64, source TimeProvider) *GameContext {
	return &GameContext{
		Arena:      core.DefaultArena(),
		Difficulty: difficulty,
		Rand:       vmath.NewFastRand(seed),
		Router:     NewEventRouter(),
		Clock:      NewPausableClock(source),
		Status:     status.NewRegistry(),
	}
}
