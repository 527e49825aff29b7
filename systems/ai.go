package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/vmath"
)

// AIIntent is the movement goal chosen for one tick
type AIIntent struct {
	TargetX, TargetY float64 // Center point to approach
	HasPowerUp       bool    // TargetX is only meaningful when a power-up is pursued
}

// AISystem steers and fires the right ship in AI mode
// Velocity and cooldown come from the difficulty preset and never change mid-game
type AISystem struct {
	arena    core.Arena
	rng      *vmath.FastRand
	velocity float64
	cooldown time.Duration
}

// NewAISystem creates an AI system using the context difficulty
func NewAISystem(ctx *engine.GameContext) *AISystem {
	return &AISystem{
		arena:    ctx.Arena,
		rng:      ctx.Rand,
		velocity: ctx.Difficulty.AIVelocity,
		cooldown: ctx.Difficulty.AICooldown,
	}
}

// Cooldown returns the preset fire cooldown
func (s *AISystem) Cooldown() time.Duration {
	return s.cooldown
}

// Intent picks the nearest power-up strictly on the AI's half, falling back
// to the opponent's vertical center
func (s *AISystem) Intent(ai, opponent *components.Ship, powerUps []components.PowerUp) AIIntent {
	intent := AIIntent{
		TargetX: ai.Rect.CenterX(),
		TargetY: opponent.Rect.CenterY(),
	}

	best := math.Inf(1)
	for _, p := range powerUps {
		if !s.arena.IsOnSide(ai.Side, p.Rect.CenterX()) {
			continue
		}
		// Ties keep the earlier power-up
		if d := vmath.CenterDistance(ai.Rect, p.Rect); d < best {
			best = d
			intent.TargetX = p.Rect.CenterX()
			intent.TargetY = p.Rect.CenterY()
			intent.HasPowerUp = true
		}
	}
	return intent
}

// Move advances the AI ship one step toward its intent and clamps it to its half
// A target closer than one step is reached exactly rather than overshot
func (s *AISystem) Move(rs *engine.RoundState) {
	ai := rs.Ship(core.SideRight)
	intent := s.Intent(ai, rs.Opponent(core.SideRight), rs.PowerUps)

	cy := ai.Rect.CenterY()
	ai.Rect = ai.Rect.Translate(0, vmath.StepToward(cy, intent.TargetY, s.velocity)-cy)

	if intent.HasPowerUp {
		cx := ai.Rect.CenterX()
		ai.Rect = ai.Rect.Translate(vmath.StepToward(cx, intent.TargetX, s.velocity)-cx, 0)
	} else if s.rng.Intn(constants.AIJitterRoll) > constants.AIJitterThreshold {
		dir := -1.0
		if s.rng.Bool() {
			dir = 1.0
		}
		ai.Rect = ai.Rect.Translate(s.velocity*dir, 0)
	}

	Clamp(ai, s.arena.MovementBounds(ai.Side))
}

// WantsFire reports whether the opponent is lined up closely enough to shoot
func (s *AISystem) WantsFire(ai, opponent *components.Ship) bool {
	return math.Abs(ai.Rect.CenterY()-opponent.Rect.CenterY()) < constants.AIAimTolerance
}
