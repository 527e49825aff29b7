package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/input"
	"github.com/lixenwraith/space-blaster/status"
)

// RoundController advances a round one tick at a time and decides when it ends
//
// Tick order:
//  1. movement (left manual; right manual in PVP, AI in AI mode)
//  2. firing
//  3. projectile flight and hits
//  4. power-up expiry, then spawning
//  5. pickups
//  6. termination
type RoundController struct {
	ctx *engine.GameContext

	Movement *MovementSystem
	AI       *AISystem
	Combat   *CombatSystem
	PowerUps *PowerUpSystem

	statStarted  *atomic.Int64
	statFinished *atomic.Int64
}

// NewRoundController wires all round systems over ctx
func NewRoundController(ctx *engine.GameContext) *RoundController {
	return &RoundController{
		ctx:          ctx,
		Movement:     NewMovementSystem(ctx),
		AI:           NewAISystem(ctx),
		Combat:       NewCombatSystem(ctx),
		PowerUps:     NewPowerUpSystem(ctx),
		statStarted:  ctx.Status.Ints.Get(status.KeyRoundStarted),
		statFinished: ctx.Status.Ints.Get(status.KeyRoundFinished),
	}
}

// NewRound creates fresh round state: full health, start slots, no entities
func (rc *RoundController) NewRound(mode core.Mode, now time.Time) *engine.RoundState {
	rc.statStarted.Add(1)
	return engine.NewRoundState(rc.ctx.Arena, mode, now, RollSpawnInterval(rc.ctx.Rand))
}

// Tick runs one simulation step at game time now
func (rc *RoundController) Tick(rs *engine.RoundState, snap input.Snapshot, now time.Time) engine.TickResult {
	rs.Tick++
	out := engine.NewEventBuffer(rs.Tick)

	left := rs.Ship(core.SideLeft)
	right := rs.Ship(core.SideRight)

	// 1. Movement
	rc.Movement.Apply(left, snap.Left)
	if rs.Mode == core.ModeAI {
		rc.AI.Move(rs)
	} else {
		rc.Movement.Apply(right, snap.Right)
	}

	// 2. Firing
	if snap.Left.Fire {
		rc.Combat.TryFire(rs, core.SideLeft, constants.PlayerFireCooldown, now, out)
	}
	if rs.Mode == core.ModeAI {
		if rc.AI.WantsFire(right, left) {
			rc.Combat.TryFire(rs, core.SideRight, rc.AI.Cooldown(), now, out)
		}
	} else if snap.Right.Fire {
		rc.Combat.TryFire(rs, core.SideRight, constants.PlayerFireCooldown, now, out)
	}

	// 3. Projectiles
	rc.Combat.Advance(rs, now, out)

	// 4. Power-up expiry then spawn
	rc.PowerUps.Expire(rs, now, out)
	rc.PowerUps.Spawn(rs, now, out)

	// 5. Pickups
	rc.PowerUps.Collect(rs, now, out)

	// 6. Termination
	outcome := Evaluate(rs)
	if outcome.Over {
		rc.statFinished.Add(1)
		out.Push(engine.EventRoundOver, engine.RoundOverPayload{
			Winner: outcome.Winner,
			Label:  outcome.Label,
			Ticks:  rs.Tick,
		}, now)
	}

	return engine.TickResult{Events: out.Drain(), Outcome: outcome}
}

// Evaluate checks win conditions; the right ship's defeat is checked first,
// so a tick that zeroes both ships is a left-side win
func Evaluate(rs *engine.RoundState) engine.Outcome {
	if !rs.Ship(core.SideRight).Alive() {
		return engine.Outcome{Over: true, Winner: core.SideLeft, Label: constants.LabelLeftWins}
	}
	if !rs.Ship(core.SideLeft).Alive() {
		label := constants.LabelRightWins
		if rs.Mode == core.ModeAI {
			label = constants.LabelComputerWins
		}
		return engine.Outcome{Over: true, Winner: core.SideRight, Label: label}
	}
	return engine.Outcome{}
}

// View builds the presentation snapshot for rs
func (rc *RoundController) View(rs *engine.RoundState, now time.Time) engine.View {
	return engine.NewView(rs, rc.ctx.Arena, now)
}
