package session

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/input"
	"github.com/lixenwraith/space-blaster/status"
	"github.com/lixenwraith/space-blaster/systems"
)

// MenuModes lists menu buttons top to bottom
var MenuModes = []core.Mode{core.ModeAI, core.ModePVP}

// Frame is everything the renderer needs for one screen
type Frame struct {
	State      State
	HasRound   bool
	View       engine.View // Valid when HasRound
	MenuIndex  int
	Banner     string // Last outcome label while it is still fresh
	Difficulty string
}

// Controller owns the menu, the active round, and pause handling
// Not safe for concurrent use; driven from the tick goroutine
type Controller struct {
	ctx    *engine.GameContext
	rounds *systems.RoundController

	state     State
	round     *engine.RoundState
	menuIndex int
	exit      bool

	lastOutcome   engine.Outcome
	lastOutcomeAt time.Time // Real time the outcome was decided

	// Cached metric pointers
	statState   *status.AtomicString
	statPaused  *atomic.Bool
	statOutcome *status.AtomicString
}

// NewController creates a controller in MENU with the game clock paused
func NewController(ctx *engine.GameContext) *Controller {
	c := &Controller{
		ctx:         ctx,
		rounds:      systems.NewRoundController(ctx),
		state:       StateMenu,
		statState:   ctx.Status.Strings.Get(status.KeySessionState),
		statPaused:  ctx.Status.Bools.Get(status.KeySessionPaused),
		statOutcome: ctx.Status.Strings.Get(status.KeyLastOutcome),
	}
	ctx.Router.Register(&roundLogger{})
	ctx.Clock.Pause()
	c.statState.Store(c.state.String())
	return c
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Round returns the active round, nil outside PLAYING and PAUSED
func (c *Controller) Round() *engine.RoundState {
	return c.round
}

// LastOutcome returns the most recent finished round's outcome
func (c *Controller) LastOutcome() engine.Outcome {
	return c.lastOutcome
}

// ExitRequested reports whether the user asked to leave the program
func (c *Controller) ExitRequested() bool {
	return c.exit
}

func (c *Controller) transition(to State) bool {
	if !CanTransition(c.state, to) {
		return false
	}
	c.state = to
	c.statState.Store(to.String())
	c.statPaused.Store(to == StatePaused)

	// Game time only runs while a round is being played
	if to == StatePlaying {
		c.ctx.Clock.Resume()
	} else {
		c.ctx.Clock.Pause()
	}
	return true
}

// StartRound begins a new round from MENU
func (c *Controller) StartRound(mode core.Mode) bool {
	if c.state != StateMenu || !c.transition(StatePlaying) {
		return false
	}
	c.round = c.rounds.NewRound(mode, c.ctx.Clock.Now())
	log.Printf("round %s started: mode=%s difficulty=%s", c.round.ID, mode, c.ctx.Difficulty.Name)
	return true
}

// Pause freezes the active round
func (c *Controller) Pause() bool {
	if !c.transition(StatePaused) {
		return false
	}
	log.Printf("round %s paused at tick %d", c.round.ID, c.round.Tick)
	return true
}

// Resume continues a paused round
func (c *Controller) Resume() bool {
	if c.state != StatePaused || !c.transition(StatePlaying) {
		return false
	}
	log.Printf("round %s resumed after %v total pause", c.round.ID, c.ctx.Clock.TotalPauseDuration())
	return true
}

// QuitToMenu abandons the active round
func (c *Controller) QuitToMenu() bool {
	if c.state == StateMenu || !c.transition(StateMenu) {
		return false
	}
	log.Printf("round %s abandoned at tick %d", c.round.ID, c.round.Tick)
	c.round = nil
	return true
}

// Update applies one input snapshot; returns false once exit was requested
func (c *Controller) Update(snap input.Snapshot) bool {
	if snap.Exit {
		c.exit = true
		return false
	}

	switch c.state {
	case StateMenu:
		c.updateMenu(snap)
	case StatePlaying:
		switch {
		case snap.Pause:
			c.Pause()
		case snap.Quit:
			c.QuitToMenu()
		default:
			c.tick(snap)
		}
	case StatePaused:
		switch {
		case snap.Pause:
			c.Resume()
		case snap.Quit:
			c.QuitToMenu()
		}
	}
	return true
}

func (c *Controller) updateMenu(snap input.Snapshot) {
	if snap.MenuUp && c.menuIndex > 0 {
		c.menuIndex--
	}
	if snap.MenuDown && c.menuIndex < len(MenuModes)-1 {
		c.menuIndex++
	}

	switch {
	case snap.MenuSelect == input.MenuChoiceAI:
		c.StartRound(core.ModeAI)
	case snap.MenuSelect == input.MenuChoicePVP:
		c.StartRound(core.ModePVP)
	case snap.MenuConfirm:
		c.StartRound(MenuModes[c.menuIndex])
	}
}

func (c *Controller) tick(snap input.Snapshot) {
	res := c.rounds.Tick(c.round, snap, c.ctx.Clock.Now())
	c.ctx.Router.Dispatch(res.Events)

	if res.Outcome.Over {
		c.finish(res.Outcome)
	}
}

func (c *Controller) finish(outcome engine.Outcome) {
	c.lastOutcome = outcome
	c.lastOutcomeAt = c.ctx.Clock.RealTime()
	c.statOutcome.Store(outcome.Label)

	log.Printf("round %s finished: %s after %d ticks (%v); %s",
		c.round.ID, outcome.Label, c.round.Tick, c.round.Elapsed(c.ctx.Clock.Now()).Round(time.Millisecond), c.ctx.Status.Summary())

	c.transition(StateMenu)
	c.round = nil
}

// Frame builds the presentation data for the current state
func (c *Controller) Frame() Frame {
	f := Frame{
		State:      c.state,
		MenuIndex:  c.menuIndex,
		Difficulty: c.ctx.Difficulty.Name,
	}
	if c.round != nil {
		f.HasRound = true
		f.View = c.rounds.View(c.round, c.ctx.Clock.Now())
	}
	if c.lastOutcome.Over && c.ctx.Clock.RealTime().Sub(c.lastOutcomeAt) < constants.OutcomeBannerDuration {
		f.Banner = c.lastOutcome.Label
	}
	return f
}

// roundLogger writes power-up and round events to the debug log
type roundLogger struct{}

func (l *roundLogger) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventPowerUpSpawned,
		engine.EventPowerUpCollected,
		engine.EventPowerUpExpired,
	}
}

func (l *roundLogger) HandleEvent(ev engine.GameEvent) {
	if p, ok := ev.Payload.(engine.PowerUpPayload); ok {
		log.Printf("tick %d: %s %s id=%d side=%s", ev.Tick, ev.Type, p.Kind, p.ID, p.Side)
	}
}
