package main

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/ttacon/chalk"

	"github.com/lixenwraith/space-blaster/audio"
	"github.com/lixenwraith/space-blaster/config"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/input"
	"github.com/lixenwraith/space-blaster/render"
	"github.com/lixenwraith/space-blaster/session"
	"github.com/lixenwraith/space-blaster/status"
)

// game wires the session, input, audio and renderer around one GameContext
type game struct {
	ctx        *engine.GameContext
	tracker    *input.KeyTracker
	controller *session.Controller
	renderer   *render.TerminalRenderer
	sound      *audio.SoundManager
	rounds     int
	outcomes   []string
}

// newGame builds every component; the sound manager is created but not opened
func newGame(cfg config.Config, surface render.Surface, clock engine.TimeProvider) *game {
	ctx := engine.NewGameContext(cfg.DifficultyPreset(), cfg.ResolvedSeed(), clock)

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Mute, cfg.MasterVolume))
	ctx.Router.Register(audio.NewEventHandler(sound))

	g := &game{
		ctx:        ctx,
		tracker:    input.NewKeyTracker(input.DefaultKeyTable(), constants.KeyHoldWindow),
		controller: session.NewController(ctx),
		renderer:   render.NewTerminalRenderer(surface, ctx.Status, cfg.Debug),
		sound:      sound,
	}
	ctx.Router.Register(g)

	if mode, ok := cfg.Mode(); ok {
		g.controller.StartRound(mode)
	}
	return g
}

// step runs one scheduler tick: sample input, advance the session, draw
func (g *game) step(now time.Time) bool {
	snap := g.tracker.Snapshot(now)
	prev := g.controller.State()
	if !g.controller.Update(snap) {
		return false
	}
	if g.controller.State() != prev {
		// Held keys do not carry across a state change
		g.tracker.Reset()
	}
	g.renderer.RenderFrame(g.controller.Frame())
	return true
}

// EventTypes implements engine.EventHandler to tally finished rounds
func (g *game) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventRoundOver}
}

// HandleEvent records round outcomes for the exit summary
func (g *game) HandleEvent(ev engine.GameEvent) {
	if p, ok := ev.Payload.(engine.RoundOverPayload); ok {
		g.rounds++
		g.outcomes = append(g.outcomes, p.Label)
	}
}

// summary renders the post-session report printed after the terminal is restored
func (g *game) summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s\n", chalk.Bold.TextStyle(constants.TitleText), " session summary", chalk.Reset)
	fmt.Fprintf(&b, "%sRounds played:%s %d\n", chalk.Cyan, chalk.Reset, g.rounds)

	for i, label := range g.outcomes {
		color := chalk.Yellow
		if label != constants.LabelLeftWins {
			color = chalk.Red
		}
		fmt.Fprintf(&b, "  %d. %s%s%s\n", i+1, color, label, chalk.Reset)
	}

	counters := g.ctx.Status.Counters()
	keys := make([]string, 0, len(counters))
	for k := range counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == status.KeyEngineTicks {
			continue
		}
		fmt.Fprintf(&b, "%s%-22s%s %d\n", chalk.Green, k, chalk.Reset, counters[k])
	}
	return b.String()
}

// openAudio starts the speaker; failure leaves the game silent
func (g *game) openAudio() {
	if err := g.sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silently: %v", err)
		return
	}
	log.Printf("audio initialized (muted=%v)", g.sound.IsMuted())
}
