package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/input"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestController(t *testing.T) (*Controller, *engine.MockTimeProvider) {
	t.Helper()
	mock := engine.NewMockTimeProvider(epoch)
	ctx := engine.NewGameContext(constants.DifficultyEasy, 1, mock)
	return NewController(ctx), mock
}

func TestCanTransition(t *testing.T) {
	valid := []struct{ from, to State }{
		{StateMenu, StatePlaying},
		{StatePlaying, StatePaused},
		{StatePlaying, StateMenu},
		{StatePaused, StatePlaying},
		{StatePaused, StateMenu},
	}
	for _, tc := range valid {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be valid", tc.from, tc.to)
	}

	invalid := []struct{ from, to State }{
		{StateMenu, StatePaused},
		{StateMenu, StateMenu},
		{StatePlaying, StatePlaying},
		{StatePaused, StatePaused},
	}
	for _, tc := range invalid {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be invalid", tc.from, tc.to)
	}
}

func TestNewControllerStartsInMenu(t *testing.T) {
	c, _ := newTestController(t)

	assert.Equal(t, StateMenu, c.State())
	assert.Nil(t, c.Round())
	assert.True(t, c.ctx.Clock.IsPaused())
	assert.False(t, c.Pause())
	assert.False(t, c.Resume())
	assert.False(t, c.QuitToMenu())
}

func TestStartRound(t *testing.T) {
	c, _ := newTestController(t)

	require.True(t, c.StartRound(core.ModePVP))
	assert.Equal(t, StatePlaying, c.State())
	require.NotNil(t, c.Round())
	assert.Equal(t, core.ModePVP, c.Round().Mode)
	assert.False(t, c.ctx.Clock.IsPaused())

	assert.False(t, c.StartRound(core.ModeAI), "cannot start a round mid-round")
	assert.Equal(t, core.ModePVP, c.Round().Mode)
}

// TestPauseFreezesGameTime verifies power-up ages and buffs do not advance while paused
func TestPauseFreezesGameTime(t *testing.T) {
	c, mock := newTestController(t)
	require.True(t, c.StartRound(core.ModePVP))
	rs := c.Round()
	rs.NextSpawnInterval = time.Hour

	now := c.ctx.Clock.Now()
	rs.PowerUps = append(rs.PowerUps, components.NewPowerUp(rs.NextEntityID(), components.PowerUpHealth, 300, 60, now))
	rs.Ship(core.SideLeft).MultiShotUntil = now.Add(constants.MultiShotDuration)

	mock.Advance(time.Second)
	require.True(t, c.Update(input.Snapshot{Pause: true}))
	assert.Equal(t, StatePaused, c.State())

	mock.Advance(time.Minute)
	c.Update(input.Snapshot{})
	assert.Equal(t, StatePaused, c.State())

	require.True(t, c.Update(input.Snapshot{Pause: true}))
	assert.Equal(t, StatePlaying, c.State())

	mock.Advance(time.Second)
	c.Update(input.Snapshot{})

	assert.Len(t, rs.PowerUps, 1, "power-up aged only 2s of game time")
	assert.True(t, rs.Ship(core.SideLeft).MultiShotActive(c.ctx.Clock.Now()))
}

func TestQuitToMenuDiscardsRound(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.StartRound(core.ModeAI))
	require.True(t, c.Pause())

	c.Update(input.Snapshot{Quit: true})

	assert.Equal(t, StateMenu, c.State())
	assert.Nil(t, c.Round())
	assert.True(t, c.ctx.Clock.IsPaused())

	require.True(t, c.StartRound(core.ModeAI))
	require.True(t, c.QuitToMenu())
	assert.Equal(t, StateMenu, c.State())
}

func TestResumeOnlyFromPaused(t *testing.T) {
	c, _ := newTestController(t)
	require.True(t, c.StartRound(core.ModePVP))
	assert.False(t, c.Resume())
	assert.True(t, c.Pause())
	assert.False(t, c.Pause())
	assert.True(t, c.Resume())
}

// TestMenuNavigation checks cursor movement, confirm and direct selection
func TestMenuNavigation(t *testing.T) {
	c, _ := newTestController(t)

	c.Update(input.Snapshot{MenuUp: true})
	assert.Equal(t, 0, c.Frame().MenuIndex)
	c.Update(input.Snapshot{MenuDown: true})
	c.Update(input.Snapshot{MenuDown: true})
	assert.Equal(t, 1, c.Frame().MenuIndex)

	c.Update(input.Snapshot{MenuConfirm: true})
	require.Equal(t, StatePlaying, c.State())
	assert.Equal(t, core.ModePVP, c.Round().Mode)

	c.QuitToMenu()
	c.Update(input.Snapshot{MenuSelect: input.MenuChoiceAI})
	require.Equal(t, StatePlaying, c.State())
	assert.Equal(t, core.ModeAI, c.Round().Mode)
}

func TestExit(t *testing.T) {
	c, _ := newTestController(t)
	assert.False(t, c.Update(input.Snapshot{Exit: true}))
	assert.True(t, c.ExitRequested())
}

// TestRoundOverReturnsToMenu verifies a lethal hit ends the round and shows the banner
func TestRoundOverReturnsToMenu(t *testing.T) {
	c, mock := newTestController(t)
	require.True(t, c.StartRound(core.ModeAI))
	rs := c.Round()
	rs.NextSpawnInterval = time.Hour
	rs.Ship(core.SideLeft).Health = 1
	rs.Projectiles[core.SideRight] = append(rs.Projectiles[core.SideRight],
		components.NewProjectile(rs.NextEntityID(), core.SideRight, 155, 318))

	c.Update(input.Snapshot{})

	assert.Equal(t, StateMenu, c.State())
	assert.Nil(t, c.Round())
	assert.Equal(t, constants.LabelComputerWins, c.LastOutcome().Label)
	assert.Equal(t, core.SideRight, c.LastOutcome().Winner)

	f := c.Frame()
	assert.False(t, f.HasRound)
	assert.Equal(t, constants.LabelComputerWins, f.Banner)

	mock.Advance(constants.OutcomeBannerDuration)
	assert.Empty(t, c.Frame().Banner)
}

type shotCounter struct{ n int }

func (s *shotCounter) HandleEvent(engine.GameEvent) { s.n++ }
func (s *shotCounter) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventShotFired}
}

func TestTickEventsDispatched(t *testing.T) {
	c, _ := newTestController(t)
	counter := &shotCounter{}
	c.ctx.Router.Register(counter)

	require.True(t, c.StartRound(core.ModePVP))
	c.Update(input.Snapshot{Left: input.SideIntent{Fire: true}})

	assert.Equal(t, 1, counter.n)
	f := c.Frame()
	require.True(t, f.HasRound)
	assert.Equal(t, uint64(1), f.View.Tick)
	assert.Equal(t, "easy", f.Difficulty)
}
