package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/space-blaster/status"
)

// StepFunc runs one fixed tick; now is real time from the scheduler's provider
// Returning false stops the scheduler
type StepFunc func(now time.Time) bool

// ClockScheduler drives game logic on a fixed tick
// All round mutation happens inside the step callback on the Run goroutine
type ClockScheduler struct {
	tickInterval time.Duration
	realTime     TimeProvider

	tickCount atomic.Uint64

	// Cached metric pointers
	statTicks  *atomic.Int64
	statTickMs *status.AtomicFloat
}

// NewClockScheduler creates a scheduler ticking every tickInterval
func NewClockScheduler(tickInterval time.Duration, realTime TimeProvider, reg *status.Registry) *ClockScheduler {
	if realTime == nil {
		realTime = NewMonotonicTimeProvider()
	}
	return &ClockScheduler{
		tickInterval: tickInterval,
		realTime:     realTime,
		statTicks:    reg.Ints.Get(status.KeyEngineTicks),
		statTickMs:   reg.Floats.Get(status.KeyEngineTickMillis),
	}
}

// TickInterval returns the configured interval
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns ticks executed since creation
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Run blocks, invoking step once per interval until step returns false
// or ctx is cancelled; cancellation is observed between ticks only
func (cs *ClockScheduler) Run(ctx context.Context, step StepFunc) error {
	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		// Both channels may be ready; cancellation wins
		if err := ctx.Err(); err != nil {
			return err
		}
		if !cs.runTick(step) {
			return nil
		}
	}
}

// runTick executes and measures one step
func (cs *ClockScheduler) runTick(step StepFunc) bool {
	start := cs.realTime.Now()
	cont := step(start)

	cs.tickCount.Add(1)
	cs.statTicks.Add(1)
	cs.statTickMs.Set(float64(cs.realTime.Now().Sub(start)) / float64(time.Millisecond))
	return cont
}
