package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the game
const (
	KeyEngineTicks         = "engine.ticks"
	KeyEngineTickMillis    = "engine.tick_ms"
	KeyRoundStarted        = "round.started"
	KeyRoundFinished       = "round.finished"
	KeyCombatShots         = "combat.shots"
	KeyCombatVolleys       = "combat.volleys"
	KeyCombatHits          = "combat.hits"
	KeyPowerUpSpawned      = "powerup.spawned"
	KeyPowerUpSpawnSkipped = "powerup.spawn_skipped"
	KeyPowerUpExpired      = "powerup.expired"
	KeyPowerUpCollected    = "powerup.collected"
	KeySessionPaused       = "session.paused"
	KeySessionState        = "session.state"
	KeyLastOutcome         = "round.last_outcome"
)

// Registry is the central metrics facade
// Owners cache pointers once; the tick loop writes straight to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Counters returns a point-in-time copy of all integer metrics
func (r *Registry) Counters() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// Summary renders integer metrics as sorted key=value pairs for log lines
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	return b.String()
}
