// Package engine holds the round state model and the loop infrastructure
// around it: time sources, the pausable game clock, the fixed-tick
// scheduler, and event routing.
//
// Event Flow:
//  1. Systems append events to the tick's EventBuffer while mutating RoundState
//  2. The round controller drains the buffer into the TickResult
//  3. The session dispatches the result through the EventRouter (audio, logging)
//
// Events are informational; no system reads another system's events within a tick.
package engine

import (
	"time"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/core"
)

// EventType identifies a game event
type EventType int

const (
	// EventShotFired is pushed once per successful firing action
	// Payload: ShotFiredPayload
	EventShotFired EventType = iota

	// EventHitRegistered is pushed once per projectile that strikes a ship
	// Payload: HitPayload
	EventHitRegistered

	// EventPowerUpSpawned is pushed when a spawn cycle places a power-up
	// Payload: PowerUpPayload (Side is the half it spawned on)
	EventPowerUpSpawned

	// EventPowerUpExpired is pushed when a power-up outlives its lifespan
	// Payload: PowerUpPayload
	EventPowerUpExpired

	// EventPowerUpCollected is pushed when a ship picks up a power-up
	// Payload: PowerUpPayload (Side is the collector)
	EventPowerUpCollected

	// EventRoundOver is pushed on the tick a ship reaches zero health
	// Payload: RoundOverPayload
	EventRoundOver
)

var eventTypeNames = map[EventType]string{
	EventShotFired:        "shot_fired",
	EventHitRegistered:    "hit_registered",
	EventPowerUpSpawned:   "powerup_spawned",
	EventPowerUpExpired:   "powerup_expired",
	EventPowerUpCollected: "powerup_collected",
	EventRoundOver:        "round_over",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ShotFiredPayload describes a firing action
type ShotFiredPayload struct {
	Side  core.Side
	Count int // 1 for a single shot, 3 for a multi-shot volley
}

// HitPayload describes a projectile strike
type HitPayload struct {
	Target core.Side
	Health int // Target health after the hit
}

// PowerUpPayload describes a power-up lifecycle change
type PowerUpPayload struct {
	ID   uint64
	Kind components.PowerUpKind
	Side core.Side
}

// RoundOverPayload carries the final outcome
type RoundOverPayload struct {
	Winner core.Side
	Label  string
	Ticks  uint64
}

// GameEvent is a single event with its origin tick
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64
	Timestamp time.Time
}

// EventBuffer collects events during one tick
// Owned by the tick goroutine, not safe for concurrent use
type EventBuffer struct {
	tick   uint64
	events []GameEvent
}

// NewEventBuffer creates a buffer stamping events with tick
func NewEventBuffer(tick uint64) *EventBuffer {
	return &EventBuffer{tick: tick}
}

// Push appends an event
func (b *EventBuffer) Push(t EventType, payload any, now time.Time) {
	b.events = append(b.events, GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      b.tick,
		Timestamp: now,
	})
}

// Len returns the number of buffered events
func (b *EventBuffer) Len() int {
	return len(b.events)
}

// Drain returns buffered events in push order and empties the buffer
func (b *EventBuffer) Drain() []GameEvent {
	out := b.events
	b.events = nil
	return out
}

// Count returns how many buffered events have type t
func (b *EventBuffer) Count(t EventType) int {
	n := 0
	for _, ev := range b.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
