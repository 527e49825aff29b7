package audio

import (
	"github.com/lixenwraith/space-blaster/engine"
)

// EventHandler turns gameplay events into sound cues
type EventHandler struct {
	player Player
}

// NewEventHandler binds a player to the event router
func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

// EventTypes returns the events that produce sound
func (h *EventHandler) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventShotFired,
		engine.EventHitRegistered,
		engine.EventPowerUpCollected,
		engine.EventRoundOver,
	}
}

// HandleEvent plays the cue mapped to ev
func (h *EventHandler) HandleEvent(ev engine.GameEvent) {
	if h.player == nil {
		return
	}
	if st, ok := SoundFor(ev.Type); ok {
		h.player.Play(st)
	}
}

// SoundFor maps an event type to its sound
func SoundFor(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventShotFired:
		return SoundShot, true
	case engine.EventHitRegistered:
		return SoundHit, true
	case engine.EventPowerUpCollected:
		return SoundPowerUp, true
	case engine.EventRoundOver:
		return SoundFanfare, true
	}
	return 0, false
}
