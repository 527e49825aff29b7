package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyTracker turns a stream of key presses into per-tick snapshots
// Terminals report presses and auto-repeats but no releases, so a movement
// key counts as held for the hold window after its last report.
// Press runs on the poll goroutine, Snapshot on the tick goroutine.
type KeyTracker struct {
	mu         sync.Mutex
	table      *KeyTable
	holdWindow time.Duration

	lastSeen [actionCount]time.Time // Held actions
	pending  [actionCount]bool      // Edge actions since the last snapshot
}

// NewKeyTracker creates a tracker over table
func NewKeyTracker(table *KeyTable, holdWindow time.Duration) *KeyTracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &KeyTracker{
		table:      table,
		holdWindow: holdWindow,
	}
}

// HandleKey records a terminal key event; returns false when the key is unbound
func (kt *KeyTracker) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	actions := kt.table.Lookup(ev)
	if len(actions) == 0 {
		return false
	}
	kt.Press(now, actions...)
	return true
}

// Press records actions directly
func (kt *KeyTracker) Press(now time.Time, actions ...Action) {
	kt.mu.Lock()
	defer kt.mu.Unlock()

	for _, a := range actions {
		if a == ActionNone || a >= actionCount {
			continue
		}
		if a.IsHeld() {
			kt.lastSeen[a] = now
		} else {
			kt.pending[a] = true
		}
	}
}

// Reset forgets all held keys and pending edges
func (kt *KeyTracker) Reset() {
	kt.mu.Lock()
	defer kt.mu.Unlock()
	kt.lastSeen = [actionCount]time.Time{}
	kt.pending = [actionCount]bool{}
}

// Snapshot samples state at now and consumes pending edges
func (kt *KeyTracker) Snapshot(now time.Time) Snapshot {
	kt.mu.Lock()
	defer kt.mu.Unlock()

	held := func(a Action) bool {
		seen := kt.lastSeen[a]
		return !seen.IsZero() && now.Sub(seen) <= kt.holdWindow
	}
	edge := func(a Action) bool {
		v := kt.pending[a]
		kt.pending[a] = false
		return v
	}

	snap := Snapshot{
		Left: SideIntent{
			Up:    held(ActionLeftUp),
			Down:  held(ActionLeftDown),
			Left:  held(ActionLeftLeft),
			Right: held(ActionLeftRight),
			Fire:  edge(ActionLeftFire),
		},
		Right: SideIntent{
			Up:    held(ActionRightUp),
			Down:  held(ActionRightDown),
			Left:  held(ActionRightLeft),
			Right: held(ActionRightRight),
			Fire:  edge(ActionRightFire),
		},
		Pause:       edge(ActionPause),
		Quit:        edge(ActionQuit),
		Exit:        edge(ActionExit),
		MenuUp:      edge(ActionMenuUp),
		MenuDown:    edge(ActionMenuDown),
		MenuConfirm: edge(ActionMenuConfirm),
	}

	ai, pvp := edge(ActionSelectAI), edge(ActionSelectPVP)
	switch {
	case ai:
		snap.MenuSelect = MenuChoiceAI
	case pvp:
		snap.MenuSelect = MenuChoicePVP
	}
	return snap
}
