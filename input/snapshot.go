package input

import "github.com/lixenwraith/space-blaster/core"

// SideIntent is the per-ship part of a snapshot
// Direction flags are levels (held this tick); Fire is an edge
type SideIntent struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// Any reports whether any direction or fire is requested
func (s SideIntent) Any() bool {
	return s.Up || s.Down || s.Left || s.Right || s.Fire
}

// Snapshot is the input state sampled once per tick
// Everything except the direction flags is an edge: true only on the tick the key was pressed
type Snapshot struct {
	Left, Right SideIntent

	Pause bool // Toggle between PLAYING and PAUSED
	Quit  bool // Back to menu from a round
	Exit  bool // Leave the program

	MenuUp      bool
	MenuDown    bool
	MenuConfirm bool
	MenuSelect  MenuChoice // Direct mode pick, MenuChoiceNone when absent
}

// Side returns the intent for the ship on side
func (s Snapshot) Side(side core.Side) SideIntent {
	if side == core.SideLeft {
		return s.Left
	}
	return s.Right
}

// MenuChoice is a direct menu selection by hotkey
type MenuChoice uint8

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoiceAI
	MenuChoicePVP
)
