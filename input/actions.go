package input

// Action is a semantic input resolved from a key
type Action uint8

const (
	ActionNone Action = iota

	// Left ship
	ActionLeftUp
	ActionLeftDown
	ActionLeftLeft
	ActionLeftRight
	ActionLeftFire

	// Right ship
	ActionRightUp
	ActionRightDown
	ActionRightLeft
	ActionRightRight
	ActionRightFire

	// Session
	ActionPause
	ActionQuit
	ActionExit

	// Menu
	ActionMenuUp
	ActionMenuDown
	ActionMenuConfirm
	ActionSelectAI
	ActionSelectPVP

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:        "none",
	ActionLeftUp:      "left_up",
	ActionLeftDown:    "left_down",
	ActionLeftLeft:    "left_left",
	ActionLeftRight:   "left_right",
	ActionLeftFire:    "left_fire",
	ActionRightUp:     "right_up",
	ActionRightDown:   "right_down",
	ActionRightLeft:   "right_left",
	ActionRightRight:  "right_right",
	ActionRightFire:   "right_fire",
	ActionPause:       "pause",
	ActionQuit:        "quit",
	ActionExit:        "exit",
	ActionMenuUp:      "menu_up",
	ActionMenuDown:    "menu_down",
	ActionMenuConfirm: "menu_confirm",
	ActionSelectAI:    "select_ai",
	ActionSelectPVP:   "select_pvp",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// IsHeld reports whether the action is a level (movement) rather than an edge
func (a Action) IsHeld() bool {
	switch a {
	case ActionLeftUp, ActionLeftDown, ActionLeftLeft, ActionLeftRight,
		ActionRightUp, ActionRightDown, ActionRightLeft, ActionRightRight:
		return true
	}
	return false
}
