package session

// State is the top-level application state
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

var validTransitions = map[State][]State{
	StateMenu:    {StatePlaying},
	StatePlaying: {StatePaused, StateMenu},
	StatePaused:  {StatePlaying, StateMenu},
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
