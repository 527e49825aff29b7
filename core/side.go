package core

// Side identifies one half of the arena and the ship that owns it
type Side uint8

const (
	// SideLeft is the yellow ship, always human controlled
	SideLeft Side = iota
	// SideRight is the red ship, human in PVP and computer in AI mode
	SideRight
)

// Sides lists both sides in evaluation order
var Sides = [2]Side{SideLeft, SideRight}

// String returns the ship color name used in logs and banners
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "yellow"
	case SideRight:
		return "red"
	default:
		return "unknown"
	}
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Direction returns the horizontal sign of projectiles fired from this side
func (s Side) Direction() float64 {
	if s == SideLeft {
		return 1
	}
	return -1
}
