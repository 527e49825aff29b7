package core

import "github.com/lixenwraith/space-blaster/constants"

// Arena describes the playfield: outer bounds, the impassable divider and
// the inset used when placing power-ups
type Arena struct {
	Width, Height float64
	Divider       Rect
	BottomMargin  float64
	SpawnInset    float64
}

// DefaultArena returns the standard 900x500 field with a centered divider
func DefaultArena() Arena {
	w := float64(constants.ArenaWidth)
	h := float64(constants.ArenaHeight)
	dw := float64(constants.DividerWidth)
	return Arena{
		Width:        w,
		Height:       h,
		Divider:      NewRect(w/2-dw/2, 0, dw, h),
		BottomMargin: constants.ArenaBottomMargin,
		SpawnInset:   constants.SpawnInset,
	}
}

// Bounds returns the whole field as a rect
func (a Arena) Bounds() Rect {
	return NewRect(0, 0, a.Width, a.Height)
}

// MovementBounds returns the region a ship on the given side may occupy
func (a Arena) MovementBounds(side Side) Rect {
	h := a.Height - a.BottomMargin
	if side == SideLeft {
		return NewRect(0, 0, a.Divider.X, h)
	}
	return NewRect(a.Divider.Right(), 0, a.Width-a.Divider.Right(), h)
}

// SpawnZone returns the region power-up top-left corners are sampled from
func (a Arena) SpawnZone(side Side) Rect {
	in := a.SpawnInset
	y := in
	h := a.Height - 2*in
	if side == SideLeft {
		return NewRect(in, y, a.Divider.X-2*in, h)
	}
	x := a.Divider.Right() + in
	return NewRect(x, y, a.Width-in-x, h)
}

// IsOnSide reports whether x lies strictly on the given side of the divider center
func (a Arena) IsOnSide(side Side, x float64) bool {
	mid := a.Divider.CenterX()
	if side == SideLeft {
		return x < mid
	}
	return x > mid
}

// StartSlot returns the initial top-left corner for the ship on side
func (a Arena) StartSlot(side Side) (x, y float64) {
	if side == SideLeft {
		return constants.LeftStartX, constants.StartY
	}
	return constants.RightStartX, constants.StartY
}
