package core

// Rect is an axis-aligned rectangle in arena coordinates
// X, Y is the top-left corner; Y grows downward
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect from corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects reports strict overlap; rects sharing only an edge do not collide
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies entirely inside r, edges inclusive
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() &&
		o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// Translate returns a copy moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
