package vmath

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/space-blaster/core"
)

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return mgl64.Vec2{x2, y2}.Sub(mgl64.Vec2{x1, y1}).Len()
}

// CenterDistance returns the distance between rect centers
func CenterDistance(a, b core.Rect) float64 {
	return Distance(a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY())
}

// StepToward moves from by at most step toward to on a single axis
// Overshoot lands exactly on the target
func StepToward(from, to, step float64) float64 {
	switch {
	case from < to:
		if from+step > to {
			return to
		}
		return from + step
	case from > to:
		if from-step < to {
			return to
		}
		return from - step
	}
	return from
}
