package ui

import "math"

// epsilon is the tolerance used for all size comparisons. Layout
// arithmetic accumulates rounding error across track distribution, so
// exact float equality is never meaningful here.
const epsilon = 1e-6

// Size is a width/height pair. Either dimension may be +Inf, meaning
// the axis is unconstrained.
type Size struct {
	Width  float64
	Height float64
}

// Unconstrained returns a Size that places no limit on either axis.
func Unconstrained() Size {
	return Size{Width: math.Inf(1), Height: math.Inf(1)}
}

// Point is a position in layout space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in layout space.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Position returns the rectangle's top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
