package graphics

import (
	"hash"

	"github.com/chewxy/math32"
)

// Color is a normalized RGBA color. Components outside [0, 1] are clamped
// by the constructors; the zero value is transparent black.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a Color with each component clamped to [0, 1].
func NewColor(r, g, b, a float32) Color {
	return Color{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
		A: clamp01(a),
	}
}

// RGBA8 converts 8-bit channel values to a normalized Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Common colors.
var (
	White          = Color{1, 1, 1, 1}
	Black          = Color{0, 0, 0, 1}
	Transparent    = Color{0, 0, 0, 0}
	CornflowerBlue = Color{100.0 / 255, 149.0 / 255, 237.0 / 255, 1}
)

// Components returns the color as a 4-element array in RGBA order, the
// layout device blend-constant and clear calls take.
func (c Color) Components() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func (c Color) hash(h hash.Hash64) {
	hashWriteFloat32(h, c.R)
	hashWriteFloat32(h, c.G)
	hashWriteFloat32(h, c.B)
	hashWriteFloat32(h, c.A)
}

func clamp01(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}
