package ui

import "math"

// Element is the layout protocol. Measure asks the element how much
// space it wants given an available size (either axis may be +Inf);
// Arrange assigns the element its final rectangle. Parents call Measure
// on every child before any Arrange.
type Element interface {
	// Measure computes and returns the element's desired size under the
	// given constraint. The result must not exceed a finite constraint.
	Measure(available Size) Size

	// Arrange places the element within bounds and returns the size it
	// actually occupies.
	Arrange(bounds Rect) Size
}

// Block is a leaf element with a fixed preferred size, useful as a
// spacer or as the sizing proxy for externally rendered content.
type Block struct {
	Preferred Size
	MinSize   Size
	MaxSize   Size

	desired Size
	bounds  Rect
}

// NewBlock returns a Block that asks for the given preferred size and
// has no minimum or maximum.
func NewBlock(preferred Size) *Block {
	return &Block{
		Preferred: preferred,
		MaxSize:   Unconstrained(),
	}
}

// Measure clamps the preferred size to [MinSize, MaxSize], then caps it
// at the available constraint.
func (b *Block) Measure(available Size) Size {
	max := b.MaxSize
	if max.Width <= 0 {
		max.Width = math.Inf(1)
	}
	if max.Height <= 0 {
		max.Height = math.Inf(1)
	}
	d := Size{
		Width:  clamp(b.Preferred.Width, b.MinSize.Width, max.Width),
		Height: clamp(b.Preferred.Height, b.MinSize.Height, max.Height),
	}
	if d.Width > available.Width {
		d.Width = available.Width
	}
	if d.Height > available.Height {
		d.Height = available.Height
	}
	b.desired = d
	return d
}

// Arrange records the final rectangle and fills it.
func (b *Block) Arrange(bounds Rect) Size {
	b.bounds = bounds
	return bounds.Size()
}

// Desired returns the size computed by the last Measure.
func (b *Block) Desired() Size { return b.desired }

// Bounds returns the rectangle assigned by the last Arrange.
func (b *Block) Bounds() Rect { return b.bounds }
