package ui

import "math"

// GridUnitKind selects how a row or column track is sized.
type GridUnitKind uint8

const (
	// UnitAuto sizes the track to its content.
	UnitAuto GridUnitKind = iota
	// UnitPixel gives the track a fixed size in layout units.
	UnitPixel
	// UnitStar gives the track a weighted share of the space left after
	// pixel and auto tracks are sized.
	UnitStar
)

func (k GridUnitKind) String() string {
	switch k {
	case UnitAuto:
		return "auto"
	case UnitPixel:
		return "pixel"
	case UnitStar:
		return "star"
	default:
		return "unknown"
	}
}

// GridLength is the sizing request for a track. Value is the size in
// layout units for UnitPixel and the relative weight for UnitStar; it
// is ignored for UnitAuto. A UnitStar length with a zero Value weighs
// as one star.
type GridLength struct {
	Value float64
	Kind  GridUnitKind
}

// Px returns a fixed-size grid length.
func Px(v float64) GridLength { return GridLength{Value: v, Kind: UnitPixel} }

// Stars returns a proportional grid length with the given weight.
func Stars(weight float64) GridLength { return GridLength{Value: weight, Kind: UnitStar} }

// AutoLength returns a content-sized grid length.
func AutoLength() GridLength { return GridLength{Kind: UnitAuto} }

func (l GridLength) weight() float64 {
	if l.Value <= 0 {
		return 1
	}
	return l.Value
}

// RowDefinition declares one grid row. MinHeight and MaxHeight bound
// the track regardless of kind; a MaxHeight of zero means unbounded.
// Actual and Offset are published by the grid after Arrange.
type RowDefinition struct {
	Height    GridLength
	MinHeight float64
	MaxHeight float64

	Actual float64
	Offset float64
}

// ColumnDefinition declares one grid column. MinWidth and MaxWidth
// bound the track regardless of kind; a MaxWidth of zero means
// unbounded. Actual and Offset are published by the grid after Arrange.
type ColumnDefinition struct {
	Width    GridLength
	MinWidth float64
	MaxWidth float64

	Actual float64
	Offset float64
}

func (d *RowDefinition) bounds() (min, max float64) {
	min, max = d.MinHeight, d.MaxHeight
	if max <= 0 {
		max = math.Inf(1)
	}
	if min > max {
		min = max
	}
	return min, max
}

func (d *ColumnDefinition) bounds() (min, max float64) {
	min, max = d.MinWidth, d.MaxWidth
	if max <= 0 {
		max = math.Inf(1)
	}
	if min > max {
		min = max
	}
	return min, max
}

// Placement locates a child within the grid. Row and Column index the
// first spanned track; RowSpan and ColumnSpan count spanned tracks and
// default to one. Out-of-range values are clamped to the grid's track
// counts at layout time.
type Placement struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
}

func (p Placement) clamped(rows, cols int) Placement {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= rows {
		p.Row = rows - 1
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if p.Column >= cols {
		p.Column = cols - 1
	}
	if p.RowSpan < 1 {
		p.RowSpan = 1
	}
	if p.Row+p.RowSpan > rows {
		p.RowSpan = rows - p.Row
	}
	if p.ColumnSpan < 1 {
		p.ColumnSpan = 1
	}
	if p.Column+p.ColumnSpan > cols {
		p.ColumnSpan = cols - p.Column
	}
	return p
}
