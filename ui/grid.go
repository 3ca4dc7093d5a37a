package ui

import "math"

// Grid is a container that lays its children out in rows and columns.
// Tracks are declared with RowDefinition and ColumnDefinition; a grid
// with no definitions on an axis behaves as a single star track filling
// that axis. Children are positioned by Placement and may span several
// tracks.
//
// Measurement runs in ordered phases so content-sized tracks settle
// before proportional ones: auto/auto children first, then children
// mixing star and auto axes (with a second pass when star sizing fed
// back into auto tracks), then the remaining fixed children, and
// finally the fully star-driven ones. Star tracks are re-expanded
// against the available size before every phase.
type Grid struct {
	rows     []*RowDefinition
	cols     []*ColumnDefinition
	children []*gridChild

	rowM *trackMatrix
	colM *trackMatrix

	onChanged func()
	dirty     bool
	desired   Size
}

type gridChild struct {
	element Element
	place   Placement

	eff      Placement
	autoRow  bool
	starRow  bool
	autoCol  bool
	starCol  bool
	measured bool
	desired  Size
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{dirty: true}
}

// SetOnChanged installs a hook invoked whenever the grid's definitions
// or children change, so an owner can schedule a fresh layout pass.
func (g *Grid) SetOnChanged(fn func()) {
	g.onChanged = fn
}

func (g *Grid) invalidate() {
	g.dirty = true
	if g.onChanged != nil {
		g.onChanged()
	}
}

// AddRow appends a row definition. The grid publishes the row's Actual
// size and Offset through the same pointer after each Arrange.
func (g *Grid) AddRow(def *RowDefinition) {
	g.rows = append(g.rows, def)
	g.invalidate()
}

// AddColumn appends a column definition. The grid publishes the
// column's Actual size and Offset through the same pointer after each
// Arrange.
func (g *Grid) AddColumn(def *ColumnDefinition) {
	g.cols = append(g.cols, def)
	g.invalidate()
}

// Add places a child element in the grid.
func (g *Grid) Add(el Element, p Placement) {
	g.children = append(g.children, &gridChild{element: el, place: p})
	g.invalidate()
}

// SetPlacement moves an already-added child. It is a no-op if the
// element is not in the grid.
func (g *Grid) SetPlacement(el Element, p Placement) {
	for _, c := range g.children {
		if c.element == el {
			c.place = p
			g.invalidate()
			return
		}
	}
}

// Desired returns the size computed by the last Measure.
func (g *Grid) Desired() Size { return g.desired }

func (g *Grid) rowCount() int {
	if len(g.rows) == 0 {
		return 1
	}
	return len(g.rows)
}

func (g *Grid) colCount() int {
	if len(g.cols) == 0 {
		return 1
	}
	return len(g.cols)
}

func (g *Grid) rowSpec() (kinds []GridUnitKind, values, mins, maxs []float64) {
	if len(g.rows) == 0 {
		return []GridUnitKind{UnitStar}, []float64{1}, []float64{0}, []float64{math.Inf(1)}
	}
	n := len(g.rows)
	kinds = make([]GridUnitKind, n)
	values = make([]float64, n)
	mins = make([]float64, n)
	maxs = make([]float64, n)
	for i, d := range g.rows {
		kinds[i] = d.Height.Kind
		if d.Height.Kind == UnitStar {
			values[i] = d.Height.weight()
		} else {
			values[i] = d.Height.Value
		}
		mins[i], maxs[i] = d.bounds()
	}
	return kinds, values, mins, maxs
}

func (g *Grid) colSpec() (kinds []GridUnitKind, values, mins, maxs []float64) {
	if len(g.cols) == 0 {
		return []GridUnitKind{UnitStar}, []float64{1}, []float64{0}, []float64{math.Inf(1)}
	}
	n := len(g.cols)
	kinds = make([]GridUnitKind, n)
	values = make([]float64, n)
	mins = make([]float64, n)
	maxs = make([]float64, n)
	for i, d := range g.cols {
		kinds[i] = d.Width.Kind
		if d.Width.Kind == UnitStar {
			values[i] = d.Width.weight()
		} else {
			values[i] = d.Width.Value
		}
		mins[i], maxs[i] = d.bounds()
	}
	return kinds, values, mins, maxs
}

// Measure sizes the grid's tracks against the available space and
// returns the grid's desired size, the per-axis sum of track desired
// sizes.
func (g *Grid) Measure(available Size) Size {
	rows, cols := g.rowCount(), g.colCount()
	if g.rowM == nil || g.rowM.size() != rows {
		g.rowM = newTrackMatrix(rows)
	}
	if g.colM == nil || g.colM.size() != cols {
		g.colM = newTrackMatrix(cols)
	}
	rk, rv, rmin, rmax := g.rowSpec()
	ck, cv, cmin, cmax := g.colSpec()
	g.rowM.reset(rk, rv, rmin, rmax)
	g.colM.reset(ck, cv, cmin, cmax)

	for _, c := range g.children {
		c.eff = c.place.clamped(rows, cols)
		c.measured = false
		c.autoRow, c.starRow = g.spanKinds(g.rowM, c.eff.Row, c.eff.Row+c.eff.RowSpan-1)
		c.autoCol, c.starCol = g.spanKinds(g.colM, c.eff.Column, c.eff.Column+c.eff.ColumnSpan-1)
	}

	starFedAuto := false
	for phase := 0; phase < 6; phase++ {
		if phase == 3 && !starFedAuto {
			continue
		}
		g.rowM.expandStars(available.Height)
		g.colM.expandStars(available.Width)
		for _, c := range g.children {
			if !phaseMatches(phase, c) {
				continue
			}
			g.measureChild(phase, c)
			if phase == 2 && c.autoRow {
				starFedAuto = true
			}
		}
		g.rowM.distribute()
		g.colM.distribute()
	}

	g.desired = Size{Width: g.colM.desiredSum(), Height: g.rowM.desiredSum()}
	if g.desired.Width > available.Width {
		g.desired.Width = available.Width
	}
	if g.desired.Height > available.Height {
		g.desired.Height = available.Height
	}
	g.dirty = false
	return g.desired
}

// phaseMatches selects which children a measurement phase sizes:
//
//	0: auto rows and auto columns, no stars
//	1: star rows with auto columns
//	2: auto rows with star columns
//	3: repeat of phase 1, run only when phase 2 fed star-driven
//	   sizes into auto rows
//	4: every other child without star tracks
//	5: every remaining star-involved child
func phaseMatches(phase int, c *gridChild) bool {
	switch phase {
	case 0:
		return c.autoRow && c.autoCol && !c.starRow && !c.starCol
	case 1:
		return c.starRow && c.autoCol && !c.starCol
	case 2:
		return c.autoRow && c.starCol && !c.starRow
	case 3:
		return c.starRow && c.autoCol && !c.starCol
	case 4:
		return !c.measured && !c.starRow && !c.starCol
	case 5:
		return !c.measured
	default:
		return false
	}
}

// measureChild offers the child its spanned track sizes, with +Inf on
// axes the phase leaves unconstrained, and registers the resulting
// desired size back into both axes.
func (g *Grid) measureChild(phase int, c *gridChild) {
	rowStart, rowEnd := c.eff.Row, c.eff.Row+c.eff.RowSpan-1
	colStart, colEnd := c.eff.Column, c.eff.Column+c.eff.ColumnSpan-1
	offered := Size{
		Width:  g.colM.offeredSum(colStart, colEnd),
		Height: g.rowM.offeredSum(rowStart, rowEnd),
	}
	switch phase {
	case 0, 4:
		if c.autoRow {
			offered.Height = math.Inf(1)
		}
		if c.autoCol {
			offered.Width = math.Inf(1)
		}
	case 1, 3:
		offered.Width = math.Inf(1)
	case 2:
		offered.Height = math.Inf(1)
	}
	c.desired = c.element.Measure(offered)
	c.measured = true
	g.rowM.register(rowStart, rowEnd, c.desired.Height)
	g.colM.register(colStart, colEnd, c.desired.Width)
}

func (g *Grid) spanKinds(m *trackMatrix, start, end int) (hasAuto, hasStar bool) {
	for i := start; i <= end; i++ {
		switch m.cells[i][i].kind {
		case UnitAuto:
			hasAuto = true
		case UnitStar:
			hasStar = true
		}
	}
	return hasAuto, hasStar
}

// Arrange finalizes track sizes against the given bounds, publishes
// Actual and Offset on every definition, and places each child in the
// rectangle covered by its spanned tracks.
func (g *Grid) Arrange(bounds Rect) Size {
	if g.rowM == nil || g.dirty ||
		g.rowM.size() != g.rowCount() || g.colM.size() != g.colCount() {
		g.Measure(bounds.Size())
	}

	g.rowM.restore()
	g.colM.restore()
	if !approxEqual(g.rowM.offeredSum(0, g.rowM.size()-1), bounds.Height) {
		g.rowM.expandStars(bounds.Height)
	}
	if !approxEqual(g.colM.offeredSum(0, g.colM.size()-1), bounds.Width) {
		g.colM.expandStars(bounds.Width)
	}

	off := 0.0
	for i, d := range g.rows {
		t := &g.rowM.cells[i][i]
		d.Actual = t.offered
		d.Offset = off
		off += t.offered
	}
	off = 0
	for i, d := range g.cols {
		t := &g.colM.cells[i][i]
		d.Actual = t.offered
		d.Offset = off
		off += t.offered
	}

	rowOff := offsets(g.rowM)
	colOff := offsets(g.colM)
	for _, c := range g.children {
		rowStart, rowEnd := c.eff.Row, c.eff.Row+c.eff.RowSpan-1
		colStart, colEnd := c.eff.Column, c.eff.Column+c.eff.ColumnSpan-1
		rect := Rect{
			X:      bounds.X + colOff[colStart],
			Y:      bounds.Y + rowOff[rowStart],
			Width:  g.colM.offeredSum(colStart, colEnd),
			Height: g.rowM.offeredSum(rowStart, rowEnd),
		}
		c.element.Arrange(rect)
	}

	return Size{
		Width:  g.colM.offeredSum(0, g.colM.size()-1),
		Height: g.rowM.offeredSum(0, g.rowM.size()-1),
	}
}

func offsets(m *trackMatrix) []float64 {
	out := make([]float64, m.size())
	off := 0.0
	for i := range m.cells {
		out[i] = off
		off += m.cells[i][i].offered
	}
	return out
}
