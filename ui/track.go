package ui

import "math"

// track holds the per-pass sizing state of one axis entry. The grid
// keeps a square matrix of tracks per axis: diagonal cells are the real
// tracks, off-diagonal cells aggregate the requirements of children
// spanning from the column index to the row index.
type track struct {
	kind   GridUnitKind
	min    float64
	max    float64
	stars  float64 // star weight, diagonal star tracks only
	hasAut bool    // span contains an auto track, off-diagonal only
	hasStr bool    // span contains a star track, off-diagonal only

	offered float64 // size currently offered to content
	desired float64 // size demanded by content
}

// trackMatrix is one axis of grid state. The span work list carries
// (start, end) cell references separated by a sentinel: single-track
// requirements sit after it and pop first, multi-track requirements are
// pushed in front of it so wider, later-registered spans resolve after
// the narrower ones they overlap.
type trackMatrix struct {
	cells [][]track
	work  []spanRef
}

type spanRef struct {
	start, end int
}

var workSentinel = spanRef{start: -1, end: -1}

func newTrackMatrix(n int) *trackMatrix {
	cells := make([][]track, n)
	for i := range cells {
		cells[i] = make([]track, n)
	}
	return &trackMatrix{cells: cells}
}

func (m *trackMatrix) size() int { return len(m.cells) }

// reset reinitializes the diagonal from the given per-track
// definitions and clears every span cell and the work list. Pixel
// tracks are offered their clamped fixed size immediately, auto tracks
// their clamped zero, and star tracks stay at zero until expansion.
func (m *trackMatrix) reset(kinds []GridUnitKind, values, mins, maxs []float64) {
	for i := range m.cells {
		for j := range m.cells[i] {
			m.cells[i][j] = track{}
		}
		t := &m.cells[i][i]
		t.kind = kinds[i]
		t.min = mins[i]
		t.max = maxs[i]
		switch t.kind {
		case UnitPixel:
			t.offered = clamp(values[i], t.min, t.max)
			t.desired = t.offered
		case UnitStar:
			t.stars = values[i]
			t.desired = clamp(0, t.min, t.max)
		default:
			t.offered = clamp(0, t.min, t.max)
			t.desired = t.offered
		}
	}
	m.work = append(m.work[:0], workSentinel)
}

// register records that content spanning tracks [start, end] needs the
// given size. The requirement is aggregated into the span cell and
// queued for distribution; a requirement no larger than what the cell
// already carries is dropped.
func (m *trackMatrix) register(start, end int, size float64) {
	c := &m.cells[end][start]
	if start != end && c.desired == 0 && !c.hasAut && !c.hasStr {
		for i := start; i <= end; i++ {
			switch m.cells[i][i].kind {
			case UnitAuto:
				c.hasAut = true
			case UnitStar:
				c.hasStr = true
			}
		}
	}
	if size <= c.desired+epsilon {
		return
	}
	c.desired = size
	ref := spanRef{start: start, end: end}
	if start == end {
		m.work = append(m.work, ref)
		return
	}
	m.work = append([]spanRef{ref}, m.work...)
}

// distribute drains the work list from the end, allocating each queued
// requirement across its spanned tracks.
func (m *trackMatrix) distribute() {
	for len(m.work) > 0 {
		ref := m.work[len(m.work)-1]
		m.work = m.work[:len(m.work)-1]
		if ref == workSentinel {
			continue
		}
		if ref.start == ref.end {
			m.allocateSingle(ref.start)
		} else {
			m.allocateSpan(ref)
		}
	}
	m.work = append(m.work[:0], workSentinel)
}

func (m *trackMatrix) allocateSingle(i int) {
	t := &m.cells[i][i]
	t.desired = clamp(t.desired, t.min, t.max)
	if t.kind != UnitStar && t.desired > t.offered {
		t.offered = t.desired
	}
}

func (m *trackMatrix) allocateSpan(ref spanRef) {
	c := &m.cells[ref.end][ref.start]
	have := 0.0
	for i := ref.start; i <= ref.end; i++ {
		have += m.cells[i][i].desired
	}
	remaining := c.desired - have
	if remaining <= epsilon {
		return
	}
	if c.hasStr {
		m.growStars(ref, remaining)
		return
	}
	// Pixel tracks absorb first, then auto tracks share the rest by
	// headroom.
	remaining = m.grow(ref, UnitPixel, remaining)
	m.grow(ref, UnitAuto, remaining)
}

// growStars spreads extra span demand across the span's star tracks in
// proportion to their weights, respecting each track's max.
func (m *trackMatrix) growStars(ref spanRef, remaining float64) {
	total := 0.0
	for i := ref.start; i <= ref.end; i++ {
		t := &m.cells[i][i]
		if t.kind == UnitStar && t.desired < t.max {
			total += t.stars
		}
	}
	for total > 0 && remaining > epsilon {
		share := remaining / total
		progressed := false
		for i := ref.start; i <= ref.end; i++ {
			t := &m.cells[i][i]
			if t.kind != UnitStar || t.desired >= t.max {
				continue
			}
			want := share * t.stars
			if t.desired+want >= t.max {
				remaining -= t.max - t.desired
				t.desired = t.max
				total -= t.stars
				progressed = true
			}
		}
		if progressed {
			continue
		}
		for i := ref.start; i <= ref.end; i++ {
			t := &m.cells[i][i]
			if t.kind == UnitStar && t.desired < t.max {
				t.desired += share * t.stars
			}
		}
		return
	}
}

// grow distributes extra span demand across the span's tracks of the
// given kind, proportionally to each track's headroom below its max.
// Tracks with unbounded headroom share equally. Returns what could not
// be placed.
func (m *trackMatrix) grow(ref spanRef, kind GridUnitKind, remaining float64) float64 {
	if remaining <= epsilon {
		return remaining
	}
	var unbounded []*track
	var bounded []*track
	headroom := 0.0
	for i := ref.start; i <= ref.end; i++ {
		t := &m.cells[i][i]
		if t.kind != kind {
			continue
		}
		h := t.max - t.desired
		if h <= 0 {
			continue
		}
		if math.IsInf(h, 1) {
			// A fixed track only stretches when it carries an explicit max.
			if kind == UnitPixel {
				continue
			}
			unbounded = append(unbounded, t)
		} else {
			bounded = append(bounded, t)
			headroom += h
		}
	}
	if len(unbounded) > 0 {
		share := remaining / float64(len(unbounded))
		for _, t := range unbounded {
			t.desired += share
			if t.kind != UnitStar && t.desired > t.offered {
				t.offered = t.desired
			}
		}
		return 0
	}
	if headroom <= 0 {
		return remaining
	}
	placed := remaining
	if placed > headroom {
		placed = headroom
	}
	for _, t := range bounded {
		t.desired += placed * (t.max - t.desired) / headroom
		if t.kind != UnitStar && t.desired > t.offered {
			t.offered = t.desired
		}
	}
	return remaining - placed
}

// expandStars sizes the axis's star tracks against the given available
// size: the space left after non-star offered sizes is split by star
// weight, with min/max clamping and redistribution of the clamped
// remainder. An infinite available size leaves unbounded star tracks
// unconstrained.
func (m *trackMatrix) expandStars(available float64) {
	var open []*track
	total := 0.0
	fixed := 0.0
	for i := range m.cells {
		t := &m.cells[i][i]
		if t.kind == UnitStar {
			open = append(open, t)
			total += t.stars
		} else {
			fixed += t.offered
		}
	}
	if len(open) == 0 {
		return
	}
	remaining := available - fixed
	if remaining < 0 {
		remaining = 0
	}
	for len(open) > 0 && total > 0 {
		share := remaining / total
		progressed := false
		next := open[:0]
		for _, t := range open {
			want := share * t.stars
			if want < t.min || want > t.max {
				t.offered = clamp(want, t.min, t.max)
				remaining -= t.offered
				total -= t.stars
				progressed = true
				continue
			}
			next = append(next, t)
		}
		open = next
		if remaining < 0 {
			remaining = 0
		}
		if progressed {
			continue
		}
		for _, t := range open {
			t.offered = share * t.stars
		}
		return
	}
}

// offeredSum returns the total offered size of tracks [start, end].
func (m *trackMatrix) offeredSum(start, end int) float64 {
	sum := 0.0
	for i := start; i <= end; i++ {
		sum += m.cells[i][i].offered
	}
	return sum
}

// desiredSum returns the total desired size across the whole axis.
func (m *trackMatrix) desiredSum() float64 {
	sum := 0.0
	for i := range m.cells {
		sum += m.cells[i][i].desired
	}
	return sum
}

// restore discards any previous final-pass expansion and sets each
// track to its desired size as the starting point for Arrange.
func (m *trackMatrix) restore() {
	for i := range m.cells {
		t := &m.cells[i][i]
		t.offered = clamp(t.desired, t.min, t.max)
	}
}
