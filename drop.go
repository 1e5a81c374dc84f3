package gridview

import (
	"fmt"
	"strings"
)

// DropLocation is the target of a drop. With Insert set, items go before
// Index, which may equal the model size to append. Otherwise they are
// dropped onto the item at Index.
type DropLocation struct {
	Index  int
	Insert bool
}

func (d DropLocation) String() string {
	if d.Insert {
		return fmt.Sprintf("insert before %d", d.Index)
	}
	return fmt.Sprintf("on %d", d.Index)
}

// DropMode selects which drop locations a list resolves.
type DropMode int

const (
	// DropOn only resolves locations on items.
	DropOn DropMode = iota
	// DropInsert only resolves insert locations between items.
	DropInsert
	// DropOnOrInsert resolves insert locations near the edges of a cell and
	// locations on items elsewhere.
	DropOnOrInsert
)

var dropModeNames = []string{"on", "insert", "on_or_insert"}

func (m DropMode) String() string {
	if m < 0 || int(m) >= len(dropModeNames) {
		return fmt.Sprintf("DropMode(%d)", int(m))
	}
	return dropModeNames[m]
}

func (m DropMode) valid() bool {
	return m >= DropOn && m <= DropOnOrInsert
}

// ParseDropMode parses "on", "insert" or "on_or_insert".
func ParseDropMode(s string) (DropMode, error) {
	for i, name := range dropModeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return DropMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedDropMode, s)
}

// DropGeometry describes the content area of a grid list for drop location
// hit-testing.
type DropGeometry struct {
	Width, Height int
	Rows, Cols    int
	FirstIndex    int
	Size          int
}

// ResolveDropLocation maps the point (x, y), relative to the content area,
// to a drop location. Points past the last item resolve to an append unless
// mode is DropOn. With DropOnOrInsert, a point within threshold of the
// leading edge of a cell inserts before it and one within threshold of the
// trailing edge inserts after it. The edges are horizontal for a single
// column and vertical otherwise. It returns false when there is no target.
func ResolveDropLocation(g DropGeometry, x, y int, mode DropMode, threshold float64) (DropLocation, bool) {
	if g.Rows <= 0 || g.Cols <= 0 || g.Width <= 0 || g.Height <= 0 {
		return DropLocation{}, false
	}
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return DropLocation{}, false
	}

	boxWidth, boxHeight := max(g.Width/g.Cols, 1), max(g.Height/g.Rows, 1)
	col := min(g.Cols-1, x/boxWidth)
	row := min(g.Rows-1, y/boxHeight)
	index := g.FirstIndex + row*g.Cols + col
	if index < 0 {
		return DropLocation{}, false
	}
	if index >= g.Size {
		if mode == DropOn {
			return DropLocation{}, false
		}
		return DropLocation{Index: g.Size, Insert: true}, true
	}

	// Measure from the centre of the terminal cell under the point.
	fraction := (float64(x-col*boxWidth) + 0.5) / float64(boxWidth)
	if g.Cols == 1 {
		fraction = (float64(y-row*boxHeight) + 0.5) / float64(boxHeight)
	}

	switch mode {
	case DropOn:
		return DropLocation{Index: index}, true
	case DropInsert:
		if fraction < 0.5 {
			return DropLocation{Index: index, Insert: true}, true
		}
		return DropLocation{Index: index + 1, Insert: true}, true
	}
	switch {
	case fraction < threshold:
		return DropLocation{Index: index, Insert: true}, true
	case fraction > 1-threshold:
		return DropLocation{Index: index + 1, Insert: true}, true
	}
	return DropLocation{Index: index}, true
}

// SetDropMode sets which drop locations DropLocationAt resolves.
func (l *GridList) SetDropMode(mode DropMode) error {
	if !mode.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedDropMode, int(mode))
	}
	l.dropMode = mode
	return nil
}

// GetDropMode returns the drop mode.
func (l *GridList) GetDropMode() DropMode {
	return l.dropMode
}

// SetDropInsertThreshold sets the fraction of a cell, measured from either
// edge, in which DropOnOrInsert resolves an insert location.
func (l *GridList) SetDropInsertThreshold(threshold float64) error {
	if !(threshold > 0 && threshold < 0.5) {
		return fmt.Errorf("%w: got %v", ErrInvalidInsertThreshold, threshold)
	}
	l.insertThreshold = threshold
	return nil
}

// GetDropInsertThreshold returns the insert threshold.
func (l *GridList) GetDropInsertThreshold() float64 {
	return l.insertThreshold
}

// DropLocationAt resolves the drop location under screen position (x, y).
func (l *GridList) DropLocationAt(x, y int) (DropLocation, bool) {
	if l.model == nil {
		return DropLocation{}, false
	}
	left, top, width, height := l.layout()
	return ResolveDropLocation(DropGeometry{
		Width:      width,
		Height:     height,
		Rows:       l.rows,
		Cols:       l.cols,
		FirstIndex: l.first,
		Size:       l.model.Len(),
	}, x-left, y-top, l.dropMode, l.insertThreshold)
}

// SetRenderedDropLocation sets the drop location highlighted by the cells,
// or clears it with nil. Only the slots around the old and the new location
// are updated.
func (l *GridList) SetRenderedDropLocation(location *DropLocation) *GridList {
	old := l.dropLocation
	if old == location || (old != nil && location != nil && *old == *location) {
		return l
	}
	if location != nil {
		location = &DropLocation{Index: location.Index, Insert: location.Insert}
	}
	l.dropLocation = location
	for _, loc := range []*DropLocation{old, location} {
		if loc != nil {
			l.updateIndex(loc.Index - 1)
			l.updateIndex(loc.Index)
		}
	}
	return l
}

// GetRenderedDropLocation returns a copy of the highlighted drop location.
func (l *GridList) GetRenderedDropLocation() *DropLocation {
	if l.dropLocation == nil {
		return nil
	}
	location := *l.dropLocation
	return &location
}

// markerFor returns how the item at index relates to the rendered drop
// location. An insert is marked before its index, or after the last item
// when appending.
func (l *GridList) markerFor(index int) DropMarker {
	loc := l.dropLocation
	switch {
	case loc == nil:
		return DropMarkerNone
	case !loc.Insert:
		if index == loc.Index {
			return DropMarkerOn
		}
	case index == loc.Index:
		return DropMarkerBefore
	case index == loc.Index-1 && l.model != nil && loc.Index == l.model.Len():
		return DropMarkerAfter
	}
	return DropMarkerNone
}
