package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDropLocation(t *testing.T) {
	single := DropGeometry{Width: 100, Height: 100, Rows: 1, Cols: 1, FirstIndex: 5, Size: 10}
	grid := DropGeometry{Width: 40, Height: 20, Rows: 2, Cols: 4, FirstIndex: 0, Size: 6}

	tests := []struct {
		name   string
		g      DropGeometry
		x, y   int
		mode   DropMode
		want   DropLocation
		wantOK bool
	}{
		{name: "top edge", g: single, x: 50, y: 10, mode: DropOnOrInsert, want: DropLocation{Index: 5, Insert: true}, wantOK: true},
		{name: "bottom edge", g: single, x: 50, y: 90, mode: DropOnOrInsert, want: DropLocation{Index: 6, Insert: true}, wantOK: true},
		{name: "middle", g: single, x: 50, y: 50, mode: DropOnOrInsert, want: DropLocation{Index: 5}, wantOK: true},
		{name: "just inside threshold", g: single, x: 50, y: 19, mode: DropOnOrInsert, want: DropLocation{Index: 5, Insert: true}, wantOK: true},
		{name: "threshold boundary", g: single, x: 50, y: 20, mode: DropOnOrInsert, want: DropLocation{Index: 5}, wantOK: true},
		{name: "left edge of cell", g: grid, x: 11, y: 2, mode: DropOnOrInsert, want: DropLocation{Index: 1, Insert: true}, wantOK: true},
		{name: "right edge of cell", g: grid, x: 18, y: 2, mode: DropOnOrInsert, want: DropLocation{Index: 2, Insert: true}, wantOK: true},
		{name: "centre of cell", g: grid, x: 15, y: 15, mode: DropOnOrInsert, want: DropLocation{Index: 5}, wantOK: true},
		{name: "past last item", g: grid, x: 35, y: 15, mode: DropOnOrInsert, want: DropLocation{Index: 6, Insert: true}, wantOK: true},
		{name: "past last item on", g: grid, x: 35, y: 15, mode: DropOn, wantOK: false},
		{name: "on mode", g: grid, x: 11, y: 2, mode: DropOn, want: DropLocation{Index: 1}, wantOK: true},
		{name: "insert mode left half", g: grid, x: 14, y: 2, mode: DropInsert, want: DropLocation{Index: 1, Insert: true}, wantOK: true},
		{name: "insert mode right half", g: grid, x: 15, y: 2, mode: DropInsert, want: DropLocation{Index: 2, Insert: true}, wantOK: true},
		{name: "outside", g: grid, x: 40, y: 2, mode: DropOnOrInsert, wantOK: false},
		{name: "negative", g: grid, x: -1, y: 2, mode: DropOnOrInsert, wantOK: false},
		{name: "before model start", g: DropGeometry{Width: 10, Height: 10, Rows: 1, Cols: 1, FirstIndex: -1, Size: 3}, x: 5, y: 5, mode: DropOnOrInsert, wantOK: false},
		{name: "empty geometry", g: DropGeometry{Rows: 1, Cols: 1, Size: 3}, x: 0, y: 0, mode: DropOnOrInsert, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDropLocation(tt.g, tt.x, tt.y, tt.mode, 0.2)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDropMode(t *testing.T) {
	for _, mode := range []DropMode{DropOn, DropInsert, DropOnOrInsert} {
		got, err := ParseDropMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	_, err := ParseDropMode("sideways")
	assert.ErrorIs(t, err, ErrUnsupportedDropMode)
}

func TestDropSettingsValidation(t *testing.T) {
	l := NewGridList()

	assert.ErrorIs(t, l.SetDropMode(DropMode(7)), ErrUnsupportedDropMode)
	assert.Equal(t, DropOnOrInsert, l.GetDropMode())
	require.NoError(t, l.SetDropMode(DropInsert))
	assert.Equal(t, DropInsert, l.GetDropMode())

	for _, f := range []float64{0, 0.5, -0.1, 0.7} {
		assert.ErrorIs(t, l.SetDropInsertThreshold(f), ErrInvalidInsertThreshold, "%v", f)
	}
	assert.Equal(t, 0.2, l.GetDropInsertThreshold())
	require.NoError(t, l.SetDropInsertThreshold(0.3))
	assert.Equal(t, 0.3, l.GetDropInsertThreshold())
}

func TestDropLocationAt(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 3, false)

	loc, ok := l.DropLocationAt(10, 5)
	require.True(t, ok)
	assert.Equal(t, DropLocation{Index: 0}, loc)

	loc, ok = l.DropLocationAt(30, 15)
	require.True(t, ok)
	assert.Equal(t, DropLocation{Index: 3, Insert: true}, loc, "empty slot appends")

	l.SetModel(nil)
	_, ok = l.DropLocationAt(10, 5)
	assert.False(t, ok)
}

func TestRenderedDropLocationMarkers(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 3, false)
	marker := func(index int) DropMarker {
		return l.CellFor(index).(*recordingCell).marker
	}

	l.SetRenderedDropLocation(&DropLocation{Index: 1})
	assert.Equal(t, DropMarkerOn, marker(1))
	assert.Equal(t, DropMarkerNone, marker(0))

	l.SetRenderedDropLocation(&DropLocation{Index: 2, Insert: true})
	assert.Equal(t, DropMarkerNone, marker(1))
	assert.Equal(t, DropMarkerBefore, marker(2))

	l.SetRenderedDropLocation(&DropLocation{Index: 3, Insert: true})
	assert.Equal(t, DropMarkerAfter, marker(2), "appending marks the last item")
	assert.Equal(t, DropMarkerNone, marker(1))

	got := l.GetRenderedDropLocation()
	require.NotNil(t, got)
	got.Index = 0
	assert.Equal(t, 3, l.GetRenderedDropLocation().Index, "the getter returns a copy")

	l.SetRenderedDropLocation(nil)
	assert.Nil(t, l.GetRenderedDropLocation())
	for i := range 3 {
		assert.Equal(t, DropMarkerNone, marker(i))
	}
}
