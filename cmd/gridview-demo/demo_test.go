package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/internal/catalog"
	"github.com/xqrs/gridview/internal/config"
	"github.com/xqrs/gridview/listmodel"
)

func newTestDemo(t *testing.T, n int) *demo {
	t.Helper()
	d := newDemo(gridview.NewApplication(), listmodel.NewSlice(catalog.Generate(1, n)...), slog.New(slog.DiscardHandler))
	require.NoError(t, d.apply(config.Config{
		Grid: config.GridConfig{Rows: 2, Cols: 3, FollowSelection: true, Border: "round", ScrollbarGlyphs: "minimal"},
		Drop: config.DropConfig{Mode: "on_or_insert", InsertThreshold: 0.2},
	}))
	return d
}

func titles(d *demo) []string {
	var out []string
	for _, item := range d.model.Items() {
		out = append(out, item.Title)
	}
	return out
}

func TestDemoKeys(t *testing.T) {
	d := newTestDemo(t, 20)

	cmd, ok := d.handleKey("+")
	require.True(t, ok)
	assert.Equal(t, gridview.RedrawCommand{}, cmd)
	d.handleKey("[")
	rows, cols := d.list.GetGridSize()
	assert.Equal(t, [2]int{3, 2}, [2]int{rows, cols})

	d.handleKey("[")
	d.handleKey("[")
	_, cols = d.list.GetGridSize()
	assert.Equal(t, 1, cols, "the grid keeps at least one column")

	d.handleKey("s")
	assert.True(t, d.list.IsScrollbarShown())
	d.handleKey("f")
	assert.False(t, d.list.DisplayFollowsSelection())
	d.handleKey("r")
	assert.True(t, d.list.GetCellFactory().CanReuse())

	cmd, _ = d.handleKey("q")
	assert.Equal(t, gridview.QuitCommand{}, cmd)

	_, ok = d.handleKey("down")
	assert.False(t, ok, "list keys pass through")
}

func TestDemoAppendAndRemove(t *testing.T) {
	d := newTestDemo(t, 3)

	d.handleKey("a")
	assert.Equal(t, 13, d.model.Len())
	assert.Equal(t, " 13 items · 2x3 · reuse off ", d.list.GetTitle())
	assert.Equal(t, 13, d.model.At(12).ID)

	d.sel.AddInterval(0, 1)
	d.sel.AddInterval(5, 5)
	d.handleKey("x")
	assert.Equal(t, 10, d.model.Len())
	assert.Equal(t, []string{"item 003", "item 004", "item 005", "item 007"}, titles(d)[:4])
	assert.True(t, d.sel.IsEmpty())
}

func TestDemoDropReorders(t *testing.T) {
	d := newTestDemo(t, 5)
	d.sel.SetInterval(0, 1)

	d.drop(gridview.DropLocation{Index: 4, Insert: true}, nil)
	assert.Equal(t, []string{"item 003", "item 004", "item 001", "item 002", "item 005"}, titles(d))
	assert.Equal(t, []int{2, 3}, d.sel.Indices())

	d.drop(gridview.DropLocation{Index: 5, Insert: true}, nil)
	assert.Equal(t, []string{"item 003", "item 004", "item 005", "item 001", "item 002"}, titles(d))
}

func TestDemoApplyConfig(t *testing.T) {
	d := newTestDemo(t, 5)

	err := d.apply(config.Config{
		Grid: config.GridConfig{Rows: 1, Cols: 4, ReuseCells: true, ShowScrollbar: true, Border: "plain", ScrollbarGlyphs: "unicode"},
		Drop: config.DropConfig{Mode: "insert", InsertThreshold: 0.3},
	})
	require.NoError(t, err)
	rows, cols := d.list.GetGridSize()
	assert.Equal(t, [2]int{1, 4}, [2]int{rows, cols})
	assert.Equal(t, gridview.DropInsert, d.list.GetDropMode())
	assert.True(t, d.list.GetCellFactory().CanReuse())
	assert.False(t, d.list.DisplayFollowsSelection())
	assert.Equal(t, " 5 items · 1x4 · reuse on ", d.list.GetTitle())

	err = d.apply(config.Config{Grid: config.GridConfig{Rows: 1, Cols: 1}, Drop: config.DropConfig{Mode: "up"}})
	assert.ErrorIs(t, err, config.ErrInvalidDropMode)
}
