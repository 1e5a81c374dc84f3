package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/gridview/selection"
)

func TestKeyNavigation(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		key      string
		wantLead int
	}{
		{name: "down moves a row", start: 1, key: "down", wantLead: 4},
		{name: "up moves a row", start: 4, key: "up", wantLead: 1},
		{name: "right", start: 4, key: "right", wantLead: 5},
		{name: "left", start: 4, key: "left", wantLead: 3},
		{name: "vim down", start: 0, key: "j", wantLead: 3},
		{name: "up out of range", start: 1, key: "up", wantLead: 1},
		{name: "right out of range", start: 9, key: "right", wantLead: 9},
		{name: "page down", start: 1, key: "pgdn", wantLead: 7},
		{name: "page down clamps", start: 5, key: "pgdn", wantLead: 9},
		{name: "page up clamps", start: 5, key: "pgup", wantLead: 0},
		{name: "home", start: 5, key: "home", wantLead: 0},
		{name: "end", start: 2, key: "end", wantLead: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, _ := newTestList(t, 2, 3, 10, false)
			sel := l.GetSelectionModel()
			sel.SetInterval(tt.start, tt.start)

			l.handleKey(tt.key)
			assert.Equal(t, tt.wantLead, sel.LeadIndex())
			assert.True(t, sel.IsSelected(tt.wantLead))
			first, last := l.GetVisibleRange()
			assert.True(t, tt.wantLead >= first && tt.wantLead <= last, "lead is kept visible")
		})
	}
}

func TestKeyWithoutLeadIsIgnored(t *testing.T) {
	l, _, _ := newTestList(t, 2, 3, 10, false)

	assert.Nil(t, l.handleKey("down"))
	assert.True(t, l.GetSelectionModel().IsEmpty())

	assert.Equal(t, RedrawCommand{}, l.handleKey("home"))
	assert.Equal(t, 0, l.GetSelectionModel().LeadIndex())
}

func TestShiftExtendsSelection(t *testing.T) {
	l, _, _ := newTestList(t, 2, 3, 10, false)
	sel := l.GetSelectionModel()
	sel.SetInterval(1, 1)

	l.handleKey("shift+right")
	l.handleKey("shift+down")
	for i := 1; i <= 5; i++ {
		assert.True(t, sel.IsSelected(i), "index %d", i)
	}
	assert.Equal(t, 1, sel.AnchorIndex())
	assert.Equal(t, 5, sel.LeadIndex())

	l.handleKey("left")
	assert.Equal(t, 4, sel.MinIndex())
	assert.Equal(t, 4, sel.MaxIndex())
}

func TestSelectAllAndCopy(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 3, false)
	l.SetItemTextFunc(func(item any) string { return "<" + item.(string) + ">" })

	assert.Nil(t, l.handleKey("ctrl+c"), "nothing to copy")

	l.handleKey("ctrl+a")
	cmd := l.handleKey("ctrl+c")
	assert.Equal(t, SetClipboardCommand("<item 0>\n<item 1>\n<item 2>"), cmd)
}

func TestDisabledKeybind(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	keys := l.GetKeyMap()
	keys.Down.SetEnabled(false)
	l.SetKeyMap(keys)
	l.GetSelectionModel().SetInterval(0, 0)

	assert.Nil(t, l.handleKey("down"))
	assert.Equal(t, 0, l.GetSelectionModel().LeadIndex())
}

func TestClickSelects(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	sel := l.GetSelectionModel()

	capture, cmd := l.handleMouse(MouseLeftDown, 25, 5, false)
	assert.Nil(t, capture)
	assert.Equal(t, BatchCommand{SetFocusCommand{Target: l}, RedrawCommand{}}, cmd)
	assert.True(t, sel.IsSelected(1))

	l.handleMouse(MouseLeftDown, 5, 15, true)
	assert.True(t, sel.IsSelected(1))
	assert.True(t, sel.IsSelected(2), "ctrl-click adds")

	l.handleMouse(MouseLeftDown, 25, 5, true)
	assert.False(t, sel.IsSelected(1), "ctrl-click on a selected item removes it")
	assert.True(t, sel.IsSelected(2))

	l.handleMouse(MouseLeftDown, 25, 15, false)
	assert.Equal(t, []int{3}, selectedIndices(l))

	_, cmd = l.handleMouse(MouseLeftDown, 60, 5, false)
	assert.Nil(t, cmd, "outside the list")
}

func TestClickOnEmptySlotOnlyFocuses(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 3, false)

	_, cmd := l.handleMouse(MouseLeftDown, 25, 15, false)
	assert.Equal(t, SetFocusCommand{Target: l}, cmd)
	assert.True(t, l.GetSelectionModel().IsEmpty())
}

func TestScrollbarColumnGetsMouse(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 100, false)
	l.SetShowScrollbar(true)

	_, cmd := l.handleMouse(MouseLeftDown, 39, 19, false)
	assert.Equal(t, BatchCommand{SetFocusCommand{Target: l}, RedrawCommand{}}, cmd)
	assert.Equal(t, 4, l.GetFirstIndex(), "a track click below the thumb pages down")
	assert.True(t, l.GetSelectionModel().IsEmpty())
}

func TestDragAndDrop(t *testing.T) {
	l, _, model := newTestList(t, 2, 2, 10, false)
	l.SetDragEnabled(true)
	sel := l.GetSelectionModel()
	sel.SetInterval(0, 1)

	var (
		dropped   DropLocation
		droppedAt []any
	)
	l.SetDropFunc(func(location DropLocation, items []any) {
		dropped, droppedAt = location, items
	})

	capture, _ := l.handleMouse(MouseLeftDown, 5, 5, false)
	require.Equal(t, Primitive(l), capture, "pressing on a selected item arms a drag")

	capture, cmd := l.handleMouse(MouseMove, 10, 15, false)
	assert.Equal(t, Primitive(l), capture)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, &DropLocation{Index: 2}, l.GetRenderedDropLocation())
	assert.Equal(t, DropMarkerOn, l.CellFor(2).(*recordingCell).marker)

	capture, cmd = l.handleMouse(MouseLeftUp, 21, 15, false)
	assert.Nil(t, capture)
	assert.Nil(t, l.GetRenderedDropLocation(), "release clears the rendered location")
	assert.Equal(t, DropMarkerNone, l.CellFor(2).(*recordingCell).marker)

	batch, ok := cmd.(BatchCommand)
	require.True(t, ok)
	require.Len(t, batch, 2)
	callback, ok := batch[0].(CallbackCommand)
	require.True(t, ok)
	callback()
	assert.Equal(t, DropLocation{Index: 3, Insert: true}, dropped)
	assert.Equal(t, []any{model.At(0), model.At(1)}, droppedAt)
}

func TestPressAndReleaseOnSelectedItemCollapsesSelection(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	l.SetDragEnabled(true)
	sel := l.GetSelectionModel()
	sel.SetInterval(0, 3)

	l.handleMouse(MouseLeftDown, 25, 5, false)
	assert.True(t, sel.IsSelected(3), "the press alone keeps the selection for dragging")

	capture, _ := l.handleMouse(MouseLeftUp, 25, 5, false)
	assert.Nil(t, capture)
	assert.Equal(t, []int{1}, selectedIndices(l))
}

func TestDragOutsideListHasNoTarget(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	l.SetDragEnabled(true)
	l.GetSelectionModel().SetInterval(0, 0)
	called := false
	l.SetDropFunc(func(DropLocation, []any) { called = true })

	l.handleMouse(MouseLeftDown, 5, 5, false)
	l.handleMouse(MouseMove, 60, 30, false)
	assert.Nil(t, l.GetRenderedDropLocation())

	_, cmd := l.handleMouse(MouseLeftUp, 60, 30, false)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.False(t, called)
}

func TestSingleSelectionModelLimitsExtend(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	l.SetSelectionModel(selection.NewDefault(selection.Single))
	sel := l.GetSelectionModel()
	sel.SetInterval(1, 1)

	l.handleKey("shift+right")
	assert.Equal(t, []int{2}, selectedIndices(l))
}
