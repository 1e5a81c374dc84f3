package gridview

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/xqrs/gridview/listmodel"
)

type factoryCall struct {
	Op   string
	Item any
}

type recordingCell struct {
	item                any
	x, y, width, height int
	selected            bool
	marker              DropMarker
	background          tcell.Color
}

func (c *recordingCell) Draw(tcell.Screen) {}

func (c *recordingCell) SetRect(x, y, width, height int) {
	c.x, c.y, c.width, c.height = x, y, width, height
}

// recordingFactory records every content change it is asked to make.
type recordingFactory struct {
	reuse  bool
	calls  []factoryCall
	styled int
}

func (f *recordingFactory) CreateOrReuse(list *GridList, slot *Slot, item any) Cell {
	if c, ok := slot.Cell().(*recordingCell); ok && f.reuse {
		f.calls = append(f.calls, factoryCall{Op: "reuse", Item: item})
		c.item = item
		return c
	}
	f.calls = append(f.calls, factoryCall{Op: "create", Item: item})
	return &recordingCell{item: item}
}

func (f *recordingFactory) SetSelected(list *GridList, slot *Slot, item any, selected bool, marker DropMarker, cell Cell) {
	c := cell.(*recordingCell)
	c.selected, c.marker = selected, marker
}

func (f *recordingFactory) ContainerStyleChanged(list *GridList, slot *Slot, cell Cell) {
	f.styled++
	cell.(*recordingCell).background = list.GetBackgroundColor()
}

func (f *recordingFactory) Destroy(list *GridList, slot *Slot, item any, cell Cell) {
	f.calls = append(f.calls, factoryCall{Op: "destroy", Item: item})
}

func (f *recordingFactory) CanReuse() bool {
	return f.reuse
}

func (f *recordingFactory) reset() {
	f.calls = nil
	f.styled = 0
}

func (f *recordingFactory) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func items(n int) *listmodel.Slice[string] {
	s := listmodel.NewSlice[string]()
	for i := range n {
		s.Append(fmt.Sprintf("item %d", i))
	}
	return s
}

// newTestList returns a rows x cols list over a model of size items and the
// factory recording its cell changes. The list occupies a 40x20 area.
func newTestList(t *testing.T, rows, cols, size int, reuse bool) (*GridList, *recordingFactory, *listmodel.Slice[string]) {
	t.Helper()
	factory := &recordingFactory{reuse: reuse}
	model := items(size)
	l := NewGridList().SetCellFactory(factory).SetModel(model)
	if err := l.SetGridSize(rows, cols); err != nil {
		t.Fatal(err)
	}
	l.SetShowScrollbar(false)
	l.SetRect(0, 0, 40, 20)
	factory.reset()
	return l, factory, model
}

type slotView struct {
	Index int
	Item  any
}

// viewOf returns what every slot shows.
func viewOf(l *GridList) []slotView {
	var out []slotView
	l.slots.Each(func(_ int, slot *Slot) {
		v := slotView{Index: slot.Index()}
		if c, ok := slot.Cell().(*recordingCell); ok {
			v.Item = c.item
		}
		out = append(out, v)
	})
	return out
}

// wantView returns what every slot must show for the list's window.
func wantView(l *GridList) []slotView {
	size := 0
	if l.model != nil {
		size = l.model.Len()
	}
	out := make([]slotView, l.rows*l.cols)
	for i := range out {
		index := l.first + i
		if index < 0 || index >= size {
			out[i] = slotView{Index: -1}
			continue
		}
		out[i] = slotView{Index: index, Item: l.model.Item(index)}
	}
	return out
}

func checkMapping(t *testing.T, l *GridList) {
	t.Helper()
	if diff := cmp.Diff(wantView(l), viewOf(l)); diff != "" {
		t.Fatalf("slot mapping mismatch (-want +got):\n%s", diff)
	}
}
