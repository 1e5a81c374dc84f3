package gridview

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview/listmodel"
	"github.com/xqrs/gridview/rangemodel"
	"github.com/xqrs/gridview/selection"
)

var (
	// ErrInvalidGridSize is returned for non-positive row or column counts.
	ErrInvalidGridSize = errors.New("gridview: rows and columns must be positive")
	// ErrUnsupportedDropMode is returned for unknown drop modes.
	ErrUnsupportedDropMode = errors.New("gridview: unsupported drop mode")
	// ErrInvalidInsertThreshold is returned for insert thresholds outside (0, 0.5).
	ErrInvalidInsertThreshold = errors.New("gridview: insert threshold must be in (0, 0.5)")
)

const (
	defaultRows            = 4
	defaultCols            = 4
	defaultInsertThreshold = 0.2
)

// GridList shows a window of a list model in a fixed grid of rows x cols
// slots. Slot i shows the item at index GetFirstIndex()+i, or nothing if
// that index is outside the model.
//
// The list model, the selection model and the scroll model are observed;
// their notifications must be delivered on the UI goroutine.
type GridList struct {
	*Box

	model            listmodel.Model
	unsubscribeModel func()

	selection            selection.Model
	unsubscribeSelection func()

	factory CellFactory
	slots   SlotGrid

	rows, cols int
	first      int

	// Whether selection changes scroll the lead index into view.
	followSelection bool

	scrollModel       rangemodel.Model
	unsubscribeScroll func()
	scrollBar         *ScrollBar
	showScrollbar     bool
	// Set while the list writes the scroll model.
	adjustingScroll bool
	// Set while the list reacts to a scroll model change.
	scrolling bool

	dropMode        DropMode
	insertThreshold float64
	dropLocation    *DropLocation
	dragEnabled     bool
	drag            dragState
	dropFunc        func(location DropLocation, items []any)

	keyMap   KeyMap
	textFunc func(item any) string

	logger    *slog.Logger
	errorFunc func(error)
}

// NewGridList returns an empty 4x4 grid list with a multiple-interval
// selection and the default label cells.
func NewGridList() *GridList {
	l := &GridList{
		Box:             NewBox(),
		rows:            defaultRows,
		cols:            defaultCols,
		followSelection: true,
		showScrollbar:   true,
		factory:         NewLabelCellFactory(),
		dropMode:        DropOnOrInsert,
		insertThreshold: defaultInsertThreshold,
		keyMap:          DefaultKeyMap(),
		textFunc:        func(item any) string { return fmt.Sprint(item) },
		logger:          slog.New(slog.DiscardHandler),
	}
	l.scrollBar = NewScrollBar(nil).SetErrorFunc(l.reportError)
	bindDirtyParent(l.scrollBar, l.Box)
	l.SetScrollModel(rangemodel.NewDefault(0, 0, 0, 0))
	l.SetSelectionModel(selection.NewDefault(selection.MultipleInterval))
	return l
}

// SetModel replaces the list model and repopulates all slots from the
// current first index. A nil model empties the grid.
func (l *GridList) SetModel(model listmodel.Model) *GridList {
	if model == l.model {
		return l
	}
	l.teardown()
	if l.unsubscribeModel != nil {
		l.unsubscribeModel()
		l.unsubscribeModel = nil
	}
	l.model = model
	if model != nil {
		l.unsubscribeModel = model.Subscribe(l.modelChanged)
	}
	l.rebuild()
	return l
}

// GetModel returns the list model.
func (l *GridList) GetModel() listmodel.Model {
	return l.model
}

// SetCellFactory replaces the cell factory and repopulates all slots.
func (l *GridList) SetCellFactory(factory CellFactory) *GridList {
	if factory == nil || factory == l.factory {
		return l
	}
	l.teardown()
	l.factory = factory
	l.rebuild()
	return l
}

// GetCellFactory returns the cell factory.
func (l *GridList) GetCellFactory() CellFactory {
	return l.factory
}

// SetSelectionModel replaces the selection model and repopulates all slots.
func (l *GridList) SetSelectionModel(model selection.Model) *GridList {
	if model == nil || model == l.selection {
		return l
	}
	if l.unsubscribeSelection != nil {
		l.unsubscribeSelection()
	}
	l.teardown()
	l.selection = model
	l.unsubscribeSelection = model.Subscribe(l.selectionChanged)
	l.rebuild()
	return l
}

// GetSelectionModel returns the selection model.
func (l *GridList) GetSelectionModel() selection.Model {
	return l.selection
}

// SetDisplayFollowsSelection sets whether selection changes scroll the lead
// index into view.
func (l *GridList) SetDisplayFollowsSelection(follow bool) *GridList {
	l.followSelection = follow
	return l
}

// DisplayFollowsSelection reports whether selection changes scroll.
func (l *GridList) DisplayFollowsSelection() bool {
	return l.followSelection
}

// SetItemTextFunc sets how items are turned into text for the clipboard.
func (l *GridList) SetItemTextFunc(fn func(item any) string) *GridList {
	if fn != nil {
		l.textFunc = fn
	}
	return l
}

// SetKeyMap replaces the key bindings.
func (l *GridList) SetKeyMap(keyMap KeyMap) *GridList {
	l.keyMap = keyMap
	return l
}

// GetKeyMap returns the key bindings.
func (l *GridList) GetKeyMap() KeyMap {
	return l.keyMap
}

// SetLogger sets the logger. A nil logger discards.
func (l *GridList) SetLogger(logger *slog.Logger) *GridList {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l.logger = logger
	return l
}

// SetErrorFunc sets a handler for errors raised while reacting to model
// notifications, which have no caller to return them to.
func (l *GridList) SetErrorFunc(handler func(error)) *GridList {
	l.errorFunc = handler
	return l
}

func (l *GridList) reportError(err error) {
	l.logger.Error("grid list", "err", err)
	if l.errorFunc != nil {
		l.errorFunc(err)
	}
}

// SetBackgroundColor sets the list's background and hands it down to every
// populated slot.
func (l *GridList) SetBackgroundColor(color tcell.Color) *GridList {
	if color == l.GetBackgroundColor() {
		return l
	}
	l.Box.SetBackgroundColor(color)
	l.slots.Each(func(_ int, slot *Slot) {
		if slot.cell != nil {
			l.factory.ContainerStyleChanged(l, slot, slot.cell)
		}
	})
	return l
}

// SelectedItems returns the selected items in ascending index order.
func (l *GridList) SelectedItems() []any {
	if l.model == nil || l.selection.IsEmpty() {
		return nil
	}
	size := l.model.Len()
	var items []any
	for i := max(l.selection.MinIndex(), 0); i <= l.selection.MaxIndex() && i < size; i++ {
		if l.selection.IsSelected(i) {
			items = append(items, l.model.Item(i))
		}
	}
	return items
}

// CellFor returns the cell showing index, or nil if it is not visible.
func (l *GridList) CellFor(index int) Cell {
	if slot := l.slotFor(index); slot != nil {
		return slot.cell
	}
	return nil
}

// slotFor returns the slot showing index, or nil if it is not visible.
func (l *GridList) slotFor(index int) *Slot {
	i := index - l.first
	if index < 0 || i < 0 || i >= l.slots.Len() {
		return nil
	}
	if slot := l.slots.At(i); slot.index == index {
		return slot
	}
	return nil
}

// IndexAt returns the logical index shown under screen position (x, y), or -1.
func (l *GridList) IndexAt(x, y int) int {
	l.layout()
	i := l.slots.SlotAt(x, y)
	if i < 0 {
		return -1
	}
	return l.slots.At(i).index
}

// SetShowScrollbar sets whether the rightmost column shows a scrollbar.
func (l *GridList) SetShowScrollbar(show bool) *GridList {
	if show != l.showScrollbar {
		l.showScrollbar = show
		l.MarkDirty()
	}
	return l
}

// IsScrollbarShown reports whether the scrollbar column is shown.
func (l *GridList) IsScrollbarShown() bool {
	return l.showScrollbar
}

// GetScrollBar returns the scrollbar for styling.
func (l *GridList) GetScrollBar() *ScrollBar {
	return l.scrollBar
}

// layout places the scrollbar and the slots inside the inner rect.
func (l *GridList) layout() (x, y, width, height int) {
	x, y, width, height = l.GetInnerRect()
	if l.showScrollbar && width > 1 {
		width--
		l.scrollBar.SetRect(x+width, y, 1, height)
	} else {
		l.scrollBar.SetRect(0, 0, 0, 0)
	}
	l.slots.Layout(x, y, width, height, l.rows, l.cols)
	return x, y, width, height
}

// Draw draws the slots and the scrollbar.
func (l *GridList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	l.layout()
	l.slots.Each(func(_ int, slot *Slot) {
		if slot.cell != nil {
			slot.cell.Draw(screen)
		}
	})
	if l.showScrollbar {
		l.scrollBar.Draw(screen)
	}
}

var _ Primitive = &GridList{}
