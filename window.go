package gridview

import (
	"fmt"

	"github.com/xqrs/gridview/listmodel"
)

// SetGridSize sets the number of rows and columns. Growing appends slots for
// the indices following the last displayed one; shrinking tears down the
// trailing slots. The first index is kept.
func (l *GridList) SetGridSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGridSize, rows, cols)
	}
	if rows == l.rows && cols == l.cols {
		return nil
	}

	count := rows * cols
	for i := l.slots.Len(); i < count; i++ {
		slot := newSlot()
		l.slots.Append(slot)
		l.populate(slot, l.first+i)
	}
	for i := l.slots.Len() - 1; i >= count; i-- {
		l.clear(l.slots.Remove(i))
	}

	l.logger.Debug("resize grid", "rows", rows, "cols", cols, "from_rows", l.rows, "from_cols", l.cols)
	l.rows, l.cols = rows, cols
	l.scrollBar.SetScrollStep(cols)
	l.syncScrollbar()
	l.MarkDirty()
	return nil
}

// SetRowCount sets the number of rows.
func (l *GridList) SetRowCount(rows int) error {
	return l.SetGridSize(rows, l.cols)
}

// SetColumnCount sets the number of columns.
func (l *GridList) SetColumnCount(cols int) error {
	return l.SetGridSize(l.rows, cols)
}

// GetGridSize returns the number of rows and columns.
func (l *GridList) GetGridSize() (rows, cols int) {
	return l.rows, l.cols
}

// GetFirstIndex returns the logical index shown by the first slot.
func (l *GridList) GetFirstIndex() int {
	return l.first
}

// GetVisibleRange returns the first and the last index covered by the slots.
// The range may extend past the model.
func (l *GridList) GetVisibleRange() (first, last int) {
	return l.first, l.first + l.rows*l.cols - 1
}

// SetFirstIndex moves the window so that the first slot shows index. Any
// integer is accepted; slots outside the model stay empty.
//
// If the cell factory reuses cells, every slot is repopulated in place.
// Otherwise only the slots leaving the window are torn down and moved to the
// other end, so a move by n touches min(n, rows*cols) slots.
func (l *GridList) SetFirstIndex(index int) *GridList {
	if index == l.first {
		return l
	}
	from := l.first
	l.first = index

	if l.model != nil {
		if l.factory.CanReuse() {
			l.logger.Debug("move window", "from", from, "to", index, "path", "reuse")
			l.slots.Each(func(i int, slot *Slot) {
				l.populate(slot, index+i)
			})
		} else {
			l.logger.Debug("move window", "from", from, "to", index, "path", "shift")
			l.shift(from, index)
		}
	}

	l.syncScrollbar()
	l.MarkDirty()
	return l
}

// shift recycles the slots that leave the window when it moves from "from"
// to "to" and re-seats them at the opposite end.
func (l *GridList) shift(from, to int) {
	count := l.slots.Len()
	if to < from {
		n := min(from-to, count)
		for i := range n {
			slot := l.slots.Remove(count - 1)
			l.clear(slot)
			l.slots.Insert(0, slot)
			l.populate(slot, to+n-1-i)
		}
		return
	}
	n := min(to-from, count)
	for i := range n {
		slot := l.slots.Remove(0)
		l.clear(slot)
		l.slots.Append(slot)
		l.populate(slot, to+count-n+i)
	}
}

// Refresh tears down the content of every slot and repopulates it from the
// model. Model change notifications always trigger a refresh.
func (l *GridList) Refresh() *GridList {
	l.teardown()
	l.rebuild()
	return l
}

func (l *GridList) modelChanged(event listmodel.Event) {
	l.logger.Debug("refresh", "event", event.Type.String(), "index0", event.Index0, "index1", event.Index1)
	l.Refresh()
}

// teardown removes the content of every slot, last slot first.
func (l *GridList) teardown() {
	for i := l.slots.Len() - 1; i >= 0; i-- {
		l.clear(l.slots.At(i))
	}
}

// rebuild makes sure there are rows*cols slots and populates them from the
// first index.
func (l *GridList) rebuild() {
	count := l.rows * l.cols
	for l.slots.Len() < count {
		l.slots.Append(newSlot())
	}
	for l.slots.Len() > count {
		l.clear(l.slots.Remove(l.slots.Len() - 1))
	}
	l.slots.Each(func(i int, slot *Slot) {
		l.populate(slot, l.first+i)
	})
	l.syncScrollbar()
	l.MarkDirty()
}

// populate makes slot show the item at index, or clears it when index is
// outside the model. A stale cell in the slot is offered to the factory for
// reuse.
func (l *GridList) populate(slot *Slot, index int) {
	if l.model == nil || index < 0 || index >= l.model.Len() {
		l.clear(slot)
		return
	}

	item := l.model.Item(index)
	cell := l.factory.CreateOrReuse(l, slot, item)
	if cell != slot.cell {
		unbindDirtyParent(slot.cell, l.Box)
		bindDirtyParent(cell, l.Box)
	}
	slot.index, slot.item, slot.cell = index, item, cell
	if cell == nil {
		return
	}
	x, y, width, height := slot.GetRect()
	cell.SetRect(x, y, width, height)
	l.factory.ContainerStyleChanged(l, slot, cell)
	l.factory.SetSelected(l, slot, item, l.selection.IsSelected(index), l.markerFor(index), cell)
}

// clear tears down the content of slot and marks it empty.
func (l *GridList) clear(slot *Slot) {
	if slot.index < 0 && slot.cell == nil {
		return
	}
	if slot.cell != nil {
		l.factory.Destroy(l, slot, slot.item, slot.cell)
		unbindDirtyParent(slot.cell, l.Box)
	}
	slot.index, slot.item, slot.cell = -1, nil, nil
}
