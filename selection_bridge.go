package gridview

import "github.com/xqrs/gridview/selection"

func (l *GridList) selectionChanged(event selection.Event) {
	l.updateSlots()
	if l.followSelection {
		l.ScrollToSelection()
	}
}

// updateSlots pushes the selection and drop marker state of every visible
// item to its cell. Each slot is checked on its own since the selection
// need not be contiguous.
func (l *GridList) updateSlots() {
	l.slots.Each(func(_ int, slot *Slot) {
		l.updateSlot(slot)
	})
	l.MarkDirty()
}

// updateIndex refreshes the state of the slot showing index, if any.
func (l *GridList) updateIndex(index int) {
	if slot := l.slotFor(index); slot != nil {
		l.updateSlot(slot)
		l.MarkDirty()
	}
}

func (l *GridList) updateSlot(slot *Slot) {
	if slot.cell == nil || slot.index < 0 {
		return
	}
	l.factory.SetSelected(l, slot, slot.item, l.selection.IsSelected(slot.index), l.markerFor(slot.index), slot.cell)
}

// EnsureIndexVisible moves the window by whole rows so that index is shown.
// If index is above the window its row becomes the first row; if it is below,
// its row becomes the last row. Indices outside the model are ignored. It
// reports whether the window moved.
func (l *GridList) EnsureIndexVisible(index int) bool {
	if l.model == nil || index < 0 || index >= l.model.Len() {
		return false
	}
	first, last := l.GetVisibleRange()
	rowStart := index / l.cols * l.cols
	switch {
	case index < first:
		l.SetFirstIndex(rowStart)
	case index > last:
		l.SetFirstIndex(rowStart - (l.rows-1)*l.cols)
	default:
		return false
	}
	return true
}

// ScrollToSelection makes the lead selection index visible.
func (l *GridList) ScrollToSelection() *GridList {
	if lead := l.selection.LeadIndex(); lead >= 0 && l.selection.IsSelected(lead) {
		l.EnsureIndexVisible(lead)
	}
	return l
}
