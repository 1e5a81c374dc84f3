package gridview

import (
	"strings"

	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/gridview/keybind"
)

// dragThreshold is the distance in cells the pointer must travel with the
// button held before a press on a selected item becomes a drag.
const dragThreshold = 1

type dragState struct {
	// Set by a press on a selected item.
	armed bool
	// Set once the pointer moved far enough.
	active bool
	x, y   int
	index  int
}

// SetDragEnabled sets whether selected items can be dragged.
func (l *GridList) SetDragEnabled(enabled bool) *GridList {
	l.dragEnabled = enabled
	if !enabled {
		l.drag = dragState{}
		l.SetRenderedDropLocation(nil)
	}
	return l
}

// SetDropFunc sets the function called when dragged items are released over
// a drop location. It runs after the mouse event has been handled and
// receives the selected items in ascending index order.
func (l *GridList) SetDropFunc(handler func(location DropLocation, items []any)) *GridList {
	l.dropFunc = handler
	return l
}

// InputHandler moves and extends the selection and copies selected items.
func (l *GridList) InputHandler(event *tcell.EventKey) Command {
	return l.handleKey(keybind.Key(event))
}

func (l *GridList) handleKey(key string) Command {
	if l.model == nil || key == "" {
		return nil
	}
	page := l.rows * l.cols
	size := l.model.Len()

	k := l.keyMap
	switch {
	case k.Up.MatchesKey(key):
		return l.moveLead(-l.cols, false)
	case k.Down.MatchesKey(key):
		return l.moveLead(l.cols, false)
	case k.Left.MatchesKey(key):
		return l.moveLead(-1, false)
	case k.Right.MatchesKey(key):
		return l.moveLead(1, false)
	case k.ExtendUp.MatchesKey(key):
		return l.moveLead(-l.cols, true)
	case k.ExtendDown.MatchesKey(key):
		return l.moveLead(l.cols, true)
	case k.ExtendLeft.MatchesKey(key):
		return l.moveLead(-1, true)
	case k.ExtendRight.MatchesKey(key):
		return l.moveLead(1, true)
	case k.PageUp.MatchesKey(key):
		if lead := l.selection.LeadIndex(); lead >= 0 {
			return l.selectIndex(max(lead-page, 0), false)
		}
	case k.PageDown.MatchesKey(key):
		if lead := l.selection.LeadIndex(); lead >= 0 {
			return l.selectIndex(min(lead+page, size-1), false)
		}
	case k.Home.MatchesKey(key):
		return l.selectIndex(0, false)
	case k.End.MatchesKey(key):
		return l.selectIndex(size-1, false)
	case k.SelectAll.MatchesKey(key):
		if size > 0 {
			l.selection.SetInterval(0, size-1)
			return RedrawCommand{}
		}
	case k.Copy.MatchesKey(key):
		return l.copySelection()
	}
	return nil
}

// moveLead moves the lead selection index by delta. Without a lead, or when
// the target is outside the model, nothing happens.
func (l *GridList) moveLead(delta int, extend bool) Command {
	lead := l.selection.LeadIndex()
	if lead < 0 {
		return nil
	}
	return l.selectIndex(lead+delta, extend)
}

// selectIndex selects index, or extends the selection from the anchor to it.
func (l *GridList) selectIndex(index int, extend bool) Command {
	if index < 0 || index >= l.model.Len() {
		return nil
	}
	if anchor := l.selection.AnchorIndex(); extend && anchor >= 0 {
		l.selection.SetInterval(anchor, index)
	} else {
		l.selection.SetInterval(index, index)
	}
	return RedrawCommand{}
}

func (l *GridList) copySelection() Command {
	items := l.SelectedItems()
	if len(items) == 0 {
		return nil
	}
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = l.textFunc(item)
	}
	return SetClipboardCommand(strings.Join(texts, "\n"))
}

// MouseHandler selects items on click, scrolls on wheel and drags selected
// items.
func (l *GridList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return l.handleMouse(action, x, y, event.Modifiers()&tcell.ModCtrl != 0)
}

func (l *GridList) handleMouse(action MouseAction, x, y int, ctrl bool) (Primitive, Command) {
	if l.drag.armed {
		return l.handleDrag(action, x, y)
	}
	if !l.InRect(x, y) {
		return nil, nil
	}
	l.layout()
	if l.showScrollbar && l.scrollBar.InRect(x, y) {
		capture, cmd := l.scrollBar.handleMouse(action, x, y)
		if action == MouseLeftDown {
			cmd = AppendCommand(SetFocusCommand{Target: l}, cmd)
		}
		return capture, cmd
	}

	switch action {
	case MouseScrollUp:
		l.scrollBy(-l.cols)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		l.scrollBy(l.cols)
		return nil, RedrawCommand{}
	case MouseLeftDown:
		focus := SetFocusCommand{Target: l}
		index := l.IndexAt(x, y)
		if index < 0 {
			return nil, focus
		}
		if l.dragEnabled && !ctrl && l.selection.IsSelected(index) {
			l.drag = dragState{armed: true, x: x, y: y, index: index}
			return l, focus
		}
		l.click(index, ctrl)
		return nil, AppendCommand(focus, RedrawCommand{})
	}
	return nil, nil
}

// click selects index alone, or toggles it when ctrl is held.
func (l *GridList) click(index int, ctrl bool) {
	switch {
	case !ctrl:
		l.selection.SetInterval(index, index)
	case l.selection.IsSelected(index):
		l.selection.RemoveInterval(index, index)
	default:
		l.selection.AddInterval(index, index)
	}
}

func (l *GridList) handleDrag(action MouseAction, x, y int) (Primitive, Command) {
	switch action {
	case MouseMove:
		if !l.drag.active && max(abs(x-l.drag.x), abs(y-l.drag.y)) < dragThreshold {
			return l, nil
		}
		l.drag.active = true
		if location, ok := l.DropLocationAt(x, y); ok {
			l.SetRenderedDropLocation(&location)
		} else {
			l.SetRenderedDropLocation(nil)
		}
		return l, RedrawCommand{}
	case MouseLeftUp:
		drag := l.drag
		l.drag = dragState{}
		if !drag.active {
			// A press and release without moving is a plain click.
			l.click(drag.index, false)
			return nil, RedrawCommand{}
		}
		location, ok := l.DropLocationAt(x, y)
		l.SetRenderedDropLocation(nil)
		if !ok || l.dropFunc == nil {
			return nil, RedrawCommand{}
		}
		items := l.SelectedItems()
		l.logger.Debug("drop", "location", location.String(), "items", len(items))
		drop := l.dropFunc
		return nil, AppendCommand(CallbackCommand(func() { drop(location, items) }), RedrawCommand{})
	}
	return l, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
