package gridview

import (
	"fmt"

	"github.com/xqrs/gridview/rangemodel"
)

// SetScrollModel binds the scrollbar to model. The list writes the window
// into it and follows the value when someone else changes it.
func (l *GridList) SetScrollModel(model rangemodel.Model) *GridList {
	if model == nil || model == l.scrollModel {
		return l
	}
	if l.unsubscribeScroll != nil {
		l.unsubscribeScroll()
	}
	l.scrollModel = model
	l.unsubscribeScroll = model.Subscribe(l.scrollChanged)
	l.scrollBar.SetModel(model)
	l.syncScrollbar()
	return l
}

// GetScrollModel returns the scroll model.
func (l *GridList) GetScrollModel() rangemodel.Model {
	return l.scrollModel
}

// scrollRange returns the scroll model properties describing the window.
// An empty model collapses the range and disables the scrollbar.
func (l *GridList) scrollRange() (value, extent, minimum, maximum int, enabled bool) {
	if l.model == nil || l.model.Len() == 0 {
		return 0, 0, 0, 0, false
	}
	return l.first, l.rows*l.cols - 1, 0, l.model.Len() - 1, true
}

// syncScrollbar writes the window into the scroll model. The write is skipped
// when the model already holds the values, and notifications it causes are
// ignored by scrollChanged.
func (l *GridList) syncScrollbar() {
	if l.scrollModel == nil {
		return
	}
	value, extent, minimum, maximum, enabled := l.scrollRange()
	l.scrollBar.SetEnabled(enabled)

	m := l.scrollModel
	if m.Value() == value && m.Extent() == extent && m.Minimum() == minimum && m.Maximum() == maximum {
		return
	}
	l.adjustingScroll = true
	err := m.SetRangeProperties(value, extent, minimum, maximum)
	l.adjustingScroll = false
	if err != nil {
		l.reportError(fmt.Errorf("sync scrollbar: %w", err))
	}
}

// scrollChanged moves the window to the scroll model's value.
func (l *GridList) scrollChanged() {
	if l.adjustingScroll || l.scrolling {
		return
	}
	l.scrolling = true
	defer func() { l.scrolling = false }()
	l.SetFirstIndex(l.scrollModel.Value())
}

// scrollBy moves the scroll model by delta units.
func (l *GridList) scrollBy(delta int) {
	if err := l.scrollModel.SetValue(l.scrollModel.Value() + delta); err != nil {
		l.reportError(fmt.Errorf("scroll: %w", err))
	}
}
