// Package selection defines the set of selected list indices reflected by a
// grid list, and a default interval-based implementation.
package selection

import (
	"fmt"
	"slices"

	"github.com/xqrs/gridview/internal/notify"
)

// Event reports that the selection state of indices in [First, Last] may have
// changed.
type Event struct {
	First int
	Last  int
}

// Model is a set of selected indices with a lead and an anchor index. Index
// queries return -1 when nothing is selected.
type Model interface {
	IsSelected(index int) bool
	MinIndex() int
	MaxIndex() int
	LeadIndex() int
	AnchorIndex() int
	IsEmpty() bool

	// SetInterval replaces the selection with [index0, index1]. index0
	// becomes the anchor and index1 the lead.
	SetInterval(index0, index1 int)
	// AddInterval adds [index0, index1] to the selection.
	AddInterval(index0, index1 int)
	// RemoveInterval removes [index0, index1] from the selection.
	RemoveInterval(index0, index1 int)
	// Clear deselects everything.
	Clear()

	Subscribe(fn func(Event)) (cancel func())
}

// Mode restricts the shape of the selection held by a Default model.
type Mode int

const (
	// Single allows at most one selected index.
	Single Mode = iota
	// SingleInterval allows one contiguous interval.
	SingleInterval
	// MultipleInterval allows any set of indices.
	MultipleInterval
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case SingleInterval:
		return "single-interval"
	case MultipleInterval:
		return "multiple-interval"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type span struct {
	lo, hi int
}

// Default is the standard Model. It stores the selection as sorted, disjoint,
// non-adjacent intervals. Indices outside the optional bounds are never
// selected.
type Default struct {
	mode   Mode
	spans  []span
	anchor int
	lead   int

	lower, upper int
	bounded      bool

	listeners notify.Listeners[Event]
}

var _ Model = &Default{}

// NewDefault returns an empty selection in the given mode.
func NewDefault(mode Mode) *Default {
	return &Default{mode: mode, anchor: -1, lead: -1}
}

// Mode returns the selection mode.
func (d *Default) Mode() Mode {
	return d.mode
}

// SetMode changes the selection mode, clearing the selection when it changes.
func (d *Default) SetMode(mode Mode) {
	if d.mode == mode {
		return
	}
	d.mode = mode
	d.Clear()
}

// Subscribe registers a change listener.
func (d *Default) Subscribe(fn func(Event)) func() {
	return d.listeners.Subscribe(fn)
}

// IsSelected reports whether index is selected.
func (d *Default) IsSelected(index int) bool {
	_, found := d.find(index)
	return found
}

func (d *Default) find(index int) (int, bool) {
	i, _ := slices.BinarySearchFunc(d.spans, index, func(s span, target int) int {
		switch {
		case s.hi < target:
			return -1
		case s.lo > target:
			return 1
		}
		return 0
	})
	return i, i < len(d.spans) && d.spans[i].lo <= index && index <= d.spans[i].hi
}

// MinIndex returns the smallest selected index.
func (d *Default) MinIndex() int {
	if len(d.spans) == 0 {
		return -1
	}
	return d.spans[0].lo
}

// MaxIndex returns the largest selected index.
func (d *Default) MaxIndex() int {
	if len(d.spans) == 0 {
		return -1
	}
	return d.spans[len(d.spans)-1].hi
}

// LeadIndex returns the index most recently passed as the second argument of
// an interval operation.
func (d *Default) LeadIndex() int {
	return d.lead
}

// AnchorIndex returns the index most recently passed as the first argument of
// an interval operation.
func (d *Default) AnchorIndex() int {
	return d.anchor
}

// IsEmpty reports whether nothing is selected.
func (d *Default) IsEmpty() bool {
	return len(d.spans) == 0
}

// Indices returns all selected indices in ascending order.
func (d *Default) Indices() []int {
	var out []int
	for _, s := range d.spans {
		for i := s.lo; i <= s.hi; i++ {
			out = append(out, i)
		}
	}
	return out
}

// SetInterval replaces the selection.
func (d *Default) SetInterval(index0, index1 int) {
	if index0 < 0 || index1 < 0 {
		return
	}
	if d.mode == Single {
		index0 = index1
	}
	if d.bounded && (max(index0, index1) < d.lower || min(index0, index1) > d.upper) {
		return
	}
	d.update(index0, index1, func(spans []span) []span {
		return d.clip(nil, span{min(index0, index1), max(index0, index1)})
	})
}

// AddInterval adds to the selection. Outside MultipleInterval mode this
// behaves like SetInterval.
func (d *Default) AddInterval(index0, index1 int) {
	if d.mode != MultipleInterval {
		d.SetInterval(index0, index1)
		return
	}
	if index0 < 0 || index1 < 0 {
		return
	}
	d.update(index0, index1, func(spans []span) []span {
		return d.clip(spans, span{min(index0, index1), max(index0, index1)})
	})
}

// RemoveInterval removes from the selection. In SingleInterval mode only the
// part below the removed interval survives a split.
func (d *Default) RemoveInterval(index0, index1 int) {
	if index0 < 0 || index1 < 0 {
		return
	}
	lo, hi := min(index0, index1), max(index0, index1)
	d.update(index0, index1, func(spans []span) []span {
		var out []span
		for _, s := range spans {
			if s.hi < lo || s.lo > hi {
				out = append(out, s)
				continue
			}
			if s.lo < lo {
				out = append(out, span{s.lo, lo - 1})
			}
			if s.hi > hi {
				out = append(out, span{hi + 1, s.hi})
			}
		}
		if d.mode != MultipleInterval && len(out) > 1 {
			out = out[:1]
		}
		return out
	})
}

// Clear deselects everything. Lead and anchor are kept.
func (d *Default) Clear() {
	if len(d.spans) == 0 {
		return
	}
	first, last := d.MinIndex(), d.MaxIndex()
	d.spans = nil
	d.listeners.Notify(Event{First: first, Last: last})
}

// SetBounds restricts selectable indices to [lower, upper] and deselects
// anything outside.
func (d *Default) SetBounds(lower, upper int) {
	if lower > upper {
		lower, upper = upper, lower
	}
	if d.bounded && d.lower == lower && d.upper == upper {
		return
	}
	d.lower, d.upper, d.bounded = lower, upper, true
	d.update(d.anchor, d.lead, func(spans []span) []span {
		var out []span
		for _, s := range spans {
			out = d.clip(out, s)
		}
		return out
	})
}

// Bounds returns the current bounds and whether they are active.
func (d *Default) Bounds() (lower, upper int, ok bool) {
	return d.lower, d.upper, d.bounded
}

// ClearBounds lifts the restriction set by SetBounds.
func (d *Default) ClearBounds() {
	d.bounded = false
}

// clip adds s, restricted to the bounds, to spans and merges the result.
func (d *Default) clip(spans []span, s span) []span {
	if d.bounded {
		s.lo = max(s.lo, d.lower)
		s.hi = min(s.hi, d.upper)
		if s.lo > s.hi {
			return spans
		}
	}
	merged := append(slices.Clone(spans), s)
	slices.SortFunc(merged, func(a, b span) int { return a.lo - b.lo })
	out := merged[:0]
	for _, m := range merged {
		if n := len(out); n > 0 && m.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, m.hi)
			continue
		}
		out = append(out, m)
	}
	return out
}

// update applies change and notifies listeners with the range whose state
// differs between the old and the new selection.
func (d *Default) update(anchor, lead int, change func([]span) []span) {
	old, oldLead := d.spans, d.lead
	d.spans = change(slices.Clone(old))
	leadChanged := d.lead != lead || d.anchor != anchor
	d.anchor, d.lead = anchor, lead
	if !leadChanged && slices.Equal(old, d.spans) {
		return
	}

	first, last := -1, -1
	widen := func(lo, hi int) {
		if lo < 0 {
			return
		}
		if first < 0 || lo < first {
			first = lo
		}
		last = max(last, hi)
	}
	for _, s := range old {
		widen(s.lo, s.hi)
	}
	for _, s := range d.spans {
		widen(s.lo, s.hi)
	}
	if leadChanged {
		widen(oldLead, oldLead)
		widen(lead, lead)
	}
	d.listeners.Notify(Event{First: first, Last: last})
}
