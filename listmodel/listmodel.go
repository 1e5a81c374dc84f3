// Package listmodel defines the ordered item source displayed by a grid list
// and a slice-backed implementation of it.
package listmodel

import (
	"errors"
	"fmt"

	"github.com/xqrs/gridview/internal/notify"
)

var (
	// ErrIndexOutOfRange is returned by mutations addressing indices outside
	// the list.
	ErrIndexOutOfRange = errors.New("listmodel: index out of range")
)

// EventType classifies a change of a Model.
type EventType int

const (
	// ContentsChanged reports that items in [Index0, Index1] were replaced.
	ContentsChanged EventType = iota
	// IntervalAdded reports that [Index0, Index1] were inserted.
	IntervalAdded
	// IntervalRemoved reports that [Index0, Index1] were removed.
	IntervalRemoved
)

func (t EventType) String() string {
	switch t {
	case ContentsChanged:
		return "contents-changed"
	case IntervalAdded:
		return "interval-added"
	case IntervalRemoved:
		return "interval-removed"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event describes a change of a Model. Index0 and Index1 are inclusive and
// Index0 <= Index1.
type Event struct {
	Type   EventType
	Index0 int
	Index1 int
}

// Model is an ordered sequence of items.
type Model interface {
	// Len returns the number of items.
	Len() int
	// Item returns the item at index i. It is only called with 0 <= i < Len().
	Item(i int) any
	// Subscribe registers a change listener and returns its cancel function.
	Subscribe(fn func(Event)) (cancel func())
}

// Slice is a mutable Model backed by a slice.
type Slice[T any] struct {
	items     []T
	listeners notify.Listeners[Event]
}

var _ Model = &Slice[int]{}

// NewSlice returns a Slice holding a copy of items.
func NewSlice[T any](items ...T) *Slice[T] {
	s := &Slice[T]{}
	s.items = append(s.items, items...)
	return s
}

// Len returns the number of items.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Item returns the item at index i.
func (s *Slice[T]) Item(i int) any {
	return s.items[i]
}

// At returns the typed item at index i.
func (s *Slice[T]) At(i int) T {
	return s.items[i]
}

// Items returns a copy of all items.
func (s *Slice[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Subscribe registers a change listener.
func (s *Slice[T]) Subscribe(fn func(Event)) func() {
	return s.listeners.Subscribe(fn)
}

// Append adds items at the end.
func (s *Slice[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	start := len(s.items)
	s.items = append(s.items, items...)
	s.listeners.Notify(Event{Type: IntervalAdded, Index0: start, Index1: len(s.items) - 1})
}

// Insert inserts items before index i. i may equal Len().
func (s *Slice[T]) Insert(i int, items ...T) error {
	if i < 0 || i > len(s.items) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(s.items), ErrIndexOutOfRange)
	}
	if len(items) == 0 {
		return nil
	}
	grown := make([]T, 0, len(s.items)+len(items))
	grown = append(grown, s.items[:i]...)
	grown = append(grown, items...)
	grown = append(grown, s.items[i:]...)
	s.items = grown
	s.listeners.Notify(Event{Type: IntervalAdded, Index0: i, Index1: i + len(items) - 1})
	return nil
}

// Remove removes the items in [i0, i1].
func (s *Slice[T]) Remove(i0, i1 int) error {
	if i0 > i1 {
		i0, i1 = i1, i0
	}
	if i0 < 0 || i1 >= len(s.items) {
		return fmt.Errorf("remove [%d,%d] of %d: %w", i0, i1, len(s.items), ErrIndexOutOfRange)
	}
	s.items = append(s.items[:i0], s.items[i1+1:]...)
	s.listeners.Notify(Event{Type: IntervalRemoved, Index0: i0, Index1: i1})
	return nil
}

// Set replaces the item at index i.
func (s *Slice[T]) Set(i int, item T) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("set %d of %d: %w", i, len(s.items), ErrIndexOutOfRange)
	}
	s.items[i] = item
	s.listeners.Notify(Event{Type: ContentsChanged, Index0: i, Index1: i})
	return nil
}

// Reset replaces all items.
func (s *Slice[T]) Reset(items ...T) {
	old := len(s.items)
	s.items = append(s.items[:0:0], items...)
	hi := max(old, len(s.items)) - 1
	if hi < 0 {
		return
	}
	s.listeners.Notify(Event{Type: ContentsChanged, Index0: 0, Index1: hi})
}

// Move removes the items at the given ascending, distinct indices and
// reinserts them, in order, before the item that was at index to. to may
// equal Len(). It returns the index of the first moved item after the move.
func (s *Slice[T]) Move(indices []int, to int) (int, error) {
	if to < 0 || to > len(s.items) {
		return 0, fmt.Errorf("move to %d of %d: %w", to, len(s.items), ErrIndexOutOfRange)
	}
	if len(indices) == 0 {
		return to, nil
	}
	moving := make(map[int]bool, len(indices))
	moved := make([]T, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(s.items) {
			return 0, fmt.Errorf("move %d of %d: %w", i, len(s.items), ErrIndexOutOfRange)
		}
		if !moving[i] {
			moving[i] = true
			moved = append(moved, s.items[i])
		}
	}

	rest := make([]T, 0, len(s.items)-len(moved))
	target := 0
	for i, item := range s.items {
		if i == to {
			target = len(rest)
		}
		if !moving[i] {
			rest = append(rest, item)
		}
	}
	if to == len(s.items) {
		target = len(rest)
	}

	out := make([]T, 0, len(s.items))
	out = append(out, rest[:target]...)
	out = append(out, moved...)
	out = append(out, rest[target:]...)
	s.items = out
	s.listeners.Notify(Event{Type: ContentsChanged, Index0: 0, Index1: len(s.items) - 1})
	return target, nil
}
