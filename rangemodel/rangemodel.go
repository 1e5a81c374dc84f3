// Package rangemodel defines the bounded integer range driving a scrollbar:
// a value with an extent inside [minimum, maximum].
package rangemodel

import (
	"errors"
	"fmt"

	"github.com/xqrs/gridview/internal/notify"
)

var (
	// ErrNoProperty is returned when a Property is built without a getter or
	// a setter.
	ErrNoProperty = errors.New("rangemodel: getter and setter are required")
)

// Model is a bounded range. Implementations keep
// minimum <= value <= value+extent <= maximum.
type Model interface {
	Minimum() int
	Maximum() int
	Value() int
	Extent() int

	// SetValue moves the value, clamped into the range.
	SetValue(value int) error
	// SetRangeProperties replaces all four properties at once and notifies
	// listeners at most once.
	SetRangeProperties(value, extent, minimum, maximum int) error

	// Subscribe registers a change listener.
	Subscribe(fn func()) (cancel func())
}

type bounds struct {
	value, extent, minimum, maximum int
}

// normalize applies the bounded range rules to a requested set of
// properties.
func normalize(b bounds) bounds {
	if b.minimum > b.maximum {
		b.minimum = b.maximum
	}
	if b.value > b.maximum {
		b.maximum = b.value
	}
	if b.value < b.minimum {
		b.minimum = b.value
	}
	if b.extent < 0 {
		b.extent = 0
	}
	if b.value+b.extent > b.maximum {
		b.extent = b.maximum - b.value
	}
	return b
}

// clampValue keeps value inside the range without touching the extent.
func clampValue(b bounds, value int) int {
	value = max(value, b.minimum)
	if value+b.extent > b.maximum {
		value = b.maximum - b.extent
	}
	return value
}

// Default is an in-memory Model.
type Default struct {
	b         bounds
	listeners notify.Listeners[struct{}]
}

var _ Model = &Default{}

// NewDefault returns a range model with the given properties, normalised.
func NewDefault(value, extent, minimum, maximum int) *Default {
	return &Default{b: normalize(bounds{value: value, extent: extent, minimum: minimum, maximum: maximum})}
}

func (d *Default) Minimum() int { return d.b.minimum }
func (d *Default) Maximum() int { return d.b.maximum }
func (d *Default) Value() int   { return d.b.value }
func (d *Default) Extent() int  { return d.b.extent }

// Subscribe registers a change listener.
func (d *Default) Subscribe(fn func()) func() {
	return d.listeners.Subscribe(func(struct{}) { fn() })
}

// SetValue moves the value. It never fails.
func (d *Default) SetValue(value int) error {
	value = clampValue(d.b, value)
	if value == d.b.value {
		return nil
	}
	d.b.value = value
	d.listeners.Notify(struct{}{})
	return nil
}

// SetRangeProperties replaces all properties. It never fails.
func (d *Default) SetRangeProperties(value, extent, minimum, maximum int) error {
	next := normalize(bounds{value: value, extent: extent, minimum: minimum, maximum: maximum})
	if next == d.b {
		return nil
	}
	d.b = next
	d.listeners.Notify(struct{}{})
	return nil
}

// Property is a Model whose value lives in an external property reached
// through a getter and a setter. Bounds and extent are kept locally. Value
// returns the last value read; Refresh reads it again.
type Property struct {
	get func() (int, error)
	set func(int) error

	b         bounds
	listeners notify.Listeners[struct{}]
}

var _ Model = &Property{}

// NewProperty reads the current value through get and returns a model over
// [minimum, maximum].
func NewProperty(get func() (int, error), set func(int) error, minimum, maximum int) (*Property, error) {
	if get == nil || set == nil {
		return nil, ErrNoProperty
	}
	p := &Property{get: get, set: set}
	value, err := p.read()
	if err != nil {
		return nil, err
	}
	p.b = normalize(bounds{value: value, minimum: minimum, maximum: maximum})
	return p, nil
}

func (p *Property) read() (int, error) {
	value, err := p.get()
	if err != nil {
		return 0, fmt.Errorf("rangemodel: property getter: %w", err)
	}
	return value, nil
}

func (p *Property) write(value int) error {
	if err := p.set(value); err != nil {
		return fmt.Errorf("rangemodel: property setter: %w", err)
	}
	return nil
}

func (p *Property) Minimum() int { return p.b.minimum }
func (p *Property) Maximum() int { return p.b.maximum }
func (p *Property) Value() int   { return p.b.value }
func (p *Property) Extent() int  { return p.b.extent }

// Subscribe registers a change listener.
func (p *Property) Subscribe(fn func()) func() {
	return p.listeners.Subscribe(func(struct{}) { fn() })
}

// Refresh re-reads the property and notifies listeners if it moved.
func (p *Property) Refresh() error {
	value, err := p.read()
	if err != nil {
		return err
	}
	next := normalize(bounds{value: value, extent: p.b.extent, minimum: p.b.minimum, maximum: p.b.maximum})
	if next == p.b {
		return nil
	}
	p.b = next
	p.listeners.Notify(struct{}{})
	return nil
}

// SetValue writes the clamped value through the setter. On failure the local
// state is left untouched.
func (p *Property) SetValue(value int) error {
	value = clampValue(p.b, value)
	if value == p.b.value {
		return nil
	}
	if err := p.write(value); err != nil {
		return err
	}
	p.b.value = value
	p.listeners.Notify(struct{}{})
	return nil
}

// SetRangeProperties replaces all properties, writing the value through the
// setter when it changes.
func (p *Property) SetRangeProperties(value, extent, minimum, maximum int) error {
	next := normalize(bounds{value: value, extent: extent, minimum: minimum, maximum: maximum})
	if next == p.b {
		return nil
	}
	if next.value != p.b.value {
		if err := p.write(next.value); err != nil {
			return err
		}
	}
	p.b = next
	p.listeners.Notify(struct{}{})
	return nil
}
