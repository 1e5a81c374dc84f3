package rangemodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(m Model) [4]int {
	return [4]int{m.Value(), m.Extent(), m.Minimum(), m.Maximum()}
}

func TestDefaultNormalize(t *testing.T) {
	tests := []struct {
		name               string
		value, ext, lo, hi int
		want               [4]int
	}{
		{name: "valid", value: 2, ext: 3, lo: 0, hi: 9, want: [4]int{2, 3, 0, 9}},
		{name: "extent clipped", value: 8, ext: 3, lo: 0, hi: 9, want: [4]int{8, 1, 0, 9}},
		{name: "value above max grows max", value: 12, ext: 0, lo: 0, hi: 9, want: [4]int{12, 0, 0, 12}},
		{name: "value below min lowers min", value: -2, ext: 1, lo: 0, hi: 9, want: [4]int{-2, 1, -2, 9}},
		{name: "negative extent", value: 0, ext: -4, lo: 0, hi: 0, want: [4]int{0, 0, 0, 0}},
		{name: "min above max", value: 0, ext: 0, lo: 5, hi: 3, want: [4]int{0, 0, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snapshot(NewDefault(tt.value, tt.ext, tt.lo, tt.hi)))
		})
	}
}

func TestDefaultSetValueClampsAndNotifies(t *testing.T) {
	d := NewDefault(0, 3, 0, 9)
	calls := 0
	d.Subscribe(func() { calls++ })

	require.NoError(t, d.SetValue(20))
	assert.Equal(t, 6, d.Value())
	require.NoError(t, d.SetValue(6))
	require.NoError(t, d.SetValue(-5))
	assert.Equal(t, 0, d.Value())
	assert.Equal(t, 2, calls)

	require.NoError(t, d.SetRangeProperties(0, 3, 0, 9))
	assert.Equal(t, 2, calls, "unchanged properties do not notify")
	require.NoError(t, d.SetRangeProperties(1, 3, 0, 9))
	assert.Equal(t, 3, calls)
}

type property struct {
	value          int
	getErr, setErr error
}

func (p *property) get() (int, error) { return p.value, p.getErr }
func (p *property) set(v int) error {
	if p.setErr != nil {
		return p.setErr
	}
	p.value = v
	return nil
}

func TestPropertyRoundTrip(t *testing.T) {
	backend := &property{value: 4}
	p, err := NewProperty(backend.get, backend.set, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, [4]int{4, 0, 0, 10}, snapshot(p))

	require.NoError(t, p.SetValue(7))
	assert.Equal(t, 7, backend.value)

	backend.value = 2
	calls := 0
	p.Subscribe(func() { calls++ })
	require.NoError(t, p.Refresh())
	assert.Equal(t, 2, p.Value())
	assert.Equal(t, 1, calls)
}

func TestPropertyFailuresAreWrapped(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewProperty(nil, nil, 0, 1)
	assert.ErrorIs(t, err, ErrNoProperty)

	_, err = NewProperty((&property{getErr: boom}).get, (&property{}).set, 0, 1)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "property getter")

	backend := &property{value: 1}
	p, err := NewProperty(backend.get, backend.set, 0, 10)
	require.NoError(t, err)

	backend.setErr = boom
	err = p.SetValue(5)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "property setter")
	assert.Equal(t, 1, p.Value(), "failed writes leave the model unchanged")

	err = p.SetRangeProperties(3, 1, 0, 10)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, [4]int{1, 0, 0, 10}, snapshot(p))

	backend.getErr = boom
	assert.ErrorIs(t, p.Refresh(), boom)
}
