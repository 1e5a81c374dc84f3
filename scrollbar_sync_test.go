package gridview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/gridview/rangemodel"
)

// countingRange counts writes to a range model.
type countingRange struct {
	*rangemodel.Default
	values, ranges int
}

func (c *countingRange) SetValue(value int) error {
	c.values++
	return c.Default.SetValue(value)
}

func (c *countingRange) SetRangeProperties(value, extent, minimum, maximum int) error {
	c.ranges++
	return c.Default.SetRangeProperties(value, extent, minimum, maximum)
}

func rangeOf(m rangemodel.Model) [4]int {
	return [4]int{m.Value(), m.Extent(), m.Minimum(), m.Maximum()}
}

func TestScrollModelFollowsWindow(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	m := l.GetScrollModel()

	assert.Equal(t, [4]int{0, 3, 0, 9}, rangeOf(m))
	assert.True(t, l.GetScrollBar().IsEnabled())

	l.SetFirstIndex(4)
	assert.Equal(t, [4]int{4, 3, 0, 9}, rangeOf(m))

	require.NoError(t, l.SetGridSize(3, 2))
	assert.Equal(t, [4]int{4, 5, 0, 9}, rangeOf(m))
}

func TestScrollModelRoundTrip(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)
	m := &countingRange{Default: rangemodel.NewDefault(0, 0, 0, 0)}
	l.SetScrollModel(m)
	require.Equal(t, 1, m.ranges)
	require.Equal(t, [4]int{0, 3, 0, 9}, rangeOf(m))
	m.values, m.ranges = 0, 0

	require.NoError(t, m.SetValue(5))
	assert.Equal(t, 5, l.GetFirstIndex())
	assert.Equal(t, 1, m.values)
	assert.Zero(t, m.ranges, "the list must not write back the value it just received")
	checkMapping(t, l)

	l.SetFirstIndex(2)
	assert.Equal(t, 1, m.ranges)
	assert.Equal(t, 2, m.Value())
	assert.Equal(t, 2, l.GetFirstIndex())
}

func TestScrollModelEmptyList(t *testing.T) {
	l, _, model := newTestList(t, 2, 2, 10, false)
	l.SetFirstIndex(4)

	require.NoError(t, model.Remove(0, 9))
	assert.Equal(t, [4]int{0, 0, 0, 0}, rangeOf(l.GetScrollModel()))
	assert.False(t, l.GetScrollBar().IsEnabled())

	model.Append("a")
	assert.True(t, l.GetScrollBar().IsEnabled())

	l.SetModel(nil)
	assert.False(t, l.GetScrollBar().IsEnabled())
}

func TestScrollModelWriteFailure(t *testing.T) {
	boom := errors.New("boom")
	m, err := rangemodel.NewProperty(
		func() (int, error) { return 0, nil },
		func(int) error { return boom },
		0, 0,
	)
	require.NoError(t, err)

	l, _, _ := newTestList(t, 2, 2, 10, false)
	var got error
	l.SetErrorFunc(func(err error) { got = err })
	l.SetScrollModel(m)
	require.NoError(t, got)

	l.SetFirstIndex(4)
	assert.ErrorIs(t, got, boom)
	assert.Equal(t, 4, l.GetFirstIndex())
	assert.Zero(t, m.Value(), "the failed write leaves the model untouched")
}

func TestWheelScrollsByRow(t *testing.T) {
	l, _, _ := newTestList(t, 2, 2, 10, false)

	_, cmd := l.handleMouse(MouseScrollDown, 5, 5, false)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 2, l.GetFirstIndex())

	l.handleMouse(MouseScrollDown, 5, 5, false)
	l.handleMouse(MouseScrollDown, 5, 5, false)
	assert.Equal(t, 6, l.GetFirstIndex(), "the scroll model stops at the last page")

	l.handleMouse(MouseScrollUp, 5, 5, false)
	assert.Equal(t, 4, l.GetFirstIndex())
}
