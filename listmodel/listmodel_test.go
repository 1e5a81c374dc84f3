package listmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(m Model) *[]Event {
	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })
	return &events
}

func TestSliceAppendInsert(t *testing.T) {
	s := NewSlice("a", "b")
	events := record(s)

	s.Append("c", "d")
	require.NoError(t, s.Insert(1, "x"))
	s.Append()

	assert.Equal(t, []string{"a", "x", "b", "c", "d"}, s.Items())
	assert.Equal(t, []Event{
		{Type: IntervalAdded, Index0: 2, Index1: 3},
		{Type: IntervalAdded, Index0: 1, Index1: 1},
	}, *events)
}

func TestSliceMutationErrors(t *testing.T) {
	s := NewSlice(1, 2, 3)
	events := record(s)

	assert.ErrorIs(t, s.Insert(4, 9), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Remove(1, 3), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Set(-1, 0), ErrIndexOutOfRange)
	_, err := s.Move([]int{5}, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.Empty(t, *events)
	assert.Equal(t, []int{1, 2, 3}, s.Items())
}

func TestSliceRemoveSet(t *testing.T) {
	s := NewSlice(0, 1, 2, 3, 4)
	events := record(s)

	require.NoError(t, s.Remove(3, 1))
	require.NoError(t, s.Set(0, 9))

	assert.Equal(t, []int{9, 4}, s.Items())
	assert.Equal(t, []Event{
		{Type: IntervalRemoved, Index0: 1, Index1: 3},
		{Type: ContentsChanged, Index0: 0, Index1: 0},
	}, *events)
}

func TestSliceMove(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		to      int
		want    []string
		first   int
	}{
		{name: "forward", indices: []int{0, 1}, to: 4, want: []string{"c", "d", "a", "b", "e"}, first: 2},
		{name: "backward", indices: []int{3}, to: 1, want: []string{"a", "d", "b", "c", "e"}, first: 1},
		{name: "append", indices: []int{1, 3}, to: 5, want: []string{"a", "c", "e", "b", "d"}, first: 3},
		{name: "onto itself", indices: []int{2}, to: 2, want: []string{"a", "b", "c", "d", "e"}, first: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlice("a", "b", "c", "d", "e")
			first, err := s.Move(tt.indices, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Items())
			assert.Equal(t, tt.first, first)
		})
	}
}

func TestSliceReset(t *testing.T) {
	s := NewSlice(1, 2, 3)
	events := record(s)

	s.Reset(7)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 7, s.Item(0))
	assert.Equal(t, []Event{{Type: ContentsChanged, Index0: 0, Index1: 2}}, *events)
}
