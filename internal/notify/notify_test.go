package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenersOrder(t *testing.T) {
	var l Listeners[int]
	var got []string
	l.Subscribe(func(v int) { got = append(got, "a") })
	l.Subscribe(func(v int) { got = append(got, "b") })

	l.Notify(1)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestListenersCancel(t *testing.T) {
	var l Listeners[string]
	calls := 0
	cancel := l.Subscribe(func(string) { calls++ })
	require.Equal(t, 1, l.Len())

	cancel()
	cancel()
	l.Notify("x")
	assert.Zero(t, calls)
	assert.Zero(t, l.Len())
}

func TestListenersCancelDuringNotify(t *testing.T) {
	var l Listeners[int]
	var second int
	var cancelSecond func()
	l.Subscribe(func(int) { cancelSecond() })
	cancelSecond = l.Subscribe(func(int) { second++ })

	l.Notify(0)
	assert.Equal(t, 1, second, "snapshot still delivers to the cancelled listener once")
	l.Notify(0)
	assert.Equal(t, 1, second)
}

func TestListenersNilFunc(t *testing.T) {
	var l Listeners[int]
	cancel := l.Subscribe(nil)
	cancel()
	assert.Zero(t, l.Len())
}
