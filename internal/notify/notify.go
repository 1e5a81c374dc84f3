// Package notify provides the listener registry shared by the observable
// models of this module.
package notify

// Listeners keeps an ordered set of callbacks. The zero value is ready to use.
// It is not safe for concurrent use; models are owned by the UI goroutine.
type Listeners[E any] struct {
	next    int
	entries []entry[E]
}

type entry[E any] struct {
	id int
	fn func(E)
}

// Subscribe registers fn and returns a function removing it again. Calling
// the returned function more than once is harmless.
func (l *Listeners[E]) Subscribe(fn func(E)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	l.next++
	id := l.next
	l.entries = append(l.entries, entry[E]{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every listener in subscription order. Listeners subscribed or
// cancelled while notifying take effect on the next call.
func (l *Listeners[E]) Notify(event E) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := make([]entry[E], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.fn(event)
	}
}

// Len returns the number of registered listeners.
func (l *Listeners[E]) Len() int {
	return len(l.entries)
}
