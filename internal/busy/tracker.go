package busy

import "sync"

// Listener receives busy-state transitions.
type Listener func(busy bool)

// Tracker counts in-flight API calls and notifies listeners only when the
// count transitions between zero and non-zero. Overlapping calls therefore
// keep the indicator raised until the last one finishes.
type Tracker struct {
	mu        sync.Mutex
	inflight  int
	listeners []Listener
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Subscribe registers a listener for busy transitions. Listeners are invoked
// synchronously under the tracker's lock, so transition order is preserved.
func (t *Tracker) Subscribe(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// Begin marks one call as in flight.
func (t *Tracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inflight++
	if t.inflight == 1 {
		t.notify(true)
	}
}

// End marks one call as finished. Unbalanced calls are ignored.
func (t *Tracker) End() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inflight == 0 {
		return
	}
	t.inflight--
	if t.inflight == 0 {
		t.notify(false)
	}
}

// InFlight returns the current number of outstanding calls.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inflight
}

func (t *Tracker) notify(busy bool) {
	for _, l := range t.listeners {
		l(busy)
	}
}
