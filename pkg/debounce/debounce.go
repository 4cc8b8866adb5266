// Package debounce provides the two timing primitives the layout engine
// leans on: a Debouncer that collapses a burst of events into a single
// callback, and a Throttler that limits a stream of updates to at most
// one application per window while keeping the latest pending value.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the debounce window used when none is given.
const DefaultWindow = 50 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback invocation.
// When Trigger is called multiple times within the window, only the
// callback from the last call runs, after the window elapses.
type Debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
}

// NewDebouncer creates a Debouncer with the given window.
// A zero window means DefaultWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the window elapses, replacing any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Only the most recently scheduled callback may run. Stop() can
		// return false when the timer already fired, so the generation
		// check is what actually prevents a stale callback from racing
		// a newer one.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Cancel drops any pending callback, including one whose timer already
// fired but has not yet run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Throttler applies at most one callback per window. The first call in
// an idle period runs immediately; calls arriving inside the open
// window replace the pending callback, and the latest pending callback
// runs when the window closes. Nothing is ever dropped silently: the
// newest value always lands, either on the trailing edge or via Flush.
type Throttler struct {
	window  time.Duration
	mu      sync.Mutex
	open    bool
	pending func()
	gen     uint64
}

// NewThrottler creates a Throttler with the given window.
// A zero window means DefaultWindow.
func NewThrottler(window time.Duration) *Throttler {
	if window == 0 {
		window = DefaultWindow
	}
	return &Throttler{window: window}
}

// Do runs fn now if the window is closed, otherwise records it as the
// pending callback for the trailing edge.
func (t *Throttler) Do(fn func()) {
	t.mu.Lock()
	if t.open {
		t.pending = fn
		t.mu.Unlock()
		return
	}
	t.open = true
	gen := t.gen
	t.mu.Unlock()

	fn()
	t.schedule(gen)
}

func (t *Throttler) schedule(gen uint64) {
	time.AfterFunc(t.window, func() {
		t.mu.Lock()
		if gen != t.gen {
			t.mu.Unlock()
			return
		}
		fn := t.pending
		t.pending = nil
		if fn == nil {
			t.open = false
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()

		fn()
		t.schedule(gen)
	})
}

// Flush runs the pending callback immediately, if any, and closes the
// window. Used on drag release so the final sample is never stranded
// behind a throttle tick.
func (t *Throttler) Flush() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	t.open = false
	t.gen++
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Cancel drops the pending callback and closes the window.
func (t *Throttler) Cancel() {
	t.mu.Lock()
	t.pending = nil
	t.open = false
	t.gen++
	t.mu.Unlock()
}

// Window returns the throttle window.
func (t *Throttler) Window() time.Duration {
	return t.window
}
