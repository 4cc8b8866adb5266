package layout

import (
	"sync"
	"time"

	"github.com/SuperPauly/n8n-m/pkg/debounce"
)

// DefaultResizeDebounce is how long a burst of resize notifications is
// allowed to settle before reclassification.
const DefaultResizeDebounce = 50 * time.Millisecond

// Viewport is the current container size in pixels. Read-only input.
type Viewport struct {
	Width  int
	Height int
}

// Classification is one settled viewport sample with everything
// derived from it.
type Classification struct {
	Viewport   Viewport
	Breakpoint Breakpoint
	IsMobile   bool
	IsTablet   bool
	IsDesktop  bool

	// Vertical is the stacked-layout signal. It is recomputed on every
	// sample rather than debounced separately; it rides on the same
	// settled sample as the breakpoint.
	Vertical bool
}

// ClassifyViewport derives a full Classification from a raw sample.
func ClassifyViewport(width, height int, touch bool) Classification {
	return Classification{
		Viewport:   Viewport{Width: width, Height: height},
		Breakpoint: Classify(width),
		IsMobile:   IsMobile(width),
		IsTablet:   IsTablet(width),
		IsDesktop:  IsDesktop(width),
		Vertical:   UseVerticalLayout(width, height, touch),
	}
}

// Monitor watches viewport samples and publishes a debounced
// Classification: a burst of resize events yields exactly one
// reclassification.
type Monitor struct {
	mu       sync.Mutex
	deb      *debounce.Debouncer
	touch    bool
	current  Classification
	onSample func(Classification)
	closed   bool
}

// NewMonitor creates a Monitor. onSample runs once per settled sample;
// it may be nil. A zero window means DefaultResizeDebounce.
func NewMonitor(window time.Duration, touch bool, onSample func(Classification)) *Monitor {
	if window == 0 {
		window = DefaultResizeDebounce
	}
	return &Monitor{
		deb:      debounce.NewDebouncer(window),
		touch:    touch,
		onSample: onSample,
	}
}

// Observe feeds one raw viewport sample. Reclassification is deferred
// by the debounce window; within a burst only the last sample lands.
func (m *Monitor) Observe(width, height int) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.deb.Trigger(func() {
		c := ClassifyViewport(width, height, m.touch)

		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return
		}
		m.current = c
		fn := m.onSample
		m.mu.Unlock()

		if fn != nil {
			fn(c)
		}
	})
}

// Current returns the last settled classification. The zero value is
// returned before the first sample settles.
func (m *Monitor) Current() Classification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Touch reports the touch capability the monitor was built with.
func (m *Monitor) Touch() bool {
	return m.touch
}

// Close cancels any pending reclassification. No callback fires after
// Close returns.
func (m *Monitor) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.deb.Cancel()
}
