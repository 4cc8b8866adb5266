package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 10; i++ {
		i := i
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}

	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 callback, got %d", got)
	}
	if got := last.Load(); got != 10 {
		t.Errorf("expected last trigger to win, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Fatalf("expected cancelled callback not to run, got %d calls", got)
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { calls.Add(1) })
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 callbacks for 2 separate bursts, got %d", got)
	}
}

func TestDebouncerDefaultWindow(t *testing.T) {
	d := NewDebouncer(0)
	if d.Window() != DefaultWindow {
		t.Errorf("expected default window %v, got %v", DefaultWindow, d.Window())
	}
}

func TestThrottlerLeadingEdgeImmediate(t *testing.T) {
	th := NewThrottler(50 * time.Millisecond)
	var calls atomic.Int32

	th.Do(func() { calls.Add(1) })

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected first call to run immediately, got %d", got)
	}
	th.Cancel()
}

func TestThrottlerCoalescesLatestWins(t *testing.T) {
	th := NewThrottler(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		i := i
		th.Do(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}

	// Leading edge ran call 1; the trailing edge should apply only
	// call 5 once the window closes.
	time.Sleep(120 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 applications (leading + trailing), got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("expected latest pending value to win, got %d", got)
	}
	th.Cancel()
}

func TestThrottlerFlushAppliesPending(t *testing.T) {
	th := NewThrottler(500 * time.Millisecond)
	var last atomic.Int32

	th.Do(func() { last.Store(1) })
	th.Do(func() { last.Store(2) })
	th.Do(func() { last.Store(3) })

	th.Flush()

	if got := last.Load(); got != 3 {
		t.Fatalf("expected Flush to apply the latest pending value, got %d", got)
	}
}

func TestThrottlerCancelDropsPending(t *testing.T) {
	th := NewThrottler(20 * time.Millisecond)
	var calls atomic.Int32

	th.Do(func() { calls.Add(1) })
	th.Do(func() { calls.Add(1) })
	th.Cancel()

	time.Sleep(80 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected only the leading call after Cancel, got %d", got)
	}
}
