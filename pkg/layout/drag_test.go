package layout

import (
	"math"
	"sync"
	"testing"
	"time"
)

// memWidths is an in-memory WidthStore for tests.
type memWidths struct {
	mu sync.Mutex
	m  map[string]float64
}

func newMemWidths() *memWidths {
	return &memWidths{m: make(map[string]float64)}
}

func (s *memWidths) Load(pt string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.m[pt]
	return w, ok
}

func (s *memWidths) Save(pt string, w float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[pt] = w
	return nil
}

type eventSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *eventSink) add(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *eventSink) kinds() []EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EventKind, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Kind
	}
	return out
}

func (s *eventSink) last() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return Event{}, false
	}
	return s.events[len(s.events)-1], true
}

func dragFixture(t *testing.T) (*Store, *Controller, *memWidths, *eventSink) {
	t.Helper()
	s := testStore(1280, 800)
	s.PositionPanel(PanelRegular, false, true)
	widths := newMemWidths()
	sink := &eventSink{}
	c := NewController(s, 5*time.Millisecond, widths, sink.add)
	return s, c, widths, sink
}

func TestDragStateMachine(t *testing.T) {
	_, c, _, _ := dragFixture(t)

	if c.State() != DragIdle {
		t.Fatalf("fresh controller state = %v, want idle", c.State())
	}
	c.Start(PanelRegular, false)
	if c.State() != DragActive {
		t.Fatalf("state after Start = %v, want dragging", c.State())
	}
	// Re-entrant start is a no-op.
	c.Start(PanelWide, false)
	c.End()
	time.Sleep(30 * time.Millisecond)
	if c.State() != DragIdle || c.Dragging() {
		t.Errorf("state after End = %v dragging=%v, want idle", c.State(), c.Dragging())
	}
}

func TestRepositionMoveAppliesImmediately(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)

	c.MoveBy(Move{Kind: MoveReposition, Pos: 640})

	g := s.Geometry(PanelRegular, false)
	if math.Abs(g.Lead-0.5) > 1e-9 {
		t.Errorf("lead = %v, want 0.5", g.Lead)
	}
	assertSum(t, g)
}

func TestOutOfBoundsMoveIsNoOp(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)
	before := s.Geometry(PanelRegular, false)

	// Beyond the maximum lead for the panel width.
	c.MoveBy(Move{Kind: MoveReposition, Pos: 1250})
	// Before the minimum-left bound.
	c.MoveBy(Move{Kind: MoveReposition, Pos: 2})

	after := s.Geometry(PanelRegular, false)
	if after != before {
		t.Errorf("rejected moves must not change geometry: %+v -> %+v", before, after)
	}
	if c.State() != DragActive {
		t.Error("rejected moves must not end the session")
	}
}

func TestResizeMoveThrottledLatestWins(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)
	g := s.Geometry(PanelRegular, false)
	rightEdge := RelativeToPx(g.Lead+g.Size, 1280)

	// A burst of right-edge resizes. The leading one applies at once,
	// the rest coalesce; the latest pending target wins.
	for _, dx := range []float64{20, 40, 60, 80, 100} {
		c.MoveBy(Move{Kind: MoveResize, Edge: EdgeRight, Pos: rightEdge + dx})
	}
	time.Sleep(40 * time.Millisecond)

	got := s.Geometry(PanelRegular, false)
	want := g.Size + 100/1280.0
	if math.Abs(got.Size-want) > 1e-9 {
		t.Errorf("size = %v, want latest candidate %v", got.Size, want)
	}
	assertSum(t, got)
	c.End()
}

func TestResizePastRightMarginIsNoOp(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)
	before := s.Geometry(PanelRegular, false)

	// Dragging the right edge into the right side margin is rejected.
	c.MoveBy(Move{Kind: MoveResize, Edge: EdgeRight, Pos: 1280})
	time.Sleep(30 * time.Millisecond)

	if got := s.Geometry(PanelRegular, false); got != before {
		t.Errorf("out-of-bounds resize changed geometry: %+v", got)
	}
}

func TestLeftEdgeResizeKeepsRightEdge(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)
	g := s.Geometry(PanelRegular, false)
	rightEdge := g.Lead + g.Size

	c.MoveBy(Move{Kind: MoveResize, Edge: EdgeLeft, Pos: RelativeToPx(g.Lead-0.1, 1280)})
	time.Sleep(30 * time.Millisecond)

	got := s.Geometry(PanelRegular, false)
	if math.Abs((got.Lead+got.Size)-rightEdge) > 1e-9 {
		t.Errorf("right edge moved during left-edge resize: %v -> %v", rightEdge, got.Lead+got.Size)
	}
	if math.Abs(got.Size-(g.Size+0.1)) > 1e-9 {
		t.Errorf("size = %v, want %v", got.Size, g.Size+0.1)
	}

	// Dragging inward past the minimum width pins the size at the
	// minimum with the right edge still in place, instead of pushing
	// the panel rightward.
	c.MoveBy(Move{Kind: MoveResize, Edge: EdgeLeft, Pos: RelativeToPx(rightEdge, 1280) - 10})
	time.Sleep(30 * time.Millisecond)

	got = s.Geometry(PanelRegular, false)
	minSize := MinRelativeWidth(1280)
	if math.Abs(got.Size-minSize) > 1e-9 {
		t.Errorf("size past the minimum = %v, want %v", got.Size, minSize)
	}
	if math.Abs((got.Lead+got.Size)-rightEdge) > 1e-9 {
		t.Errorf("right edge drifted once the minimum was hit: %v -> %v", rightEdge, got.Lead+got.Size)
	}
}

func TestEndPersistsWidthAndEmits(t *testing.T) {
	s, c, widths, sink := dragFixture(t)
	c.Start(PanelRegular, false)
	g := s.Geometry(PanelRegular, false)
	rightEdge := RelativeToPx(g.Lead+g.Size, 1280)

	c.MoveBy(Move{Kind: MoveResize, Edge: EdgeRight, Pos: rightEdge + 64})
	c.End()
	time.Sleep(40 * time.Millisecond)

	final := s.Geometry(PanelRegular, false)
	w, ok := widths.Load(string(PanelRegular))
	if !ok {
		t.Fatal("drag end must persist the final width")
	}
	if math.Abs(w-final.Size) > 1e-9 {
		t.Errorf("persisted %v, geometry has %v", w, final.Size)
	}

	ev, ok := sink.last()
	if !ok || ev.Kind != EventDragEnd {
		t.Fatalf("expected dragend as last event, got %+v", ev)
	}
	if ev.WindowWidth != 1280 {
		t.Errorf("dragend window width = %d, want 1280", ev.WindowWidth)
	}
	if math.Abs(ev.Position-final.Lead) > 1e-9 {
		t.Errorf("dragend position = %v, want %v", ev.Position, final.Lead)
	}

	kinds := sink.kinds()
	if kinds[0] != EventDragStart {
		t.Errorf("expected dragstart first, got %v", kinds)
	}
}

func TestMoveAfterEndIsIgnored(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)
	c.End()
	time.Sleep(30 * time.Millisecond)
	before := s.Geometry(PanelRegular, false)

	c.MoveBy(Move{Kind: MoveReposition, Pos: 640})

	if got := s.Geometry(PanelRegular, false); got != before {
		t.Errorf("move outside a session changed geometry: %+v", got)
	}
}

func TestCancelDoesNotPersist(t *testing.T) {
	_, c, widths, _ := dragFixture(t)
	c.Start(PanelRegular, false)
	c.Cancel()
	time.Sleep(30 * time.Millisecond)

	if _, ok := widths.Load(string(PanelRegular)); ok {
		t.Error("cancelled drag must not persist a width")
	}
}

func TestAcceptedDragNeverViolatesBounds(t *testing.T) {
	s, c, _, _ := dragFixture(t)
	c.Start(PanelRegular, false)

	positions := []float64{-200, 0, 100, 640, 900, 1100, 1270, 5000}
	for _, px := range positions {
		c.MoveBy(Move{Kind: MoveReposition, Pos: px})
		g := s.Geometry(PanelRegular, false)
		minLead, _ := s.Bounds(g.Size, false)
		if g.Lead < minLead-SumTolerance {
			t.Fatalf("lead %v below minimum-left after move to %v", g.Lead, px)
		}
		if g.Trail < MaximumRightPosition(1280)-SumTolerance {
			t.Fatalf("trail %v below maximum-right after move to %v", g.Trail, px)
		}
		assertSum(t, g)
	}
}
