package layout

import (
	"sync"
	"time"

	"github.com/SuperPauly/n8n-m/pkg/debounce"
)

// DefaultDragThrottle bounds how often continuous width-resize drags
// mutate geometry. Movement between ticks is coalesced, not dropped.
const DefaultDragThrottle = 100 * time.Millisecond

// DragState is the controller's state machine: Idle or Dragging.
type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// String returns the human-readable name of the drag state.
func (d DragState) String() string {
	switch d {
	case DragIdle:
		return "idle"
	case DragActive:
		return "dragging"
	default:
		return "unknown"
	}
}

// Edge names which edge of the main panel a resize drag grabbed.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
)

// MoveKind distinguishes the two drag gestures.
type MoveKind int

const (
	// MoveResize drags one edge, changing the panel size. Applied at
	// most once per throttle window.
	MoveResize MoveKind = iota
	// MoveReposition drags the whole panel, changing only its
	// position. Applied immediately.
	MoveReposition
)

// Move is one pointer-move event inside a drag session. Pos is the
// absolute pointer position in pixels along the session axis (x for
// horizontal, y for vertical).
type Move struct {
	Kind MoveKind
	Edge Edge
	Pos  float64
}

// WidthStore is the persistence seam: one width scalar per panel type.
// Absent and malformed values both come back as ok == false.
type WidthStore interface {
	Load(panelType string) (float64, bool)
	Save(panelType string, relativeWidth float64) error
}

// dragSession is the ephemeral per-drag state. Orientation is frozen
// at session start so an orientation flip mid-drag cannot cause a
// geometry discontinuity.
type dragSession struct {
	panel    PanelType
	vertical bool
}

// Controller translates raw pointer-drag events into bounded Store
// mutations. Out-of-bounds candidates are silently rejected; accepted
// width resizes are throttled with latest-wins coalescing; the final
// width is persisted on release.
type Controller struct {
	mu       sync.Mutex
	state    DragState
	settling bool
	session  dragSession

	model    *Store
	throttle *debounce.Throttler
	widths   WidthStore
	emit     func(Event)
}

// NewController creates a drag controller over the store. widths and
// emit may be nil. A zero throttle window means DefaultDragThrottle.
func NewController(model *Store, throttle time.Duration, widths WidthStore, emit func(Event)) *Controller {
	if throttle == 0 {
		throttle = DefaultDragThrottle
	}
	if emit == nil {
		emit = func(Event) {}
	}
	return &Controller{
		model:    model,
		throttle: debounce.NewThrottler(throttle),
		widths:   widths,
		emit:     emit,
	}
}

// State returns the current drag state.
func (c *Controller) State() DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dragging reports whether a drag is in progress. It keeps reporting
// true through the zero-delay settle step after release, so a click
// handler running synchronously after drag-end can tell a drag from a
// click.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == DragActive || c.settling
}

// Start opens a drag session for the panel, freezing the orientation.
// Starting while already dragging is a no-op.
func (c *Controller) Start(pt PanelType, vertical bool) {
	c.mu.Lock()
	if c.state == DragActive {
		c.mu.Unlock()
		return
	}
	c.state = DragActive
	c.settling = false
	c.session = dragSession{panel: pt, vertical: vertical}
	c.mu.Unlock()

	g := c.model.Geometry(pt, vertical)
	c.emit(Event{Kind: EventDragStart, Position: g.Lead})
}

// MoveBy applies one pointer-move event. Moves outside the session, or
// whose candidate violates a position bound, are no-ops.
func (c *Controller) MoveBy(mv Move) {
	c.mu.Lock()
	if c.state != DragActive {
		c.mu.Unlock()
		return
	}
	sess := c.session
	c.mu.Unlock()

	width, height := c.model.Viewport()
	container := width
	if sess.vertical {
		container = height
	}
	if container <= 0 {
		return
	}

	g := c.model.Geometry(sess.panel, sess.vertical)
	pos := PxToRelative(mv.Pos, container)

	switch mv.Kind {
	case MoveReposition:
		minLead, maxLead := c.model.Bounds(g.Size, sess.vertical)
		if pos < minLead || pos > maxLead {
			return // rejected, not an error
		}
		c.model.SetPosition(sess.panel, sess.vertical, pos)

	case MoveResize:
		minSize := MinRelativeWidth(container)
		if sess.vertical {
			minSize = MinRelativeHeight(container)
		}
		var lead, size float64
		if mv.Edge == EdgeLeft {
			// Trailing edge stays put, even once the minimum width
			// stops the shrink.
			size = (g.Lead + g.Size) - pos
			if size < minSize {
				size = minSize
			}
			lead = (g.Lead + g.Size) - size
		} else {
			lead = g.Lead
			size = pos - g.Lead
			if size < minSize {
				size = minSize
			}
		}
		minLead, _ := c.model.Bounds(size, sess.vertical)
		if lead < minLead {
			return
		}
		var maxTrail float64
		if sess.vertical {
			maxTrail = clamp(PxToRelative(VerticalMargin, container), 0, 1)
		} else {
			maxTrail = MaximumRightPosition(container)
		}
		if 1-(lead+size) < maxTrail-SumTolerance {
			return
		}
		c.throttle.Do(func() {
			c.mu.Lock()
			active := c.state == DragActive || c.settling
			c.mu.Unlock()
			if !active {
				return
			}
			c.model.SetWidth(sess.panel, sess.vertical, size)
			c.model.SetPosition(sess.panel, sess.vertical, lead)
		})
	}
}

// End closes the drag session. The last coalesced resize is flushed,
// then a zero-delay deferred step persists the final width and emits
// the drag-end notification.
func (c *Controller) End() {
	c.mu.Lock()
	if c.state != DragActive {
		c.mu.Unlock()
		return
	}
	c.state = DragIdle
	c.settling = true
	sess := c.session
	c.mu.Unlock()

	c.throttle.Flush()

	time.AfterFunc(0, func() {
		c.mu.Lock()
		if !c.settling {
			c.mu.Unlock()
			return
		}
		c.settling = false
		c.mu.Unlock()

		g := c.model.Geometry(sess.panel, sess.vertical)
		if c.widths != nil && !sess.vertical {
			// Persistence is keyed by panel type; only the horizontal
			// width family is durable.
			_ = c.widths.Save(string(sess.panel), g.Size)
		}
		width, _ := c.model.Viewport()
		c.emit(Event{Kind: EventDragEnd, Position: g.Lead, WindowWidth: int(width)})
	})
}

// Cancel aborts any in-flight session without persisting or emitting.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.state = DragIdle
	c.settling = false
	c.mu.Unlock()
	c.throttle.Cancel()
}
