package layout

import (
	"sync"
	"time"
)

// EventKind enumerates the notifications the engine exposes to its
// host controller.
type EventKind int

const (
	// EventInit fires once, after the first layout settles.
	EventInit EventKind = iota
	// EventDragStart fires when a drag session opens.
	EventDragStart
	// EventDragEnd fires after the deferred drag-end settle step.
	EventDragEnd
	// EventSwitchSelectedNode is a pass-through from the host's node
	// switcher.
	EventSwitchSelectedNode
	// EventClose is a pass-through fired when the surface closes.
	EventClose
)

// String returns the event name as the host sees it.
func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventDragStart:
		return "dragstart"
	case EventDragEnd:
		return "dragend"
	case EventSwitchSelectedNode:
		return "switchSelectedNode"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is one engine notification. Position is the main panel's
// relative lead at the time of the event; WindowWidth is only set on
// dragend; NodeID only on switchSelectedNode.
type Event struct {
	Kind        EventKind
	Position    float64
	WindowWidth int
	NodeID      string
}

// PositionName is a target for the programmatic snap operation.
type PositionName string

const (
	PositionMinLeft  PositionName = "minLeft"
	PositionMaxRight PositionName = "maxRight"
	PositionInitial  PositionName = "initial"
)

// Options configures an Engine.
type Options struct {
	// Touch marks the pointer source as touch-capable.
	Touch bool
	// SidePanel reserves room for a fixed-width side panel.
	SidePanel bool
	// ResizeDebounce defaults to DefaultResizeDebounce.
	ResizeDebounce time.Duration
	// DragThrottle defaults to DefaultDragThrottle.
	DragThrottle time.Duration
	// Widths is the persistence adapter; nil disables persistence.
	Widths WidthStore
	// OnLayout, if set, runs after every settled viewport sample has
	// been applied to the model. Hosts use it to schedule a re-render.
	OnLayout func(Classification)
}

// Engine ties the monitor, the geometry store, the drag controller and
// the persistence adapter together and owns the event stream. One
// engine instance serves one node detail surface.
type Engine struct {
	mu      sync.Mutex
	model   *Store
	monitor *Monitor
	drag    *Controller
	widths  WidthStore

	events chan Event

	panel     PanelType
	hasInput  bool
	nodeSet   bool
	inited    bool
	closed    bool
	haveShape bool
}

// New creates an Engine. The engine is inert until the host feeds it a
// node (SetNode) and viewport samples (Observe).
func New(opts Options) *Engine {
	e := &Engine{
		model:  NewStore(opts.SidePanel),
		widths: opts.Widths,
		events: make(chan Event, 16),
	}
	e.monitor = NewMonitor(opts.ResizeDebounce, opts.Touch, func(c Classification) {
		e.applySample(c)
		if opts.OnLayout != nil {
			opts.OnLayout(c)
		}
	})
	e.drag = NewController(e.model, opts.DragThrottle, opts.Widths, e.emit)
	return e
}

// Events is the engine's notification stream. The channel is buffered;
// a slow host loses old notifications rather than blocking geometry.
func (e *Engine) Events() <-chan Event {
	return e.events
}

func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// Model exposes the geometry store, mainly for the host's render path
// and for tests.
func (e *Engine) Model() *Store {
	return e.model
}

// Classification returns the last settled viewport classification.
func (e *Engine) Classification() Classification {
	return e.monitor.Current()
}

// Observe feeds one raw viewport sample through the debounced monitor.
func (e *Engine) Observe(width, height int) {
	e.monitor.Observe(width, height)
}

// applySample runs on the monitor's settled sample: record the
// viewport, re-clamp, and settle the first layout if a node is known.
func (e *Engine) applySample(c Classification) {
	e.model.SetViewport(float64(c.Viewport.Width), float64(c.Viewport.Height))

	e.mu.Lock()
	e.haveShape = true
	need := e.nodeSet && !e.inited
	e.mu.Unlock()

	if need {
		e.settleFirstLayout(c.Vertical)
	} else if c.Vertical {
		e.ensureVerticalPositioned()
	}
}

// SetNode tells the engine which panel variant the selected node needs
// and whether an input region exists. The first call after the first
// viewport sample settles the layout and emits init.
func (e *Engine) SetNode(pt PanelType, hasInput bool) {
	e.mu.Lock()
	e.panel = pt
	e.hasInput = hasInput
	e.nodeSet = true
	ready := e.haveShape && !e.inited
	already := e.inited
	e.mu.Unlock()

	if ready {
		e.settleFirstLayout(e.monitor.Current().Vertical)
	} else if already {
		// A later node switch positions the (possibly new) panel type
		// if it was never placed this session.
		e.restoreIfSentinel(pt, hasInput)
		if e.monitor.Current().Vertical {
			e.ensureVerticalPositioned()
		}
	}
}

func (e *Engine) settleFirstLayout(vertical bool) {
	e.mu.Lock()
	if e.inited || e.closed {
		e.mu.Unlock()
		return
	}
	e.inited = true
	pt, hasInput := e.panel, e.hasInput
	e.mu.Unlock()

	e.restoreIfSentinel(pt, hasInput)
	if vertical {
		e.ensureVerticalPositioned()
	}

	g := e.model.Geometry(pt, false)
	e.emit(Event{Kind: EventInit, Position: g.Lead})
}

// restoreIfSentinel applies the persisted width and the initial
// position, but only while the geometry is still at its
// never-positioned sentinel. Geometry that was already set
// programmatically wins over the persisted value.
func (e *Engine) restoreIfSentinel(pt PanelType, hasInput bool) {
	if !e.model.AtDefaultSentinel(pt) {
		return
	}
	if e.widths != nil {
		if w, ok := e.widths.Load(string(pt)); ok {
			e.model.SetWidth(pt, false, w)
		}
	}
	e.model.PositionPanel(pt, false, hasInput)
}

func (e *Engine) ensureVerticalPositioned() {
	e.mu.Lock()
	pt, hasInput, ok := e.panel, e.hasInput, e.nodeSet
	e.mu.Unlock()
	if !ok {
		return
	}
	if e.model.Geometry(pt, true).AtSentinel() {
		e.model.PositionPanel(pt, true, hasInput)
	}
}

// Drag exposes the drag controller for the host's pointer plumbing.
func (e *Engine) Drag() *Controller {
	return e.drag
}

// StartDrag opens a drag session for the current panel, freezing the
// current orientation for the session.
func (e *Engine) StartDrag() {
	e.mu.Lock()
	pt, ok := e.panel, e.nodeSet
	e.mu.Unlock()
	if !ok || pt == PanelDragless {
		return
	}
	e.drag.Start(pt, e.monitor.Current().Vertical)
}

// SetPositionByName snaps the current panel to a precomputed target,
// bypassing any drag session. Used by host affordances that must not
// be obscured.
func (e *Engine) SetPositionByName(name PositionName) {
	e.mu.Lock()
	pt, hasInput, ok := e.panel, e.hasInput, e.nodeSet
	e.mu.Unlock()
	if !ok {
		return
	}
	vertical := e.monitor.Current().Vertical

	switch name {
	case PositionMinLeft:
		minLead, _ := e.model.Bounds(e.model.Geometry(pt, vertical).Size, vertical)
		e.model.SetPosition(pt, vertical, minLead)
	case PositionMaxRight:
		_, maxLead := e.model.Bounds(e.model.Geometry(pt, vertical).Size, vertical)
		e.model.SetPosition(pt, vertical, maxLead)
	case PositionInitial:
		e.model.PositionPanel(pt, vertical, hasInput)
	}
}

// Regions computes the pixel-ready boxes for the three render regions
// in the current orientation.
func (e *Engine) Regions() Regions {
	c := e.monitor.Current()
	e.mu.Lock()
	pt, hasInput := e.panel, e.hasInput
	e.mu.Unlock()

	r := Regions{
		Vertical: c.Vertical,
		HasInput: hasInput,
		Viewport: c.Viewport,
	}
	if c.Vertical {
		g := e.model.Geometry(pt, true)
		r.Input, r.Main, r.Output = VerticalRegions(g, float64(c.Viewport.Height), hasInput)
	} else {
		g := e.model.Geometry(pt, false)
		r.Input, r.Main, r.Output = HorizontalRegions(g, float64(c.Viewport.Width), hasInput)
	}
	return r
}

// SwitchSelectedNode re-emits the host's node selection as an engine
// event (pass-through).
func (e *Engine) SwitchSelectedNode(id string) {
	e.emit(Event{Kind: EventSwitchSelectedNode, NodeID: id})
}

// Close emits the close pass-through and tears the engine down:
// pending debounce and throttle timers are cancelled so nothing fires
// into a destroyed instance. Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	e.emit(Event{Kind: EventClose})
	e.monitor.Close()
	e.drag.Cancel()
}
