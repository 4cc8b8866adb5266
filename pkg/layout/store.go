package layout

import (
	"sync"
)

// SumTolerance is the allowed drift on the "lead + size + trail == 1"
// invariant.
const SumTolerance = 1e-6

// PanelType selects a layout variant for the node detail surface. It
// is derived from the node, never stored on it.
type PanelType string

const (
	PanelRegular   PanelType = "regular"
	PanelDragless  PanelType = "dragless"
	PanelUnknown   PanelType = "unknown"
	PanelInputless PanelType = "inputless"
	PanelWide      PanelType = "wide"
)

// ClassifyPanel derives the panel type from the node's traits: whether
// its type is in the catalogue, whether an input region exists,
// whether dragging is permitted, and the declared parameter-pane kind.
func ClassifyPanel(knownType, hasInput, draggable bool, paneKind string) PanelType {
	switch {
	case !draggable:
		return PanelDragless
	case !knownType:
		return PanelUnknown
	case !hasInput:
		return PanelInputless
	case paneKind == "wide":
		return PanelWide
	default:
		return PanelRegular
	}
}

// Geometry is the relative placement of the main panel along one axis:
// Lead is relativeLeft (or relativeTop), Size is relativeWidth (or
// relativeHeight), Trail is relativeRight (or relativeBottom). All in
// [0,1], summing to 1 within SumTolerance once positioned.
//
// A just-initialized geometry carries the sentinel Lead == 1 &&
// Trail == 1, meaning "never positioned this session".
type Geometry struct {
	Lead  float64
	Size  float64
	Trail float64
}

// Sum returns Lead + Size + Trail.
func (g Geometry) Sum() float64 {
	return g.Lead + g.Size + g.Trail
}

// AtSentinel reports whether the geometry was never positioned.
func (g Geometry) AtSentinel() bool {
	return g.Lead == 1 && g.Trail == 1
}

// Store owns the per-panel-type geometry for both orientations and is
// the only way to mutate it. Every setter recomputes the third field
// from the other two, so the sum invariant cannot drift, and every
// size passes through the minimum clamp for the current viewport.
// Entries are created lazily with type-specific defaults and never
// deleted.
type Store struct {
	mu        sync.Mutex
	width     float64
	height    float64
	sidePanel bool

	horizontal map[PanelType]*Geometry
	vertical   map[PanelType]*Geometry

	// hasInput remembers, per panel type, whether an input region was
	// present when the panel was last positioned. The viewport-resize
	// re-initialization reuses it.
	hasInput map[PanelType]bool
}

// NewStore creates an empty store. sidePanel reserves room for a
// fixed-width side panel in the position bounds.
func NewStore(sidePanel bool) *Store {
	return &Store{
		sidePanel:  sidePanel,
		horizontal: make(map[PanelType]*Geometry),
		vertical:   make(map[PanelType]*Geometry),
		hasInput:   make(map[PanelType]bool),
	}
}

// Viewport returns the last known container size.
func (s *Store) Viewport() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetViewport records a new container size and re-clamps every
// positioned geometry: sizes below the minimum are forced up keeping
// the lead anchor, and geometry whose bounds no longer hold is
// re-initialized rather than left stale.
func (s *Store) SetViewport(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}

	for pt, g := range s.horizontal {
		s.reclampLocked(pt, g, false)
	}
	for pt, g := range s.vertical {
		s.reclampLocked(pt, g, true)
	}
}

func (s *Store) reclampLocked(pt PanelType, g *Geometry, vertical bool) {
	if g.AtSentinel() {
		return
	}
	minSize := s.minSizeLocked(vertical)
	if g.Size < minSize {
		g.Size = minSize
		g.Trail = 1 - g.Lead - g.Size
	}

	minLead, maxLead := s.boundsLocked(g.Size, vertical)
	if g.Lead < minLead-SumTolerance || g.Lead > maxLead+SumTolerance {
		s.positionLocked(pt, g, vertical, s.hasInput[pt])
	}
}

func (s *Store) minSizeLocked(vertical bool) float64 {
	if vertical {
		return MinRelativeHeight(s.height)
	}
	return MinRelativeWidth(s.width)
}

// boundsLocked returns the allowed [min, max] range of Lead for a
// panel of the given relative size.
func (s *Store) boundsLocked(size float64, vertical bool) (minLead, maxLead float64) {
	if vertical {
		margin := clamp(PxToRelative(VerticalMargin, s.height), 0, 1)
		minLead = margin
		maxLead = 1 - size - margin
	} else {
		minLead = MinimumLeftPosition(s.width, s.sidePanel)
		maxLead = 1 - size - MaximumRightPosition(s.width)
	}
	if maxLead < minLead {
		maxLead = minLead
	}
	return minLead, maxLead
}

// Bounds exposes the allowed Lead range for the current viewport.
func (s *Store) Bounds(size float64, vertical bool) (minLead, maxLead float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundsLocked(size, vertical)
}

// SidePanel reports whether a fixed side panel is reserved.
func (s *Store) SidePanel() bool {
	return s.sidePanel
}

func (s *Store) axisLocked(vertical bool) map[PanelType]*Geometry {
	if vertical {
		return s.vertical
	}
	return s.horizontal
}

// geometryLocked lazily creates the entry with the type-specific
// default size and the never-positioned sentinel.
func (s *Store) geometryLocked(pt PanelType, vertical bool) *Geometry {
	axis := s.axisLocked(vertical)
	if g, ok := axis[pt]; ok {
		return g
	}
	var size float64
	if vertical {
		size = clamp(PxToRelative(DefaultPanelHeight, s.height), s.minSizeLocked(true), 1)
	} else {
		size = clamp(PxToRelative(DefaultPanelWidthFor(pt, s.width), s.width), s.minSizeLocked(false), 1)
	}
	g := &Geometry{Lead: 1, Size: size, Trail: 1}
	axis[pt] = g
	return g
}

// Geometry returns the current geometry for a panel type and
// orientation, creating it with defaults on first access.
func (s *Store) Geometry(pt PanelType, vertical bool) Geometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.geometryLocked(pt, vertical)
}

// AtDefaultSentinel reports whether the panel type's horizontal
// geometry is still at its just-initialized sentinel, i.e. was never
// positioned this session.
func (s *Store) AtDefaultSentinel(pt PanelType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geometryLocked(pt, false).AtSentinel()
}

// SetWidth sets the relative size of a panel, clamped to the minimum
// for the current viewport, keeping the lead anchor and recomputing
// the trail. On a sentinel geometry only the size is recorded; the
// panel still needs positioning.
func (s *Store) SetWidth(pt PanelType, vertical bool, size float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.geometryLocked(pt, vertical)

	g.Size = clamp(size, s.minSizeLocked(vertical), 1)
	if g.AtSentinel() {
		return
	}
	g.Trail = 1 - g.Lead - g.Size
}

// SetPosition sets the relative lead of a panel, clamped to the
// position bounds, recomputing the trail. This is what clears the
// sentinel.
func (s *Store) SetPosition(pt PanelType, vertical bool, lead float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.geometryLocked(pt, vertical)

	minLead, maxLead := s.boundsLocked(g.Size, vertical)
	g.Lead = clamp(lead, minLead, maxLead)
	g.Trail = 1 - g.Lead - g.Size
}

// PositionPanel runs the initial-position algorithm: dragless panels
// pin just past the side-panel reservation, panels with an input
// center, and the rest pin to the minimum-left bound.
func (s *Store) PositionPanel(pt PanelType, vertical, hasInput bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasInput[pt] = hasInput
	g := s.geometryLocked(pt, vertical)
	s.positionLocked(pt, g, vertical, hasInput)
}

func (s *Store) positionLocked(pt PanelType, g *Geometry, vertical, hasInput bool) {
	var lead float64
	if vertical {
		margin := clamp(PxToRelative(VerticalMargin, s.height), 0, 1)
		lead = margin
		if hasInput {
			lead = margin +
				clamp(PxToRelative(VerticalInputHeight, s.height), 0, 1) +
				clamp(PxToRelative(PanelMargin, s.height), 0, 1)
		}
	} else {
		switch {
		case pt == PanelDragless:
			lead = clamp(PxToRelative(SideMargin+SidePanelWidth, s.width), 0, 1)
		case hasInput:
			lead = 0.5 - g.Size/2
		default:
			lead = MinimumLeftPosition(s.width, s.sidePanel)
		}
	}

	minLead, maxLead := s.boundsLocked(g.Size, vertical)
	g.Lead = clamp(lead, minLead, maxLead)
	g.Trail = 1 - g.Lead - g.Size
}

// HasInput returns the recorded input presence for a panel type.
func (s *Store) HasInput(pt PanelType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasInput[pt]
}
