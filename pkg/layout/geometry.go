package layout

// Panel dimension constants, in pixels. Relative geometry is always
// derived from these against the current container size.
const (
	// DefaultPanelWidth is the base main-panel width.
	DefaultPanelWidth = 360

	// DefaultPanelWidthLarge replaces the base width for wide panels on
	// containers wider than LargeScreenWidth.
	DefaultPanelWidthLarge = 420

	// DefaultPanelHeight is the base main-panel height for stacked
	// (vertical) layouts.
	DefaultPanelHeight = 320

	// MinPanelWidth is the smallest the main panel may ever get.
	MinPanelWidth = 280

	// MinPanelHeight is the vertical counterpart of MinPanelWidth.
	MinPanelHeight = 120

	// SideMargin is the horizontal margin kept clear at each screen edge.
	SideMargin = 24

	// SidePanelWidth is the room reserved for a fixed-width side panel.
	SidePanelWidth = 320

	// PanelMargin separates stacked panels in the vertical layout.
	PanelMargin = 8

	// VerticalMargin is the top and bottom margin of the stacked layout.
	VerticalMargin = 16

	// VerticalInputHeight is the fixed input band height in the
	// stacked layout.
	VerticalInputHeight = 210

	// LargeScreenWidth is the container width past which wide panels
	// switch to the large width constant.
	LargeScreenWidth = 1920
)

// PxToRelative converts a pixel length to a fraction of the container.
// A non-positive container yields 0 rather than a division blowup.
func PxToRelative(px, container float64) float64 {
	if container <= 0 {
		return 0
	}
	return px / container
}

// RelativeToPx converts a container fraction back to pixels.
func RelativeToPx(rel, container float64) float64 {
	return rel * container
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DefaultPanelWidthFor returns the default main-panel width in pixels
// for a panel type. Wide panels double the base width, and double the
// large-screen constant instead once the container outgrows it.
func DefaultPanelWidthFor(pt PanelType, containerWidth float64) float64 {
	if pt == PanelWide {
		if containerWidth > LargeScreenWidth {
			return 2 * DefaultPanelWidthLarge
		}
		return 2 * DefaultPanelWidth
	}
	return DefaultPanelWidth
}

// MinRelativeWidth is the minimum main-panel width as a fraction of
// the container, capped at 1 for very small containers.
func MinRelativeWidth(containerWidth float64) float64 {
	return clamp(PxToRelative(MinPanelWidth, containerWidth), 0, 1)
}

// MinRelativeHeight is the vertical counterpart of MinRelativeWidth.
func MinRelativeHeight(containerHeight float64) float64 {
	return clamp(PxToRelative(MinPanelHeight, containerHeight), 0, 1)
}

// MinimumLeftPosition is the smallest allowed relativeLeft for the
// main panel. Side-panel presence reserves extra room on the left.
func MinimumLeftPosition(containerWidth float64, sidePanel bool) float64 {
	m := float64(SideMargin)
	if sidePanel {
		m += SidePanelWidth
	}
	return clamp(PxToRelative(m, containerWidth), 0, 1)
}

// MaximumRightPosition is the smallest allowed relativeRight for the
// main panel, keeping the side margin clear on the right.
func MaximumRightPosition(containerWidth float64) float64 {
	return clamp(PxToRelative(SideMargin, containerWidth), 0, 1)
}

// Box places one region along the current axis as relative offsets
// from the leading edge (left or top) and trailing edge (right or
// bottom) of the container.
type Box struct {
	Lead  float64
	Trail float64
}

// LeadPx is the leading offset in pixels for the given container size.
func (b Box) LeadPx(container float64) int {
	return int(RelativeToPx(b.Lead, container) + 0.5)
}

// TrailPx is the trailing offset in pixels for the given container size.
func (b Box) TrailPx(container float64) int {
	return int(RelativeToPx(b.Trail, container) + 0.5)
}

// SizePx is the region extent in pixels, floored at 0.
func (b Box) SizePx(container float64) int {
	size := container - RelativeToPx(b.Lead+b.Trail, container)
	if size < 0 {
		return 0
	}
	return int(size + 0.5)
}

// Regions is the computed placement of the three render regions for
// one orientation, ready for the rendering layer.
type Regions struct {
	Vertical bool
	HasInput bool
	Viewport Viewport
	Input    Box
	Main     Box
	Output   Box
}

// HorizontalRegions computes the side-by-side boxes for the three
// regions from the main panel's geometry. Pure function.
func HorizontalRegions(g Geometry, containerWidth float64, hasInput bool) (input, main, output Box) {
	margin := clamp(PxToRelative(SideMargin, containerWidth), 0, 1)

	main = Box{Lead: g.Lead, Trail: g.Trail}

	if hasInput {
		// The input region's right edge sits flush against the main
		// panel's left edge.
		input = Box{Lead: margin, Trail: clamp(1-g.Lead, 0, 1)}
	} else {
		input = Box{Lead: margin, Trail: margin}
	}

	// The output region starts at the main panel's right edge. When an
	// out-of-bounds geometry would push it past the point where its
	// minimum width no longer fits, it is translated back on screen.
	outputLead := g.Lead + g.Size
	maxLead := 1 - (MinRelativeWidth(containerWidth) + margin)
	if shift := outputLead - maxLead; shift > 0 {
		outputLead -= shift
	}
	output = Box{Lead: clamp(outputLead, 0, 1), Trail: margin}

	return input, main, output
}

// VerticalRegions computes the stacked bands for the three regions.
// The input band is fixed-height under the top margin, the main band
// follows the vertical geometry, and the output band runs down to the
// bottom margin. Pure function.
func VerticalRegions(g Geometry, containerHeight float64, hasInput bool) (input, main, output Box) {
	margin := clamp(PxToRelative(VerticalMargin, containerHeight), 0, 1)
	gap := clamp(PxToRelative(PanelMargin, containerHeight), 0, 1)
	band := clamp(PxToRelative(VerticalInputHeight, containerHeight), 0, 1)

	if hasInput {
		input = Box{Lead: margin, Trail: clamp(1-(margin+band), 0, 1)}
	} else {
		input = Box{Lead: margin, Trail: margin}
	}

	mainLead := g.Lead
	if hasInput {
		low := margin + band + gap
		if mainLead < low {
			mainLead = low
		}
	}
	main = Box{Lead: clamp(mainLead, 0, 1), Trail: clamp(1-(mainLead+g.Size), 0, 1)}

	output = Box{
		Lead:  clamp(mainLead+g.Size+gap, 0, 1),
		Trail: margin,
	}
	return input, main, output
}
