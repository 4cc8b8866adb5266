// Package layout implements the adaptive panel layout and drag-resize
// engine behind the node detail surface: breakpoint classification,
// relative-to-pixel geometry, panel-type defaults, bounded drag
// resizing, orientation switching, and width persistence.
package layout

// Viewport width thresholds, in pixels. Four thresholds split the
// width axis into five breakpoints.
const (
	// ThresholdSM is the width below which the viewport classifies as XS.
	// It doubles as the mobile cutoff and the forced-vertical cutoff.
	ThresholdSM = 768

	// ThresholdMD is the width above which dual-panel layouts get roomy.
	ThresholdMD = 992

	// ThresholdLG is the desktop cutoff.
	ThresholdLG = 1200

	// ThresholdXL is the width for expanded layouts on large displays.
	ThresholdXL = 1920
)

// Breakpoint is the discrete width class of the viewport.
type Breakpoint int

const (
	BreakpointXS Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
)

// String returns the conventional short name of the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointXS:
		return "XS"
	case BreakpointSM:
		return "SM"
	case BreakpointMD:
		return "MD"
	case BreakpointLG:
		return "LG"
	case BreakpointXL:
		return "XL"
	default:
		return "unknown"
	}
}

// Classify maps a viewport width to its breakpoint.
func Classify(width int) Breakpoint {
	switch {
	case width < ThresholdSM:
		return BreakpointXS
	case width < ThresholdMD:
		return BreakpointSM
	case width < ThresholdLG:
		return BreakpointMD
	case width < ThresholdXL:
		return BreakpointLG
	default:
		return BreakpointXL
	}
}

// IsMobile reports whether the width gets the mobile treatment.
func IsMobile(width int) bool {
	return width <= ThresholdSM
}

// IsTablet reports whether the width gets the tablet treatment.
func IsTablet(width int) bool {
	return width > ThresholdSM && width < ThresholdLG
}

// IsDesktop reports whether the width gets the desktop treatment.
func IsDesktop(width int) bool {
	return width >= ThresholdLG
}

// UseVerticalLayout decides whether the three regions stack instead of
// sitting side by side: portrait touch viewports and anything narrower
// than the XS cutoff stack. Independent of Classify.
func UseVerticalLayout(width, height int, touch bool) bool {
	if height > width && touch {
		return true
	}
	return width < ThresholdSM
}
