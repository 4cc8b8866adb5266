package layout

import (
	"math"
	"testing"
)

func TestPxRelativeRoundTrip(t *testing.T) {
	containers := []float64{375, 768, 1280, 1920}
	for _, c := range containers {
		for px := 0.0; px <= c; px += 37 {
			rel := PxToRelative(px, c)
			back := RelativeToPx(rel, c)
			if math.Abs(back-px) > 1e-9 {
				t.Errorf("round trip px=%v container=%v: got %v", px, c, back)
			}
		}
	}
}

func TestPxToRelativeZeroContainer(t *testing.T) {
	if got := PxToRelative(100, 0); got != 0 {
		t.Errorf("expected 0 for unavailable container, got %v", got)
	}
	if got := PxToRelative(100, -5); got != 0 {
		t.Errorf("expected 0 for negative container, got %v", got)
	}
}

func TestDefaultPanelWidthFor(t *testing.T) {
	tests := []struct {
		pt        PanelType
		container float64
		want      float64
	}{
		{PanelRegular, 1280, DefaultPanelWidth},
		{PanelDragless, 1280, DefaultPanelWidth},
		{PanelInputless, 2560, DefaultPanelWidth},
		{PanelWide, 1280, 2 * DefaultPanelWidth},
		{PanelWide, 1920, 2 * DefaultPanelWidth},
		{PanelWide, 1921, 2 * DefaultPanelWidthLarge},
		{PanelWide, 2560, 2 * DefaultPanelWidthLarge},
	}
	for _, tt := range tests {
		if got := DefaultPanelWidthFor(tt.pt, tt.container); got != tt.want {
			t.Errorf("DefaultPanelWidthFor(%s, %v) = %v, want %v", tt.pt, tt.container, got, tt.want)
		}
	}
}

func TestHorizontalRegionsInputFlush(t *testing.T) {
	const w = 1280.0
	g := Geometry{Lead: 0.3, Size: 0.28125}
	g.Trail = 1 - g.Lead - g.Size

	input, main, output := HorizontalRegions(g, w, true)

	// Input's right edge must touch main's left edge.
	inputRightEdge := w - RelativeToPx(input.Trail, w)
	mainLeftEdge := RelativeToPx(main.Lead, w)
	if math.Abs(inputRightEdge-mainLeftEdge) > 1e-6 {
		t.Errorf("input right edge %v != main left edge %v", inputRightEdge, mainLeftEdge)
	}

	// Output starts at main's right edge.
	if math.Abs(output.Lead-(g.Lead+g.Size)) > 1e-9 {
		t.Errorf("output lead %v, want %v", output.Lead, g.Lead+g.Size)
	}
	if output.Trail != PxToRelative(SideMargin, w) {
		t.Errorf("output trail %v, want side margin", output.Trail)
	}
}

func TestHorizontalRegionsNoInput(t *testing.T) {
	const w = 1280.0
	g := Geometry{Lead: 0.01875, Size: 0.28125}
	g.Trail = 1 - g.Lead - g.Size

	input, _, _ := HorizontalRegions(g, w, false)
	margin := PxToRelative(SideMargin, w)
	if input.Lead != margin || input.Trail != margin {
		t.Errorf("inputless input box = %+v, want full width minus margins", input)
	}
}

func TestHorizontalRegionsOutputTranslateClamp(t *testing.T) {
	const w = 1280.0
	// Push the main panel far right so the output's unclamped lead
	// would leave less than the minimum width plus margin on screen.
	g := Geometry{Lead: 0.65, Size: 0.3, Trail: 0.05}

	_, _, output := HorizontalRegions(g, w, true)

	maxLead := 1 - (MinRelativeWidth(w) + PxToRelative(SideMargin, w))
	if output.Lead > maxLead+1e-9 {
		t.Errorf("output lead %v exceeds clamp %v", output.Lead, maxLead)
	}
	// The clamp is exactly the overflow amount.
	if math.Abs(output.Lead-maxLead) > 1e-9 {
		t.Errorf("output lead %v, want translated to %v", output.Lead, maxLead)
	}
}

func TestVerticalRegionsBands(t *testing.T) {
	const h = 800.0
	margin := PxToRelative(VerticalMargin, h)
	gap := PxToRelative(PanelMargin, h)
	band := PxToRelative(VerticalInputHeight, h)

	g := Geometry{Lead: margin + band + gap, Size: 0.4}
	g.Trail = 1 - g.Lead - g.Size

	input, main, output := VerticalRegions(g, h, true)

	if input.Lead != margin {
		t.Errorf("input band must start at the top margin, got %v", input.Lead)
	}
	if math.Abs((1-input.Trail)-(margin+band)) > 1e-9 {
		t.Errorf("input band height wrong: trail %v", input.Trail)
	}
	if math.Abs(main.Lead-(margin+band+gap)) > 1e-9 {
		t.Errorf("main band must sit under the input band, got %v", main.Lead)
	}
	if math.Abs(output.Lead-(main.Lead+g.Size+gap)) > 1e-9 {
		t.Errorf("output band must sit under the main band, got %v", output.Lead)
	}
	if output.Trail != margin {
		t.Errorf("output band must end at the bottom margin, got %v", output.Trail)
	}
}

func TestBoxPx(t *testing.T) {
	b := Box{Lead: 0.25, Trail: 0.25}
	if b.LeadPx(1000) != 250 || b.TrailPx(1000) != 250 {
		t.Errorf("LeadPx/TrailPx wrong: %d %d", b.LeadPx(1000), b.TrailPx(1000))
	}
	if b.SizePx(1000) != 500 {
		t.Errorf("SizePx = %d, want 500", b.SizePx(1000))
	}
	over := Box{Lead: 0.9, Trail: 0.9}
	if over.SizePx(1000) != 0 {
		t.Errorf("overlapping box must have size 0, got %d", over.SizePx(1000))
	}
}

func TestClassifyPanel(t *testing.T) {
	tests := []struct {
		name      string
		known     bool
		hasInput  bool
		draggable bool
		pane      string
		want      PanelType
	}{
		{"dragging disabled wins", true, true, false, "wide", PanelDragless},
		{"unknown type", false, true, true, "", PanelUnknown},
		{"no input", true, false, true, "", PanelInputless},
		{"wide pane", true, true, true, "wide", PanelWide},
		{"regular", true, true, true, "regular", PanelRegular},
		{"empty pane kind", true, true, true, "", PanelRegular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPanel(tt.known, tt.hasInput, tt.draggable, tt.pane)
			if got != tt.want {
				t.Errorf("ClassifyPanel = %v, want %v", got, tt.want)
			}
		})
	}
}
