package layout

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  Breakpoint
	}{
		{0, BreakpointXS},
		{375, BreakpointXS},
		{767, BreakpointXS},
		{768, BreakpointSM},
		{991, BreakpointSM},
		{992, BreakpointMD},
		{1000, BreakpointMD},
		{1199, BreakpointMD},
		{1200, BreakpointLG},
		{1400, BreakpointLG},
		{1919, BreakpointLG},
		{1920, BreakpointXL},
		{3840, BreakpointXL},
	}

	for _, tt := range tests {
		if got := Classify(tt.width); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestClassifyMonotonicAndExhaustive(t *testing.T) {
	prev := Classify(0)
	for w := 1; w <= 4000; w++ {
		bp := Classify(w)
		if bp < prev {
			t.Fatalf("Classify not monotonic at width %d: %v after %v", w, bp, prev)
		}
		if bp < BreakpointXS || bp > BreakpointXL {
			t.Fatalf("Classify(%d) outside the enumeration: %v", w, bp)
		}
		prev = bp
	}
	if prev != BreakpointXL {
		t.Errorf("expected XL at the top of the range, got %v", prev)
	}
}

func TestDeviceClasses(t *testing.T) {
	tests := []struct {
		width                   int
		mobile, tablet, desktop bool
	}{
		{375, true, false, false},
		{768, true, false, false},
		{769, false, true, false},
		{1000, false, true, false},
		{1199, false, true, false},
		{1200, false, false, true},
		{1400, false, false, true},
	}

	for _, tt := range tests {
		if got := IsMobile(tt.width); got != tt.mobile {
			t.Errorf("IsMobile(%d) = %v, want %v", tt.width, got, tt.mobile)
		}
		if got := IsTablet(tt.width); got != tt.tablet {
			t.Errorf("IsTablet(%d) = %v, want %v", tt.width, got, tt.tablet)
		}
		if got := IsDesktop(tt.width); got != tt.desktop {
			t.Errorf("IsDesktop(%d) = %v, want %v", tt.width, got, tt.desktop)
		}
	}
}

func TestExactlyOneDeviceClass(t *testing.T) {
	for w := 1; w <= 4000; w++ {
		n := 0
		if IsMobile(w) {
			n++
		}
		if IsTablet(w) {
			n++
		}
		if IsDesktop(w) {
			n++
		}
		if n != 1 {
			t.Fatalf("width %d matches %d device classes, want exactly 1", w, n)
		}
	}
}

func TestUseVerticalLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		touch         bool
		want          bool
	}{
		{"portrait touch phone", 375, 667, true, true},
		{"portrait no touch but narrow", 375, 667, false, true},
		{"portrait touch tablet", 800, 1280, true, true},
		{"portrait tablet without touch", 800, 1280, false, false},
		{"landscape touch", 1280, 800, true, false},
		{"narrow landscape", 700, 400, false, true},
		{"desktop", 1400, 900, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UseVerticalLayout(tt.width, tt.height, tt.touch); got != tt.want {
				t.Errorf("UseVerticalLayout(%d, %d, %v) = %v, want %v",
					tt.width, tt.height, tt.touch, got, tt.want)
			}
		})
	}
}

func TestBreakpointString(t *testing.T) {
	names := map[Breakpoint]string{
		BreakpointXS: "XS", BreakpointSM: "SM", BreakpointMD: "MD",
		BreakpointLG: "LG", BreakpointXL: "XL",
	}
	for bp, want := range names {
		if bp.String() != want {
			t.Errorf("%d.String() = %q, want %q", bp, bp.String(), want)
		}
	}
}
