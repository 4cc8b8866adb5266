package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Terminal cell metrics. The layout engine thinks in pixels; the TUI
// host converts cells to pixels with a fixed font metric so the
// engine's pixel constants (breakpoints, default panel widths) keep
// their meaning in a terminal.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Color palette - Dracula-inspired with panel-oriented semantic colors
var (
	ColorBg      = lipgloss.Color("#282A36")
	ColorText    = lipgloss.Color("#F8F8F2")
	ColorSubtext = lipgloss.Color("#BFBFBF")
	ColorMuted   = lipgloss.Color("#6272A4")
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Region accents
	ColorInputPanel  = lipgloss.Color("#8BE9FD")
	ColorMainPanel   = lipgloss.Color("#BD93F9")
	ColorOutputPanel = lipgloss.Color("#50FA7B")
)

// Theme bundles the styles shared across UI components.
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Danger  lipgloss.Color

	Header   lipgloss.Style
	Status   lipgloss.Style
	Overlay  lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultTheme returns the standard theme.
func DefaultTheme() Theme {
	return Theme{
		Primary: ColorPrimary,
		Muted:   ColorMuted,
		Text:    ColorText,
		Danger:  ColorDanger,
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Status: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),
		Disabled: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true),
	}
}

// PanelStyle is the bordered chrome for one render region. Focused
// panels get the accent border.
func PanelStyle(accent lipgloss.Color, focused bool) lipgloss.Style {
	border := ColorMuted
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// PanelTitle renders a region title truncated to the panel width.
func PanelTitle(title string, accent lipgloss.Color, width int) string {
	if width < 4 {
		width = 4
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Render(runewidth.Truncate(title, width, "…"))
}
