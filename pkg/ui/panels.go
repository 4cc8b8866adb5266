package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SuperPauly/n8n-m/pkg/layout"
)

// panelCells is the cell-space placement of one region: a column (or
// row) offset and an extent.
type panelCells struct {
	Offset int
	Size   int
}

// regionCells converts the engine's pixel boxes into terminal cells.
// Horizontal regions convert against the viewport width with the
// horizontal cell metric, vertical ones against the height.
func regionCells(r layout.Regions, totalCells int) (input, main, output panelCells) {
	container := float64(r.Viewport.Width)
	metric := float64(CellWidthPx)
	if r.Vertical {
		container = float64(r.Viewport.Height)
		metric = float64(CellHeightPx)
	}

	toCells := func(b layout.Box) panelCells {
		offset := int(float64(b.LeadPx(container))/metric + 0.5)
		size := int(float64(b.SizePx(container))/metric + 0.5)
		if offset < 0 {
			offset = 0
		}
		if offset > totalCells {
			offset = totalCells
		}
		if size < 0 {
			size = 0
		}
		if offset+size > totalCells {
			size = totalCells - offset
		}
		return panelCells{Offset: offset, Size: size}
	}

	return toCells(r.Input), toCells(r.Main), toCells(r.Output)
}

// renderPanels composes the three stylized region boxes into the final
// body, horizontally or stacked, honoring the computed offsets.
func renderPanels(r layout.Regions, totalCells int, inputView, mainView, outputView string, contentExtent int, focus int) string {
	in, main, out := regionCells(r, totalCells)

	inputBox := renderRegionBox("INPUT", ColorInputPanel, inputView, in.Size, contentExtent, r.Vertical, focus == 0)
	mainBox := renderRegionBox("PARAMETERS", ColorMainPanel, mainView, main.Size, contentExtent, r.Vertical, focus == 1)
	outputBox := renderRegionBox("OUTPUT", ColorOutputPanel, outputView, out.Size, contentExtent, r.Vertical, focus == 2)

	if r.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, inputBox, mainBox, outputBox)
	}

	spacer := lipgloss.NewStyle().Width(in.Offset).Render("")
	if !r.HasInput {
		// Without an input region the main panel leads the row.
		spacer = lipgloss.NewStyle().Width(main.Offset).Render("")
		return lipgloss.JoinHorizontal(lipgloss.Top, spacer, mainBox, outputBox)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spacer, inputBox, mainBox, outputBox)
}

// renderRegionBox wraps one region's content in its chrome at a fixed
// cell size. extent is the cross-axis size (height when horizontal,
// width when vertical).
func renderRegionBox(title string, accent lipgloss.Color, content string, size, extent int, vertical, focused bool) string {
	var w, h int
	if vertical {
		w, h = extent, size
	} else {
		w, h = size, extent
	}
	// Border and padding eat two rows and four columns.
	innerW, innerH := w-4, h-3
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	body := PanelTitle(title, accent, innerW) + "\n" +
		lipgloss.NewStyle().Width(innerW).Height(innerH).MaxWidth(innerW).Render(content)

	return PanelStyle(accent, focused).
		Width(w - 2).
		Height(h - 2).
		Render(body)
}

// contentArea returns the inner width/height available to a region's
// content given its box in cells.
func contentArea(cells panelCells, extent int, vertical bool) (w, h int) {
	if vertical {
		w, h = extent-4, cells.Size-3
	} else {
		w, h = cells.Size-4, extent-3
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
