package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"

	"github.com/SuperPauly/n8n-m/pkg/model"
)

// PreviewModel renders a pin-data payload (input or output) in a
// scrollable viewport.
type PreviewModel struct {
	title string
	rows  []map[string]any
	vp    viewport.Model
	empty string
}

// NewPreviewModel creates a preview pane with the given title and
// empty-state hint.
func NewPreviewModel(title, empty string) PreviewModel {
	return PreviewModel{
		title: title,
		vp:    viewport.New(0, 0),
		empty: empty,
	}
}

// SetRows replaces the previewed payload.
func (m *PreviewModel) SetRows(rows []map[string]any) {
	m.rows = rows
	m.vp.SetContent(m.render())
	m.vp.GotoTop()
}

// SetSize resizes the scroll viewport to the panel's content area.
func (m *PreviewModel) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	m.vp.Width = width
	m.vp.Height = height
	m.vp.SetContent(m.render())
}

// ScrollDown and ScrollUp move the viewport by one line.
func (m *PreviewModel) ScrollDown() { m.vp.LineDown(1) }
func (m *PreviewModel) ScrollUp()   { m.vp.LineUp(1) }

// JSON returns the payload pretty-printed, for the clipboard.
func (m PreviewModel) JSON() string {
	if len(m.rows) == 0 {
		return "[]"
	}
	data, err := json.MarshalIndent(m.rows, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

// CopyToClipboard puts the payload JSON on the system clipboard.
func (m PreviewModel) CopyToClipboard() error {
	return clipboard.WriteAll(m.JSON())
}

// ItemCount returns the number of previewed items.
func (m PreviewModel) ItemCount() int {
	return len(m.rows)
}

func (m PreviewModel) render() string {
	if len(m.rows) == 0 {
		return m.empty
	}

	var b strings.Builder
	for i, row := range m.rows {
		b.WriteString(fmt.Sprintf("[item %d]\n", i+1))
		data, err := json.MarshalIndent(row, "", "  ")
		if err != nil {
			b.WriteString("(unrenderable item)\n")
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			// Hard-wrap long lines to the viewport width so the pane
			// never scrolls sideways. Segments break on rune cell
			// boundaries, never mid-character.
			for m.vp.Width > 0 && ansi.PrintableRuneWidth(line) > m.vp.Width {
				seg := runewidth.Truncate(line, m.vp.Width, "")
				if seg == "" {
					break
				}
				b.WriteString(seg)
				b.WriteString("\n")
				line = line[len(seg):]
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// View renders the preview content.
func (m PreviewModel) View() string {
	return m.vp.View()
}

// PinRows extracts the preview payload for one side of a node.
func PinRows(n *model.Node, output bool) []map[string]any {
	if n == nil || n.PinData == nil {
		return nil
	}
	if output {
		return n.PinData.Output
	}
	return n.PinData.Input
}
