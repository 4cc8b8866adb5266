package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/SuperPauly/n8n-m/pkg/model"
)

// NodeSelectorModel is the fuzzy-search overlay for switching the
// selected node.
type NodeSelectorModel struct {
	nodes    []model.Node
	filtered []int // indices into nodes

	searchInput   textinput.Model
	selectedIndex int
	theme         Theme
	width         int
	height        int

	confirmed bool
	cancelled bool
}

// NewNodeSelectorModel creates the node switcher overlay.
func NewNodeSelectorModel(nodes []model.Node, theme Theme) NodeSelectorModel {
	ti := textinput.New()
	ti.Placeholder = "Switch node..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 32

	m := NodeSelectorModel{
		nodes:       nodes,
		searchInput: ti,
		theme:       theme,
	}
	m.filter("")
	return m
}

// SetSize sets dimensions
func (m *NodeSelectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Confirmed returns the chosen node ID once the user confirmed.
func (m NodeSelectorModel) Confirmed() (string, bool) {
	if !m.confirmed || m.selectedIndex >= len(m.filtered) {
		return "", false
	}
	return m.nodes[m.filtered[m.selectedIndex]].ID, true
}

// Cancelled reports whether the user dismissed the overlay.
func (m NodeSelectorModel) Cancelled() bool {
	return m.cancelled
}

// filter recomputes the visible node list for a query. An empty query
// shows every node in workflow order.
func (m *NodeSelectorModel) filter(query string) {
	m.filtered = m.filtered[:0]
	if strings.TrimSpace(query) == "" {
		for i := range m.nodes {
			m.filtered = append(m.filtered, i)
		}
	} else {
		names := make([]string, len(m.nodes))
		for i, n := range m.nodes {
			names[i] = n.Name
		}
		for _, match := range fuzzy.Find(query, names) {
			m.filtered = append(m.filtered, match.Index)
		}
	}
	if m.selectedIndex >= len(m.filtered) {
		m.selectedIndex = 0
	}
}

// Update handles input
func (m NodeSelectorModel) Update(msg tea.Msg) (NodeSelectorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.cancelled = true
			return m, nil
		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.confirmed = true
			}
			return m, nil
		case tea.KeyUp:
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
			return m, nil
		case tea.KeyDown:
			if m.selectedIndex < len(m.filtered)-1 {
				m.selectedIndex++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter(m.searchInput.Value())
	return m, cmd
}

// View renders the overlay
func (m NodeSelectorModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render("Nodes"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	maxRows := 8
	if m.height > 0 && m.height-8 < maxRows {
		maxRows = m.height - 8
	}
	if maxRows < 1 {
		maxRows = 1
	}

	selStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	for row, idx := range m.filtered {
		if row >= maxRows {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.filtered)-maxRows)))
			b.WriteString("\n")
			break
		}
		n := m.nodes[idx]
		line := fmt.Sprintf("%s (%s)", n.Name, n.Type)
		if n.Disabled {
			line += " [disabled]"
		}
		if row == m.selectedIndex {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	return m.theme.Overlay.Render(b.String())
}
