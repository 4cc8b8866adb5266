package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/SuperPauly/n8n-m/pkg/model"
)

// ParamFormModel renders one node's parameter/configuration form in
// the main region. The form is built with huh from the node's declared
// parameters; editing it never writes back into the workflow (the
// viewer is read-only by design), values live in a private copy.
type ParamFormModel struct {
	node   *model.Node
	form   *huh.Form
	values []string
	notes  string
	theme  Theme
	width  int
	height int
}

// NewParamFormModel builds the form for a node. A nil node yields an
// empty placeholder form.
func NewParamFormModel(node *model.Node, theme Theme) ParamFormModel {
	m := ParamFormModel{node: node, theme: theme}
	m.rebuild()
	return m
}

func (m *ParamFormModel) rebuild() {
	if m.node == nil {
		m.form = nil
		return
	}

	m.values = make([]string, len(m.node.Parameters))
	fields := make([]huh.Field, 0, len(m.node.Parameters))
	for i, p := range m.node.Parameters {
		m.values[i] = p.Value
		title := p.Label
		if title == "" {
			title = p.Name
		}
		if len(p.Options) > 0 {
			fields = append(fields, huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(p.Options...)...).
				Value(&m.values[i]))
			continue
		}
		fields = append(fields, huh.NewInput().
			Title(title).
			Placeholder(p.Kind).
			Value(&m.values[i]))
	}
	if len(fields) == 0 {
		fields = append(fields, huh.NewNote().
			Title("No parameters").
			Description("This node has nothing to configure."))
	}

	m.form = huh.NewForm(huh.NewGroup(fields...)).
		WithShowHelp(false).
		WithShowErrors(false)
	m.form.Init()

	m.notes = m.renderNotes()
}

// renderNotes renders the node's markdown notes with glamour. Render
// failures degrade to the raw text.
func (m *ParamFormModel) renderNotes() string {
	if m.node == nil || m.node.Notes == "" {
		return ""
	}
	out, err := glamour.Render(m.node.Notes, "dark")
	if err != nil {
		return m.node.Notes
	}
	return strings.TrimRight(out, "\n")
}

// SetNode swaps the displayed node and rebuilds the form.
func (m *ParamFormModel) SetNode(node *model.Node) {
	m.node = node
	m.rebuild()
}

// SetSize sets the content area dimensions.
func (m *ParamFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil && width > 0 {
		m.form = m.form.WithWidth(width)
	}
}

// Update forwards input into the form when the main panel is focused.
func (m ParamFormModel) Update(msg tea.Msg) (ParamFormModel, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
	return m, cmd
}

// View renders the node header, the unknown-type hint if needed, the
// parameter form, and the rendered notes.
func (m ParamFormModel) View() string {
	if m.node == nil {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No node selected")
	}

	var b strings.Builder
	header := fmt.Sprintf("%s · %s", m.node.Name, m.node.Type)
	if m.node.Disabled {
		b.WriteString(m.theme.Disabled.Render(header))
	} else {
		b.WriteString(m.theme.Header.Render(header))
	}
	b.WriteString("\n")

	if !m.node.KnownType() {
		hint := lipgloss.NewStyle().Foreground(ColorWarning).
			Render("Unknown node type: parameters shown as-is")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.form != nil {
		b.WriteString(m.form.View())
	}

	if m.notes != "" {
		b.WriteString("\n")
		b.WriteString(m.notes)
	}
	return b.String()
}
