package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SuperPauly/n8n-m/pkg/config"
	"github.com/SuperPauly/n8n-m/pkg/layout"
	"github.com/SuperPauly/n8n-m/pkg/loader"
	"github.com/SuperPauly/n8n-m/pkg/model"
)

// Focus targets for keyboard scrolling.
const (
	focusInput = iota
	focusMain
	focusOutput
)

// Model is the root bubbletea model: it owns the layout engine and
// plays the "rendering layer / host controller" role, feeding viewport
// samples and pointer drags in and pixel boxes out.
type Model struct {
	cfg      config.Config
	theme    Theme
	workflow *model.Workflow
	path     string

	engine   *layout.Engine
	layoutCh chan layout.Classification

	width  int // terminal cells
	height int

	nodeIdx    int
	form       ParamFormModel
	inputPrev  PreviewModel
	outputPrev PreviewModel
	selector   *NodeSelectorModel
	showHelp   bool
	focus      int
	status     string

	// In-flight pointer gesture, valid while the engine reports a drag.
	dragKind layout.MoveKind
	dragEdge layout.Edge

	quitting bool
}

// NewModel creates the viewer model. widths may be nil to disable
// persistence.
func NewModel(w *model.Workflow, path string, cfg config.Config, widths layout.WidthStore) Model {
	theme := DefaultTheme()
	layoutCh := make(chan layout.Classification, 8)

	eng := layout.New(layout.Options{
		Touch:          cfg.Touch,
		SidePanel:      cfg.SidePanel,
		ResizeDebounce: msToDuration(cfg.ResizeDebounceMs),
		DragThrottle:   msToDuration(cfg.DragThrottleMs),
		Widths:         widths,
		OnLayout: func(c layout.Classification) {
			// Latest-wins: a slow render loop sees only the newest
			// settled sample.
			for {
				select {
				case layoutCh <- c:
					return
				default:
					select {
					case <-layoutCh:
					default:
					}
				}
			}
		},
	})

	m := Model{
		cfg:        cfg,
		theme:      theme,
		workflow:   w,
		path:       path,
		engine:     eng,
		layoutCh:   layoutCh,
		form:       NewParamFormModel(nil, theme),
		inputPrev:  NewPreviewModel("INPUT", "No input data. Connect a node or pin a sample."),
		outputPrev: NewPreviewModel("OUTPUT", "No output data. Pin a sample to preview it."),
		focus:      focusMain,
		status:     "ready",
	}
	m.applyNode(0)
	return m
}

// Engine exposes the layout engine, mainly for the host wiring.
func (m Model) Engine() *layout.Engine {
	return m.engine
}

// SelectedNode returns the currently selected node, or nil.
func (m Model) SelectedNode() *model.Node {
	if m.workflow == nil || m.nodeIdx < 0 || m.nodeIdx >= len(m.workflow.Nodes) {
		return nil
	}
	return &m.workflow.Nodes[m.nodeIdx]
}

// applyNode selects a node by index and refreshes everything derived
// from it: panel type, input presence, form, previews.
func (m *Model) applyNode(idx int) {
	if m.workflow == nil || len(m.workflow.Nodes) == 0 {
		return
	}
	if idx < 0 || idx >= len(m.workflow.Nodes) {
		idx = 0
	}
	m.nodeIdx = idx
	n := &m.workflow.Nodes[idx]
	hasInput := m.workflow.HasInput(n.ID)

	// Disabled nodes keep their surface pinned in place.
	pt := layout.ClassifyPanel(n.KnownType(), hasInput, !n.Disabled, string(n.ParameterPane))
	m.engine.SetNode(pt, hasInput)

	m.form.SetNode(n)
	m.inputPrev.SetRows(PinRows(n, false))
	m.outputPrev.SetRows(PinRows(n, true))
	m.resizePanels()
}

func (m *Model) applyNodeByID(id string) {
	if m.workflow == nil {
		return
	}
	for i := range m.workflow.Nodes {
		if m.workflow.Nodes[i].ID == id {
			m.applyNode(i)
			return
		}
	}
}

// resizePanels pushes the engine's current boxes into the child
// components' content areas.
func (m *Model) resizePanels() {
	if m.width == 0 || m.height == 0 {
		return
	}
	r := m.engine.Regions()
	if r.Viewport.Width == 0 {
		return
	}
	bodyRows := m.bodyRows()

	total := m.width
	extent := bodyRows
	if r.Vertical {
		total = bodyRows
		extent = m.width
	}
	in, mainC, out := regionCells(r, total)

	w, h := contentArea(in, extent, r.Vertical)
	m.inputPrev.SetSize(w, h)
	w, h = contentArea(mainC, extent, r.Vertical)
	m.form.SetSize(w, h)
	w, h = contentArea(out, extent, r.Vertical)
	m.outputPrev.SetSize(w, h)
}

// bodyRows is the vertical room left for the panels after the header
// and status lines.
func (m Model) bodyRows() int {
	rows := m.height - 2
	if rows < 3 {
		rows = 3
	}
	return rows
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Init starts the channel listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenLayout(), m.listenEvents())
}

func (m Model) listenLayout() tea.Cmd {
	ch := m.layoutCh
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return layoutSettledMsg(c)
	}
}

func (m Model) listenEvents() tea.Cmd {
	ch := m.engine.Events()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return engineEventMsg(ev)
	}
}

func (m Model) reloadWorkflow() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		w, err := loader.LoadWorkflowFromFile(path)
		if err != nil {
			return reloadFailedMsg{err: err}
		}
		return workflowReloadedMsg{workflow: w}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The engine owns the debounce; a burst of terminal resizes
		// settles into one reclassification.
		m.engine.Observe(msg.Width*CellWidthPx, msg.Height*CellHeightPx)
		return m, nil

	case layoutSettledMsg:
		m.resizePanels()
		return m, m.listenLayout()

	case engineEventMsg:
		return m.handleEngineEvent(layout.Event(msg))

	case FileChangedMsg:
		return m, m.reloadWorkflow()

	case workflowReloadedMsg:
		selected := ""
		if n := m.SelectedNode(); n != nil {
			selected = n.ID
		}
		m.workflow = msg.workflow
		if selected != "" && m.workflow.NodeByID(selected) != nil {
			m.applyNodeByID(selected)
		} else {
			m.applyNode(0)
		}
		m.status = "workflow reloaded"
		return m, nil

	case reloadFailedMsg:
		m.status = fmt.Sprintf("reload failed: %v", msg.err)
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleEngineEvent(ev layout.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case layout.EventInit:
		m.status = "ready"
		m.resizePanels()
	case layout.EventDragStart:
		m.status = "resizing"
	case layout.EventDragEnd:
		m.status = fmt.Sprintf("layout saved (window %dpx)", ev.WindowWidth)
		m.resizePanels()
	case layout.EventSwitchSelectedNode:
		m.applyNodeByID(ev.NodeID)
	case layout.EventClose:
		m.quitting = true
		return m, tea.Quit
	}
	return m, m.listenEvents()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.selector != nil {
		sel, cmd := m.selector.Update(msg)
		m.selector = &sel
		if id, ok := sel.Confirmed(); ok {
			m.selector = nil
			m.engine.SwitchSelectedNode(id)
			return m, cmd
		}
		if sel.Cancelled() {
			m.selector = nil
		}
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		// Quit happens when the close event comes back through the
		// engine's channel.
		m.engine.Close()
		return m, nil
	case "?":
		m.showHelp = true
		return m, nil
	case "tab", "s":
		sel := NewNodeSelectorModel(m.workflow.Nodes, m.theme)
		sel.SetSize(m.width, m.height)
		m.selector = &sel
		return m, nil
	case "[":
		m.engine.SetPositionByName(layout.PositionMinLeft)
		m.resizePanels()
		return m, nil
	case "]":
		m.engine.SetPositionByName(layout.PositionMaxRight)
		m.resizePanels()
		return m, nil
	case "0":
		m.engine.SetPositionByName(layout.PositionInitial)
		m.resizePanels()
		return m, nil
	case "y":
		if err := m.outputPrev.CopyToClipboard(); err != nil {
			m.status = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.status = fmt.Sprintf("copied %d output items", m.outputPrev.ItemCount())
		}
		return m, nil
	case "h", "left":
		if m.focus > focusInput {
			m.focus--
		}
		return m, nil
	case "l", "right":
		if m.focus < focusOutput {
			m.focus++
		}
		return m, nil
	case "j", "down":
		switch m.focus {
		case focusInput:
			m.inputPrev.ScrollDown()
		case focusOutput:
			m.outputPrev.ScrollDown()
		}
	case "k", "up":
		switch m.focus {
		case focusInput:
			m.inputPrev.ScrollUp()
		case focusOutput:
			m.outputPrev.ScrollUp()
		}
	}

	if m.focus == focusMain {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse maps pointer events onto the drag controller: pressing
// on the main panel's leading/trailing border starts an edge resize,
// pressing on its top border starts a reposition, motion feeds the
// session, release ends it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	r := m.engine.Regions()
	if r.Viewport.Width == 0 {
		return m, nil
	}

	total := m.width
	axisPos := msg.X
	metric := CellWidthPx
	if r.Vertical {
		total = m.bodyRows()
		axisPos = msg.Y - 1 // body starts under the header line
		metric = CellHeightPx
	}
	_, mainC, _ := regionCells(r, total)
	mainStart := mainC.Offset
	mainEnd := mainC.Offset + mainC.Size - 1

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case abs(axisPos-mainStart) <= 1:
			m.dragKind = layout.MoveResize
			m.dragEdge = layout.EdgeLeft
			m.engine.StartDrag()
		case abs(axisPos-mainEnd) <= 1:
			m.dragKind = layout.MoveResize
			m.dragEdge = layout.EdgeRight
			m.engine.StartDrag()
		case axisPos > mainStart && axisPos < mainEnd && msg.Y == 1:
			// Grabbing the top edge of the main panel moves it.
			m.dragKind = layout.MoveReposition
			m.engine.StartDrag()
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.engine.Drag().Dragging() {
			return m, nil
		}
		m.engine.Drag().MoveBy(layout.Move{
			Kind: m.dragKind,
			Edge: m.dragEdge,
			Pos:  float64(axisPos * metric),
		})
		m.resizePanels()
		return m, nil

	case tea.MouseActionRelease:
		if m.engine.Drag().Dragging() {
			m.engine.Drag().End()
		}
		return m, nil
	}
	return m, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	c := m.engine.Classification()
	if c.Viewport.Width == 0 {
		return m.theme.Status.Render("measuring viewport…")
	}

	header := m.renderHeader(c)
	bodyRows := m.bodyRows()

	var body string
	switch {
	case m.selector != nil:
		body = lipgloss.Place(m.width, bodyRows, lipgloss.Center, lipgloss.Center, m.selector.View())
	case m.showHelp:
		body = lipgloss.Place(m.width, bodyRows, lipgloss.Center, lipgloss.Center, m.renderHelp())
	default:
		r := m.engine.Regions()
		total := m.width
		if r.Vertical {
			total = bodyRows
		}
		extent := bodyRows
		if r.Vertical {
			extent = m.width
		}
		body = renderPanels(r, total, m.inputPrev.View(), m.form.View(), m.outputPrev.View(), extent, m.focus)
	}

	status := m.theme.Status.Render(m.status + "  ·  ? help · tab switch node · q close")
	return header + "\n" + body + "\n" + status
}

func (m Model) renderHeader(c layout.Classification) string {
	name := "(no workflow)"
	if m.workflow != nil {
		name = m.workflow.Name
	}
	orientation := "horizontal"
	if c.Vertical {
		orientation = "vertical"
	}
	left := m.theme.Header.Render(name)
	right := m.theme.Status.Render(fmt.Sprintf("%s · %s · %dx%dpx",
		c.Breakpoint, orientation, c.Viewport.Width, c.Viewport.Height))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (m Model) renderHelp() string {
	help := `Node Detail Viewer

  tab, s     switch node (fuzzy search)
  h/l        move focus between panels
  j/k        scroll focused preview
  [ ] 0      snap panel: min-left, max-right, initial
  y          copy output preview to clipboard
  mouse      drag panel edges to resize, top border to move
  ?          toggle this help
  q, esc     close`
	return m.theme.Overlay.Render(help)
}
