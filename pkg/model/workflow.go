package model

import (
	"fmt"
)

// PaneKind is the parameter-pane kind a node type declares. It selects
// a layout variant for the node detail surface.
type PaneKind string

const (
	PaneRegular PaneKind = "regular"
	PaneWide    PaneKind = "wide"
)

// IsValid returns true if the pane kind is a recognized value
func (p PaneKind) IsValid() bool {
	switch p {
	case PaneRegular, PaneWide, "":
		return true
	}
	return false
}

// Parameter is one configurable field of a node. The viewer renders
// parameters read-only; editing semantics live elsewhere.
type Parameter struct {
	Name        string   `yaml:"name" json:"name"`
	Label       string   `yaml:"label,omitempty" json:"label,omitempty"`
	Kind        string   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Value       string   `yaml:"value,omitempty" json:"value,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Options     []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Node represents one workflow node
type Node struct {
	ID            string      `yaml:"id" json:"id"`
	Name          string      `yaml:"name" json:"name"`
	Type          string      `yaml:"type" json:"type"`
	Disabled      bool        `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	ParameterPane PaneKind    `yaml:"parameter_pane,omitempty" json:"parameter_pane,omitempty"`
	Notes         string      `yaml:"notes,omitempty" json:"notes,omitempty"`
	Parameters    []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	// PinData holds sample payloads shown in the input/output previews.
	PinData *PinData `yaml:"pin_data,omitempty" json:"pin_data,omitempty"`
}

// PinData carries sample input/output payloads for previewing a node
// without executing it.
type PinData struct {
	Input  []map[string]any `yaml:"input,omitempty" json:"input,omitempty"`
	Output []map[string]any `yaml:"output,omitempty" json:"output,omitempty"`
}

// Connection links the output of one node to the input of another
type Connection struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Workflow is a named collection of nodes and their connections
type Workflow struct {
	Name        string       `yaml:"name" json:"name"`
	Nodes       []Node       `yaml:"nodes" json:"nodes"`
	Connections []Connection `yaml:"connections,omitempty" json:"connections,omitempty"`
}

// knownNodeTypes is the builtin catalogue. Nodes outside it still load
// and render, but get the "unknown" panel treatment.
var knownNodeTypes = map[string]bool{
	"httpRequest": true,
	"webhook":     true,
	"schedule":    true,
	"set":         true,
	"code":        true,
	"if":          true,
	"switch":      true,
	"merge":       true,
	"splitOut":    true,
	"noop":        true,
	"executeOnce": true,
}

// KnownType reports whether the node's type is in the builtin catalogue.
func (n *Node) KnownType() bool {
	return knownNodeTypes[n.Type]
}

// TriggerType reports whether the node type produces data without an
// input connection.
func (n *Node) TriggerType() bool {
	switch n.Type {
	case "webhook", "schedule":
		return true
	}
	return false
}

// Validate checks if the node data is logically valid
func (n *Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node ID cannot be empty")
	}
	if n.Name == "" {
		return fmt.Errorf("node name cannot be empty")
	}
	if !n.ParameterPane.IsValid() {
		return fmt.Errorf("invalid parameter pane kind: %s", n.ParameterPane)
	}
	return nil
}

// Validate checks the workflow and all of its nodes
func (w *Workflow) Validate() error {
	if len(w.Nodes) == 0 {
		return fmt.Errorf("workflow has no nodes")
	}
	seen := make(map[string]bool, len(w.Nodes))
	for i := range w.Nodes {
		n := &w.Nodes[i]
		if err := n.Validate(); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node ID: %s", n.ID)
		}
		seen[n.ID] = true
	}
	for _, c := range w.Connections {
		if !seen[c.From] {
			return fmt.Errorf("connection references unknown node: %s", c.From)
		}
		if !seen[c.To] {
			return fmt.Errorf("connection references unknown node: %s", c.To)
		}
	}
	return nil
}

// NodeByID returns the node with the given ID, or nil.
func (w *Workflow) NodeByID(id string) *Node {
	for i := range w.Nodes {
		if w.Nodes[i].ID == id {
			return &w.Nodes[i]
		}
	}
	return nil
}

// HasInput reports whether any connection feeds data into the node.
// Trigger-style nodes never have an input regardless of connections.
func (w *Workflow) HasInput(nodeID string) bool {
	n := w.NodeByID(nodeID)
	if n == nil || n.TriggerType() {
		return false
	}
	for _, c := range w.Connections {
		if c.To == nodeID {
			return true
		}
	}
	return false
}

// Clone creates a deep copy of the node
func (n Node) Clone() Node {
	clone := n

	if n.Parameters != nil {
		clone.Parameters = make([]Parameter, len(n.Parameters))
		copy(clone.Parameters, n.Parameters)
		for i, p := range n.Parameters {
			if p.Options != nil {
				opts := make([]string, len(p.Options))
				copy(opts, p.Options)
				clone.Parameters[i].Options = opts
			}
		}
	}
	if n.PinData != nil {
		pd := PinData{}
		pd.Input = cloneRows(n.PinData.Input)
		pd.Output = cloneRows(n.PinData.Output)
		clone.PinData = &pd
	}
	return clone
}

func cloneRows(rows []map[string]any) []map[string]any {
	if rows == nil {
		return nil
	}
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		m := make(map[string]any, len(row))
		for k, v := range row {
			m[k] = v
		}
		out[i] = m
	}
	return out
}
