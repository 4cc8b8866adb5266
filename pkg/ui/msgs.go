package ui

import (
	"github.com/SuperPauly/n8n-m/pkg/layout"
	"github.com/SuperPauly/n8n-m/pkg/model"
)

// layoutSettledMsg carries one settled viewport classification from
// the engine's debounced monitor into the tea loop.
type layoutSettledMsg layout.Classification

// engineEventMsg wraps one engine notification.
type engineEventMsg layout.Event

// workflowReloadedMsg carries a freshly loaded workflow after the
// watcher fires.
type workflowReloadedMsg struct {
	workflow *model.Workflow
}

// reloadFailedMsg reports a live-reload that could not be applied.
// The viewer keeps showing the last good workflow.
type reloadFailedMsg struct {
	err error
}

// FileChangedMsg signals that the watched workflow file settled after
// a burst of writes. Sent into the program by the file watcher wiring.
type FileChangedMsg struct{}

// statusMsg replaces the status line.
type statusMsg string
