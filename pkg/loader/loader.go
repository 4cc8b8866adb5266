// Package loader reads workflow definitions from YAML files.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SuperPauly/n8n-m/pkg/model"
)

// DefaultWorkflowFile is the conventional workflow file name looked up
// when no explicit path is given.
const DefaultWorkflowFile = "workflow.yaml"

// LoadWorkflow reads the workflow from the given directory, falling
// back to the current working directory when dir is empty.
func LoadWorkflow(dir string) (*model.Workflow, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	return LoadWorkflowFromFile(filepath.Join(dir, DefaultWorkflowFile))
}

// LoadWorkflowFromFile reads a workflow directly from a specific path.
func LoadWorkflowFromFile(path string) (*model.Workflow, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no workflow found at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow file: %w", err)
	}

	var w model.Workflow
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse workflow file: %w", err)
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workflow: %w", err)
	}

	if w.Name == "" {
		base := filepath.Base(path)
		w.Name = base[:len(base)-len(filepath.Ext(base))]
	}

	return &w, nil
}
