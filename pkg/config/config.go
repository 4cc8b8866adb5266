// Package config loads viewer options from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable options of the viewer. Zero values are
// replaced by defaults after load, so a partial file is fine.
type Config struct {
	// StorePath is the sqlite database remembering panel widths.
	StorePath string `yaml:"store_path"`

	// ResizeDebounceMs bounds how often viewport resizes reclassify
	// the layout.
	ResizeDebounceMs int `yaml:"resize_debounce_ms"`

	// DragThrottleMs bounds how often continuous width-resize drags
	// mutate geometry.
	DragThrottleMs int `yaml:"drag_throttle_ms"`

	// Touch marks the input source as touch-capable, which enables the
	// portrait vertical layout.
	Touch bool `yaml:"touch"`

	// SidePanel reserves room for a fixed-width side panel when
	// computing the panel position bounds.
	SidePanel bool `yaml:"side_panel"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StorePath:        filepath.Join(".ndv", "panels.db"),
		ResizeDebounceMs: 50,
		DragThrottleMs:   100,
		Touch:            true,
		SidePanel:        false,
	}
}

// Load reads the config at path, applying defaults for missing fields.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep them. Booleans
	// are the exception: yaml cannot distinguish "false" from "unset",
	// so Touch/SidePanel in a file always win.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if cfg.StorePath == "" {
		cfg.StorePath = Default().StorePath
	}
	if cfg.ResizeDebounceMs <= 0 {
		cfg.ResizeDebounceMs = Default().ResizeDebounceMs
	}
	if cfg.DragThrottleMs <= 0 {
		cfg.DragThrottleMs = Default().DragThrottleMs
	}
	return cfg, nil
}
