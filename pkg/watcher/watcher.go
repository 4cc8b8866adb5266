// Package watcher provides debounced file watching for workflow
// live-reload.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SuperPauly/n8n-m/pkg/debounce"
)

// DefaultReloadDebounce coalesces editor write bursts (many editors
// truncate, write and rename in quick succession) into one reload.
const DefaultReloadDebounce = 250 * time.Millisecond

// Watcher watches a single file and invokes a callback once per
// settled burst of changes.
type Watcher struct {
	fw   *fsnotify.Watcher
	deb  *debounce.Debouncer
	done chan struct{}
}

// Watch starts watching path. onChange runs (debounced) on every
// write, create or rename touching the file. Watching the parent
// directory instead of the file itself survives editors that replace
// the file on save.
func Watch(path string, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fw:   fw,
		deb:  debounce.NewDebouncer(DefaultReloadDebounce),
		done: make(chan struct{}),
	}

	go w.run(abs, onChange)
	return w, nil
}

func (w *Watcher) run(abs string, onChange func()) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.deb.Trigger(onChange)
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal for the viewer; the file can
			// still be reloaded manually.
		case <-w.done:
			return
		}
	}
}

// Close stops watching and cancels any pending reload.
func (w *Watcher) Close() error {
	close(w.done)
	w.deb.Cancel()
	return w.fw.Close()
}
