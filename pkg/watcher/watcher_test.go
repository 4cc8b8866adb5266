package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflow.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var fired atomic.Int32
	w, err := Watch(path, func() { fired.Add(1) })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("name: b\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for fired.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if fired.Load() == 0 {
		t.Fatal("expected a reload callback after writing the file")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflow.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var fired atomic.Int32
	w, err := Watch(path, func() { fired.Add(1) })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	time.Sleep(500 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("sibling file changes must not trigger a reload")
	}
}

func TestCloseStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflow.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var fired atomic.Int32
	w, err := Watch(path, func() { fired.Add(1) })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := os.WriteFile(path, []byte("name: b\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	time.Sleep(500 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("callbacks after Close")
	}
}
