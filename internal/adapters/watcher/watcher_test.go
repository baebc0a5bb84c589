package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CollapsesBurst(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		d.Trigger()
	}
	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback calls = %d, want 1", got)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()
	d.Trigger()
	time.Sleep(60 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback calls = %d, want 0", got)
	}
}

func TestWatcher_ReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte(`{"start_url":"/"}`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	changes := make(chan []byte, 4)
	w := NewWatcher(path, 10, func(data []byte, err error) {
		if err == nil {
			changes <- data
		}
	})

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() { _ = w.Stop() }()

	if !isRunning(w) {
		t.Fatal("watcher not running after Start")
	}

	// Changes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	want := `{"start_url":"/v2/"}`
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("rewrite manifest: %v", err)
	}

	select {
	case got := <-changes:
		if string(got) != want {
			t.Errorf("change data = %s, want %s", got, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	w := NewWatcher(path, 10, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
	if isRunning(w) {
		t.Error("watcher still running after Stop")
	}
}

func isRunning(w *Watcher) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
