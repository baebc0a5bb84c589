// Package watcher re-reads a manifest file whenever it changes on disk.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ChangeFunc receives the new file contents, or the read error.
type ChangeFunc func(data []byte, err error)

// Watcher watches a single file. The parent directory is watched so editors
// that save through rename-and-replace are still seen.
type Watcher struct {
	path       string
	debounceMS int
	onChange   ChangeFunc

	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	running   bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewWatcher creates a new manifest file watcher.
func NewWatcher(path string, debounceMS int, onChange ChangeFunc) *Watcher {
	return &Watcher{
		path:       path,
		debounceMS: debounceMS,
		onChange:   onChange,
	}
}

// Start begins watching the file.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	w.path = absPath

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return err
	}
	w.watcher = fsw

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.debouncer = NewDebouncer(time.Duration(w.debounceMS)*time.Millisecond, w.reload)
	w.done = make(chan struct{})
	w.running = true

	go w.eventLoop(watchCtx, fsw, w.debouncer, w.done)

	log.Info().
		Str("path", absPath).
		Int("debounce_ms", w.debounceMS).
		Msg("manifest watcher started")

	return nil
}

// Stop terminates watching and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.cancel()
	w.debouncer.Stop()
	err := w.watcher.Close()
	done := w.done
	w.mu.Unlock()

	<-done
	log.Info().Str("path", w.path).Msg("manifest watcher stopped")
	return err
}

func (w *Watcher) eventLoop(ctx context.Context, fsw *fsnotify.Watcher, debouncer *Debouncer, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debouncer.Trigger()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.path).Msg("manifest watcher error")
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if w.onChange != nil {
		w.onChange(data, err)
	}
}
