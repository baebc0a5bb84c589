package watcher

import (
	"sync"
	"time"
)

// Debouncer collapses a burst of triggers into one callback fired after the
// burst has been quiet for the window.
type Debouncer struct {
	window   time.Duration
	callback func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a new debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger (re)starts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	stopped := d.stopped
	d.timer = nil
	d.mu.Unlock()

	if !stopped && d.callback != nil {
		d.callback()
	}
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
