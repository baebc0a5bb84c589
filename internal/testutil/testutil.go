// Package testutil provides shared test utilities and mocks for pwashell tests.
package testutil

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/brianly1003/pwashell/internal/domain/ports"
)

// MockWindow implements ports.Window for testing.
type MockWindow struct {
	id     string
	mu     sync.Mutex
	closed bool
}

// NewMockWindow creates a new mock window.
func NewMockWindow(id string) *MockWindow {
	return &MockWindow{id: id}
}

// ID returns the window ID.
func (m *MockWindow) ID() string {
	return m.id
}

// Close marks the window as closed.
func (m *MockWindow) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsClosed returns whether Close was called.
func (m *MockWindow) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MockWindowFactory implements ports.WindowFactory for testing.
type MockWindowFactory struct {
	mu      sync.Mutex
	specs   []ports.WindowSpec
	windows []*MockWindow
	err     error
}

// NewMockWindowFactory creates a new mock window factory.
func NewMockWindowFactory() *MockWindowFactory {
	return &MockWindowFactory{}
}

// NewWindow records spec and returns a MockWindow, or the configured error.
func (m *MockWindowFactory) NewWindow(ctx context.Context, spec ports.WindowSpec) (ports.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	w := NewMockWindow(spec.ID)
	m.specs = append(m.specs, spec)
	m.windows = append(m.windows, w)
	return w, nil
}

// SetError makes every following NewWindow call fail with err.
func (m *MockWindowFactory) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Specs returns a copy of the specs passed to NewWindow.
func (m *MockWindowFactory) Specs() []ports.WindowSpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]ports.WindowSpec, len(m.specs))
	copy(result, m.specs)
	return result
}

// Windows returns the windows created so far.
func (m *MockWindowFactory) Windows() []*MockWindow {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*MockWindow, len(m.windows))
	copy(result, m.windows)
	return result
}

// MockOpener implements ports.URLOpener for testing.
type MockOpener struct {
	mu       sync.Mutex
	opened   []string
	err      error
	openFunc func(string) error
}

// NewMockOpener creates a new mock URL opener.
func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

// Open records rawURL and returns any configured error.
func (m *MockOpener) Open(rawURL string) error {
	m.mu.Lock()
	fn := m.openFunc
	m.mu.Unlock()

	// Called unlocked so a blocking func does not hold up Opened.
	if fn != nil {
		if err := fn(rawURL); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, rawURL)
	return nil
}

// SetOpenFunc sets a function run by every Open call before it records the
// URL. A non-nil error from fn is returned instead.
func (m *MockOpener) SetOpenFunc(fn func(string) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openFunc = fn
}

// SetError makes every following Open call fail with err.
func (m *MockOpener) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Opened returns a copy of the URLs opened so far.
func (m *MockOpener) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.opened))
	copy(result, m.opened)
	return result
}

// Ensure mocks implement their ports.
var (
	_ ports.Window        = (*MockWindow)(nil)
	_ ports.WindowFactory = (*MockWindowFactory)(nil)
	_ ports.URLOpener     = (*MockOpener)(nil)
)

// AssertEqual is a simple equality assertion helper.
func AssertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// AssertNoError asserts that an error is nil.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// AssertError asserts that an error is not nil.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// AssertContains checks if a string contains a substring.
func AssertContains(t *testing.T, s, substr, msg string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: string %q does not contain %q", msg, s, substr)
	}
}
