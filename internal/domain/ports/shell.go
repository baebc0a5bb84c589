package ports

import (
	"context"

	"github.com/brianly1003/pwashell/internal/scope"
)

// NavigationHandler is the capability the native window invokes from its
// event loop. Implementations must not block the UI thread.
type NavigationHandler interface {
	// OnNewWindowRequest is called for window.open and target=_blank
	// navigations. The decision is returned without waiting for the window
	// or browser it triggers to start.
	OnNewWindowRequest(rawURL string) scope.NavigationDecision

	// OnScriptMessage receives a message posted by page script.
	OnScriptMessage(payload any)
}

// Window is a handle to one open app window.
type Window interface {
	// ID returns the window identifier.
	ID() string

	// Close asks the window to close.
	Close() error
}

// WindowFactory opens a fresh app window for every call.
type WindowFactory interface {
	NewWindow(ctx context.Context, spec WindowSpec) (Window, error)
}

// URLOpener hands a URL to the operating system's default browser.
type URLOpener interface {
	Open(rawURL string) error
}
