//go:build cgo

package webview

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	webview "github.com/webview/webview_go"

	"github.com/brianly1003/pwashell/internal/domain/ports"
	"github.com/brianly1003/pwashell/internal/shell"
)

// Window is a native webview window. Run must be called from the main
// goroutine, which must be locked to its OS thread.
type Window struct {
	id string
	w  webview.WebView

	closeOnce sync.Once
}

// New creates the window, installs the bridge and starts loading spec.URL.
func New(spec ports.WindowSpec, opts Options, handler ports.NavigationHandler) (*Window, error) {
	w := webview.New(opts.Debug)
	if w == nil {
		return nil, errors.New("failed to create webview")
	}

	w.SetTitle(opts.Title)
	w.SetSize(opts.Width, opts.Height, webview.HintNone)

	if err := applyChrome(nativeWindow{handle: w.Window()}, opts); err != nil {
		log.Warn().Err(err).Str("window_id", spec.ID).Msg("window chrome not fully applied")
	}

	if err := w.Bind(shell.BindNewWindow, func(rawURL string) {
		handler.OnNewWindowRequest(rawURL)
	}); err != nil {
		w.Destroy()
		return nil, err
	}
	if err := w.Bind(shell.BindConsole, func(payload any) {
		handler.OnScriptMessage(payload)
	}); err != nil {
		w.Destroy()
		return nil, err
	}

	if opts.Script != "" {
		w.Init(opts.Script)
	}
	w.Navigate(spec.URL)

	return &Window{id: spec.ID, w: w}, nil
}

// ID returns the window identifier.
func (win *Window) ID() string { return win.id }

// Run blocks in the native event loop until the window closes.
func (win *Window) Run() error {
	win.w.Run()
	win.w.Destroy()
	return nil
}

// Close asks the event loop to stop. Safe to call from any goroutine.
func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		win.w.Dispatch(win.w.Terminate)
	})
	return nil
}
