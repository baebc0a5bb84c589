// Package webview hosts an app window in the platform webview engine.
package webview

import (
	"errors"
	"fmt"

	"github.com/brianly1003/pwashell/internal/domain/ports"
	"github.com/brianly1003/pwashell/internal/shell"
)

// Options configures a native window.
type Options struct {
	Title  string
	Width  int
	Height int
	Debug  bool

	// Fullscreen puts the window into native full-screen mode.
	Fullscreen bool
	// Tint colors the window background and title bar; nil keeps the
	// platform default.
	Tint *shell.RGBA

	// Script runs at document start of every page.
	Script string
}

// OptionsFor builds window options from a chrome plan.
func OptionsFor(plan shell.ChromePlan, width, height int, debug bool, script string) Options {
	return Options{
		Title:      plan.Title,
		Width:      width,
		Height:     height,
		Debug:      debug,
		Fullscreen: plan.Fullscreen,
		Tint:       plan.Tint,
		Script:     script,
	}
}

// chromeTarget is the native window surface that chrome options apply to.
type chromeTarget interface {
	SetFullscreen() error
	SetBackground(c shell.RGBA) error
}

// applyChrome applies the display mode and theme tint. Every failure is
// returned; the window stays usable without them.
func applyChrome(t chromeTarget, opts Options) error {
	var errs []error
	if opts.Fullscreen {
		if err := t.SetFullscreen(); err != nil {
			errs = append(errs, fmt.Errorf("fullscreen: %w", err))
		}
	}
	if opts.Tint != nil {
		if err := t.SetBackground(*opts.Tint); err != nil {
			errs = append(errs, fmt.Errorf("theme color: %w", err))
		}
	}
	return errors.Join(errs...)
}

// windowBackgroundCSS is the GTK style sheet used to tint a window.
func windowBackgroundCSS(c shell.RGBA) string {
	return "window, headerbar { background-color: " + c.CSS() + "; background-image: none; }"
}

var _ ports.Window = (*Window)(nil)
