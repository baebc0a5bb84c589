//go:build !cgo

package webview

import (
	"github.com/brianly1003/pwashell/internal/domain"
	"github.com/brianly1003/pwashell/internal/domain/ports"
)

// Window is unavailable without cgo.
type Window struct {
	id string
}

// New always fails: the platform webview needs cgo.
func New(spec ports.WindowSpec, opts Options, handler ports.NavigationHandler) (*Window, error) {
	return nil, domain.ErrWebviewUnavailable
}

func (win *Window) ID() string { return win.id }

func (win *Window) Run() error { return domain.ErrWebviewUnavailable }

func (win *Window) Close() error { return nil }
