//go:build cgo && !darwin && !linux

package webview

import (
	"unsafe"

	"github.com/brianly1003/pwashell/internal/domain"
	"github.com/brianly1003/pwashell/internal/shell"
)

// nativeWindow has no chrome support here; callers log the returned error.
type nativeWindow struct {
	handle unsafe.Pointer
}

func (n nativeWindow) SetFullscreen() error { return domain.ErrChromeUnsupported }

func (n nativeWindow) SetBackground(c shell.RGBA) error { return domain.ErrChromeUnsupported }
