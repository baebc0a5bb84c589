//go:build cgo && darwin

package webview

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

static void pwa_window_fullscreen(void *handle) {
	NSWindow *win = (NSWindow *)handle;
	dispatch_async(dispatch_get_main_queue(), ^{
		if (([win styleMask] & NSWindowStyleMaskFullScreen) == 0) {
			[win toggleFullScreen:nil];
		}
	});
}

static void pwa_window_background(void *handle, double r, double g, double b, double a) {
	NSWindow *win = (NSWindow *)handle;
	[win setTitlebarAppearsTransparent:YES];
	[win setBackgroundColor:[NSColor colorWithSRGBRed:r green:g blue:b alpha:a]];
}
*/
import "C"

import (
	"unsafe"

	"github.com/brianly1003/pwashell/internal/domain"
	"github.com/brianly1003/pwashell/internal/shell"
)

// nativeWindow wraps the NSWindow behind a webview.
type nativeWindow struct {
	handle unsafe.Pointer
}

func (n nativeWindow) SetFullscreen() error {
	if n.handle == nil {
		return domain.ErrChromeUnsupported
	}
	// Runs once the event loop starts.
	C.pwa_window_fullscreen(n.handle)
	return nil
}

func (n nativeWindow) SetBackground(c shell.RGBA) error {
	if n.handle == nil {
		return domain.ErrChromeUnsupported
	}
	C.pwa_window_background(n.handle,
		C.double(float64(c.R)/255), C.double(float64(c.G)/255),
		C.double(float64(c.B)/255), C.double(float64(c.A)/255))
	return nil
}
