//go:build cgo && linux

package webview

/*
#cgo pkg-config: gtk+-3.0
#include <stdlib.h>
#include <gtk/gtk.h>

static void pwa_window_fullscreen(void *handle) {
	gtk_window_fullscreen(GTK_WINDOW(handle));
}

static void pwa_window_css(void *handle, const char *css) {
	GtkCssProvider *provider = gtk_css_provider_new();
	gtk_css_provider_load_from_data(provider, css, -1, NULL);
	gtk_style_context_add_provider(gtk_widget_get_style_context(GTK_WIDGET(handle)),
		GTK_STYLE_PROVIDER(provider), GTK_STYLE_PROVIDER_PRIORITY_APPLICATION);
	g_object_unref(provider);
}
*/
import "C"

import (
	"unsafe"

	"github.com/brianly1003/pwashell/internal/domain"
	"github.com/brianly1003/pwashell/internal/shell"
)

// nativeWindow wraps the GtkWindow behind a webview.
type nativeWindow struct {
	handle unsafe.Pointer
}

func (n nativeWindow) SetFullscreen() error {
	if n.handle == nil {
		return domain.ErrChromeUnsupported
	}
	C.pwa_window_fullscreen(n.handle)
	return nil
}

func (n nativeWindow) SetBackground(c shell.RGBA) error {
	if n.handle == nil {
		return domain.ErrChromeUnsupported
	}
	css := C.CString(windowBackgroundCSS(c))
	defer C.free(unsafe.Pointer(css))
	C.pwa_window_css(n.handle, css)
	return nil
}
