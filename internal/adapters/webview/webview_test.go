package webview

import (
	"errors"
	"strings"
	"testing"

	"github.com/brianly1003/pwashell/internal/domain"
	"github.com/brianly1003/pwashell/internal/shell"
)

func TestOptionsFor(t *testing.T) {
	plan := shell.ChromePlan{Title: "App", BackButton: true}

	opts := OptionsFor(plan, 800, 600, true, "console.log(1)")
	if opts.Title != "App" {
		t.Errorf("Title = %q, want App", opts.Title)
	}
	if opts.Width != 800 || opts.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", opts.Width, opts.Height)
	}
	if !opts.Debug {
		t.Error("Debug = false, want true")
	}
	if opts.Script != "console.log(1)" {
		t.Errorf("Script = %q", opts.Script)
	}
}

func TestOptionsFor_Chrome(t *testing.T) {
	tint := shell.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}

	tests := []struct {
		name       string
		plan       shell.ChromePlan
		fullscreen bool
		tint       bool
	}{
		{"standalone with theme color", shell.ChromePlan{Title: "A", Tint: &tint}, false, true},
		{"fullscreen", shell.ChromePlan{Title: "A", Fullscreen: true}, true, false},
		{"plain", shell.ChromePlan{Title: "A"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := OptionsFor(tt.plan, 800, 600, false, "")
			if opts.Fullscreen != tt.fullscreen {
				t.Errorf("Fullscreen = %v, want %v", opts.Fullscreen, tt.fullscreen)
			}
			if (opts.Tint != nil) != tt.tint {
				t.Errorf("Tint = %v, want set=%v", opts.Tint, tt.tint)
			}
		})
	}
}

type fakeChrome struct {
	fullscreen    bool
	background    *shell.RGBA
	fullscreenErr error
	backgroundErr error
}

func (f *fakeChrome) SetFullscreen() error {
	if f.fullscreenErr != nil {
		return f.fullscreenErr
	}
	f.fullscreen = true
	return nil
}

func (f *fakeChrome) SetBackground(c shell.RGBA) error {
	if f.backgroundErr != nil {
		return f.backgroundErr
	}
	f.background = &c
	return nil
}

func TestApplyChrome(t *testing.T) {
	tint := shell.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}

	target := &fakeChrome{}
	if err := applyChrome(target, Options{Tint: &tint}); err != nil {
		t.Fatalf("applyChrome() error = %v", err)
	}
	if target.fullscreen {
		t.Error("standalone window should not go fullscreen")
	}
	if target.background == nil || *target.background != tint {
		t.Errorf("background = %v, want %v", target.background, tint)
	}

	target = &fakeChrome{}
	if err := applyChrome(target, Options{Fullscreen: true}); err != nil {
		t.Fatalf("applyChrome() error = %v", err)
	}
	if !target.fullscreen {
		t.Error("fullscreen window was not put into fullscreen")
	}
	if target.background != nil {
		t.Errorf("background = %v, want untouched", target.background)
	}
}

func TestApplyChrome_ReportsFailures(t *testing.T) {
	tint := shell.RGBA{A: 0xff}
	target := &fakeChrome{
		fullscreenErr: domain.ErrChromeUnsupported,
		backgroundErr: domain.ErrChromeUnsupported,
	}

	err := applyChrome(target, Options{Fullscreen: true, Tint: &tint})
	if !errors.Is(err, domain.ErrChromeUnsupported) {
		t.Fatalf("applyChrome() error = %v, want ErrChromeUnsupported", err)
	}
	for _, want := range []string{"fullscreen", "theme color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestWindowBackgroundCSS(t *testing.T) {
	got := windowBackgroundCSS(shell.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
	want := "window, headerbar { background-color: rgba(51, 102, 153, 1); background-image: none; }"
	if got != want {
		t.Errorf("windowBackgroundCSS() = %q, want %q", got, want)
	}
}
