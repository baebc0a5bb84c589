package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianly1003/pwashell/internal/manifest"
	"github.com/brianly1003/pwashell/internal/scope"
)

// RGBA is an 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

// Hex returns the color as #rrggbb.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the color as a CSS rgba() value.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

// IsDark reports whether light text reads better on top of the color.
func (c RGBA) IsDark() bool {
	// ITU-R BT.601 luma
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return luma < 140
}

// ParseHexColor parses #rgb, #rrggbb and #rrggbbaa. The second result is
// false for anything else, in which case the platform default is used.
func ParseHexColor(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return RGBA{}, false
	}
	hex := s[1:]

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return RGBA{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, true
}

// ChromePlan is how the window should look once content has loaded.
type ChromePlan struct {
	Title      string
	Fullscreen bool
	BackButton bool
	Tint       *RGBA // Window background and title bar in every display mode
}

// PlanChrome derives window chrome from the manifest. Standalone and browser
// display modes both get the default window.
func PlanChrome(cfg manifest.Config) ChromePlan {
	plan := ChromePlan{
		Title:      cfg.Title(),
		Fullscreen: scope.IsFullscreen(cfg.Display),
		BackButton: scope.IsMinimalUI(cfg.Display),
	}
	if c, ok := ParseHexColor(cfg.ThemeColor); ok {
		plan.Tint = &c
	}
	return plan
}
