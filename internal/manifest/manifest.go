// Package manifest maps a decoded Web App Manifest document onto the typed
// configuration the shell runs with.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/brianly1003/pwashell/internal/domain"
)

// DisplayMode is the window presentation requested by the manifest.
type DisplayMode int

const (
	DisplayStandalone DisplayMode = iota
	DisplayFullscreen
	DisplayMinimalUI
	// DisplayBrowser names the manifest's "browser" value. ParseDisplayMode
	// maps "browser" to DisplayStandalone, so Parse never yields it.
	DisplayBrowser
)

// String returns the manifest spelling of the display mode.
func (d DisplayMode) String() string {
	switch d {
	case DisplayFullscreen:
		return "fullscreen"
	case DisplayMinimalUI:
		return "minimal-ui"
	case DisplayBrowser:
		return "browser"
	default:
		return "standalone"
	}
}

// MarshalText lets the display mode print by name in YAML and JSON output.
func (d DisplayMode) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDisplayMode maps a manifest "display" value, case-insensitively.
// "browser" and unknown values fall back to standalone: the shell does not
// render a browser-style window.
func ParseDisplayMode(s string) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fullscreen":
		return DisplayFullscreen
	case "minimal-ui":
		return DisplayMinimalUI
	default:
		return DisplayStandalone
	}
}

// Icon is one entry of the manifest "icons" array.
type Icon struct {
	Src     string `json:"src" yaml:"src"`
	Sizes   string `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Purpose string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
}

// Config is the parsed manifest. It is built once and never mutated, so a
// single value may be shared by every window spawned from the same manifest.
type Config struct {
	Name            string      `json:"name" yaml:"name"`
	ShortName       string      `json:"short_name,omitempty" yaml:"short_name,omitempty"`
	StartURL        string      `json:"start_url" yaml:"start_url"`
	Display         DisplayMode `json:"display" yaml:"display"`
	ThemeColor      string      `json:"theme_color,omitempty" yaml:"theme_color,omitempty"`
	BackgroundColor string      `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	Scope           string      `json:"scope,omitempty" yaml:"scope,omitempty"`
	Description     string      `json:"description,omitempty" yaml:"description,omitempty"`
	Icons           []Icon      `json:"icons,omitempty" yaml:"icons,omitempty"`
}

// Title returns the human readable window title.
func (c Config) Title() string {
	if c.Name != "" {
		return c.Name
	}
	if c.ShortName != "" {
		return c.ShortName
	}
	if u, err := url.Parse(c.StartURL); err == nil && u.Host != "" {
		return u.Host
	}
	return c.StartURL
}

// ParseJSON decodes raw manifest bytes and parses the resulting document.
func ParseJSON(data []byte) (Config, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, domain.NewManifestParseError("", fmt.Errorf("invalid json: %w", err))
	}
	return Parse(doc)
}

// Parse maps a generically decoded manifest document onto a Config.
// Only start_url is required; every other recognized key takes its default
// when absent or of the wrong type. Unrecognized keys are ignored.
func Parse(doc any) (Config, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return Config{}, domain.NewManifestParseError("", errors.New("document is not a key-value object"))
	}

	startURL := stringField(m, "start_url")
	if startURL == "" {
		return Config{}, domain.NewManifestParseError("start_url", domain.ErrMissingStartURL)
	}

	cfg := Config{
		Name:            stringField(m, "name"),
		ShortName:       stringField(m, "short_name"),
		StartURL:        startURL,
		Display:         ParseDisplayMode(stringField(m, "display")),
		ThemeColor:      stringField(m, "theme_color"),
		BackgroundColor: stringField(m, "background_color"),
		Scope:           stringField(m, "scope"),
		Description:     stringField(m, "description"),
		Icons:           parseIcons(m["icons"]),
	}
	if cfg.Name == "" {
		cfg.Name = cfg.ShortName
	}

	return cfg, nil
}

// WithBase resolves relative start_url and scope values against the URL the
// manifest was served from and returns the resolved copy.
func (c Config) WithBase(manifestURL string) (Config, error) {
	base, err := url.Parse(manifestURL)
	if err != nil {
		return c, fmt.Errorf("invalid manifest url: %w", err)
	}
	if !base.IsAbs() {
		return c, nil
	}

	resolved := c
	resolved.Icons = append([]Icon(nil), c.Icons...)

	start, err := base.Parse(c.StartURL)
	if err != nil {
		return c, domain.NewManifestParseError("start_url", err)
	}
	resolved.StartURL = start.String()

	if c.Scope != "" {
		sc, err := base.Parse(c.Scope)
		if err != nil {
			return c, domain.NewManifestParseError("scope", err)
		}
		resolved.Scope = sc.String()
	}

	for i, icon := range resolved.Icons {
		if src, err := base.Parse(icon.Src); err == nil {
			resolved.Icons[i].Src = src.String()
		}
	}

	return resolved, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func parseIcons(v any) []Icon {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	var icons []Icon
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		src := stringField(entry, "src")
		if src == "" {
			continue
		}
		icons = append(icons, Icon{
			Src:     src,
			Sizes:   stringField(entry, "sizes"),
			Type:    stringField(entry, "type"),
			Purpose: stringField(entry, "purpose"),
		})
	}
	return icons
}
