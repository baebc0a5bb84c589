package manifest

import (
	"errors"
	"testing"

	"github.com/brianly1003/pwashell/internal/domain"
)

func TestParse_FullManifest(t *testing.T) {
	doc := map[string]any{
		"name":             "Example App",
		"short_name":       "Example",
		"start_url":        "https://example.com/app/index.html",
		"display":          "minimal-ui",
		"theme_color":      "#336699",
		"background_color": "#ffffff",
		"scope":            "https://example.com/app/",
		"description":      "An example",
		"icons": []any{
			map[string]any{"src": "/icons/192.png", "sizes": "192x192", "type": "image/png"},
			map[string]any{"sizes": "512x512"},
			"bogus",
		},
		"orientation": "portrait",
	}

	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Name != "Example App" {
		t.Errorf("Name = %q, want Example App", cfg.Name)
	}
	if cfg.StartURL != "https://example.com/app/index.html" {
		t.Errorf("StartURL = %q", cfg.StartURL)
	}
	if cfg.Display != DisplayMinimalUI {
		t.Errorf("Display = %v, want minimal-ui", cfg.Display)
	}
	if cfg.ThemeColor != "#336699" {
		t.Errorf("ThemeColor = %q, want #336699", cfg.ThemeColor)
	}
	if cfg.Scope != "https://example.com/app/" {
		t.Errorf("Scope = %q", cfg.Scope)
	}
	if len(cfg.Icons) != 1 {
		t.Fatalf("len(Icons) = %d, want 1", len(cfg.Icons))
	}
	if cfg.Icons[0].Src != "/icons/192.png" || cfg.Icons[0].Sizes != "192x192" {
		t.Errorf("Icons[0] = %+v", cfg.Icons[0])
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]any{"start_url": "/"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Name != "" {
		t.Errorf("Name = %q, want empty", cfg.Name)
	}
	if cfg.Display != DisplayStandalone {
		t.Errorf("Display = %v, want standalone", cfg.Display)
	}
	if cfg.ThemeColor != "" {
		t.Errorf("ThemeColor = %q, want empty", cfg.ThemeColor)
	}
	if cfg.Scope != "" {
		t.Errorf("Scope = %q, want empty", cfg.Scope)
	}
	if cfg.Icons != nil {
		t.Errorf("Icons = %v, want nil", cfg.Icons)
	}
}

func TestParse_StartURLVerbatim(t *testing.T) {
	inputs := []string{
		"https://example.com/app/index.html",
		"./index.html?source=pwa",
		"HTTPS://Example.COM/Path",
		"/",
	}

	for _, in := range inputs {
		cfg, err := Parse(map[string]any{"start_url": in, "display": "fullscreen"})
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		if cfg.StartURL != in {
			t.Errorf("StartURL = %q, want %q", cfg.StartURL, in)
		}
	}
}

func TestParse_NameFallsBackToShortName(t *testing.T) {
	cfg, err := Parse(map[string]any{"start_url": "/", "short_name": "Short"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Name != "Short" {
		t.Errorf("Name = %q, want Short", cfg.Name)
	}

	cfg, err = Parse(map[string]any{"start_url": "/", "short_name": "Short", "name": "Long"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Name != "Long" {
		t.Errorf("Name = %q, want Long", cfg.Name)
	}
}

func TestParse_MissingStartURL(t *testing.T) {
	docs := []map[string]any{
		{},
		{"start_url": ""},
		{"start_url": 42},
		{"name": "App", "display": "fullscreen", "scope": "/"},
	}

	for _, doc := range docs {
		_, err := Parse(doc)
		if !errors.Is(err, domain.ErrManifestParse) {
			t.Errorf("Parse(%v) error = %v, want ErrManifestParse", doc, err)
		}
		if !errors.Is(err, domain.ErrMissingStartURL) {
			t.Errorf("Parse(%v) error = %v, want ErrMissingStartURL", doc, err)
		}
	}
}

func TestParse_NotAnObject(t *testing.T) {
	for _, doc := range []any{nil, "manifest", []any{"a"}, 3.0} {
		if _, err := Parse(doc); !errors.Is(err, domain.ErrManifestParse) {
			t.Errorf("Parse(%v) error = %v, want ErrManifestParse", doc, err)
		}
	}
}

func TestParseJSON(t *testing.T) {
	cfg, err := ParseJSON([]byte(`{"name":"App","start_url":"https://a.test/","display":"Fullscreen","unknown":{"x":1}}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if cfg.Display != DisplayFullscreen {
		t.Errorf("Display = %v, want fullscreen", cfg.Display)
	}

	for _, raw := range []string{`{`, `[]`, `"x"`, `{"start_url": null}`} {
		if _, err := ParseJSON([]byte(raw)); !errors.Is(err, domain.ErrManifestParse) {
			t.Errorf("ParseJSON(%s) error = %v, want ErrManifestParse", raw, err)
		}
	}
}

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		in   string
		want DisplayMode
	}{
		{"fullscreen", DisplayFullscreen},
		{"FULLSCREEN", DisplayFullscreen},
		{"Fullscreen", DisplayFullscreen},
		{"standalone", DisplayStandalone},
		{"Minimal-UI", DisplayMinimalUI},
		{"minimal-ui", DisplayMinimalUI},
		{"browser", DisplayStandalone},
		{"", DisplayStandalone},
		{"kiosk", DisplayStandalone},
	}

	for _, tt := range tests {
		if got := ParseDisplayMode(tt.in); got != tt.want {
			t.Errorf("ParseDisplayMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisplayMode_String(t *testing.T) {
	tests := map[DisplayMode]string{
		DisplayStandalone: "standalone",
		DisplayFullscreen: "fullscreen",
		DisplayMinimalUI:  "minimal-ui",
		DisplayBrowser:    "browser",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestConfig_Title(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Name: "App", StartURL: "https://a.test/"}, "App"},
		{Config{ShortName: "A", StartURL: "https://a.test/"}, "A"},
		{Config{StartURL: "https://a.test/x"}, "a.test"},
		{Config{StartURL: "/index.html"}, "/index.html"},
	}

	for _, tt := range tests {
		if got := tt.cfg.Title(); got != tt.want {
			t.Errorf("Title() = %q, want %q", got, tt.want)
		}
	}
}

func TestConfig_WithBase(t *testing.T) {
	cfg := Config{
		Name:     "App",
		StartURL: "./index.html",
		Scope:    "../",
		Icons:    []Icon{{Src: "icon.png"}},
	}

	resolved, err := cfg.WithBase("https://example.com/app/static/manifest.json")
	if err != nil {
		t.Fatalf("WithBase() error = %v", err)
	}

	if resolved.StartURL != "https://example.com/app/static/index.html" {
		t.Errorf("StartURL = %q", resolved.StartURL)
	}
	if resolved.Scope != "https://example.com/app/" {
		t.Errorf("Scope = %q", resolved.Scope)
	}
	if resolved.Icons[0].Src != "https://example.com/app/static/icon.png" {
		t.Errorf("Icons[0].Src = %q", resolved.Icons[0].Src)
	}

	// The original value is untouched.
	if cfg.StartURL != "./index.html" || cfg.Icons[0].Src != "icon.png" {
		t.Errorf("WithBase mutated the receiver: %+v", cfg)
	}
}

func TestConfig_WithBase_RelativeBase(t *testing.T) {
	cfg := Config{StartURL: "./index.html"}

	resolved, err := cfg.WithBase("manifest.json")
	if err != nil {
		t.Fatalf("WithBase() error = %v", err)
	}
	if resolved.StartURL != "./index.html" {
		t.Errorf("StartURL = %q, want unchanged", resolved.StartURL)
	}
}
