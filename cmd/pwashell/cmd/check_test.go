package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brianly1003/pwashell/internal/manifest"
	"github.com/brianly1003/pwashell/internal/scope"
)

func TestBuildReport(t *testing.T) {
	m := manifest.Config{
		Name:     "Mail",
		StartURL: "https://mail.example.com/app/index.html",
		Display:  manifest.DisplayFullscreen,
	}

	report := buildReport(m, []string{
		"https://mail.example.com/app/inbox",
		"https://other.example.com/",
		"not a url",
	})

	if report.EffectiveScope != "https://mail.example.com/app/" {
		t.Errorf("EffectiveScope = %q, want https://mail.example.com/app/", report.EffectiveScope)
	}
	if !report.Fullscreen || report.MinimalUI {
		t.Errorf("Fullscreen = %v, MinimalUI = %v, want true, false", report.Fullscreen, report.MinimalUI)
	}
	if len(report.Decisions) != 3 {
		t.Fatalf("len(Decisions) = %d, want 3", len(report.Decisions))
	}

	want := []scope.Action{scope.OpenInAppWindow, scope.OpenInExternalBrowser, scope.OpenInExternalBrowser}
	for i, d := range report.Decisions {
		if d.Action != want[i] {
			t.Errorf("Decisions[%d].Action = %v, want %v", i, d.Action, want[i])
		}
	}
}

func TestBuildReport_ThemeTint(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"#369", "#336699"},
		{"#FFAA00", "#ffaa00"},
		{"teal", ""},
		{"", ""},
	}

	for _, tt := range tests {
		m := manifest.Config{StartURL: "https://example.com/", ThemeColor: tt.color}
		if got := buildReport(m, nil).ThemeTint; got != tt.want {
			t.Errorf("ThemeTint for %q = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestBuildReport_NoTestURLs(t *testing.T) {
	report := buildReport(manifest.Config{StartURL: "https://example.com/"}, nil)
	if report.Decisions != nil {
		t.Errorf("Decisions = %v, want nil", report.Decisions)
	}
}

func TestWriteReport(t *testing.T) {
	m := manifest.Config{
		Name:     "Mail",
		StartURL: "https://mail.example.com/",
		Display:  manifest.DisplayMinimalUI,
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, buildReport(m, []string{"https://mail.example.com/a"})); err != nil {
		t.Fatalf("writeReport() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"display: minimal-ui", "minimal_ui: true", "action: app_window"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
