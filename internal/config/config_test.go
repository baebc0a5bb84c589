package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Manifest.Source != "" {
		t.Errorf("default Manifest.Source = %q, want empty", cfg.Manifest.Source)
	}
	if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("default window = %dx%d, want %dx%d", cfg.Window.Width, cfg.Window.Height, DefaultWindowWidth, DefaultWindowHeight)
	}
	if cfg.Shell.UserAgent != DefaultUserAgent {
		t.Errorf("default UserAgent = %q", cfg.Shell.UserAgent)
	}
	if !cfg.Shell.ConsoleBridge {
		t.Error("default Shell.ConsoleBridge should be true")
	}
	if len(cfg.Opener.AllowedSchemes) != len(DefaultAllowedSchemes) {
		t.Errorf("default AllowedSchemes = %v", cfg.Opener.AllowedSchemes)
	}
	if cfg.Fetch.RetryMax != 3 {
		t.Errorf("default RetryMax = %d, want 3", cfg.Fetch.RetryMax)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Logging.Level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `
manifest:
  source: "  https://example.com/manifest.json  "

window:
  width: 800
  height: 600
  debug: true

shell:
  user_agent: "custom-agent"
  console_bridge: false

opener:
  allowed_schemes: ["HTTPS", " mailto ", ""]

fetch:
  timeout_seconds: 5
  retry_max: 1

logging:
  level: debug
  format: json
`
	configPath := filepath.Join(tempDir, "pwashell.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Manifest.Source != "https://example.com/manifest.json" {
		t.Errorf("Manifest.Source = %q", cfg.Manifest.Source)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || !cfg.Window.Debug {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.Shell.UserAgent != "custom-agent" || cfg.Shell.ConsoleBridge {
		t.Errorf("Shell = %+v", cfg.Shell)
	}
	if len(cfg.Opener.AllowedSchemes) != 2 || cfg.Opener.AllowedSchemes[0] != "https" || cfg.Opener.AllowedSchemes[1] != "mailto" {
		t.Errorf("AllowedSchemes = %v, want [https mailto]", cfg.Opener.AllowedSchemes)
	}
	if cfg.Fetch.TimeoutSeconds != 5 || cfg.Fetch.RetryMax != 1 {
		t.Errorf("Fetch = %+v", cfg.Fetch)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %s, want json", cfg.Logging.Format)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PWASHELL_WINDOW_WIDTH", "1024")
	t.Setenv("PWASHELL_MANIFEST_SOURCE", "./app/manifest.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Window.Width = %d, want 1024", cfg.Window.Width)
	}
	if cfg.Manifest.Source != "./app/manifest.json" {
		t.Errorf("Manifest.Source = %q", cfg.Manifest.Source)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pwashell.yaml")
	if err := os.WriteFile(configPath, []byte("window: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pwashell.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() should reject a zero window width")
	}
}
