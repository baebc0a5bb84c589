// Package config handles configuration management for pwashell.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Shell    ShellConfig    `mapstructure:"shell" yaml:"shell"`
	Opener   OpenerConfig   `mapstructure:"opener" yaml:"opener"`
	Fetch    FetchConfig    `mapstructure:"fetch" yaml:"fetch"`
	Watcher  WatcherConfig  `mapstructure:"watcher" yaml:"watcher"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig selects where the web app manifest is read from.
type ManifestConfig struct {
	Source string `mapstructure:"source" yaml:"source"` // File path or http(s) URL; empty uses the bundled manifest
}

// WindowConfig holds native window configuration.
type WindowConfig struct {
	Width  int  `mapstructure:"width" yaml:"width"`
	Height int  `mapstructure:"height" yaml:"height"`
	Debug  bool `mapstructure:"debug" yaml:"debug"` // Enables the webview developer tools
}

// ShellConfig holds page-side behavior of the shell.
type ShellConfig struct {
	UserAgent     string `mapstructure:"user_agent" yaml:"user_agent"`
	ConsoleBridge bool   `mapstructure:"console_bridge" yaml:"console_bridge"`
}

// OpenerConfig holds external browser configuration.
type OpenerConfig struct {
	AllowedSchemes []string `mapstructure:"allowed_schemes" yaml:"allowed_schemes"`
}

// FetchConfig holds remote manifest download configuration.
type FetchConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	RetryMax       int `mapstructure:"retry_max" yaml:"retry_max"`
}

// WatcherConfig holds manifest file watcher configuration.
type WatcherConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Load loads configuration from files and environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("pwashell")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pwashell")
		v.AddConfigPath("/etc/pwashell")
	}

	v.SetEnvPrefix("PWASHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - not an error if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	postProcess(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{Source: ""},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Shell: ShellConfig{
			UserAgent:     DefaultUserAgent,
			ConsoleBridge: true,
		},
		Opener: OpenerConfig{
			AllowedSchemes: append([]string(nil), DefaultAllowedSchemes...),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 15,
			RetryMax:       3,
		},
		Watcher: WatcherConfig{DebounceMS: 100},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("manifest.source", d.Manifest.Source)

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.debug", d.Window.Debug)

	v.SetDefault("shell.user_agent", d.Shell.UserAgent)
	v.SetDefault("shell.console_bridge", d.Shell.ConsoleBridge)

	v.SetDefault("opener.allowed_schemes", d.Opener.AllowedSchemes)

	v.SetDefault("fetch.timeout_seconds", d.Fetch.TimeoutSeconds)
	v.SetDefault("fetch.retry_max", d.Fetch.RetryMax)

	v.SetDefault("watcher.debounce_ms", d.Watcher.DebounceMS)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// postProcess normalizes values that may come from hand-written files.
func postProcess(cfg *Config) {
	cfg.Manifest.Source = strings.TrimSpace(cfg.Manifest.Source)

	schemes := make([]string, 0, len(cfg.Opener.AllowedSchemes))
	for _, s := range cfg.Opener.AllowedSchemes {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			schemes = append(schemes, s)
		}
	}
	cfg.Opener.AllowedSchemes = schemes
}

// GetConfigDir returns the user config directory for pwashell.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".pwashell"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
