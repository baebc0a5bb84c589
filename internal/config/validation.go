package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Validate validates the configuration.
func Validate(cfg *Config) error {
	if err := validateManifest(&cfg.Manifest); err != nil {
		return err
	}

	if err := validateWindow(&cfg.Window); err != nil {
		return err
	}

	if err := validateOpener(&cfg.Opener); err != nil {
		return err
	}

	if err := validateFetch(&cfg.Fetch); err != nil {
		return err
	}

	if err := validateWatcher(&cfg.Watcher); err != nil {
		return err
	}

	return validateLogging(&cfg.Logging)
}

func validateManifest(cfg *ManifestConfig) error {
	if cfg.Source == "" {
		return nil
	}

	lower := strings.ToLower(cfg.Source)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return nil
	}

	parsed, err := url.Parse(cfg.Source)
	if err != nil {
		return fmt.Errorf("manifest.source is not a valid URL: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("manifest.source must include a host")
	}
	return nil
}

func validateWindow(cfg *WindowConfig) error {
	if cfg.Width < 1 || cfg.Height < 1 {
		return fmt.Errorf("window.width and window.height must be positive")
	}
	if cfg.Width > 16384 || cfg.Height > 16384 {
		return fmt.Errorf("window.width and window.height cannot exceed 16384")
	}
	return nil
}

func validateOpener(cfg *OpenerConfig) error {
	for _, s := range cfg.AllowedSchemes {
		if s == "javascript" || s == "data" {
			return fmt.Errorf("opener.allowed_schemes cannot include %s", s)
		}
	}
	return nil
}

func validateFetch(cfg *FetchConfig) error {
	if cfg.TimeoutSeconds < 1 {
		return fmt.Errorf("fetch.timeout_seconds must be at least 1")
	}
	if cfg.RetryMax < 0 {
		return fmt.Errorf("fetch.retry_max cannot be negative")
	}
	if cfg.RetryMax > 10 {
		return fmt.Errorf("fetch.retry_max cannot exceed 10")
	}
	return nil
}

func validateWatcher(cfg *WatcherConfig) error {
	if cfg.DebounceMS < 0 {
		return fmt.Errorf("watcher.debounce_ms cannot be negative")
	}
	if cfg.DebounceMS > 10000 {
		return fmt.Errorf("watcher.debounce_ms cannot exceed 10000ms")
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) error {
	if _, err := zerolog.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("logging.level is invalid: %s", cfg.Level)
	}
	switch cfg.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json")
	}
}
