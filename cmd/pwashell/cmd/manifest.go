package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/brianly1003/pwashell/internal/adapters/source"
	"github.com/brianly1003/pwashell/internal/config"
	"github.com/brianly1003/pwashell/internal/manifest"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if manifestRef != "" {
		cfg.Manifest.Source = manifestRef
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return cfg, nil
}

func openSource(cfg *config.Config) source.Source {
	return source.Open(cfg.Manifest.Source, source.Options{
		Timeout:  time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		RetryMax: cfg.Fetch.RetryMax,
		Logger:   newFetchLogger(cfg),
	})
}

// loadManifest reads, parses and base-resolves the configured manifest.
func loadManifest(ctx context.Context, cfg *config.Config) (manifest.Config, error) {
	src := openSource(cfg)

	data, err := src.Load(ctx)
	if err != nil {
		return manifest.Config{}, err
	}

	return parseManifest(data, src.Location())
}

func parseManifest(data []byte, location string) (manifest.Config, error) {
	m, err := manifest.ParseJSON(data)
	if err != nil {
		return manifest.Config{}, err
	}
	return m.WithBase(location)
}
