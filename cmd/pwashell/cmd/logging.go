package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brianly1003/pwashell/internal/config"
)

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Logging.Format == "console" || verbose {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// newFetchLogger returns the slog logger handed to the retrying HTTP client.
// Retries are only interesting when debugging, so it stays quiet otherwise.
func newFetchLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if verbose || cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
