package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brianly1003/pwashell/internal/adapters/source"
	"github.com/brianly1003/pwashell/internal/adapters/watcher"
	"github.com/brianly1003/pwashell/internal/manifest"
	"github.com/brianly1003/pwashell/internal/scope"
	"github.com/brianly1003/pwashell/internal/shell"
)

var (
	checkTestURLs []string
	checkWatch    bool
)

// checkCmd validates a manifest without opening a window.
var checkCmd = &cobra.Command{
	Use:   "check [manifest]",
	Short: "Validate a manifest and show how URLs would be routed",
	Long: `Parse a web app manifest and print the resolved configuration,
the effective navigation scope and the routing decision for each --test-url.

With --watch the manifest file is re-checked every time it is saved.

Examples:
  pwashell check ./manifest.json
  pwashell check ./manifest.json --test-url https://app.example.com/inbox
  pwashell check ./manifest.json --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVarP(&checkTestURLs, "test-url", "t", nil, "URL to route against the manifest scope (repeatable)")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check the manifest file when it changes")
}

// checkReport is the printed result of a manifest check.
type checkReport struct {
	Manifest       manifest.Config            `yaml:"manifest"`
	EffectiveScope string                     `yaml:"effective_scope"`
	ThemeTint      string                     `yaml:"theme_tint,omitempty"`
	Fullscreen     bool                       `yaml:"fullscreen"`
	MinimalUI      bool                       `yaml:"minimal_ui"`
	Decisions      []scope.NavigationDecision `yaml:"decisions,omitempty"`
}

func buildReport(m manifest.Config, testURLs []string) checkReport {
	report := checkReport{
		Manifest:   m,
		Fullscreen: scope.IsFullscreen(m.Display),
		MinimalUI:  scope.IsMinimalUI(m.Display),
	}

	if tint := shell.PlanChrome(m).Tint; tint != nil {
		report.ThemeTint = tint.Hex()
	}

	if eff, err := scope.EffectiveScope(m.StartURL, m.Scope); err == nil {
		report.EffectiveScope = eff
	}

	for _, u := range testURLs {
		report.Decisions = append(report.Decisions, scope.Decide(u, m))
	}
	return report
}

func writeReport(w io.Writer, report checkReport) error {
	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		manifestRef = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := loadManifest(ctx, cfg)
	if err != nil {
		return err
	}
	if err := writeReport(os.Stdout, buildReport(m, checkTestURLs)); err != nil {
		return err
	}

	if !checkWatch {
		return nil
	}

	file, ok := openSource(cfg).(source.File)
	if !ok {
		return fmt.Errorf("--watch needs a manifest file, got %q", cfg.Manifest.Source)
	}

	w := watcher.NewWatcher(file.Path, cfg.Watcher.DebounceMS, func(data []byte, err error) {
		if err != nil {
			log.Error().Err(err).Str("path", file.Path).Msg("failed to read manifest")
			return
		}
		m, err := parseManifest(data, file.Location())
		if err != nil {
			log.Error().Err(err).Str("path", file.Path).Msg("invalid manifest")
			return
		}
		fmt.Println("---")
		if err := writeReport(os.Stdout, buildReport(m, checkTestURLs)); err != nil {
			log.Error().Err(err).Msg("failed to write report")
		}
	})

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch manifest: %w", err)
	}
	defer func() { _ = w.Stop() }()

	log.Info().Str("path", file.Path).Msg("watching manifest for changes")
	<-ctx.Done()
	return nil
}
