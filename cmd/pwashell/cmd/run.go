package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brianly1003/pwashell/internal/adapters/browser"
	"github.com/brianly1003/pwashell/internal/adapters/launcher"
	"github.com/brianly1003/pwashell/internal/adapters/webview"
	"github.com/brianly1003/pwashell/internal/config"
	"github.com/brianly1003/pwashell/internal/domain/ports"
	"github.com/brianly1003/pwashell/internal/shell"
)

const pendingOpenTimeout = 5 * time.Second

var (
	runStartURL string
	runWindowID string
	runParentID string
	runDebug    bool
)

// runCmd opens the app window.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the app in a desktop window",
	Long: `Open the manifest's start URL in a native webview window.

In-scope links the page opens in a new window get their own app window.
Everything else goes to the default browser.

Examples:
  pwashell run
  pwashell run --manifest ./manifest.json
  pwashell run --manifest https://app.example.com/manifest.json
  pwashell run --url https://app.example.com/settings`,
	RunE: runWindow,
}

func init() {
	runCmd.Flags().StringVar(&runStartURL, "url", "", "open this URL instead of the manifest start URL")
	runCmd.Flags().StringVar(&runWindowID, "window-id", "", "identifier for this window (default: random)")
	runCmd.Flags().StringVar(&runParentID, "parent-id", "", "identifier of the window that opened this one")
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "enable webview developer tools")

	_ = runCmd.Flags().MarkHidden("window-id")
	_ = runCmd.Flags().MarkHidden("parent-id")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if runDebug {
		cfg.Window.Debug = true
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := loadManifest(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	spec := ports.NewWindowSpec(m, runStartURL)
	if runWindowID != "" {
		spec.ID = runWindowID
	}
	spec.ParentID = runParentID

	plan := shell.PlanChrome(m)
	script := shell.BridgeScript(shell.BridgeOptions{
		UserAgent:     cfg.Shell.UserAgent,
		ConsoleBridge: cfg.Shell.ConsoleBridge,
		Chrome:        plan,
	})

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	factory := launcher.NewLauncher(exe, childArgs(cfg))
	opener := browser.NewOpener(cfg.Opener.AllowedSchemes)
	controller := shell.NewController(ctx, spec, factory, opener)

	opts := webview.OptionsFor(plan, cfg.Window.Width, cfg.Window.Height, cfg.Window.Debug, script)
	win, err := webview.New(spec, opts, controller)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = win.Close()
	}()

	log.Info().
		Str("window_id", spec.ID).
		Str("parent_id", spec.ParentID).
		Str("url", spec.URL).
		Str("display", m.Display.String()).
		Msg("opening app window")

	if err := win.Run(); err != nil {
		return err
	}

	log.Info().Str("window_id", spec.ID).Msg("app window closed")

	// Let in-flight window spawns and browser hand-offs finish.
	waitCtx, cancel := context.WithTimeout(context.Background(), pendingOpenTimeout)
	defer cancel()
	if err := controller.Wait(waitCtx); err != nil {
		log.Warn().Err(err).Str("window_id", spec.ID).Msg("pending navigations did not finish")
	}
	return nil
}

// childArgs returns the arguments that make a spawned window load the same
// manifest and configuration as this one.
func childArgs(cfg *config.Config) []string {
	args := []string{"run"}

	if src := cfg.Manifest.Source; src != "" {
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			if abs, err := filepath.Abs(src); err == nil {
				src = abs
			}
		}
		args = append(args, "--manifest", src)
	}
	if cfgFile != "" {
		if abs, err := filepath.Abs(cfgFile); err == nil {
			args = append(args, "--config", abs)
		} else {
			args = append(args, "--config", cfgFile)
		}
	}
	if cfg.Window.Debug {
		args = append(args, "--debug")
	}
	if verbose {
		args = append(args, "--verbose")
	}
	return args
}
