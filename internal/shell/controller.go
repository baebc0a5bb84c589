// Package shell wires manifest scope decisions to the native window: it acts
// on new-window requests, plans window chrome and builds the script injected
// into every page.
package shell

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/brianly1003/pwashell/internal/domain/ports"
	"github.com/brianly1003/pwashell/internal/manifest"
	"github.com/brianly1003/pwashell/internal/scope"
)

// Controller implements ports.NavigationHandler for one window.
type Controller struct {
	ctx      context.Context
	manifest manifest.Config
	windowID string
	factory  ports.WindowFactory
	opener   ports.URLOpener

	pending sync.WaitGroup
}

// NewController creates a controller for the window described by spec.
func NewController(ctx context.Context, spec ports.WindowSpec, factory ports.WindowFactory, opener ports.URLOpener) *Controller {
	return &Controller{
		ctx:      ctx,
		manifest: spec.Manifest,
		windowID: spec.ID,
		factory:  factory,
		opener:   opener,
	}
}

// OnNewWindowRequest opens in-scope URLs in a new app window and hands the
// rest to the default browser. The decision is returned at once; spawning the
// window or the browser happens in the background.
func (c *Controller) OnNewWindowRequest(rawURL string) scope.NavigationDecision {
	decision := scope.Decide(rawURL, c.manifest)

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		c.act(decision)
	}()

	return decision
}

func (c *Controller) act(decision scope.NavigationDecision) {
	logger := log.With().
		Str("window_id", c.windowID).
		Str("url", decision.URL).
		Str("action", decision.Action.String()).
		Logger()

	switch decision.Action {
	case scope.OpenInAppWindow:
		spec := ports.NewWindowSpec(c.manifest, decision.URL)
		spec.ParentID = c.windowID

		w, err := c.factory.NewWindow(c.ctx, spec)
		if err != nil {
			logger.Error().Err(err).Msg("failed to open app window")
			return
		}
		logger.Info().Str("child_id", w.ID()).Msg("opened app window")

	default:
		if err := c.opener.Open(decision.URL); err != nil {
			logger.Warn().Err(err).Msg("failed to open external browser")
			return
		}
		logger.Info().Msg("opened in external browser")
	}
}

// Wait blocks until every window spawn and browser hand-off started by
// OnNewWindowRequest has finished, or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnScriptMessage logs console output forwarded from the page.
func (c *Controller) OnScriptMessage(payload any) {
	event := log.Info().
		Str("component", "js-console").
		Str("window_id", c.windowID)

	switch v := payload.(type) {
	case string:
		event.Msg(v)
	case nil:
		event.Msg("")
	default:
		event.Msg(fmt.Sprint(v))
	}
}
