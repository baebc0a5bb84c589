package ports

import (
	"github.com/google/uuid"

	"github.com/brianly1003/pwashell/internal/manifest"
)

// WindowSpec is everything a window needs to start. The manifest keeps its
// original start URL so scope decisions in every window use the same base.
type WindowSpec struct {
	ID       string
	ParentID string
	Manifest manifest.Config
	URL      string
}

// NewWindowSpec creates a WindowSpec for cfg with a new window id. A
// non-empty startURLOverride replaces the URL the window loads.
func NewWindowSpec(cfg manifest.Config, startURLOverride string) WindowSpec {
	target := cfg.StartURL
	if startURLOverride != "" {
		target = startURLOverride
	}
	return WindowSpec{
		ID:       uuid.NewString(),
		Manifest: cfg,
		URL:      target,
	}
}
