// Package browser hands URLs to the operating system's default browser.
package browser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"

	"github.com/brianly1003/pwashell/internal/domain"
)

// Opener implements ports.URLOpener with a scheme allow-list.
type Opener struct {
	allowed map[string]bool
	open    func(string) error
}

// NewOpener creates an opener that accepts only the given schemes.
func NewOpener(allowedSchemes []string) *Opener {
	allowed := make(map[string]bool, len(allowedSchemes))
	for _, s := range allowedSchemes {
		allowed[strings.ToLower(s)] = true
	}
	return &Opener{
		allowed: allowed,
		open:    browser.OpenURL,
	}
}

// Open launches the default browser for rawURL.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrURLNormalization, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if !o.allowed[scheme] {
		return fmt.Errorf("%w: %q", domain.ErrSchemeNotAllowed, scheme)
	}

	return o.open(rawURL)
}
