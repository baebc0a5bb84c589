// Package scope decides whether a navigation target belongs to the app.
//
// Matching is a literal string prefix test on normalized absolute URLs:
// a scope of https://example.com/app also matches https://example.com/app2/.
// Scopes that must stop at a path segment need a trailing slash.
//
// Every function here is pure and safe for concurrent use.
package scope

import (
	"net/url"
	"strings"

	"github.com/brianly1003/pwashell/internal/domain"
	"github.com/brianly1003/pwashell/internal/manifest"
)

// Action is what the shell should do with a new-window request.
type Action int

const (
	OpenInExternalBrowser Action = iota
	OpenInAppWindow
)

func (a Action) String() string {
	if a == OpenInAppWindow {
		return "app_window"
	}
	return "external_browser"
}

// MarshalText prints the action by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// NavigationDecision pairs an Action with the absolute URL to open.
type NavigationDecision struct {
	Action Action `json:"action" yaml:"action"`
	URL    string `json:"url" yaml:"url"`
}

// IsInScope reports whether candidateURL falls inside the app scope.
// An empty scope means the directory of startURL. Malformed input of any
// kind yields false so the URL goes to the external browser.
func IsInScope(candidateURL, startURL, scope string) bool {
	effective, err := EffectiveScope(startURL, scope)
	if err != nil {
		return false
	}

	candidate, err := Normalize(candidateURL, startURL)
	if err != nil {
		return false
	}

	return strings.HasPrefix(candidate, effective)
}

// Decide classifies candidateURL against cfg.
func Decide(candidateURL string, cfg manifest.Config) NavigationDecision {
	target := candidateURL
	if normalized, err := Normalize(candidateURL, cfg.StartURL); err == nil {
		target = normalized
	}

	if IsInScope(candidateURL, cfg.StartURL, cfg.Scope) {
		return NavigationDecision{Action: OpenInAppWindow, URL: target}
	}
	return NavigationDecision{Action: OpenInExternalBrowser, URL: target}
}

// EffectiveScope returns the normalized scope prefix. An explicit scope is
// resolved against startURL; an empty one becomes startURL truncated after
// its last path slash, without query or fragment.
func EffectiveScope(startURL, scope string) (string, error) {
	if scope != "" {
		return Normalize(scope, startURL)
	}

	normalized, err := Normalize(startURL, "")
	if err != nil {
		return "", err
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return "", domain.NewURLError(startURL, err.Error())
	}
	if u.Opaque != "" {
		return "", domain.NewURLError(startURL, "start url has no path")
	}

	dir := u.EscapedPath()
	dir = dir[:strings.LastIndex(dir, "/")+1]

	u.Path, u.RawPath = "", ""
	u.RawQuery, u.ForceQuery = "", false
	u.Fragment, u.RawFragment = "", ""

	return u.String() + dir, nil
}

// Normalize turns rawURL into an absolute comparable string. Relative input
// is resolved against baseURL. "." and ".." path segments are removed, scheme
// and host are lower-cased, an empty path on a host URL becomes "/", and path
// case is preserved.
func Normalize(rawURL, baseURL string) (string, error) {
	if rawURL == "" {
		return "", domain.NewURLError(rawURL, "empty")
	}
	if strings.IndexFunc(rawURL, isDisallowed) >= 0 {
		return "", domain.NewURLError(rawURL, "contains invalid character")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", domain.NewURLError(rawURL, err.Error())
	}

	if !u.IsAbs() {
		if baseURL == "" {
			return "", domain.NewURLError(rawURL, "relative url without base")
		}
		base, err := url.Parse(baseURL)
		if err != nil || !base.IsAbs() {
			return "", domain.NewURLError(rawURL, "relative url with non-absolute base")
		}
		if strings.IndexFunc(baseURL, isDisallowed) >= 0 {
			return "", domain.NewURLError(baseURL, "contains invalid character")
		}
		u = base.ResolveReference(u)
	}
	// Dot segments are collapsed for absolute input too.
	u = u.ResolveReference(&url.URL{})

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Host != "" && u.Path == "" {
		u.Path, u.RawPath = "/", ""
	}

	return u.String(), nil
}

// isDisallowed reports characters RFC 3986 never allows unescaped.
func isDisallowed(r rune) bool {
	if r <= 0x20 || r == 0x7f {
		return true
	}
	return strings.ContainsRune("\"<>\\^`{|}", r)
}

// IsFullscreen reports whether the window should enter full-screen mode.
func IsFullscreen(mode manifest.DisplayMode) bool {
	return mode == manifest.DisplayFullscreen
}

// IsMinimalUI reports whether the window should show the minimal-ui back button.
func IsMinimalUI(mode manifest.DisplayMode) bool {
	return mode == manifest.DisplayMinimalUI
}
