// Package domain contains domain errors used throughout the application.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	ErrManifestParse       = errors.New("manifest parse error")
	ErrMissingStartURL     = errors.New("manifest has no start_url")
	ErrURLNormalization    = errors.New("url cannot be normalized")
	ErrWebviewUnavailable  = errors.New("webview support is not compiled in")
	ErrChromeUnsupported   = errors.New("native window chrome is not supported on this platform")
	ErrSchemeNotAllowed    = errors.New("url scheme is not allowed")
	ErrManifestSourceEmpty = errors.New("manifest source is empty")
)

// ManifestParseError represents a manifest document that cannot become a
// usable configuration.
type ManifestParseError struct {
	Field string // Offending key, empty when the document itself is bad
	Err   error  // Underlying error
}

func (e *ManifestParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("manifest %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("manifest: %v", e.Err)
}

// Is reports ErrManifestParse for every ManifestParseError.
func (e *ManifestParseError) Is(target error) bool {
	return target == ErrManifestParse
}

func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// NewManifestParseError creates a new ManifestParseError.
func NewManifestParseError(field string, err error) *ManifestParseError {
	return &ManifestParseError{
		Field: field,
		Err:   err,
	}
}

// URLError represents a URL that could not be normalized into an absolute,
// comparable form.
type URLError struct {
	URL    string
	Reason string
}

func (e *URLError) Error() string {
	return fmt.Sprintf("url %q: %s", e.URL, e.Reason)
}

// Is reports ErrURLNormalization for every URLError.
func (e *URLError) Is(target error) bool {
	return target == ErrURLNormalization
}

// NewURLError creates a new URLError.
func NewURLError(rawURL, reason string) *URLError {
	return &URLError{
		URL:    rawURL,
		Reason: reason,
	}
}
