// Package config provides centralized default configuration values.
package config

// Default window size in pixels.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 820
)

// DefaultUserAgent is presented to pages so sites that sniff for Safari
// serve their full PWA experience.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_2) AppleWebKit/602.3.12 (KHTML, like Gecko) Version/10.0.2 Safari/602.3.12"

// DefaultAllowedSchemes lists the schemes handed to the default browser.
// Anything else (javascript:, file:, data:) is dropped.
var DefaultAllowedSchemes = []string{
	"http",
	"https",
	"mailto",
	"tel",
}
