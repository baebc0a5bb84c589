// Package source loads raw manifest bytes from a file, a remote URL or the
// manifest bundled into the binary.
package source

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/brianly1003/pwashell/internal/domain"
)

// maxManifestBytes caps how much of a manifest response is read.
const maxManifestBytes = 1 << 20

//go:embed bundle/manifest.json
var bundledManifest []byte

// Source yields manifest bytes and the URL relative references in the
// manifest resolve against.
type Source interface {
	Load(ctx context.Context) ([]byte, error)

	// Location returns the manifest's own URL, or "" when it has none.
	Location() string
}

// Options configures remote sources.
type Options struct {
	Timeout  time.Duration
	RetryMax int
	Logger   *slog.Logger // Retry logging; nil disables it
}

// Open picks a Source for ref: empty means the bundled manifest, an http(s)
// URL means a remote fetch and anything else is a file path.
func Open(ref string, opts Options) Source {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)

	switch {
	case ref == "":
		return Bundled{}
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewRemote(ref, opts)
	default:
		return File{Path: ref}
	}
}

// Bundled is the manifest compiled into the binary.
type Bundled struct{}

// Load returns a copy of the bundled manifest.
func (Bundled) Load(ctx context.Context) ([]byte, error) {
	return append([]byte(nil), bundledManifest...), nil
}

// Location is empty: the bundled manifest uses absolute URLs.
func (Bundled) Location() string { return "" }

// File is a manifest on the local disk.
type File struct {
	Path string
}

// Load reads the file.
func (f File) Load(ctx context.Context) ([]byte, error) {
	if f.Path == "" {
		return nil, domain.ErrManifestSourceEmpty
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return data, nil
}

// Location returns the file:// URL of the manifest.
func (f File) Location() string {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return ""
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		// Windows drive paths
		u.Path = "/" + u.Path
	}
	return u.String()
}

// Remote is a manifest served over http(s).
type Remote struct {
	URL    string
	client *retryablehttp.Client
}

// NewRemote creates a remote source with retrying transport.
func NewRemote(rawURL string, opts Options) *Remote {
	client := retryablehttp.NewClient()
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	if opts.Timeout > 0 {
		client.HTTPClient.Timeout = opts.Timeout
	}
	client.Logger = nil
	if opts.Logger != nil {
		client.Logger = opts.Logger
	}

	return &Remote{
		URL:    rawURL,
		client: client,
	}
}

// Load downloads the manifest.
func (r *Remote) Load(ctx context.Context) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest request: %w", err)
	}
	req.Header.Set("Accept", "application/manifest+json, application/json;q=0.9, */*;q=0.1")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch manifest: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if len(data) > maxManifestBytes {
		return nil, fmt.Errorf("manifest exceeds %d bytes", maxManifestBytes)
	}
	return data, nil
}

// Location returns the manifest URL.
func (r *Remote) Location() string { return r.URL }
