// Package fs provides file-based input and output: reading saved
// documentation pages and writing extraction results.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/apidoc"
)

// Ensure Fetcher implements apidoc.Fetcher at compile time.
var _ apidoc.Fetcher = (*Fetcher)(nil)

// Fetcher reads documentation pages saved on disk, addressed by file URLs.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the contents of the file named by a file:// URL.
// Returns EINVALID for other schemes and EFETCH if the file cannot be read.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", apidoc.Errorf(apidoc.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "file" {
		return "", apidoc.Errorf(apidoc.EINVALID, "not a file URL: %s", rawURL)
	}

	b, err := os.ReadFile(u.Path)
	if err != nil {
		return "", apidoc.Errorf(apidoc.EFETCH, "read %s: %v", u.Path, err)
	}
	return string(b), nil
}

// FileURL returns the file:// URL of the page at path, made absolute
// against the working directory.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apidoc.Errorf(apidoc.EINVALID, "invalid path %q: %v", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String(), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
