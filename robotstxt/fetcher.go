// Package robotstxt provides an apidoc.Fetcher decorator that refuses URLs
// disallowed by the target host's robots.txt.
package robotstxt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/apidoc"
	"github.com/temoto/robotstxt"
)

// DefaultTimeout bounds the robots.txt request.
const DefaultTimeout = 5 * time.Second

// Ensure Fetcher implements apidoc.Fetcher at compile time.
var _ apidoc.Fetcher = (*Fetcher)(nil)

// Fetcher checks robots.txt before delegating to the wrapped fetcher.
// If robots.txt cannot be retrieved, or answers 4xx, the fetch is allowed;
// a 5xx answer disallows everything.
type Fetcher struct {
	next      apidoc.Fetcher
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client used to retrieve robots.txt.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent sets the agent name matched against robots.txt groups and
// sent with the robots.txt request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher wraps next with a robots.txt check.
func NewFetcher(next apidoc.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		next:      next,
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: "*",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns EFORBIDDEN if robots.txt disallows rawURL for the
// configured agent, and delegates otherwise.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", apidoc.Errorf(apidoc.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	data, err := f.robots(ctx, u)
	if err == nil && !data.TestAgent(path, f.userAgent) {
		return "", apidoc.Errorf(apidoc.EFORBIDDEN, "robots.txt disallows %s", rawURL)
	}

	return f.next.Fetch(ctx, rawURL)
}

func (f *Fetcher) robots(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return robotstxt.FromStatusAndBytes(resp.StatusCode, body)
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
