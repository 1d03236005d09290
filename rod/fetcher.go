// Package rod provides a headless-browser implementation of apidoc.Fetcher
// for documentation pages that are rendered by JavaScript.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/apidoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements apidoc.Fetcher at compile time.
var _ apidoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	selector string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for loading and rendering one page.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithWaitSelector makes Fetch wait until an element matching the CSS
// selector is present before capturing the HTML.
func WithWaitSelector(selector string) Option {
	return func(f *Fetcher) {
		f.selector = selector
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	f.launcher = launcher.New().Headless(true)
	u, err := f.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	f.browser = rod.New().ControlURL(u)
	if err := f.browser.Connect(); err != nil {
		f.launcher.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Returns EFETCH if the page cannot be rendered within the timeout.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apidoc.Errorf(apidoc.EFETCH, "fetch %s: %v", url, err)
	}

	html, err := f.render(ctx, url)
	if err != nil {
		return "", apidoc.Errorf(apidoc.EFETCH, "fetch %s: %v", url, err)
	}
	return html, nil
}

func (f *Fetcher) render(ctx context.Context, url string) (string, error) {
	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.selector != "" {
		if _, err := page.Element(f.selector); err != nil {
			return "", fmt.Errorf("waiting for %q: %w", f.selector, err)
		}
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
