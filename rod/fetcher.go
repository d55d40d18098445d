// Package rod implements seoscan.Fetcher using headless Chrome automation.
// Each fetch acquires a fresh page session, navigates, waits for dynamic
// content to render, and releases the session on every path.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/mkarpinski/seoscan"
)

// DefaultFetchTimeout bounds a single fetch including the settle delay.
const DefaultFetchTimeout = 30 * time.Second

// DefaultSettleDelay is how long to wait after the load event for
// JavaScript-rendered content to appear.
const DefaultSettleDelay = 2 * time.Second

// DefaultUserAgent is presented to pages that vary content by client.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements seoscan.Fetcher at compile time.
var _ seoscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The underlying browser process is recycled periodically by a
// BrowserManager; page sessions never outlive a single Fetch call.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	settle    time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleDelay sets the post-load wait for dynamic content.
// Defaults to DefaultSettleDelay if not specified.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithUserAgent sets the User-Agent presented to fetched pages.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		settle:    DefaultSettleDelay,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML. The page
// session is closed before returning, on the error path included.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser := f.manager.Browser()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", seoscan.Errorf(seoscan.EFETCH, "opening page for %s: %v", url, err)
	}
	defer func() {
		_ = page.Close()
		f.manager.PageReleased()
	}()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", seoscan.Errorf(seoscan.EFETCH, "setting user agent for %s: %v", url, err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", seoscan.Errorf(seoscan.EFETCH, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", seoscan.Errorf(seoscan.EFETCH, "waiting for %s to load: %v", url, err)
	}

	// Load fires before client-side rendering finishes on many sites.
	if f.settle > 0 {
		select {
		case <-ctx.Done():
			return "", seoscan.Errorf(seoscan.EFETCH, "render wait for %s: %v", url, ctx.Err())
		case <-time.After(f.settle):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", seoscan.Errorf(seoscan.EFETCH, "reading HTML from %s: %v", url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
