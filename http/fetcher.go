// Package http provides the HTTP implementation of hndigest.Fetcher for
// retrieving article pages from third-party sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// DefaultFetchTimeout is the default timeout for article requests. Article
// hosts are slower and flakier than the digest's own APIs, so this is the
// most generous timeout in the system.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent identifies the tool honestly to article hosts.
const DefaultUserAgent = "hn-daily-digest/1.0 (personal archival tool)"

// maxBodyBytes caps how much of a response is read. Articles beyond this
// size are almost certainly not articles.
const maxBodyBytes = 8 << 20

// Ensure Fetcher implements hndigest.Fetcher at compile time.
var _ hndigest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests. It
// does not execute JavaScript; pages that render client-side come back as
// their served shell, and extraction downstream decides whether anything
// usable remains.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for article requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", hndigest.Errorf(hndigest.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", hndigest.Errorf(hndigest.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", hndigest.Errorf(hndigest.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}
