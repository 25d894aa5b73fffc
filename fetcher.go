package hndigest

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// The context controls timeout and cancellation. Transport failures
	// and non-2xx statuses are EUNAVAILABLE errors.
	Fetch(ctx context.Context, url string) (html string, err error)
}
