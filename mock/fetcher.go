package mock

import (
	"context"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

var _ hndigest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of hndigest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
