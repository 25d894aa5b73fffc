package mock

import (
	"context"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

var _ hndigest.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService is a mock implementation of hndigest.DiscoveryService.
type DiscoveryService struct {
	DiscoverTopFn func(ctx context.Context, window hndigest.Window, limit int) ([]*hndigest.Post, error)
}

func (s *DiscoveryService) DiscoverTop(ctx context.Context, window hndigest.Window, limit int) ([]*hndigest.Post, error) {
	return s.DiscoverTopFn(ctx, window, limit)
}
