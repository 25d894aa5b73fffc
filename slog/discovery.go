// Package slog provides logging decorators for the service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure LoggingDiscoveryService implements hndigest.DiscoveryService.
var _ hndigest.DiscoveryService = (*LoggingDiscoveryService)(nil)

// LoggingDiscoveryService wraps a DiscoveryService with logging.
type LoggingDiscoveryService struct {
	next   hndigest.DiscoveryService
	logger *slog.Logger
}

// NewLoggingDiscoveryService creates a new LoggingDiscoveryService.
func NewLoggingDiscoveryService(next hndigest.DiscoveryService, logger *slog.Logger) *LoggingDiscoveryService {
	return &LoggingDiscoveryService{next: next, logger: logger}
}

// DiscoverTop delegates to the wrapped service and logs the operation.
func (s *LoggingDiscoveryService) DiscoverTop(ctx context.Context, window hndigest.Window, limit int) (posts []*hndigest.Post, err error) {
	defer func(begin time.Time) {
		s.logger.Info("story discovery",
			"date", window.Label(),
			"limit", limit,
			"count", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverTop(ctx, window, limit)
}
