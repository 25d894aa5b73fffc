package slog

import (
	"context"
	"log/slog"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure LoggingItemService implements hndigest.ItemService.
var _ hndigest.ItemService = (*LoggingItemService)(nil)

// LoggingItemService wraps an ItemService with debug logging. Item
// lookups are the most frequent upstream call, so they log at debug to
// keep run logs readable.
type LoggingItemService struct {
	next   hndigest.ItemService
	logger *slog.Logger
}

// NewLoggingItemService creates a new LoggingItemService.
func NewLoggingItemService(next hndigest.ItemService, logger *slog.Logger) *LoggingItemService {
	return &LoggingItemService{next: next, logger: logger}
}

// Item delegates to the wrapped service and logs the lookup.
func (s *LoggingItemService) Item(ctx context.Context, id int64) (item *hndigest.Item, err error) {
	defer func(begin time.Time) {
		kids := 0
		if item != nil {
			kids = len(item.Kids)
		}
		s.logger.Debug("item fetch",
			"id", id,
			"kids", kids,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Item(ctx, id)
}
