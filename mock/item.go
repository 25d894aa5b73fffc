package mock

import (
	"context"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

var _ hndigest.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of hndigest.ItemService.
type ItemService struct {
	ItemFn func(ctx context.Context, id int64) (*hndigest.Item, error)
}

func (s *ItemService) Item(ctx context.Context, id int64) (*hndigest.Item, error) {
	return s.ItemFn(ctx, id)
}
