// Package firebase implements item lookup against the Hacker News Firebase
// API.
package firebase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// DefaultBaseURL is the production item endpoint.
const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// DefaultTimeout bounds a single item request.
const DefaultTimeout = 10 * time.Second

// Ensure ItemService implements hndigest.ItemService at compile time.
var _ hndigest.ItemService = (*ItemService)(nil)

// ItemService fetches individual items by ID.
type ItemService struct {
	client  *http.Client
	baseURL string
	delays  []time.Duration
}

// Option configures an ItemService.
type Option func(*ItemService)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *ItemService) {
		s.baseURL = baseURL
	}
}

// WithRetryDelays overrides the retry schedule. Used in tests.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *ItemService) {
		s.delays = delays
	}
}

// NewItemService creates an ItemService. A nil client gets a default with
// DefaultTimeout.
func NewItemService(client *http.Client, opts ...Option) *ItemService {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	s := &ItemService{
		client:  client,
		baseURL: DefaultBaseURL,
		delays:  hndigest.DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Item implements hndigest.ItemService.
func (s *ItemService) Item(ctx context.Context, id int64) (*hndigest.Item, error) {
	itemURL := fmt.Sprintf("%s/item/%d.json", s.baseURL, id)

	var rec *item
	err := hndigest.Do(ctx, s.delays, func(ctx context.Context) error {
		return s.get(ctx, itemURL, &rec)
	})
	if err != nil {
		return nil, err
	}

	// The API serves a literal null body for unknown IDs.
	if rec == nil {
		return nil, hndigest.Errorf(hndigest.ENOTFOUND, "item %d not found", id)
	}

	return &hndigest.Item{
		ID:      rec.ID,
		Type:    rec.Type,
		By:      rec.By,
		Text:    rec.Text,
		Time:    time.Unix(rec.Time, 0).UTC(),
		Kids:    rec.Kids,
		Deleted: rec.Deleted,
		Dead:    rec.Dead,
	}, nil
}

func (s *ItemService) get(ctx context.Context, itemURL string, out **item) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, itemURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return hndigest.Errorf(hndigest.EUNAVAILABLE, "item request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return hndigest.Errorf(hndigest.EUNAVAILABLE, "item API returned HTTP %d", resp.StatusCode)
	}

	*out = nil
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return hndigest.Errorf(hndigest.EINVALID, "decoding item response: %v", err)
	}
	return nil
}

// item mirrors the upstream record. Decoding targets a pointer so the
// literal null served for unknown IDs is distinguishable from an empty
// record.
type item struct {
	ID      int64   `json:"id"`
	Type    string  `json:"type"`
	By      string  `json:"by"`
	Time    int64   `json:"time"`
	Text    string  `json:"text"`
	Kids    []int64 `json:"kids"`
	Deleted bool    `json:"deleted"`
	Dead    bool    `json:"dead"`
}
