// Package algolia implements story discovery against the Hacker News
// Algolia search API.
package algolia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// DefaultBaseURL is the production search endpoint.
const DefaultBaseURL = "https://hn.algolia.com/api/v1"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 15 * time.Second

// Ensure DiscoveryService implements hndigest.DiscoveryService at compile time.
var _ hndigest.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService queries the search index for top stories. The index
// ranks by relevance (roughly points) when no sort is requested, which is
// exactly the order the digest wants.
type DiscoveryService struct {
	client  *http.Client
	baseURL string
	delays  []time.Duration
}

// Option configures a DiscoveryService.
type Option func(*DiscoveryService)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *DiscoveryService) {
		s.baseURL = baseURL
	}
}

// WithRetryDelays overrides the retry schedule. Used in tests.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *DiscoveryService) {
		s.delays = delays
	}
}

// NewDiscoveryService creates a DiscoveryService. A nil client gets a
// default with DefaultTimeout.
func NewDiscoveryService(client *http.Client, opts ...Option) *DiscoveryService {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	s := &DiscoveryService{
		client:  client,
		baseURL: DefaultBaseURL,
		delays:  hndigest.DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverTop implements hndigest.DiscoveryService.
func (s *DiscoveryService) DiscoverTop(ctx context.Context, window hndigest.Window, limit int) ([]*hndigest.Post, error) {
	if limit < 1 {
		return nil, hndigest.Errorf(hndigest.EINVALID, "limit must be positive, got %d", limit)
	}

	q := url.Values{}
	q.Set("tags", "story")
	q.Set("numericFilters", fmt.Sprintf("created_at_i>%d,created_at_i<%d", window.Start.Unix(), window.End.Unix()))
	q.Set("hitsPerPage", strconv.Itoa(limit))
	searchURL := s.baseURL + "/search?" + q.Encode()

	var res searchResponse
	err := hndigest.Do(ctx, s.delays, func(ctx context.Context) error {
		return s.search(ctx, searchURL, &res)
	})
	if err != nil {
		return nil, err
	}

	posts := make([]*hndigest.Post, 0, len(res.Hits))
	for _, h := range res.Hits {
		if len(posts) == limit {
			break
		}
		post, err := h.post()
		if err != nil {
			// Malformed hits are dropped rather than failing the run.
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *DiscoveryService) search(ctx context.Context, searchURL string, out *searchResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return hndigest.Errorf(hndigest.EUNAVAILABLE, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return hndigest.Errorf(hndigest.EUNAVAILABLE, "search returned HTTP %d", resp.StatusCode)
	}

	*out = searchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return hndigest.Errorf(hndigest.EINVALID, "decoding search response: %v", err)
	}
	return nil
}

type searchResponse struct {
	Hits []hit `json:"hits"`
}

// hit mirrors one search record. URL and story text are genuinely
// optional; the numeric fields use pointers so a missing value can be told
// apart from a zero.
type hit struct {
	ObjectID    string  `json:"objectID"`
	Title       string  `json:"title"`
	URL         *string `json:"url"`
	StoryText   *string `json:"story_text"`
	Points      *int    `json:"points"`
	NumComments *int    `json:"num_comments"`
	Author      string  `json:"author"`
	CreatedAtI  *int64  `json:"created_at_i"`
	CreatedAt   string  `json:"created_at"`
}

func (h *hit) post() (*hndigest.Post, error) {
	if h.Points == nil || h.NumComments == nil {
		return nil, hndigest.Errorf(hndigest.EINVALID, "hit %q missing counters", h.ObjectID)
	}
	created, err := h.createdAt()
	if err != nil {
		return nil, err
	}

	post := &hndigest.Post{
		ID:          h.ObjectID,
		Title:       h.Title,
		Author:      h.Author,
		Points:      *h.Points,
		NumComments: *h.NumComments,
		CreatedAt:   created,
	}
	if h.URL != nil {
		post.URL = *h.URL
	}
	if h.StoryText != nil {
		post.SelfText = *h.StoryText
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	return post, nil
}

func (h *hit) createdAt() (time.Time, error) {
	if h.CreatedAtI != nil {
		return time.Unix(*h.CreatedAtI, 0).UTC(), nil
	}
	if h.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, h.CreatedAt)
		if err != nil {
			return time.Time{}, hndigest.Errorf(hndigest.EINVALID, "hit %q has unparseable created_at: %v", h.ObjectID, err)
		}
		return t.UTC(), nil
	}
	return time.Time{}, hndigest.Errorf(hndigest.EINVALID, "hit %q missing creation time", h.ObjectID)
}
