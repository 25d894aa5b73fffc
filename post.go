package hndigest

import (
	"context"
	"time"
)

// Post represents a story surfaced by the discovery index. Posts are
// immutable once discovered; everything downstream treats them as
// read-only.
type Post struct {
	// ID is the story's object identifier, shared by the search index and
	// the item API.
	ID string

	Title  string
	Author string

	// URL is the external link for link posts. Empty for text posts.
	URL string

	// SelfText is the story's own HTML body for text posts. Empty for link
	// posts.
	SelfText string

	Points      int
	NumComments int

	// CreatedAt is the story's creation time in UTC.
	CreatedAt time.Time
}

// Validate returns an error if the post is missing required fields.
func (p *Post) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "post ID required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	if p.Author == "" {
		return Errorf(EINVALID, "post author required")
	}
	if p.CreatedAt.IsZero() {
		return Errorf(EINVALID, "post creation time required")
	}
	if p.Points < 0 {
		return Errorf(EINVALID, "post points must not be negative")
	}
	if p.NumComments < 0 {
		return Errorf(EINVALID, "post comment count must not be negative")
	}
	return nil
}

// ItemURL returns the story's discussion page URL.
func (p *Post) ItemURL() string {
	return "https://news.ycombinator.com/item?id=" + p.ID
}

// DiscoveryService finds the top stories created within a time window.
type DiscoveryService interface {
	// DiscoverTop returns at most limit stories created within the window,
	// in the index's own relevance order. An empty result is a valid
	// outcome, not an error.
	DiscoverTop(ctx context.Context, window Window, limit int) ([]*Post, error)
}
