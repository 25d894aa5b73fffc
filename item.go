package hndigest

import (
	"context"
	"time"
)

// Item is a single record from the item API: a story, comment, job, or
// poll. Fields the upstream omits are left at their zero values.
type Item struct {
	ID   int64
	Type string

	// By is the author handle. Absent for deleted items.
	By string

	// Text is the item's HTML body. Absent for deleted items and for
	// stories that link out instead of carrying their own text.
	Text string

	Time time.Time

	// Kids lists the IDs of the item's direct replies in the platform's
	// own display order.
	Kids []int64

	Deleted bool
	Dead    bool
}

// IsComment reports whether the item is a live comment.
func (it *Item) IsComment() bool {
	return it.Type == "comment" && !it.Deleted && !it.Dead
}

// ItemService looks up items by ID.
type ItemService interface {
	// Item returns the item with the given ID.
	// Returns ENOTFOUND if the item does not exist.
	Item(ctx context.Context, id int64) (*Item, error)
}

// Comment is a first-level reply selected for the digest.
type Comment struct {
	ID int64

	// Author may be empty when the upstream record carries no handle;
	// renderers substitute a placeholder.
	Author string

	// HTML is the comment body as served by the platform. DeletedBody is
	// substituted when the body disappeared between listing and fetch.
	HTML string

	Time time.Time

	// Replies is the number of direct replies the comment had when it was
	// fetched. It is the primary ranking signal.
	Replies int

	// Position is the comment's index in the story root's reply list. It
	// breaks ranking ties, keeping selection deterministic.
	Position int
}

// DeletedBody is the placeholder body for comments whose text was removed
// between listing and fetch.
const DeletedBody = "<em>[deleted]</em>"
