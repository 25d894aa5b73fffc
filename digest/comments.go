package digest

import (
	"context"
	"sort"
	"strconv"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"golang.org/x/sync/errgroup"
)

// topComments aggregates the post's top first-level comments. Failures
// degrade to fewer, possibly zero, comments and are logged rather than
// propagated.
func (b *Builder) topComments(ctx context.Context, post *hndigest.Post) []*hndigest.Comment {
	logger := b.logger().With("post_id", post.ID)

	storyID, err := strconv.ParseInt(post.ID, 10, 64)
	if err != nil {
		logger.Warn("post ID is not an item ID", "err", err)
		return nil
	}

	root, err := b.Items.Item(ctx, storyID)
	if err != nil {
		logger.Warn("could not fetch story root", "err", err)
		return nil
	}
	if len(root.Kids) == 0 {
		return nil
	}

	// Over-fetch beyond the comment limit so deleted and dead entries can
	// be filtered out without a second round trip. The cut is a hard
	// bound: reply lists can run to hundreds of IDs.
	batch := root.Kids
	if cut := b.commentLimit() + b.commentMargin(); len(batch) > cut {
		batch = batch[:cut]
	}

	// Position-keyed slots keep the reply-list order without locking.
	candidates := make([]*hndigest.Item, len(batch))

	var g errgroup.Group
	g.SetLimit(b.commentPoolSize())
	for i, id := range batch {
		i, id := i, id
		g.Go(func() error {
			item, err := b.Items.Item(ctx, id)
			if err != nil {
				logger.Warn("could not fetch comment", "comment_id", id, "err", err)
				return nil
			}
			candidates[i] = item
			return nil
		})
	}
	_ = g.Wait()

	return SelectTopComments(candidates, b.commentLimit())
}

// SelectTopComments reduces a fetched candidate batch to the comments a
// digest keeps: live first-level comments ranked by direct reply count,
// with the original reply-list position breaking ties. Nil slots from
// failed fetches are skipped; comments whose body disappeared between
// listing and fetch keep their slot with a placeholder body. The same
// batch always produces the same selection in the same order.
func SelectTopComments(candidates []*hndigest.Item, limit int) []*hndigest.Comment {
	if limit <= 0 {
		return nil
	}

	comments := make([]*hndigest.Comment, 0, len(candidates))
	for pos, item := range candidates {
		if item == nil || !item.IsComment() {
			continue
		}
		body := item.Text
		if body == "" {
			body = hndigest.DeletedBody
		}
		comments = append(comments, &hndigest.Comment{
			ID:       item.ID,
			Author:   item.By,
			HTML:     body,
			Time:     item.Time,
			Replies:  len(item.Kids),
			Position: pos,
		})
	}

	sort.Slice(comments, func(i, j int) bool {
		if comments[i].Replies != comments[j].Replies {
			return comments[i].Replies > comments[j].Replies
		}
		return comments[i].Position < comments[j].Position
	})

	if len(comments) > limit {
		comments = comments[:limit]
	}
	return comments
}
