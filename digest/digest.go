// Package digest orchestrates digest generation. It coordinates story
// discovery, per-post article and comment retrieval, and assembly of the
// renderable content tree.
package digest

import (
	"context"
	"log/slog"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"golang.org/x/sync/errgroup"
)

// Defaults for digest generation.
const (
	// DefaultPostLimit is how many top posts a digest covers.
	DefaultPostLimit = 10

	// DefaultCommentLimit is how many comments each post keeps.
	DefaultCommentLimit = 5

	// DefaultCommentMargin is how many reply IDs beyond the comment limit
	// are fetched, so deleted and dead entries can be filtered without a
	// second round trip.
	DefaultCommentMargin = 10

	// DefaultCommentPoolSize bounds concurrent item fetches within one
	// post.
	DefaultCommentPoolSize = 10

	// DefaultConcurrency bounds how many posts are processed at once. Each
	// post fans out its own comment pool, so the effective request
	// parallelism is roughly Concurrency * CommentPoolSize.
	DefaultConcurrency = 3
)

// Builder coordinates one digest run.
type Builder struct {
	Discovery hndigest.DiscoveryService
	Items     hndigest.ItemService
	Fetcher   hndigest.Fetcher
	Extractor hndigest.Extractor
	Sanitizer hndigest.Sanitizer

	// Summarizer is optional. When set, entries with article content get a
	// one-line lede.
	Summarizer hndigest.Summarizer

	// Limiter is optional. When set, article fetches wait for the target
	// domain's token before going out.
	Limiter hndigest.DomainLimiter

	Logger *slog.Logger

	PostLimit       int
	CommentLimit    int
	CommentMargin   int
	CommentPoolSize int
	Concurrency     int
	RetryDelays     []time.Duration

	// Now is the clock used to compute the digest window.
	// Defaults to time.Now.
	Now func() time.Time
}

// Build runs discovery for the prior UTC day and retrieves every post's
// article and comments. A nil digest with a nil error means the window had
// no stories and no artifact should be produced. Per-post retrieval
// failures degrade the affected entry and never fail the run; only
// discovery errors propagate.
func (b *Builder) Build(ctx context.Context) (*hndigest.Digest, error) {
	window := hndigest.PriorDay(b.now())

	posts, err := b.Discovery.DiscoverTop(ctx, window, b.postLimit())
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	entries := make([]*hndigest.Entry, len(posts))

	// Fan out across posts. Each worker writes only its own slot and never
	// returns an error: one post's failures must not cancel another's
	// retrieval.
	var g errgroup.Group
	g.SetLimit(b.concurrency())

	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			entries[i] = b.buildEntry(ctx, i+1, post)
			return nil
		})
	}
	_ = g.Wait()

	return &hndigest.Digest{Window: window, Entries: entries}, nil
}

// buildEntry retrieves one post's article and comments concurrently.
func (b *Builder) buildEntry(ctx context.Context, rank int, post *hndigest.Post) *hndigest.Entry {
	entry := &hndigest.Entry{Rank: rank, Post: post}

	var g errgroup.Group
	g.Go(func() error {
		entry.Article = b.fetchArticle(ctx, post)
		return nil
	})
	g.Go(func() error {
		entry.Comments = b.topComments(ctx, post)
		return nil
	})
	_ = g.Wait()

	if b.Summarizer != nil && entry.Article != nil {
		entry.Lede = b.summarize(ctx, post, entry.Article)
	}

	return entry
}

func (b *Builder) postLimit() int {
	if b.PostLimit > 0 {
		return b.PostLimit
	}
	return DefaultPostLimit
}

func (b *Builder) commentLimit() int {
	if b.CommentLimit > 0 {
		return b.CommentLimit
	}
	return DefaultCommentLimit
}

func (b *Builder) commentMargin() int {
	if b.CommentMargin > 0 {
		return b.CommentMargin
	}
	return DefaultCommentMargin
}

func (b *Builder) commentPoolSize() int {
	if b.CommentPoolSize > 0 {
		return b.CommentPoolSize
	}
	return DefaultCommentPoolSize
}

func (b *Builder) concurrency() int {
	if b.Concurrency > 0 {
		return b.Concurrency
	}
	return DefaultConcurrency
}

func (b *Builder) retryDelays() []time.Duration {
	if b.RetryDelays != nil {
		return b.RetryDelays
	}
	return hndigest.DefaultRetryDelays()
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
