package digest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// fetchArticle retrieves the post's linked page and reduces it to a
// sanitized fragment. A nil result is the expected outcome for text posts
// and for any fetch or extraction failure; failures are logged and
// absorbed here so the entry degrades instead of the run failing.
func (b *Builder) fetchArticle(ctx context.Context, post *hndigest.Post) *hndigest.ArticleContent {
	if post.URL == "" {
		return nil
	}
	logger := b.logger().With("post_id", post.ID, "url", post.URL)

	if b.Limiter != nil {
		target, err := url.Parse(post.URL)
		if err != nil {
			logger.Warn("post URL does not parse", "err", err)
			return nil
		}
		if err := b.Limiter.Wait(ctx, target.Host); err != nil {
			logger.Warn("rate limit wait interrupted", "err", err)
			return nil
		}
	}

	var page string
	err := hndigest.Do(ctx, b.retryDelays(), func(ctx context.Context) error {
		var err error
		page, err = b.Fetcher.Fetch(ctx, post.URL)
		return err
	})
	if err != nil {
		logger.Warn("could not fetch article", "err", err)
		return nil
	}

	extracted, err := b.Extractor.Extract(page)
	if err != nil {
		logger.Warn("content extraction failed", "err", err)
		return nil
	}

	fragment, err := b.Sanitizer.Sanitize(extracted.ContentHTML, post.URL)
	if err != nil {
		logger.Warn("sanitization failed", "err", err)
		return nil
	}
	if strings.TrimSpace(fragment) == "" {
		logger.Warn("extraction produced no content")
		return nil
	}

	article := &hndigest.ArticleContent{
		HTML: fragment,
		Hash: computeHash(fragment),
	}
	logger.Info("article extracted", "bytes", len(fragment), "hash", article.Hash)
	return article
}

// summarize asks the optional summarizer for a lede. Failures leave the
// entry without one.
func (b *Builder) summarize(ctx context.Context, post *hndigest.Post, article *hndigest.ArticleContent) string {
	lede, err := b.Summarizer.Summarize(ctx, post.Title, article.HTML)
	if err != nil {
		b.logger().Warn("summarization failed", "post_id", post.ID, "err", err)
		return ""
	}
	return lede
}

// computeHash computes a fingerprint of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
