package hndigest

import "context"

// ArticleContent is the readable fragment extracted from a post's linked
// page. A nil ArticleContent is the expected outcome for paywalled,
// unreachable, or non-article links, not an error.
type ArticleContent struct {
	// HTML is the sanitized main-content fragment.
	HTML string

	// Hash is an xxhash fingerprint of HTML, recorded in logs so that
	// extraction changes between runs can be spotted without diffing
	// artifacts.
	Hash string
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (navigation, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor reduces a full HTML page to its main content. Strategies are
// interchangeable; see the trafilatura and readability packages.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Sanitizer rewrites an extracted fragment into a form safe to embed in
// the digest. baseURL is the URL of the page the fragment came from, used
// to resolve relative references.
type Sanitizer interface {
	Sanitize(fragment string, baseURL string) (string, error)
}

// ChainSanitizers composes sanitizers, applying them left to right.
func ChainSanitizers(sanitizers ...Sanitizer) Sanitizer {
	return sanitizerChain(sanitizers)
}

type sanitizerChain []Sanitizer

func (c sanitizerChain) Sanitize(fragment string, baseURL string) (string, error) {
	var err error
	for _, s := range c {
		fragment, err = s.Sanitize(fragment, baseURL)
		if err != nil {
			return "", err
		}
	}
	return fragment, nil
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// Summarizer produces a short plain-text lede for an article.
type Summarizer interface {
	Summarize(ctx context.Context, title string, content string) (string, error)
}

// DomainLimiter throttles outbound requests per target domain.
type DomainLimiter interface {
	// Wait blocks until the domain's rate limit allows another request, or
	// the context is canceled.
	Wait(ctx context.Context, domain string) error
}
