// Package readability is the alternate article extraction strategy, for
// pages where the default produces thin or empty content.
package readability

import (
	"strings"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements hndigest.Extractor at compile time.
var _ hndigest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes a raw HTML page and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*hndigest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, hndigest.Errorf(hndigest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &hndigest.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
