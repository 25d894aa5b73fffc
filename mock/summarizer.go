package mock

import (
	"context"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

var _ hndigest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of hndigest.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, title string, content string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, title string, content string) (string, error) {
	return s.SummarizeFn(ctx, title, content)
}
