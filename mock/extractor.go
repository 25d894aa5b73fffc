package mock

import hndigest "github.com/chris-buckminster/hn-daily-digest"

var _ hndigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of hndigest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*hndigest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*hndigest.ExtractResult, error) {
	return e.ExtractFn(html)
}
