package mock

import hndigest "github.com/chris-buckminster/hn-daily-digest"

var _ hndigest.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of hndigest.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(fragment string, baseURL string) (string, error)
}

func (s *Sanitizer) Sanitize(fragment string, baseURL string) (string, error) {
	return s.SanitizeFn(fragment, baseURL)
}
