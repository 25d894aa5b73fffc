package mock

import hndigest "github.com/chris-buckminster/hn-daily-digest"

var _ hndigest.Converter = (*Converter)(nil)

// Converter is a mock implementation of hndigest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
