package mock

import hndigest "github.com/chris-buckminster/hn-daily-digest"

var _ hndigest.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of hndigest.Renderer.
type Renderer struct {
	RenderFn func(doc *hndigest.Document) ([]byte, error)
	ExtFn    func() string
}

func (r *Renderer) Render(doc *hndigest.Document) ([]byte, error) {
	return r.RenderFn(doc)
}

func (r *Renderer) Ext() string {
	return r.ExtFn()
}
