package mock

import hndigest "github.com/chris-buckminster/hn-daily-digest"

var _ hndigest.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of hndigest.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(name string, ext string, data []byte) (string, error)
}

func (w *ArtifactWriter) WriteArtifact(name string, ext string, data []byte) (string, error) {
	return w.WriteArtifactFn(name, ext, data)
}
