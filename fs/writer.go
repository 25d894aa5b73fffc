// Package fs persists rendered digest artifacts to the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure Writer implements hndigest.ArtifactWriter at compile time.
var _ hndigest.ArtifactWriter = (*Writer)(nil)

// Writer writes artifacts into a single output directory with atomic
// replace semantics. Data goes to a temporary file first and is renamed
// into place, so a crash mid-write never leaves a truncated digest where
// a complete one used to be.
type Writer struct {
	outputDir string
}

// NewWriter creates a Writer rooted at outputDir. The directory is created
// on first write.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteArtifact implements hndigest.ArtifactWriter. It returns the final
// path of the written artifact.
func (w *Writer) WriteArtifact(name string, ext string, data []byte) (string, error) {
	if name == "" || ext == "" {
		return "", hndigest.Errorf(hndigest.EINVALID, "artifact name and extension are required")
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", err
	}

	finalPath := filepath.Join(w.outputDir, name+"."+ext)
	tempPath := finalPath + ".tmp"

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return "", err
	}

	// Rename replaces any previous artifact with the same name.
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return "", err
	}

	return finalPath, nil
}
