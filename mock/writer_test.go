package mock_test

import (
	"testing"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ArtifactWriter is expected
	var _ hndigest.ArtifactWriter = &mock.ArtifactWriter{}
}

func TestArtifactWriter_WriteArtifact(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteArtifactFn", func(t *testing.T) {
		t.Parallel()

		var gotName, gotExt string
		var gotData []byte
		w := &mock.ArtifactWriter{
			WriteArtifactFn: func(name string, ext string, data []byte) (string, error) {
				gotName, gotExt, gotData = name, ext, data
				return "/out/" + name + "." + ext, nil
			},
		}

		path, err := w.WriteArtifact("2026-08-22", "html", []byte("<html>"))

		require.NoError(t, err)
		assert.Equal(t, "/out/2026-08-22.html", path)
		assert.Equal(t, "2026-08-22", gotName)
		assert.Equal(t, "html", gotExt)
		assert.Equal(t, []byte("<html>"), gotData)
	})
}
