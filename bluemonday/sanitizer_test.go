package bluemonday_test

import (
	"testing"

	"github.com/chris-buckminster/hn-daily-digest/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_RemovesScripts(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()
	out, err := s.Sanitize(`<p>safe</p><script>alert(1)</script>`, "")
	require.NoError(t, err)

	assert.Contains(t, out, "<p>safe</p>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestSanitizer_RemovesEventHandlers(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()
	out, err := s.Sanitize(`<p onclick="steal()">text</p>`, "")
	require.NoError(t, err)

	assert.Contains(t, out, "text")
	assert.NotContains(t, out, "onclick")
}

func TestSanitizer_RemovesJavascriptLinks(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()
	out, err := s.Sanitize(`<a href="javascript:evil()">click</a>`, "")
	require.NoError(t, err)

	assert.NotContains(t, out, "javascript:")
}

func TestSanitizer_KeepsImages(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()

	t.Run("https source", func(t *testing.T) {
		t.Parallel()
		out, err := s.Sanitize(`<img src="https://example.com/pic.png" alt="diagram">`, "")
		require.NoError(t, err)
		assert.Contains(t, out, `src="https://example.com/pic.png"`)
		assert.Contains(t, out, `alt="diagram"`)
	})

	t.Run("data URI source", func(t *testing.T) {
		t.Parallel()
		out, err := s.Sanitize(`<img src="data:image/png;base64,iVBORw0KGgo=">`, "")
		require.NoError(t, err)
		assert.Contains(t, out, "data:image/png")
	})
}

func TestSanitizer_KeepsArticleStructure(t *testing.T) {
	t.Parallel()

	fragment := `<article><section><h2>Heading</h2>` +
		`<p>Paragraph with <strong>bold</strong> and <em>emphasis</em>.</p>` +
		`<figure><img src="https://example.com/f.png"><figcaption>A figure</figcaption></figure>` +
		`<ul><li>item</li></ul>` +
		`<table><tbody><tr><td>cell</td></tr></tbody></table>` +
		`<pre><code>x := 1</code></pre></section></article>`

	s := bluemonday.NewSanitizer()
	out, err := s.Sanitize(fragment, "")
	require.NoError(t, err)

	assert.Contains(t, out, "<h2>Heading</h2>")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<figcaption>A figure</figcaption>")
	assert.Contains(t, out, "<li>item</li>")
	assert.Contains(t, out, "<td>cell</td>")
	assert.Contains(t, out, "<code>x := 1</code>")
}

func TestSanitizer_AddsNofollowToLinks(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()
	out, err := s.Sanitize(`<a href="https://example.com">ref</a>`, "")
	require.NoError(t, err)

	assert.Contains(t, out, `rel="nofollow"`)
}

func TestSanitizer_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()
	out, err := s.Sanitize("  <p>x</p>\n\n", "")
	require.NoError(t, err)

	assert.Equal(t, "<p>x</p>", out)
}
