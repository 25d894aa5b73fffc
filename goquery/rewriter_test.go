package goquery_test

import (
	"testing"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://example.com/posts/2026/a-story.html"

func TestRewriter_StripsActiveContent(t *testing.T) {
	t.Parallel()

	fragment := `<div>
<p>Keep this paragraph.</p>
<script>alert("nope")</script>
<style>.ad { display: block }</style>
<iframe src="https://tracker.example/frame"></iframe>
<p>And this one.</p>
</div>`

	rw := goquery.NewRewriter()
	out, err := rw.Sanitize(fragment, base)
	require.NoError(t, err)

	assert.Contains(t, out, "Keep this paragraph.")
	assert.Contains(t, out, "And this one.")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "style")
	assert.NotContains(t, out, "iframe")
	assert.NotContains(t, out, "tracker.example")
}

func TestRewriter_ResolvesImageSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "root-relative path",
			src:  "/images/diagram.png",
			want: "https://example.com/images/diagram.png",
		},
		{
			name: "document-relative path",
			src:  "figure-1.png",
			want: "https://example.com/posts/2026/figure-1.png",
		},
		{
			name: "parent-relative path",
			src:  "../shared/logo.png",
			want: "https://example.com/posts/shared/logo.png",
		},
		{
			name: "protocol-relative reference",
			src:  "//cdn.example.com/pic.jpg",
			want: "https://cdn.example.com/pic.jpg",
		},
		{
			name: "absolute https is untouched",
			src:  "https://other.example/pic.jpg",
			want: "https://other.example/pic.jpg",
		},
		{
			name: "absolute http is untouched",
			src:  "http://other.example/pic.jpg",
			want: "http://other.example/pic.jpg",
		},
		{
			name: "data URI is untouched",
			src:  "data:image/png;base64,iVBORw0KGgo=",
			want: "data:image/png;base64,iVBORw0KGgo=",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rw := goquery.NewRewriter()
			out, err := rw.Sanitize(`<p><img src="`+tt.src+`" alt="x"></p>`, base)
			require.NoError(t, err)
			assert.Contains(t, out, `src="`+tt.want+`"`)
		})
	}
}

func TestRewriter_LeavesImagesWithoutSource(t *testing.T) {
	t.Parallel()

	rw := goquery.NewRewriter()
	out, err := rw.Sanitize(`<p><img alt="decorative"></p>`, base)
	require.NoError(t, err)
	assert.Contains(t, out, "<img")
}

func TestRewriter_PreservesSurroundingMarkup(t *testing.T) {
	t.Parallel()

	fragment := `<h2 id="s1">Section</h2><p>Text with <a href="https://example.com/ref">a link</a> and <code>code</code>.</p>`

	rw := goquery.NewRewriter()
	out, err := rw.Sanitize(fragment, base)
	require.NoError(t, err)

	assert.Contains(t, out, `<h2 id="s1">Section</h2>`)
	assert.Contains(t, out, `<a href="https://example.com/ref">a link</a>`)
	assert.Contains(t, out, `<code>code</code>`)
}

func TestRewriter_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	rw := goquery.NewRewriter()
	_, err := rw.Sanitize("<p>x</p>", "http://exa mple.com/%zz")
	require.Error(t, err)
	assert.Equal(t, hndigest.EINVALID, hndigest.ErrorCode(err))
}
