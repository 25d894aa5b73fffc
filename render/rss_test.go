package render_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/chris-buckminster/hn-daily-digest/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSS_Render(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	out, err := render.NewRSS().Render(doc)
	require.NoError(t, err)

	feed := etree.NewDocument()
	require.NoError(t, feed.ReadFromBytes(out))

	root := feed.Root()
	require.NotNil(t, root)
	require.Equal(t, "rss", root.Tag)
	assert.Equal(t, "2.0", root.SelectAttrValue("version", ""))

	channel := root.SelectElement("channel")
	require.NotNil(t, channel)

	t.Run("channel metadata", func(t *testing.T) {
		assert.Equal(t, "Hacker News Daily Digest 2026-08-22", channel.SelectElement("title").Text())
		assert.Equal(t, "https://news.ycombinator.com/", channel.SelectElement("link").Text())

		pubDate, err := time.Parse(time.RFC1123Z, channel.SelectElement("pubDate").Text())
		require.NoError(t, err)
		assert.True(t, pubDate.Equal(doc.Date))
	})

	items := channel.SelectElements("item")
	require.Len(t, items, 2)

	t.Run("item carries rank and article link", func(t *testing.T) {
		assert.Equal(t, "1. Go 1.26 released", items[0].SelectElement("title").Text())
		assert.Equal(t, "https://go.dev/blog/go1.26-release-notes-and-other-words-to-pad-this-url-out", items[0].SelectElement("link").Text())
		assert.Equal(t, "gopher", items[0].SelectElement("author").Text())
	})

	t.Run("guid is the discussion permalink", func(t *testing.T) {
		guid := items[0].SelectElement("guid")
		require.NotNil(t, guid)
		assert.Equal(t, "true", guid.SelectAttrValue("isPermaLink", ""))
		assert.Equal(t, "https://news.ycombinator.com/item?id=100", guid.Text())
	})

	t.Run("self post links to the discussion", func(t *testing.T) {
		assert.Equal(t, "https://news.ycombinator.com/item?id=101", items[1].SelectElement("link").Text())
	})

	t.Run("description embeds body and metadata", func(t *testing.T) {
		desc := items[0].SelectElement("description").Text()
		assert.Contains(t, desc, "512 points")
		assert.Contains(t, desc, "<p>The release includes <strong>faster</strong> maps.</p>")
		assert.Contains(t, desc, "<em>The release focuses on runtime performance.</em>")
	})

	t.Run("unavailable body wrapped for readers", func(t *testing.T) {
		desc := items[1].SelectElement("description").Text()
		assert.Contains(t, desc, "<em>Article content could not be retrieved.</em>")
	})
}

func TestRSS_Ext(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "xml", render.NewRSS().Ext())
}
