package render

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure RSS implements hndigest.Renderer at compile time.
var _ hndigest.Renderer = (*RSS)(nil)

// RSS renders the digest as an RSS 2.0 feed with one item per post, so a
// day's digest can be dropped into a feed reader.
type RSS struct{}

// NewRSS creates the RSS renderer.
func NewRSS() *RSS {
	return &RSS{}
}

// Render implements hndigest.Renderer.
func (r *RSS) Render(doc *hndigest.Document) ([]byte, error) {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := xml.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText("Hacker News Daily Digest " + doc.DateLabel)
	channel.CreateElement("link").SetText("https://news.ycombinator.com/")
	channel.CreateElement("description").SetText("Top Hacker News stories for " + doc.DateTitle)
	channel.CreateElement("pubDate").SetText(doc.Date.UTC().Format(time.RFC1123Z))

	for _, section := range doc.Sections {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(fmt.Sprintf("%d. %s", section.Rank, section.Title))

		link := section.ExternalURL
		if link == "" {
			link = section.ItemURL
		}
		item.CreateElement("link").SetText(link)

		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "true")
		guid.SetText(section.ItemURL)

		item.CreateElement("author").SetText(section.Author)
		item.CreateElement("comments").SetText(section.ItemURL)
		item.CreateElement("pubDate").SetText(doc.Date.UTC().Format(time.RFC1123Z))
		item.CreateElement("description").SetText(itemDescription(section))
	}

	xml.Indent(2)
	out, err := xml.WriteToBytes()
	if err != nil {
		return nil, hndigest.Errorf(hndigest.EINTERNAL, "serializing feed: %v", err)
	}
	return out, nil
}

// Ext implements hndigest.Renderer.
func (r *RSS) Ext() string { return "xml" }

// itemDescription builds the HTML payload for one feed item. The body is
// already sanitized; placeholder bodies are wrapped so readers still show
// something.
func itemDescription(section hndigest.PostSection) string {
	meta := fmt.Sprintf("<p>%d points · %d comments · by %s</p>", section.Points, section.NumComments, section.Author)
	if section.Lede != "" {
		meta += fmt.Sprintf("<p><em>%s</em></p>", section.Lede)
	}
	body := section.Body.HTML
	if section.Body.Unavailable() {
		body = "<em>" + body + "</em>"
	}
	return meta + body
}
