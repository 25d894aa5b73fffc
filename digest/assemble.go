package digest

import (
	"strconv"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// BuildDocument assembles a digest into the renderer-agnostic content
// tree: a table of contents followed by one section per post, both in rank
// order.
func BuildDocument(d *hndigest.Digest) *hndigest.Document {
	doc := &hndigest.Document{
		DateLabel: d.Window.Label(),
		DateTitle: d.Window.Title(),
		Date:      d.Window.Date(),
	}

	for _, entry := range d.Entries {
		doc.TOC = append(doc.TOC, hndigest.TocEntry{
			Rank:        entry.Rank,
			Title:       entry.Post.Title,
			Anchor:      anchor(entry.Rank),
			Points:      entry.Post.Points,
			NumComments: entry.Post.NumComments,
			Author:      entry.Post.Author,
		})
		doc.Sections = append(doc.Sections, assembleEntry(entry, len(d.Entries)))
	}

	return doc
}

// assembleEntry builds one post's section. Body selection is strict
// priority: extracted article, else the post's own text, else the
// unavailable placeholder. Exactly one source is chosen; sources are
// never merged.
func assembleEntry(entry *hndigest.Entry, total int) hndigest.PostSection {
	post := entry.Post

	var body hndigest.Body
	switch {
	case entry.Article != nil:
		body = hndigest.Body{Kind: hndigest.BodyArticle, HTML: entry.Article.HTML}
	case post.SelfText != "":
		body = hndigest.Body{Kind: hndigest.BodySelfText, HTML: post.SelfText}
	default:
		body = hndigest.Body{Kind: hndigest.BodyUnavailable, HTML: hndigest.UnavailableBody}
	}

	comments := make([]hndigest.CommentBlock, 0, len(entry.Comments))
	for _, c := range entry.Comments {
		author := c.Author
		if author == "" {
			author = hndigest.UnknownAuthor
		}
		comments = append(comments, hndigest.CommentBlock{
			Author:  author,
			Time:    c.Time,
			Replies: c.Replies,
			HTML:    c.HTML,
		})
	}

	return hndigest.PostSection{
		Rank:        entry.Rank,
		Total:       total,
		Title:       post.Title,
		Anchor:      anchor(entry.Rank),
		Points:      post.Points,
		NumComments: post.NumComments,
		Author:      post.Author,
		ItemURL:     post.ItemURL(),
		ExternalURL: post.URL,
		Lede:        entry.Lede,
		Body:        body,
		Comments:    comments,
	}
}

// anchor returns the section anchor for a rank. TOC links and section IDs
// must agree on this.
func anchor(rank int) string {
	return "post-" + strconv.Itoa(rank)
}
