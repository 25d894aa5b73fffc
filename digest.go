package hndigest

import "time"

// Digest is one generated collection: a window's top posts in rank order,
// each with whatever article content and comments could be retrieved.
type Digest struct {
	Window  Window
	Entries []*Entry
}

// Entry pairs a post with everything retrieved for it. Rank is the post's
// 1-based position in the discovery result and never changes afterwards.
type Entry struct {
	Rank int
	Post *Post

	// Article is nil when no article content could be extracted.
	Article *ArticleContent

	Comments []*Comment

	// Lede is an optional one-line summary of the article.
	Lede string
}

// BodyKind identifies which source a section's body node carries.
type BodyKind int

const (
	// BodyArticle is extracted article content.
	BodyArticle BodyKind = iota

	// BodySelfText is the post's own text, used when no article content
	// was extracted.
	BodySelfText

	// BodyUnavailable is the placeholder used when neither article content
	// nor self text exists.
	BodyUnavailable
)

// UnavailableBody is the plain-text placeholder for sections with no
// retrievable body.
const UnavailableBody = "Article content could not be retrieved."

// UnknownAuthor is the placeholder handle for comments with no author.
const UnknownAuthor = "[unknown]"

// Body is a section's single body node. Exactly one source is chosen per
// section; sources are never merged.
type Body struct {
	Kind BodyKind

	// HTML is the body markup, or plain placeholder text when Kind is
	// BodyUnavailable.
	HTML string
}

// Unavailable reports whether the body is the placeholder node.
func (b Body) Unavailable() bool { return b.Kind == BodyUnavailable }

// TocEntry is one table-of-contents line.
type TocEntry struct {
	Rank        int
	Title       string
	Anchor      string
	Points      int
	NumComments int
	Author      string
}

// CommentBlock is one comment prepared for rendering.
type CommentBlock struct {
	Author  string
	Time    time.Time
	Replies int
	HTML    string
}

// PostSection is one post's fully assembled section.
type PostSection struct {
	Rank        int
	Total       int
	Title       string
	Anchor      string
	Points      int
	NumComments int
	Author      string
	ItemURL     string
	ExternalURL string
	Lede        string
	Body        Body
	Comments    []CommentBlock
}

// Document is the renderer-agnostic content tree for one digest: a table
// of contents followed by one section per post, both in rank order.
type Document struct {
	// DateLabel is the digest date in YYYY-MM-DD form and names the
	// artifact.
	DateLabel string

	// DateTitle is the digest date in long form for the cover page.
	DateTitle string

	Date     time.Time
	TOC      []TocEntry
	Sections []PostSection
}

// Renderer serializes a content tree into one artifact.
type Renderer interface {
	Render(doc *Document) ([]byte, error)

	// Ext returns the artifact's file extension, without the dot.
	Ext() string
}

// ArtifactWriter persists a rendered artifact.
type ArtifactWriter interface {
	// WriteArtifact writes data to name.ext in the output location,
	// replacing any existing artifact with the same name, and returns the
	// final path.
	WriteArtifact(name string, ext string, data []byte) (string, error)
}
