package render

import (
	"fmt"
	"strings"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure Markdown implements hndigest.Renderer at compile time.
var _ hndigest.Renderer = (*Markdown)(nil)

// Markdown renders the digest as a single CommonMark document. Bodies and
// comments arrive as sanitized HTML, so the renderer converts them on the
// way out.
type Markdown struct {
	converter hndigest.Converter
}

// NewMarkdown creates a Markdown renderer using the given HTML converter.
func NewMarkdown(converter hndigest.Converter) *Markdown {
	return &Markdown{converter: converter}
}

// Render implements hndigest.Renderer.
func (r *Markdown) Render(doc *hndigest.Document) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Hacker News Daily Digest\n\n%s\n\n", doc.DateTitle)

	b.WriteString("## Contents\n\n")
	for _, entry := range doc.TOC {
		fmt.Fprintf(&b, "%d. [%s](#%s) (%d points, %d comments, by %s)\n",
			entry.Rank, entry.Title, entry.Anchor, entry.Points, entry.NumComments, entry.Author)
	}
	b.WriteString("\n")

	for _, section := range doc.Sections {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "<a id=\"%s\"></a>\n\n", section.Anchor)
		fmt.Fprintf(&b, "## %d of %d: %s\n\n", section.Rank, section.Total, section.Title)
		fmt.Fprintf(&b, "%d points · %d comments · by %s\n\n", section.Points, section.NumComments, section.Author)
		fmt.Fprintf(&b, "[Discussion](%s)", section.ItemURL)
		if section.ExternalURL != "" {
			fmt.Fprintf(&b, " · [Article](%s)", section.ExternalURL)
		}
		b.WriteString("\n\n")

		if section.Lede != "" {
			fmt.Fprintf(&b, "> %s\n\n", section.Lede)
		}

		if section.Body.Unavailable() {
			fmt.Fprintf(&b, "*%s*\n\n", section.Body.HTML)
		} else {
			body, err := r.converter.Convert(section.Body.HTML)
			if err != nil {
				return nil, hndigest.Errorf(hndigest.EINTERNAL, "converting body of %q: %v", section.Title, err)
			}
			b.WriteString(strings.TrimSpace(body))
			b.WriteString("\n\n")
		}

		if len(section.Comments) == 0 {
			continue
		}
		b.WriteString("### Top comments\n\n")
		for _, comment := range section.Comments {
			fmt.Fprintf(&b, "**%s** · %s · %d %s\n\n",
				comment.Author, comment.Time.UTC().Format("2006-01-02 15:04"), comment.Replies, replyNoun(comment.Replies))
			text, err := r.converter.Convert(comment.HTML)
			if err != nil {
				return nil, hndigest.Errorf(hndigest.EINTERNAL, "converting comment by %q: %v", comment.Author, err)
			}
			b.WriteString(strings.TrimSpace(text))
			b.WriteString("\n\n")
		}
	}

	return []byte(b.String()), nil
}

// Ext implements hndigest.Renderer.
func (r *Markdown) Ext() string { return "md" }
