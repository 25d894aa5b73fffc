// Package render serializes assembled digest documents into output
// artifacts. Each renderer produces one complete file from the content
// tree; none of them reach back into the network.
package render

import (
	"bytes"
	"html/template"
	"time"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure HTML implements hndigest.Renderer at compile time.
var _ hndigest.Renderer = (*HTML)(nil)

// HTML renders the digest as a single self-contained HTML document,
// paginated for print: a cover page with the table of contents, then one
// page per post.
type HTML struct {
	tmpl *template.Template
}

// NewHTML creates the HTML renderer. The template is static, so parse
// failures are programmer errors and panic at startup.
func NewHTML() *HTML {
	tmpl := template.Must(template.New("digest").Funcs(template.FuncMap{
		"raw":      func(s string) template.HTML { return template.HTML(s) },
		"fmtTime":  func(t time.Time) string { return t.UTC().Format("2006-01-02 15:04") },
		"truncate": truncateDisplay,
		"replies":  replyNoun,
	}).Parse(documentTemplate))
	return &HTML{tmpl: tmpl}
}

// Render implements hndigest.Renderer.
func (r *HTML) Render(doc *hndigest.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, hndigest.Errorf(hndigest.EINTERNAL, "rendering digest: %v", err)
	}
	return buf.Bytes(), nil
}

// Ext implements hndigest.Renderer.
func (r *HTML) Ext() string { return "html" }

// truncateDisplay shortens a URL for display, keeping the head which
// carries the host.
func truncateDisplay(s string, maxLen int) string {
	if maxLen < 4 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func replyNoun(n int) string {
	if n == 1 {
		return "reply"
	}
	return "replies"
}

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Hacker News Daily Digest {{.DateLabel}}</title>
<style>
@page { size: A4; margin: 18mm 16mm; }
body { font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; line-height: 1.55; margin: 0; }
a { color: #b34700; text-decoration: none; }
.cover { text-align: center; padding: 2.5em 0 1.5em; border-bottom: 3px solid #ff6600; }
.cover h1 { font-size: 1.9em; margin: 0; }
.cover .date { color: #666; font-size: 1.1em; margin-top: 0.4em; }
.toc { margin: 2em 0; page-break-after: always; }
.toc h2 { font-size: 1.2em; border-bottom: 1px solid #ddd; padding-bottom: 0.3em; }
.toc ol { padding-left: 1.4em; }
.toc li { margin: 0.7em 0; }
.toc .meta { display: block; color: #828282; font-size: 0.82em; }
.post { page-break-before: always; }
.post:first-of-type { page-break-before: avoid; }
.rank { color: #828282; font-size: 0.85em; }
.post h2 { margin: 0.2em 0 0.1em; font-size: 1.35em; }
.post .meta { color: #828282; font-size: 0.85em; margin: 0.2em 0 1em; }
.lede { font-style: italic; color: #444; border-left: 3px solid #ff6600; padding-left: 0.8em; }
.body img { max-width: 100%; height: auto; }
.body pre { background: #f6f6ef; padding: 0.7em; overflow-x: auto; font-size: 0.85em; }
.body blockquote { border-left: 3px solid #ddd; margin-left: 0; padding-left: 1em; color: #555; }
.unavailable { color: #828282; font-style: italic; border: 1px dashed #ccc; padding: 1em; }
.comments { margin-top: 1.8em; border-top: 1px solid #ddd; }
.comments h3 { font-size: 1.05em; color: #444; }
.comment { margin: 1em 0; padding-left: 0.9em; border-left: 2px solid #ff6600; }
.comment-head { color: #828282; font-size: 0.82em; margin-bottom: 0.2em; }
.comment-body { font-size: 0.94em; }
.comment-body pre { background: #f6f6ef; padding: 0.5em; overflow-x: auto; font-size: 0.85em; }
</style>
</head>
<body>
<header class="cover">
<h1>Hacker News Daily Digest</h1>
<p class="date">{{.DateTitle}}</p>
</header>
<nav class="toc">
<h2>Contents</h2>
<ol>
{{range .TOC}}<li><a href="#{{.Anchor}}">{{.Title}}</a><span class="meta">{{.Points}} points &middot; {{.NumComments}} comments &middot; by {{.Author}}</span></li>
{{end}}</ol>
</nav>
{{range .Sections}}<section class="post" id="{{.Anchor}}">
<p class="rank">{{.Rank}} of {{.Total}}</p>
<h2>{{.Title}}</h2>
<p class="meta">{{.Points}} points &middot; {{.NumComments}} comments &middot; by {{.Author}} &middot; <a href="{{.ItemURL}}">discussion</a>{{if .ExternalURL}} &middot; <a href="{{.ExternalURL}}">{{truncate .ExternalURL 60}}</a>{{end}}</p>
{{if .Lede}}<p class="lede">{{.Lede}}</p>{{end}}
{{if .Body.Unavailable}}<div class="unavailable">{{.Body.HTML}}</div>
{{else}}<div class="body">{{raw .Body.HTML}}</div>
{{end}}{{if .Comments}}<div class="comments">
<h3>Top comments</h3>
{{range .Comments}}<div class="comment">
<p class="comment-head">{{.Author}} &middot; {{fmtTime .Time}} &middot; {{.Replies}} {{replies .Replies}}</p>
<div class="comment-body">{{raw .HTML}}</div>
</div>
{{end}}</div>
{{end}}</section>
{{end}}</body>
</html>
`
