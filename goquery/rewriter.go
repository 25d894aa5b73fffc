// Package goquery rewrites extracted article fragments for embedding:
// active content is dropped outright and image references are resolved
// against the page they came from.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	hndigest "github.com/chris-buckminster/hn-daily-digest"
)

// Ensure Rewriter implements hndigest.Sanitizer at compile time.
var _ hndigest.Sanitizer = (*Rewriter)(nil)

// Rewriter strips script, style, and iframe subtrees and rewrites image
// sources to absolute URLs. It runs before the allowlist policy; the two
// together form the sanitization chain.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Sanitize parses the fragment, removes script, style, and iframe elements
// including their contents, and resolves every img src that is not already
// an absolute http(s) or data reference against baseURL.
func (r *Rewriter) Sanitize(fragment string, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", hndigest.Errorf(hndigest.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", hndigest.Errorf(hndigest.EINVALID, "parsing fragment: %v", err)
	}

	doc.Find("script, style, iframe").Remove()

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		if isAbsolute(src) {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			// An unparseable reference can't be resolved, and must not
			// pass through unmodified either.
			img.RemoveAttr("src")
			return
		}
		img.SetAttr("src", base.ResolveReference(ref).String())
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", hndigest.Errorf(hndigest.EINTERNAL, "serializing fragment: %v", err)
	}
	return out, nil
}

func isAbsolute(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:")
}
