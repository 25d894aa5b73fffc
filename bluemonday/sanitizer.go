// Package bluemonday applies an allowlist policy to article fragments.
package bluemonday

import (
	"strings"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements hndigest.Sanitizer at compile time.
var _ hndigest.Sanitizer = (*Sanitizer)(nil)

// Sanitizer enforces an allowlist over extracted article HTML. The rewrite
// pass removes active content wholesale; this policy is what guarantees
// nothing outside the allowlist survives into the digest, whatever the
// extractor produced.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds the policy for article fragments: user-generated
// content elements plus the structural wrappers extractors tend to keep,
// with images restricted to http(s) and data sources.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "figure", "figcaption", "span", "div")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowDataURIImages()
	p.RequireNoFollowOnLinks(true)
	return &Sanitizer{policy: p}
}

// Sanitize applies the policy to the fragment. baseURL is unused here;
// reference resolution happens in the rewrite pass.
func (s *Sanitizer) Sanitize(fragment string, _ string) (string, error) {
	return strings.TrimSpace(s.policy.Sanitize(fragment)), nil
}
