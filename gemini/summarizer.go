// Package gemini produces article ledes using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// maxContentBytes caps how much article text is sent per request. The
// opening of an article is enough to write a lede.
const maxContentBytes = 24000

// Ensure Summarizer implements hndigest.Summarizer at compile time.
var _ hndigest.Summarizer = (*Summarizer)(nil)

// Summarizer implements hndigest.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize produces a one-sentence plain-text lede for an article.
func (s *Summarizer) Summarize(ctx context.Context, title string, content string) (string, error) {
	if content == "" {
		return "", hndigest.Errorf(hndigest.EINVALID, "content required")
	}

	prompt := BuildUserPrompt(title, content)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", hndigest.Errorf(hndigest.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for summary calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write ledes for a daily news digest. Reply with a single plain sentence of at most 30 words describing what the article is about. No markdown, no preamble.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the summary prompt containing the article.
// Content beyond the size cap is dropped.
func BuildUserPrompt(title string, content string) string {
	if len(content) > maxContentBytes {
		content = content[:maxContentBytes]
	}
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</article>\n\n")
	sb.WriteString("Write the one-sentence lede for this article.")
	return sb.String()
}
