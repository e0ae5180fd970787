// Package llm abstracts the language-model backend used for filing
// summaries. The comparison narrative never goes through here; that text is
// template-generated and fully deterministic.
package llm

import (
	"context"
	"os"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// FromEnv picks a provider: Gemini when GEMINI_API_KEY is configured,
// otherwise the deterministic static provider.
func FromEnv(model string) Provider {
	if os.Getenv("GEMINI_API_KEY") != "" {
		return &GeminiProvider{Model: model}
	}
	return &StaticProvider{}
}

// StaticProvider answers every prompt with a fixed highlights payload so
// the summary endpoint works without API credentials.
type StaticProvider struct{}

var _ Provider = (*StaticProvider)(nil)

func (p *StaticProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return `{"highlights": [
		"Revenue up y/y; margins stable.",
		"Operating expenses disciplined; cash position solid.",
		"Risk factors materially unchanged vs prior year."
	]}`, nil
}
