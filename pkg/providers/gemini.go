package providers

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider adapts Google's Gemini API to the Provider interface.
// Grounded on kadirpekel-hector's pkg/model/gemini/gemini.go
// (genai.NewClient, Models.GenerateContent, genai.Content/Part shapes).
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds an adapter. Client construction failure (bad
// key format etc.) degrades to an unavailable provider rather than a
// panic, consistent with the federation treating missing/broken
// credentials as "not available" rather than fatal.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if apiKey == "" {
		return &GeminiProvider{model: model}
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return &GeminiProvider{model: model}
	}
	return &GeminiProvider{client: client, model: model}
}

func (p *GeminiProvider) Name() string        { return "gemini" }
func (p *GeminiProvider) DisplayName() string { return "Google Gemini" }

func (p *GeminiProvider) Capabilities() []Capability {
	return []Capability{CapabilityMathEnrichment, CapabilityIntentAnalysis, CapabilityVision}
}

func (p *GeminiProvider) IsAvailable() bool { return p.client != nil }

func (p *GeminiProvider) complete(ctx context.Context, prompt string) (string, error) {
	if !p.IsAvailable() {
		return "", ErrProviderUnavailable
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out, nil
}

func (p *GeminiProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, prompt)
}

func (p *GeminiProvider) AnalyzeIntent(ctx context.Context, text string) (IntentResult, error) {
	out, err := p.complete(ctx, intentPrompt(text))
	if err != nil {
		return IntentResult{}, err
	}
	return parseIntentResult(out), nil
}

func (p *GeminiProvider) EnrichMath(ctx context.Context, concept string) (MathSuggestions, error) {
	out, err := p.complete(ctx, mathPrompt(concept))
	if err != nil {
		return MathSuggestions{}, err
	}
	return parseMathSuggestions(out), nil
}

func (p *GeminiProvider) HealthCheck(ctx context.Context) error {
	if !p.IsAvailable() {
		return ErrProviderUnavailable
	}
	_, err := p.complete(ctx, "ping")
	return err
}
