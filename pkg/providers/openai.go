package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider adapts the OpenAI Chat Completions API to the Provider
// interface. The teacher's own tree references `sashabaranov/go-openai`
// (not declared in its go.mod); since the pack's only real, go.mod-declared
// OpenAI dependency is `github.com/openai/openai-go` (goadesign-goa-ai's
// go.mod), this adapter is built directly on that SDK's own client shape.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.ChatModelGPT4o
	}
	if apiKey == "" {
		return &OpenAIProvider{model: model}
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{client: &c, model: model}
}

func (p *OpenAIProvider) Name() string        { return "openai" }
func (p *OpenAIProvider) DisplayName() string { return "OpenAI GPT" }

func (p *OpenAIProvider) Capabilities() []Capability {
	return []Capability{CapabilityCodeGeneration, CapabilityIntentAnalysis, CapabilityFunctionCall, CapabilityStreaming}
}

func (p *OpenAIProvider) IsAvailable() bool { return p.client != nil }

func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	if !p.IsAvailable() {
		return "", ErrProviderUnavailable
	}
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, prompt)
}

func (p *OpenAIProvider) AnalyzeIntent(ctx context.Context, text string) (IntentResult, error) {
	out, err := p.complete(ctx, intentPrompt(text))
	if err != nil {
		return IntentResult{}, err
	}
	return parseIntentResult(out), nil
}

func (p *OpenAIProvider) EnrichMath(ctx context.Context, concept string) (MathSuggestions, error) {
	out, err := p.complete(ctx, mathPrompt(concept))
	if err != nil {
		return MathSuggestions{}, err
	}
	return parseMathSuggestions(out), nil
}

func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	if !p.IsAvailable() {
		return ErrProviderUnavailable
	}
	_, err := p.complete(ctx, "ping")
	return err
}
