package providers

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider adapts Anthropic's Claude Messages API to the Provider
// interface. Grounded on goa-ai's features/model/anthropic/client.go
// (sdk.NewClient, MessageNewParams, NewUserMessage/NewTextBlock).
type AnthropicProvider struct {
	client *sdk.Client
	model  string
}

// NewAnthropicProvider builds an adapter from an API key and model name.
// apiKey == "" means the provider reports IsAvailable() == false rather
// than erroring, matching the federation's "treat missing credentials as
// unavailable, not fatal" design.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	if apiKey == "" {
		return &AnthropicProvider{model: model}
	}
	c := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: &c, model: model}
}

func (p *AnthropicProvider) Name() string        { return "anthropic" }
func (p *AnthropicProvider) DisplayName() string { return "Anthropic Claude" }

func (p *AnthropicProvider) Capabilities() []Capability {
	return []Capability{CapabilityCodeGeneration, CapabilityIntentAnalysis, CapabilityMathEnrichment, CapabilityFunctionCall}
}

func (p *AnthropicProvider) IsAvailable() bool { return p.client != nil }

func (p *AnthropicProvider) complete(ctx context.Context, prompt string) (string, error) {
	if !p.IsAvailable() {
		return "", ErrProviderUnavailable
	}
	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: 4096,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: messages.new: %w", err)
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}

func (p *AnthropicProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, prompt)
}

func (p *AnthropicProvider) AnalyzeIntent(ctx context.Context, text string) (IntentResult, error) {
	out, err := p.complete(ctx, intentPrompt(text))
	if err != nil {
		return IntentResult{}, err
	}
	return parseIntentResult(out), nil
}

func (p *AnthropicProvider) EnrichMath(ctx context.Context, concept string) (MathSuggestions, error) {
	out, err := p.complete(ctx, mathPrompt(concept))
	if err != nil {
		return MathSuggestions{}, err
	}
	return parseMathSuggestions(out), nil
}

func (p *AnthropicProvider) HealthCheck(ctx context.Context) error {
	if !p.IsAvailable() {
		return ErrProviderUnavailable
	}
	_, err := p.complete(ctx, "ping")
	return err
}
