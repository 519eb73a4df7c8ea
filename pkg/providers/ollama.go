package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OllamaProvider is the federation's local-first ("D") slot: a plain
// net/http client against the Ollama REST API. Grounded on the teacher's
// buildHTTPClient/bearerTokenTransport pattern in pkg/mcp/transport.go —
// a configurable http.Client with a timeout, reused here instead of a
// dedicated SDK (Ollama has none in the pack).
type OllamaProvider struct {
	client  *http.Client
	baseURL string
	model   string
}

// NewOllamaProvider builds an adapter. An empty baseURL disables the
// provider (IsAvailable() == false) rather than defaulting silently — the
// federation always has at least the other three providers to fall back
// on when Ollama isn't configured.
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if model == "" {
		model = "llama3"
	}
	if baseURL == "" {
		return &OllamaProvider{model: model}
	}
	return &OllamaProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		model:   model,
	}
}

func (p *OllamaProvider) Name() string        { return "ollama" }
func (p *OllamaProvider) DisplayName() string { return "Ollama (local)" }

func (p *OllamaProvider) Capabilities() []Capability {
	return []Capability{CapabilityCodeGeneration, CapabilityMathEnrichment}
}

func (p *OllamaProvider) IsAvailable() bool { return p.client != nil }

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (p *OllamaProvider) complete(ctx context.Context, prompt string) (string, error) {
	if !p.IsAvailable() {
		return "", ErrProviderUnavailable
	}
	body, err := json.Marshal(ollamaGenerateRequest{Model: p.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("ollama: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: unexpected status %d", resp.StatusCode)
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	return out.Response, nil
}

func (p *OllamaProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, prompt)
}

func (p *OllamaProvider) AnalyzeIntent(ctx context.Context, text string) (IntentResult, error) {
	out, err := p.complete(ctx, intentPrompt(text))
	if err != nil {
		return IntentResult{}, err
	}
	return parseIntentResult(out), nil
}

func (p *OllamaProvider) EnrichMath(ctx context.Context, concept string) (MathSuggestions, error) {
	out, err := p.complete(ctx, mathPrompt(concept))
	if err != nil {
		return MathSuggestions{}, err
	}
	return parseMathSuggestions(out), nil
}

func (p *OllamaProvider) HealthCheck(ctx context.Context) error {
	if !p.IsAvailable() {
		return ErrProviderUnavailable
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("ollama: build health request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama: health check status %d", resp.StatusCode)
	}
	return nil
}
