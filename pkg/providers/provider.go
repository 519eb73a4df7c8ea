// Package providers implements the LLM provider federation: a capability
// interface, four concrete adapters (Anthropic, OpenAI, Gemini, Ollama), a
// task-based router, and an ordered fallback chain with per-provider
// failure accounting. Grounded on the teacher's
// LLMProviderRegistry/ChainRegistry thread-safe map-with-mutex pattern
// (pkg/config/llm.go, pkg/config/chain.go) and pkg/mcp/health.go's
// retry-then-reinit probing shape for HealthCheck. Avoids any
// global-singleton pattern per spec.md §9 — the registry is threaded
// explicitly through Router and FallbackChain.
package providers

import (
	"context"
	"errors"
)

// Capability is one thing a provider can do.
type Capability string

const (
	CapabilityCodeGeneration Capability = "code_generation"
	CapabilityIntentAnalysis Capability = "intent_analysis"
	CapabilityMathEnrichment Capability = "math_enrichment"
	CapabilityVision         Capability = "vision"
	CapabilityStreaming      Capability = "streaming"
	CapabilityFunctionCall   Capability = "function_calling"
)

// TaskType names one of the router's four task buckets.
type TaskType string

const (
	TaskCodeGeneration TaskType = "code_generation"
	TaskIntentAnalysis TaskType = "intent_analysis"
	TaskMathEnrichment TaskType = "math_enrichment"
	TaskCreative       TaskType = "creative"
)

// IntentResult is the structured output of AnalyzeIntent.
type IntentResult struct {
	Intent     string
	Confidence float64
	Entities   map[string][]string
	SkillTag   string
}

// MathSuggestions is the structured output of EnrichMath: raw suggestions
// the math enricher merges with the static library's results.
type MathSuggestions struct {
	Equations      []string
	Theorems       []string
	Definitions    []string
	Visualizations []string
}

// ErrProviderUnavailable is returned by adapters whose IsAvailable() is
// false when called anyway (defensive — callers should check first).
var ErrProviderUnavailable = errors.New("providers: provider unavailable")

// ErrNoMainScene signals the code generator's post-processing failure:
// the returned code never defines a MainScene class.
var ErrNoMainScene = errors.New("providers: generated code has no MainScene")

// Provider is the uniform interface every LLM adapter implements.
type Provider interface {
	Name() string
	DisplayName() string
	Capabilities() []Capability
	IsAvailable() bool
	GenerateCode(ctx context.Context, prompt string) (string, error)
	AnalyzeIntent(ctx context.Context, text string) (IntentResult, error)
	EnrichMath(ctx context.Context, concept string) (MathSuggestions, error)
	HealthCheck(ctx context.Context) error
}

// HasCapability reports whether p declares cap among its capabilities.
func HasCapability(p Provider, cap Capability) bool {
	for _, c := range p.Capabilities() {
		if c == cap {
			return true
		}
	}
	return false
}
