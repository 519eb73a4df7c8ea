package mathlib

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/providers"
)

func TestEnrichFindsStaticLibraryMatches(t *testing.T) {
	e := NewEnricher(nil)
	out := e.Enrich(context.Background(), "derivative", model.QualityLow, model.StyleThreeBlueOneBrown)

	require.NotEmpty(t, out.Equations)
	assert.Equal(t, "eq.derivative.limit-def", out.Equations[0].ID)
	require.NotEmpty(t, out.Visualizations)
	assert.Equal(t, "Tangent line sweep", out.Visualizations[0].Name)
}

// countingProvider records EnrichMath calls so a test can tell whether
// the enricher reached the provider federation.
type countingProvider struct{ calls int }

func (p *countingProvider) Name() string                         { return providers.NameGemini }
func (p *countingProvider) DisplayName() string                  { return "counting" }
func (p *countingProvider) Capabilities() []providers.Capability { return nil }
func (p *countingProvider) IsAvailable() bool                    { return true }
func (p *countingProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	return "", nil
}
func (p *countingProvider) AnalyzeIntent(ctx context.Context, text string) (providers.IntentResult, error) {
	return providers.IntentResult{}, nil
}
func (p *countingProvider) EnrichMath(ctx context.Context, concept string) (providers.MathSuggestions, error) {
	p.calls++
	return providers.MathSuggestions{}, nil
}
func (p *countingProvider) HealthCheck(ctx context.Context) error { return nil }

func TestEnrichSkipsProviderCallOnLowQuality(t *testing.T) {
	spy := &countingProvider{}
	chain := providers.NewFallbackChain(providers.NewRegistry(spy), []string{providers.NameGemini}, 3, time.Millisecond)
	e := NewEnricher(chain)
	out := e.Enrich(context.Background(), "derivative", model.QualityLow, model.StyleDark)
	assert.NotEmpty(t, out.Equations)
	assert.Zero(t, spy.calls)
}

func TestEnrichAssignsRoundRobinColorCoding(t *testing.T) {
	e := NewEnricher(nil)
	out := e.Enrich(context.Background(), "pythagorean", model.QualityMedium, model.StyleMinimal)

	require.NotEmpty(t, out.ColorCoding)
	for _, eq := range out.Equations {
		for _, v := range eq.Variables {
			assert.Contains(t, out.ColorCoding, v)
		}
	}
}

func TestEnrichTruncatesToCaps(t *testing.T) {
	e := NewEnricher(nil)
	out := e.Enrich(context.Background(), "calculus", model.QualityLow, model.StyleVibrant)
	assert.LessOrEqual(t, len(out.Equations), model.MaxEquations)
	assert.LessOrEqual(t, len(out.Theorems), model.MaxTheorems)
	assert.LessOrEqual(t, len(out.Definitions), model.MaxDefinitions)
	assert.LessOrEqual(t, len(out.Visualizations), model.MaxVisualizations)
}

func TestEnrichNoMatchReturnsEmpty(t *testing.T) {
	e := NewEnricher(nil)
	out := e.Enrich(context.Background(), "xyzzy-nonexistent-concept", model.QualityLow, model.StyleAcademic)
	assert.Empty(t, out.Equations)
	assert.Empty(t, out.Theorems)
	assert.Empty(t, out.Definitions)
}
