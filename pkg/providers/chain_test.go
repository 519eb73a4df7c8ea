package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name      string
	available bool
	fail      bool
}

func (f *fakeProvider) Name() string        { return f.name }
func (f *fakeProvider) DisplayName() string { return f.name }
func (f *fakeProvider) Capabilities() []Capability {
	return []Capability{CapabilityCodeGeneration}
}
func (f *fakeProvider) IsAvailable() bool { return f.available }
func (f *fakeProvider) GenerateCode(ctx context.Context, prompt string) (string, error) {
	if f.fail {
		return "", errors.New("boom")
	}
	return "code from " + f.name, nil
}
func (f *fakeProvider) AnalyzeIntent(ctx context.Context, text string) (IntentResult, error) {
	return IntentResult{}, nil
}
func (f *fakeProvider) EnrichMath(ctx context.Context, concept string) (MathSuggestions, error) {
	return MathSuggestions{}, nil
}
func (f *fakeProvider) HealthCheck(ctx context.Context) error { return nil }

func TestFallbackChainFirstSuccessWins(t *testing.T) {
	a := &fakeProvider{name: NameAnthropic, available: true, fail: true}
	o := &fakeProvider{name: NameOpenAI, available: true, fail: false}
	reg := NewRegistry(a, o)
	chain := NewFallbackChain(reg, []string{NameAnthropic, NameOpenAI}, 3, time.Millisecond)

	out, err := GenerateCode(context.Background(), chain, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "code from openai", out)
	assert.Equal(t, 1, chain.FailureCount(NameAnthropic))
}

func TestFallbackChainBlacklistsAfterMaxRetries(t *testing.T) {
	a := &fakeProvider{name: NameAnthropic, available: true, fail: true}
	reg := NewRegistry(a)
	chain := NewFallbackChain(reg, []string{NameAnthropic}, 2, time.Millisecond)

	for i := 0; i < 2; i++ {
		_, err := GenerateCode(context.Background(), chain, "x")
		require.Error(t, err)
	}
	assert.Equal(t, 2, chain.FailureCount(NameAnthropic))

	// Third call should skip the blacklisted provider entirely and report
	// ErrAllProvidersFailed with no further increment.
	_, err := GenerateCode(context.Background(), chain, "x")
	require.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Equal(t, 2, chain.FailureCount(NameAnthropic))
}

func TestFallbackChainResetUnblocksProvider(t *testing.T) {
	a := &fakeProvider{name: NameAnthropic, available: true, fail: true}
	reg := NewRegistry(a)
	chain := NewFallbackChain(reg, []string{NameAnthropic}, 1, time.Millisecond)

	_, err := GenerateCode(context.Background(), chain, "x")
	require.Error(t, err)
	assert.Equal(t, 1, chain.FailureCount(NameAnthropic))

	chain.Reset(NameAnthropic)
	assert.Equal(t, 0, chain.FailureCount(NameAnthropic))

	a.fail = false
	out, err := GenerateCode(context.Background(), chain, "x")
	require.NoError(t, err)
	assert.Equal(t, "code from anthropic", out)
}

func TestRouterFallsBackToAnyAvailable(t *testing.T) {
	g := &fakeProvider{name: NameGemini, available: false}
	d := &fakeProvider{name: NameOllama, available: true}
	reg := NewRegistry(g, d)
	router := NewRouter(reg)

	p := router.GetProvider(TaskCreative) // routing prefers A/O, neither registered; ollama is not in the list
	require.NotNil(t, p)
	assert.Equal(t, NameOllama, p.Name())
}

func TestRouterReturnsNilWhenNoneAvailable(t *testing.T) {
	a := &fakeProvider{name: NameAnthropic, available: false}
	reg := NewRegistry(a)
	router := NewRouter(reg)
	assert.Nil(t, router.GetProvider(TaskCodeGeneration))
}

func TestChainWithRouterUsesTaskOrdering(t *testing.T) {
	// math_enrichment routes gemini first; code_generation never lists it,
	// so GenerateCode should skip straight past it to anthropic.
	g := &fakeProvider{name: NameGemini, available: true, fail: false}
	a := &fakeProvider{name: NameAnthropic, available: true, fail: false}
	reg := NewRegistry(g, a)
	router := NewRouter(reg)
	chain := NewFallbackChain(reg, []string{NameGemini, NameAnthropic}, 3, time.Millisecond).WithRouter(router)

	out, err := GenerateCode(context.Background(), chain, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "code from anthropic", out)
}

func TestRouterPreferLocalFirstReordersEveryTask(t *testing.T) {
	reg := NewRegistry()
	router := NewRouter(reg).PreferLocalFirst()

	for _, task := range []TaskType{TaskCodeGeneration, TaskIntentAnalysis, TaskMathEnrichment} {
		assert.Equal(t, NameOllama, router.routing[task][0], "task %s", task)
	}
}
