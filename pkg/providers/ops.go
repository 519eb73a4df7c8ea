package providers

import "context"

// GenerateCode runs GenerateCode(prompt) across the chain with fallback,
// ordered by the router's code_generation routing when one is attached.
func GenerateCode(ctx context.Context, c *FallbackChain, prompt string) (string, error) {
	return ExecuteTask(ctx, c, TaskCodeGeneration, func(ctx context.Context, p Provider) (string, error) {
		return p.GenerateCode(ctx, prompt)
	})
}

// AnalyzeIntent runs AnalyzeIntent(text) across the chain with fallback,
// ordered by the router's intent_analysis routing when one is attached.
func AnalyzeIntent(ctx context.Context, c *FallbackChain, text string) (IntentResult, error) {
	return ExecuteTask(ctx, c, TaskIntentAnalysis, func(ctx context.Context, p Provider) (IntentResult, error) {
		return p.AnalyzeIntent(ctx, text)
	})
}

// EnrichMath runs EnrichMath(concept) across the chain with fallback,
// ordered by the router's math_enrichment routing when one is attached.
func EnrichMath(ctx context.Context, c *FallbackChain, concept string) (MathSuggestions, error) {
	return ExecuteTask(ctx, c, TaskMathEnrichment, func(ctx context.Context, p Provider) (MathSuggestions, error) {
		return p.EnrichMath(ctx, concept)
	})
}

// ExplorePrerequisites asks the chain to expand concept into 2-4
// prerequisite suggestions, reusing GenerateCode's free-text generation
// with a dedicated prompt rather than adding a fifth Provider method. Routed
// under the creative task.
func ExplorePrerequisites(ctx context.Context, c *FallbackChain, concept string) ([]PrerequisiteSuggestion, error) {
	return ExecuteTask(ctx, c, TaskCreative, func(ctx context.Context, p Provider) ([]PrerequisiteSuggestion, error) {
		raw, err := p.GenerateCode(ctx, prerequisitePrompt(concept))
		if err != nil {
			return nil, err
		}
		return parsePrerequisiteSuggestions(raw)
	})
}
