package pipeline

import (
	"context"

	"github.com/conceptreel/conceptreel/pkg/providers"
)

// ConceptAnalyzer classifies the raw concept string into an intent and
// extracts entity sets via provider federation's intent_analysis task.
// On total provider failure it emits a CREATE_SCENE fallback rather than
// failing the job — classification is advisory, not load-bearing.
type ConceptAnalyzer struct {
	chain *providers.FallbackChain
}

// NewConceptAnalyzer builds a ConceptAnalyzer over chain.
func NewConceptAnalyzer(chain *providers.FallbackChain) *ConceptAnalyzer {
	return &ConceptAnalyzer{chain: chain}
}

func (a *ConceptAnalyzer) Name() string        { return "concept-analyzer" }
func (a *ConceptAnalyzer) InputTopic() string   { return TopicConceptSubmitted }
func (a *ConceptAnalyzer) OutputTopic() string  { return TopicConceptAnalyzed }

func (a *ConceptAnalyzer) Run(ctx context.Context, jc *JobContext) error {
	result, err := providers.AnalyzeIntent(ctx, a.chain, jc.Job.Concept)
	if err != nil {
		result = providers.IntentResult{Intent: "CREATE_SCENE", Confidence: 0.5}
	}
	jc.Intent = result
	return nil
}
