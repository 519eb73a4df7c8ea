package pipeline

import (
	"context"

	"github.com/conceptreel/conceptreel/pkg/knowledge"
	"github.com/conceptreel/conceptreel/pkg/providers"
)

// PrerequisiteExplorer builds the bounded-depth prerequisite tree for the
// job's concept, delegating per-node expansion to provider federation
// with a built-in rule-table fallback (pkg/knowledge owns that logic).
type PrerequisiteExplorer struct {
	chain *providers.FallbackChain
}

// NewPrerequisiteExplorer builds a PrerequisiteExplorer over chain.
func NewPrerequisiteExplorer(chain *providers.FallbackChain) *PrerequisiteExplorer {
	return &PrerequisiteExplorer{chain: chain}
}

func (e *PrerequisiteExplorer) Name() string       { return "prerequisite-explorer" }
func (e *PrerequisiteExplorer) InputTopic() string  { return TopicConceptAnalyzed }
func (e *PrerequisiteExplorer) OutputTopic() string { return TopicPrerequisitesResolved }

func (e *PrerequisiteExplorer) Run(ctx context.Context, jc *JobContext) error {
	explore := func(ctx context.Context, concept string) ([]knowledge.Suggestion, error) {
		suggestions, err := providers.ExplorePrerequisites(ctx, e.chain, concept)
		if err != nil {
			return nil, err
		}
		out := make([]knowledge.Suggestion, 0, len(suggestions))
		for _, s := range suggestions {
			out = append(out, knowledge.Suggestion{
				Concept:          s.Concept,
				Description:      s.Description,
				FundamentalScore: s.FundamentalScore,
				ExplanationTime:  s.ExplanationTime,
			})
		}
		return out, nil
	}
	if !jc.Job.UseSmartMode {
		// Smart mode off short-circuits the pipeline toward code generation
		// only: no prerequisite expansion call is made, so explore reports
		// zero suggestions (a successful call, not a failure, so the rule
		// table fallback never triggers either) and the tree is just the
		// concept's own root node.
		explore = func(context.Context, string) ([]knowledge.Suggestion, error) { return nil, nil }
	}

	jc.Tree = knowledge.Build(ctx, jc.Job.Concept, explore)
	return nil
}
