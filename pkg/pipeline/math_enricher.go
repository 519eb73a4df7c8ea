package pipeline

import (
	"context"

	"github.com/conceptreel/conceptreel/pkg/mathlib"
	"github.com/conceptreel/conceptreel/pkg/model"
)

// MathEnricherStage wraps mathlib.Enricher as a pipeline Stage.
type MathEnricherStage struct {
	enricher *mathlib.Enricher
}

// NewMathEnricherStage builds a MathEnricherStage over enricher.
func NewMathEnricherStage(enricher *mathlib.Enricher) *MathEnricherStage {
	return &MathEnricherStage{enricher: enricher}
}

func (s *MathEnricherStage) Name() string       { return "math-enricher" }
func (s *MathEnricherStage) InputTopic() string  { return TopicPrerequisitesResolved }
func (s *MathEnricherStage) OutputTopic() string { return TopicMathEnriched }

func (s *MathEnricherStage) Run(ctx context.Context, jc *JobContext) error {
	quality := jc.Job.Quality
	if !jc.Job.UseSmartMode {
		// Smart mode off skips the optional provider enrichment call the
		// same way a low-quality job does — only the static library is
		// searched, matching the short-circuit-to-code-generation intent.
		quality = model.QualityLow
	}
	jc.Math = s.enricher.Enrich(ctx, jc.Job.Concept, quality, jc.Job.Style)
	return nil
}
