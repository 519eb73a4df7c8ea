package pipeline

import (
	"context"
	"fmt"

	"github.com/conceptreel/conceptreel/pkg/narrative"
)

// NarrativeComposerStage wraps narrative.Composer as a pipeline Stage.
type NarrativeComposerStage struct {
	composer *narrative.Composer
}

// NewNarrativeComposerStage builds a NarrativeComposerStage over composer.
func NewNarrativeComposerStage(composer *narrative.Composer) *NarrativeComposerStage {
	return &NarrativeComposerStage{composer: composer}
}

func (s *NarrativeComposerStage) Name() string       { return "narrative-composer" }
func (s *NarrativeComposerStage) InputTopic() string  { return TopicVisualDesigned }
func (s *NarrativeComposerStage) OutputTopic() string { return TopicNarrativeComposed }

func (s *NarrativeComposerStage) Run(ctx context.Context, jc *JobContext) error {
	objectives := learningObjectives(jc)
	jc.Narrative = s.composer.Compose(jc.Job.Concept, jc.Tree, jc.Math, jc.Design, objectives)
	return nil
}

// learningObjectives derives a short objective list from the concept and
// its direct prerequisites — not specified as its own algorithm, so we
// keep it simple and deterministic.
func learningObjectives(jc *JobContext) []string {
	objectives := []string{fmt.Sprintf("Understand %s", jc.Job.Concept)}
	for _, p := range jc.Tree.Root.Prerequisites {
		objectives = append(objectives, fmt.Sprintf("Recognize how %s relates to %s", p.Concept, jc.Job.Concept))
	}
	return objectives
}
