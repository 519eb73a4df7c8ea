package pipeline

import (
	"context"

	"github.com/conceptreel/conceptreel/pkg/visual"
)

// VisualDesignerStage wraps visual.Designer as a pipeline Stage.
type VisualDesignerStage struct {
	designer *visual.Designer
}

// NewVisualDesignerStage builds a VisualDesignerStage over designer.
func NewVisualDesignerStage(designer *visual.Designer) *VisualDesignerStage {
	return &VisualDesignerStage{designer: designer}
}

func (s *VisualDesignerStage) Name() string       { return "visual-designer" }
func (s *VisualDesignerStage) InputTopic() string  { return TopicMathEnriched }
func (s *VisualDesignerStage) OutputTopic() string { return TopicVisualDesigned }

func (s *VisualDesignerStage) Run(ctx context.Context, jc *JobContext) error {
	jc.Design = s.designer.Design(jc.Job.Concept, jc.Tree, jc.Math, jc.Job.Style)
	return nil
}
