// Package pipeline wires the six pedagogical-planning agents (plus
// renderer dispatch and result storage) onto the event bus as a strict
// topic chain, each stage a pure transformation of a shared JobContext.
package pipeline

import (
	"time"

	"github.com/conceptreel/conceptreel/pkg/model"
	"github.com/conceptreel/conceptreel/pkg/providers"
)

// JobContext accumulates everything a job's stages read and write as it
// flows through the pipeline. Stages never replace it — each mutates the
// fields it owns and passes the same pointer along.
type JobContext struct {
	Job model.Job

	Intent providers.IntentResult

	Tree model.KnowledgeTree
	Math model.MathEnrichment
	Design model.VisualDesign
	Narrative model.Narrative

	GeneratedCode string
	UsedAI        bool

	VideoURL   string
	RenderTime time.Duration

	Err error
}

// NewJobContext seeds a JobContext from a freshly submitted Job.
func NewJobContext(job model.Job) *JobContext {
	return &JobContext{Job: job}
}
