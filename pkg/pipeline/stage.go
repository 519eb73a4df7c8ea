package pipeline

import "context"

// Topic names the event bus topics in chain order.
const (
	TopicConceptSubmitted      = "concept.submitted"
	TopicConceptAnalyzed       = "concept.analyzed"
	TopicPrerequisitesResolved = "prerequisites.resolved"
	TopicMathEnriched          = "math.enriched"
	TopicVisualDesigned        = "visual.designed"
	TopicNarrativeComposed     = "narrative.composed"
	TopicCodeGenerated         = "code.generated"
	TopicVideoRendered         = "video.rendered"
	TopicVideoFailed           = "video.failed"
)

// Stage is one pure (input -> output) pipeline transformation, subscribed
// to InputTopic and publishing to OutputTopic on success.
type Stage interface {
	Name() string
	InputTopic() string
	OutputTopic() string
	Run(ctx context.Context, jc *JobContext) error
}
