package pipeline

import (
	"context"

	"github.com/conceptreel/conceptreel/pkg/jobstore"
	"github.com/conceptreel/conceptreel/pkg/model"
)

// ResultSink writes a job's terminal outcome into the job store. It is
// the missing link between the event bus's two terminal topics
// (video.rendered, video.failed) and the gateway's polling endpoint; it
// has no OutputTopic since nothing downstream subscribes to it, so it is
// wired directly onto the bus rather than through the Stage list.
type ResultSink struct {
	store *jobstore.Store
}

// NewResultSink builds a ResultSink writing into store.
func NewResultSink(store *jobstore.Store) *ResultSink {
	return &ResultSink{store: store}
}

// StoreRendered records a successful render's result.
func (r *ResultSink) StoreRendered(ctx context.Context, jc *JobContext) error {
	r.store.Put(jc.Job.ID, model.JobResult{
		Status: model.JobStatusCompleted,
		Completed: &model.Completed{
			VideoURL:       jc.VideoURL,
			Code:           jc.GeneratedCode,
			UsedAI:         jc.UsedAI,
			Quality:        jc.Job.Quality,
			GenerationType: generationType(jc),
		},
	})
	return nil
}

// StoreFailed records a failed job's result.
func (r *ResultSink) StoreFailed(ctx context.Context, jc *JobContext) error {
	details := ""
	if jc.RenderTime > 0 {
		details = "render took " + jc.RenderTime.String()
	}
	errMsg := "unknown failure"
	if jc.Err != nil {
		errMsg = jc.Err.Error()
	}
	r.store.Put(jc.Job.ID, model.JobResult{
		Status: model.JobStatusFailed,
		Failed: &model.Failed{Error: errMsg, Details: details},
	})
	return nil
}

func generationType(jc *JobContext) string {
	if jc.UsedAI {
		return "ai"
	}
	return "template"
}
