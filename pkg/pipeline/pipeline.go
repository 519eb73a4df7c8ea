package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conceptreel/conceptreel/pkg/eventbus"
	"github.com/conceptreel/conceptreel/pkg/model"
)

// Renderer is the subset of renderer-dispatch behavior the pipeline
// needs, kept narrow so this package doesn't import pkg/renderer's full
// surface (process supervision, env probing) just to publish an event.
type Renderer interface {
	Render(ctx context.Context, jc *JobContext) error
}

// Pipeline wires every stage plus renderer dispatch and result storage
// onto an event bus at construction, asserting exactly one publisher per
// topic (a programmer error otherwise, so it panics at wiring time
// rather than risk two stages racing to publish the same topic at
// runtime).
type Pipeline struct {
	bus *eventbus.Bus
}

// New builds and wires a Pipeline. renderer and sink may be nil during
// incremental construction/testing; a nil renderer makes the
// narrative->video step a no-op that publishes nothing.
func New(bus *eventbus.Bus, stages []Stage, renderer Renderer, sink *ResultSink) *Pipeline {
	p := &Pipeline{bus: bus}

	published := map[string]bool{}
	assertUnpublished := func(topic, owner string) {
		if published[topic] {
			panic(fmt.Sprintf("pipeline: topic %q already has a publisher, cannot wire %s", topic, owner))
		}
		published[topic] = true
	}

	for _, stage := range stages {
		assertUnpublished(stage.OutputTopic(), stage.Name())
		p.wireStage(stage)
	}

	if renderer != nil {
		assertUnpublished(TopicVideoRendered, "renderer-dispatch")
		assertUnpublished(TopicVideoFailed, "renderer-dispatch")
		p.wireRenderer(renderer)
	}

	if sink != nil {
		p.wireSink(sink)
	}

	return p
}

func (p *Pipeline) wireStage(stage Stage) {
	p.bus.Subscribe(stage.InputTopic(), func(ctx context.Context, evt model.Event) error {
		jc, ok := evt.Payload.(*JobContext)
		if !ok {
			return fmt.Errorf("pipeline: stage %s received payload of unexpected type %T", stage.Name(), evt.Payload)
		}
		if err := stage.Run(ctx, jc); err != nil {
			jc.Err = err
			slog.Error("pipeline stage failed", "stage", stage.Name(), "job_id", jc.Job.ID, "error", err)
			return p.bus.Publish(ctx, jc.Job.ID, TopicVideoFailed, jc)
		}
		return p.bus.Publish(ctx, jc.Job.ID, stage.OutputTopic(), jc)
	})
}

func (p *Pipeline) wireRenderer(renderer Renderer) {
	p.bus.Subscribe(TopicCodeGenerated, func(ctx context.Context, evt model.Event) error {
		jc, ok := evt.Payload.(*JobContext)
		if !ok {
			return fmt.Errorf("pipeline: renderer-dispatch received payload of unexpected type %T", evt.Payload)
		}
		if err := renderer.Render(ctx, jc); err != nil {
			jc.Err = err
			slog.Error("render failed", "job_id", jc.Job.ID, "error", err)
			return p.bus.Publish(ctx, jc.Job.ID, TopicVideoFailed, jc)
		}
		return p.bus.Publish(ctx, jc.Job.ID, TopicVideoRendered, jc)
	})
}

func (p *Pipeline) wireSink(sink *ResultSink) {
	p.bus.Subscribe(TopicVideoRendered, func(ctx context.Context, evt model.Event) error {
		jc, ok := evt.Payload.(*JobContext)
		if !ok {
			return fmt.Errorf("pipeline: result-sink received payload of unexpected type %T", evt.Payload)
		}
		return sink.StoreRendered(ctx, jc)
	})
	p.bus.Subscribe(TopicVideoFailed, func(ctx context.Context, evt model.Event) error {
		jc, ok := evt.Payload.(*JobContext)
		if !ok {
			return fmt.Errorf("pipeline: result-sink received payload of unexpected type %T", evt.Payload)
		}
		return sink.StoreFailed(ctx, jc)
	})
}

// Submit publishes a freshly constructed JobContext onto the chain's
// first topic, kicking off the pipeline for one job.
func (p *Pipeline) Submit(ctx context.Context, jc *JobContext) error {
	return p.bus.Publish(ctx, jc.Job.ID, TopicConceptSubmitted, jc)
}
