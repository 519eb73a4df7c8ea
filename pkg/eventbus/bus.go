// Package eventbus is the in-process publish/subscribe router the pipeline
// agents run on. Handlers execute on a fixed-size worker pool (grounded on
// the teacher's pkg/queue.WorkerPool/Worker shape: goroutines draining a
// channel, Start/Stop lifecycle, sync.WaitGroup), while a per-jobId
// sequential lane guarantees each subscriber sees a job's events in
// publish order even though the pool itself runs many jobs concurrently —
// adapted from the teacher's per-session single-worker claim invariant
// (pollAndProcess) to an in-memory keyed dispatch instead of a DB claim.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// ErrClosed is returned by Publish once the bus has been shut down.
var ErrClosed = errors.New("eventbus: closed")

// Handler processes one event for one topic. A returned error is logged
// and does not interrupt delivery to sibling subscribers.
type Handler func(ctx context.Context, evt model.Event) error

// Bus is an in-process topic router with per-jobId ordering and a bounded
// worker pool across jobs.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler

	sem chan struct{}

	lanesMu sync.Mutex
	lanes   map[string]*lane

	closeOnce sync.Once
	closed    chan struct{}
	wg        sync.WaitGroup
}

type lane struct {
	tasks chan task
}

type task struct {
	handler Handler
	evt     model.Event
}

// New builds a Bus whose handlers run on a pool of workers workers wide.
// workers is clamped to at least 1.
func New(workers int) *Bus {
	if workers < 1 {
		workers = 1
	}
	return &Bus{
		subs:   make(map[string][]Handler),
		sem:    make(chan struct{}, workers),
		lanes:  make(map[string]*lane),
		closed: make(chan struct{}),
	}
}

// Subscribe registers h to run for every event published on topic.
// Subscriptions must be established before Publish is called for that
// topic; Subscribe is not safe to call concurrently with Publish for the
// same topic (mirrors the teacher's wiring-time-only registration).
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish builds an Event and schedules it onto every subscriber of topic.
// It returns once each handler invocation has been scheduled on the
// job's lane, not once handlers have finished running — delivery is
// synchronous from the publisher's perspective, execution is async.
func (b *Bus) Publish(ctx context.Context, jobID, topic string, payload any) error {
	select {
	case <-b.closed:
		return ErrClosed
	default:
	}

	b.mu.RLock()
	handlers := append([]Handler(nil), b.subs[topic]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	evt := model.Event{
		Topic:     topic,
		JobID:     jobID,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	ln := b.laneFor(jobID)
	for _, h := range handlers {
		select {
		case ln.tasks <- task{handler: h, evt: evt}:
		case <-b.closed:
			return ErrClosed
		}
	}
	return nil
}

// laneFor returns the per-jobId dispatch lane, creating and starting its
// drain goroutine on first use.
func (b *Bus) laneFor(jobID string) *lane {
	b.lanesMu.Lock()
	defer b.lanesMu.Unlock()

	if ln, ok := b.lanes[jobID]; ok {
		return ln
	}
	ln := &lane{tasks: make(chan task, 64)}
	b.lanes[jobID] = ln
	b.wg.Add(1)
	go b.drain(ln)
	return ln
}

// drain runs one lane's tasks strictly in order, one at a time, bounding
// overall cross-lane concurrency via the shared semaphore.
func (b *Bus) drain(ln *lane) {
	defer b.wg.Done()
	for t := range ln.tasks {
		b.sem <- struct{}{}
		b.runHandler(t)
		<-b.sem
	}
}

// runHandler invokes a handler with panic recovery, logging the failure
// and letting sibling subscribers proceed — grounded on BaseAgent.Execute's
// nil/error normalization in the teacher.
func (b *Bus) runHandler(t task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("eventbus: handler panicked",
				"topic", t.evt.Topic, "job_id", t.evt.JobID,
				"panic", r, "stack", string(debug.Stack()))
		}
	}()

	if err := t.handler(context.Background(), t.evt); err != nil {
		slog.Error("eventbus: handler failed",
			"topic", t.evt.Topic, "job_id", t.evt.JobID, "error", err)
	}
}

// Close stops accepting new publishes and waits for in-flight lanes to
// drain their already-scheduled tasks before returning.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.closed)
		b.lanesMu.Lock()
		for _, ln := range b.lanes {
			close(ln.tasks)
		}
		b.lanesMu.Unlock()
	})
	b.wg.Wait()
}
