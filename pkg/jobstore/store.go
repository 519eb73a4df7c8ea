// Package jobstore is the TTL-indexed in-memory map from job ID to
// terminal result. Grounded on the teacher's pkg/cleanup.Service
// (Start/Stop, ticker loop, context.CancelFunc, idempotent sweep) and
// pkg/config.RetentionConfig's defaults shape, reused here for
// TTL/SweepInterval instead of session-retention-days/event-TTL.
//
// The interface is kept narrow (Put, Get, sweep) per the spec's own design
// note: a production variant would swap in a durable key-value store at
// this seam.
package jobstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// DefaultTTL is how long a finished job's result is kept before the sweep
// removes it.
const DefaultTTL = time.Hour

// DefaultSweepInterval is how often the background sweep runs.
const DefaultSweepInterval = 5 * time.Minute

type entry struct {
	result    model.JobResult
	storedAt  time.Time
}

// Store is a mutex-guarded map of jobId -> JobResult with a periodic TTL
// sweep. Zero value is not usable; construct with New.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl           time.Duration
	sweepInterval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a Store with the given TTL and sweep interval. Zero values
// fall back to DefaultTTL / DefaultSweepInterval.
func New(ttl, sweepInterval time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &Store{
		entries:       make(map[string]entry),
		ttl:           ttl,
		sweepInterval: sweepInterval,
	}
}

// Put records the terminal result for jobID, overwriting any prior value.
func (s *Store) Put(jobID string, result model.JobResult) {
	result.Timestamp = time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jobID] = entry{result: result, storedAt: result.Timestamp}
}

// Get returns the stored result for jobID and whether it exists. Absence
// means the job is still generating (or was never submitted).
func (s *Store) Get(jobID string) (model.JobResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[jobID]
	return e.result, ok
}

// Len reports the number of entries currently held, for diagnostics/tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Start launches the background sweep loop. Safe to call once; repeat
// calls are no-ops.
func (s *Store) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("job store sweep started", "ttl", s.ttl, "interval", s.sweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Store) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("job store sweep stopped")
}

func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep removes entries older than the configured TTL.
func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	removed := 0
	for id, e := range s.entries {
		if e.storedAt.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	s.mu.Unlock()
	if removed > 0 {
		slog.Info("job store sweep removed expired entries", "count", removed)
	}
}
