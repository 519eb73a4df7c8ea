package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrAllProvidersFailed is wrapped with the underlying per-provider errors
// when every provider in the chain fails (or is blacklisted).
var ErrAllProvidersFailed = errors.New("providers: all providers failed")

// FallbackChain is an ordered provider list with per-provider failure
// accounting, process-wide and not persisted. Grounded on the teacher's
// LLMProviderRegistry/ChainRegistry mutex pattern and pkg/mcp/health.go's
// retry-then-reinit probing shape.
type FallbackChain struct {
	registry *Registry
	router   *Router

	mu           sync.Mutex
	order        []string
	failureCount map[string]int

	maxRetries   int
	retryDelay   time.Duration
}

// DefaultOrder is the chain's default provider order: [A, O, G, D].
var DefaultOrder = []string{NameAnthropic, NameOpenAI, NameGemini, NameOllama}

// NewFallbackChain builds a chain over registry with the given order
// (falls back to DefaultOrder when empty), maxRetries (default 3) and
// retryDelay (default 1s).
func NewFallbackChain(registry *Registry, order []string, maxRetries int, retryDelay time.Duration) *FallbackChain {
	if len(order) == 0 {
		order = append([]string(nil), DefaultOrder...)
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelay <= 0 {
		retryDelay = time.Second
	}
	return &FallbackChain{
		registry:     registry,
		order:        order,
		failureCount: make(map[string]int),
		maxRetries:   maxRetries,
		retryDelay:   retryDelay,
	}
}

// WithRouter attaches a Router the chain consults for task-specific
// ordering in ExecuteTask. A chain with no router (or calls made through
// the task-agnostic Execute) keeps using its own flat order.
func (c *FallbackChain) WithRouter(r *Router) *FallbackChain {
	c.router = r
	return c
}

// Execute runs fn against each provider in the chain in order, skipping any
// whose failureCount has reached maxRetries. The first success resets that
// provider's counter and returns immediately. A failing call increments the
// counter, records the error, sleeps retryDelay, and moves to the next
// provider; if ctx is done during that sleep, ctx's error is returned
// instead. If every provider fails, the returned error
// wraps ErrAllProvidersFailed with every underlying message.
func Execute[T any](ctx context.Context, c *FallbackChain, fn func(ctx context.Context, p Provider) (T, error)) (T, error) {
	return executeOrder(ctx, c, c.chainOrder(), fn)
}

// ExecuteTask is Execute scoped to one router task type: when the chain has
// a Router attached, the attempt order comes from the router's task ->
// provider-names table (spec.md §4.3) instead of the chain's flat order,
// while failure accounting and blacklisting stay chain-wide and persist
// across task types. With no router attached it behaves exactly like
// Execute.
func ExecuteTask[T any](ctx context.Context, c *FallbackChain, task TaskType, fn func(ctx context.Context, p Provider) (T, error)) (T, error) {
	return executeOrder(ctx, c, c.orderForTask(task), fn)
}

func (c *FallbackChain) orderForTask(task TaskType) []string {
	if c.router != nil {
		if order, ok := c.router.routing[task]; ok && len(order) > 0 {
			return append([]string(nil), order...)
		}
	}
	return c.chainOrder()
}

func executeOrder[T any](ctx context.Context, c *FallbackChain, order []string, fn func(ctx context.Context, p Provider) (T, error)) (T, error) {
	var zero T
	var errs []string

	for _, name := range order {
		if c.isBlacklisted(name) {
			continue
		}
		p, err := c.registry.Get(name)
		if err != nil || !p.IsAvailable() {
			continue
		}

		result, err := fn(ctx, p)
		if err == nil {
			c.reset(name)
			return result, nil
		}

		c.recordFailure(name)
		errs = append(errs, fmt.Sprintf("%s: %v", name, err))

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}

	if len(errs) == 0 {
		return zero, ErrAllProvidersFailed
	}
	return zero, fmt.Errorf("%w: %s", ErrAllProvidersFailed, strings.Join(errs, "; "))
}

func (c *FallbackChain) chainOrder() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

func (c *FallbackChain) isBlacklisted(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failureCount[name] >= c.maxRetries
}

func (c *FallbackChain) recordFailure(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failureCount[name]++
}

// Reset clears the failure counter for one provider — the federation's
// documented escape hatch from a permanent blacklist (spec.md §9's first
// open question: no automatic reset exists, and nothing in this module
// calls Reset or ResetAll on its own; a recovered provider stays skipped
// until a caller resets it explicitly).
func (c *FallbackChain) Reset(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.failureCount, name)
}

func (c *FallbackChain) reset(name string) { c.Reset(name) }

// ResetAll clears every provider's failure counter.
func (c *FallbackChain) ResetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failureCount = make(map[string]int)
}

// FailureCount reports a provider's current failure count, for tests and
// diagnostics.
func (c *FallbackChain) FailureCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failureCount[name]
}
