// Package health provides a thread-safe registry of health checkers. The
// todoctl health command runs every registered check and reports the store
// and publisher status.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/fanout"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 5 * time.Second

// DefaultConcurrency is the number of checks run at once.
const DefaultConcurrency = 4

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu          sync.RWMutex
	checkers    []ports.HealthChecker
	timeout     time.Duration
	concurrency int
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides the per-check deadline. Non-positive values
// disable the deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// WithConcurrency sets how many checks run at once. Values below one run
// the checks one at a time.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		r.concurrency = n
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout, concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed
// by checker name. Nil values indicate healthy components. Checks run
// concurrently, but results are merged in registration order, so a later
// checker with a duplicate name overwrites an earlier one.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Map(ctx, r.concurrency, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		return struct{}{}, r.check(ctx, c)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return c.HealthCheck(ctx)
}

// Healthy reports whether every result in a CheckAll map is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}
