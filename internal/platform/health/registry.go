// Package health provides a thread-safe health check registry for tracking
// the health of the service's dependencies (database, upstream API). The
// registry backs the /health endpoint's per-dependency fields.
package health

import (
	"context"
	"sync"

	"github.com/jsalvesen/placeholder-gateway/internal/app/fanout"
	"github.com/jsalvesen/placeholder-gateway/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds the number of health checks running at once.
// Checks may issue network calls (database ping, upstream probe), so they
// run concurrently rather than serially.
const maxConcurrentChecks = 4

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each health request.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks concurrently and returns
// results keyed by checker name. Nil values indicate healthy components.
// The slice is copied under a read lock so checks run without holding it.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := fanout.Run(ctx, maxConcurrentChecks, checkers,
		func(ctx context.Context, c ports.HealthChecker) (string, error) {
			return c.Name(), c.HealthCheck(ctx)
		})

	out := make(map[string]error, len(checkers))
	for i, res := range results {
		name := res.Value
		if name == "" {
			// Semaphore wait canceled before the check ran.
			name = checkers[i].Name()
		}
		out[name] = res.Err
	}
	return out
}
