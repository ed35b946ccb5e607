package health

import (
	"context"
	"time"
)

// DefaultCheckTimeout bounds a single sub-check so a hung dependency probe
// can never hang the health request.
const DefaultCheckTimeout = 5 * time.Second

// CheckFunc probes one dependency or capability. A nil error means healthy.
// Implementations must honor ctx cancellation.
type CheckFunc func(ctx context.Context) error

type registeredCheck struct {
	name     string
	critical bool
	timeout  time.Duration
	fn       CheckFunc
}

// Registry holds the ordered set of sub-checks to run on each health
// request. Checks are registered at startup only; the registry is read-only
// once the server is serving, so it needs no locking.
type Registry struct {
	checks  []registeredCheck
	timeout time.Duration
}

// NewRegistry creates an empty registry with the default per-check timeout.
func NewRegistry() *Registry {
	return &Registry{timeout: DefaultCheckTimeout}
}

// WithTimeout sets the per-check timeout for subsequently registered checks.
func (r *Registry) WithTimeout(d time.Duration) *Registry {
	r.timeout = d
	return r
}

// Register adds a critical sub-check. A critical failure forces the
// aggregate status to DOWN. Must be called before the server starts.
func (r *Registry) Register(name string, fn CheckFunc) {
	r.add(name, fn, true)
}

// RegisterNonCritical adds a sub-check whose failure only degrades the
// aggregate status. Must be called before the server starts.
func (r *Registry) RegisterNonCritical(name string, fn CheckFunc) {
	r.add(name, fn, false)
}

func (r *Registry) add(name string, fn CheckFunc, critical bool) {
	r.checks = append(r.checks, registeredCheck{
		name:     name,
		critical: critical,
		timeout:  r.timeout,
		fn:       fn,
	})
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.checks)
}

// Run executes every registered check in registration order and returns one
// Result per check. It never returns an error: a check that errors or times
// out becomes a DOWN result carrying the reason.
func (r *Registry) Run(ctx context.Context) []Result {
	if len(r.checks) == 0 {
		return nil
	}

	results := make([]Result, 0, len(r.checks))
	for _, c := range r.checks {
		results = append(results, r.runOne(ctx, c))
	}
	return results
}

func (r *Registry) runOne(ctx context.Context, c registeredCheck) Result {
	checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.fn(checkCtx); err != nil {
		return Result{
			Name:     c.name,
			Status:   CheckDown,
			Message:  err.Error(),
			Critical: c.critical,
		}
	}

	return Result{
		Name:     c.name,
		Status:   CheckOK,
		Message:  "OK",
		Critical: c.critical,
	}
}
