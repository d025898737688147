// Package health provides a thread-safe registry of health checkers for the
// components the CLI depends on. The health command runs every registered
// check and reports the outcome per component.
package health

import (
	"context"
	"sort"
	"sync"

	"github.com/jsamuelsen11/go-planfix/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Status values reported by [Summarize].
const (
	StatusOK        = "ok"
	StatusUnhealthy = "unhealthy"
)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
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

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Check is the printable outcome of one component check.
type Check struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report is the printable outcome of [Registry.CheckAll].
type Report struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
}

// Summarize converts CheckAll results into a Report sorted by component name.
// The overall status is unhealthy if any component reported an error.
func Summarize(results map[string]error) Report {
	report := Report{Status: StatusOK, Checks: make([]Check, 0, len(results))}
	for name, err := range results {
		c := Check{Name: name, Status: StatusOK}
		if err != nil {
			c.Status = StatusUnhealthy
			c.Error = err.Error()
			report.Status = StatusUnhealthy
		}
		report.Checks = append(report.Checks, c)
	}
	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})
	return report
}
