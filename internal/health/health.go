// Package health implements the health-check model for the service: running
// registered sub-checks and aggregating their results into one overall
// status and HTTP status code.
package health

import (
	"net/http"
	"time"
)

// Status is the aggregate health status of the service.
type Status string

const (
	// StatusUp means every sub-check passed (or none are registered).
	StatusUp Status = "UP"
	// StatusDegraded means at least one non-critical sub-check failed
	// and no critical one did. No built-in check is non-critical today;
	// the state is kept for future sub-checks.
	StatusDegraded Status = "DEGRADED"
	// StatusDown means at least one critical sub-check failed.
	StatusDown Status = "DOWN"
)

// CheckStatus is the status of an individual sub-check.
type CheckStatus string

const (
	// CheckOK means the sub-check passed.
	CheckOK CheckStatus = "OK"
	// CheckDown means the sub-check failed, timed out, or could not run.
	CheckDown CheckStatus = "DOWN"
)

// Result is the outcome of a single sub-check. A check that itself failed
// to run is still a Result (status DOWN with the reason as message), never
// a propagated error.
type Result struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`

	// Critical marks whether a failure forces the aggregate status to
	// DOWN rather than DEGRADED.
	Critical bool `json:"-"`
}

// Healthy reports whether the sub-check passed.
func (r Result) Healthy() bool {
	return r.Status == CheckOK
}

// Report is the health document returned by the health endpoint. It is
// built fresh per request and never mutated afterwards.
type Report struct {
	Status             Status   `json:"status"`
	Timestamp          string   `json:"timestamp"`
	ApplicationVersion string   `json:"application_version"`
	Environment        string   `json:"environment"`
	Checks             []Result `json:"checks"`
}

// Evaluator aggregates sub-check results into a Report. It is pure apart
// from reading the clock, so it needs no synchronization.
type Evaluator struct {
	version     string
	environment string
	now         func() time.Time
}

// NewEvaluator creates an Evaluator that stamps reports with the given
// version and environment.
func NewEvaluator(version, environment string) *Evaluator {
	return &Evaluator{
		version:     version,
		environment: environment,
		now:         time.Now,
	}
}

// Evaluate computes the aggregate status for the given results and returns
// the report plus the HTTP status code to serve it with. Results appear in
// the report in the order supplied. Timestamps are UTC, RFC 3339.
//
// DOWN maps to 503. DEGRADED keeps 200: pollers read the JSON body for the
// nuance, and a degraded service is still serving traffic.
func (e *Evaluator) Evaluate(results []Result) (Report, int) {
	status := StatusUp
	for _, r := range results {
		if r.Healthy() {
			continue
		}
		if r.Critical {
			status = StatusDown
			break
		}
		status = StatusDegraded
	}

	report := Report{
		Status:             status,
		Timestamp:          e.now().UTC().Format(time.RFC3339),
		ApplicationVersion: e.version,
		Environment:        e.environment,
		Checks:             results,
	}
	if report.Checks == nil {
		report.Checks = []Result{}
	}

	code := http.StatusOK
	if status == StatusDown {
		code = http.StatusServiceUnavailable
	}

	return report, code
}
