package health

import (
	"net/http"
	"testing"
	"time"
)

const (
	testVersion     = "1.2.3"
	testEnvironment = "testing"
)

func newTestEvaluator() *Evaluator {
	e := NewEvaluator(testVersion, testEnvironment)
	e.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return e
}

func TestEvaluate_EmptyChecks(t *testing.T) {
	report, code := newTestEvaluator().Evaluate(nil)

	if report.Status != StatusUp {
		t.Errorf("status: got %q, want %q", report.Status, StatusUp)
	}
	if code != http.StatusOK {
		t.Errorf("http code: got %d, want %d", code, http.StatusOK)
	}
	if report.Checks == nil || len(report.Checks) != 0 {
		t.Errorf("checks: got %v, want empty non-nil slice", report.Checks)
	}
}

func TestEvaluate_AllHealthy(t *testing.T) {
	results := []Result{
		{Name: "database", Status: CheckOK, Message: "OK", Critical: true},
		{Name: "cache", Status: CheckOK, Message: "OK"},
	}

	report, code := newTestEvaluator().Evaluate(results)

	if report.Status != StatusUp {
		t.Errorf("status: got %q, want %q", report.Status, StatusUp)
	}
	if code != http.StatusOK {
		t.Errorf("http code: got %d, want %d", code, http.StatusOK)
	}
}

func TestEvaluate_CriticalFailure(t *testing.T) {
	results := []Result{
		{Name: "cache", Status: CheckOK, Message: "OK"},
		{Name: "database", Status: CheckDown, Message: "connection refused", Critical: true},
		{Name: "search", Status: CheckOK, Message: "OK"},
	}

	report, code := newTestEvaluator().Evaluate(results)

	if report.Status != StatusDown {
		t.Errorf("status: got %q, want %q", report.Status, StatusDown)
	}
	if code != http.StatusServiceUnavailable {
		t.Errorf("http code: got %d, want %d", code, http.StatusServiceUnavailable)
	}
}

func TestEvaluate_NonCriticalFailure(t *testing.T) {
	results := []Result{
		{Name: "database", Status: CheckOK, Message: "OK", Critical: true},
		{Name: "cache", Status: CheckDown, Message: "timeout"},
	}

	report, code := newTestEvaluator().Evaluate(results)

	if report.Status != StatusDegraded {
		t.Errorf("status: got %q, want %q", report.Status, StatusDegraded)
	}
	// Degraded is still 200: pollers read the body for nuance.
	if code != http.StatusOK {
		t.Errorf("http code: got %d, want %d", code, http.StatusOK)
	}
}

func TestEvaluate_CriticalFailureWinsOverNonCritical(t *testing.T) {
	results := []Result{
		{Name: "cache", Status: CheckDown, Message: "timeout"},
		{Name: "database", Status: CheckDown, Message: "connection refused", Critical: true},
	}

	report, code := newTestEvaluator().Evaluate(results)

	if report.Status != StatusDown {
		t.Errorf("status: got %q, want %q", report.Status, StatusDown)
	}
	if code != http.StatusServiceUnavailable {
		t.Errorf("http code: got %d, want %d", code, http.StatusServiceUnavailable)
	}
}

func TestEvaluate_PreservesCheckOrder(t *testing.T) {
	results := []Result{
		{Name: "zeta", Status: CheckOK, Message: "OK"},
		{Name: "alpha", Status: CheckDown, Message: "boom", Critical: true},
		{Name: "mike", Status: CheckOK, Message: "OK"},
	}

	report, _ := newTestEvaluator().Evaluate(results)

	want := []string{"zeta", "alpha", "mike"}
	if len(report.Checks) != len(want) {
		t.Fatalf("checks length: got %d, want %d", len(report.Checks), len(want))
	}
	for i, name := range want {
		if report.Checks[i].Name != name {
			t.Errorf("checks[%d].Name: got %q, want %q", i, report.Checks[i].Name, name)
		}
	}
}

func TestEvaluate_CopiesMetadata(t *testing.T) {
	report, _ := newTestEvaluator().Evaluate(nil)

	if report.ApplicationVersion != testVersion {
		t.Errorf("application_version: got %q, want %q", report.ApplicationVersion, testVersion)
	}
	if report.Environment != testEnvironment {
		t.Errorf("environment: got %q, want %q", report.Environment, testEnvironment)
	}
	if report.Timestamp != "2024-06-01T12:00:00Z" {
		t.Errorf("timestamp: got %q, want RFC 3339 UTC %q", report.Timestamp, "2024-06-01T12:00:00Z")
	}
}

func TestEvaluate_TimestampIsRFC3339(t *testing.T) {
	report, _ := NewEvaluator(testVersion, testEnvironment).Evaluate(nil)

	if _, err := time.Parse(time.RFC3339, report.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", report.Timestamp, err)
	}
}
