package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/HydJing/status-service/internal/api"
	"github.com/HydJing/status-service/internal/config"
	"github.com/HydJing/status-service/internal/handler"
	"github.com/HydJing/status-service/internal/health"
	"github.com/HydJing/status-service/internal/logger"
	"github.com/HydJing/status-service/internal/telemetry"
)

// newWiredServer builds the full server the way main does, from environment
// configuration, and returns its router for in-process requests.
func newWiredServer(t *testing.T) *gin.Engine {
	t.Helper()

	cfg, err := config.Load("does-not-exist.yml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	registry := health.NewRegistry()
	evaluator := health.NewEvaluator(cfg.Service.Version, cfg.Service.Environment)
	tel := telemetry.NewProvider(cfg.Service.Name)
	greeting := handler.NewGreetingHandler(cfg.Service.Version)
	healthHandler := handler.NewHealthHandler(evaluator, registry)

	server := api.NewServer(cfg, logger.NewNop(), func(router *gin.Engine) {
		api.SetupRoutes(router, greeting, healthHandler, tel)
	})

	return server.Router()
}

func TestWiredServer_EnvDrivenVersionAndEnvironment(t *testing.T) {
	t.Setenv("APP_VERSION", "test-version-1.0.0")
	t.Setenv("FLASK_ENV", "testing")

	router := newWiredServer(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test-version-1.0.0") {
		t.Errorf("GET / body = %q, want it to contain the configured version", w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", w.Code)
	}

	var report health.Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal health report: %v", err)
	}
	if report.Environment != "testing" {
		t.Errorf("environment = %q, want %q", report.Environment, "testing")
	}
	if report.ApplicationVersion != "test-version-1.0.0" {
		t.Errorf("application_version = %q, want %q", report.ApplicationVersion, "test-version-1.0.0")
	}
}

func TestWiredServer_MetricsEndpoint(t *testing.T) {
	router := newWiredServer(t)

	// Generate some traffic first so counters exist.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", http.NoBody))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
}

func TestWiredServer_MemoryHealth(t *testing.T) {
	router := newWiredServer(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/memory", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health/memory status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "heap_alloc_mb") {
		t.Error("memory health output missing heap_alloc_mb")
	}
}

func TestWiredServer_MethodNotAllowed(t *testing.T) {
	router := newWiredServer(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/status", http.NoBody))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /status status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
