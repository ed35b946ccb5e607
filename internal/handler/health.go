package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HydJing/status-service/internal/health"
)

// HealthHandler handles liveness and readiness requests.
type HealthHandler struct {
	evaluator *health.Evaluator
	registry  *health.Registry
}

// NewHealthHandler creates a HealthHandler backed by the given evaluator
// and sub-check registry.
func NewHealthHandler(evaluator *health.Evaluator, registry *health.Registry) *HealthHandler {
	return &HealthHandler{
		evaluator: evaluator,
		registry:  registry,
	}
}

// HealthCheck runs all registered sub-checks and returns the aggregated
// report. Serves 503 when the service is down, 200 otherwise.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	results := h.registry.Run(c.Request.Context())
	report, code := h.evaluator.Evaluate(results)
	c.JSON(code, report)
}

// HealthHead answers lightweight load-balancer probes without a body.
func (h *HealthHandler) HealthHead(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Status is the fast liveness probe: the process is running and can answer,
// independent of downstream dependency health.
func (h *HealthHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Live is the JSON twin of Status for orchestrators expecting a liveness
// endpoint under the health prefix.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
