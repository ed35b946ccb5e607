package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GreetingHandler serves the root greeting page.
type GreetingHandler struct {
	version string
}

// NewGreetingHandler creates a GreetingHandler that reports the given version.
func NewGreetingHandler(version string) *GreetingHandler {
	return &GreetingHandler{version: version}
}

// Greet returns the greeting with the running version.
func (h *GreetingHandler) Greet(c *gin.Context) {
	c.String(http.StatusOK, "Hello, Flask in Docker! This is version: %s", h.version)
}
