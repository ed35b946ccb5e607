package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HydJing/status-service/internal/logger"
)

// maxRequestIDLen caps inbound X-Request-ID values; anything longer is
// replaced with a generated ID.
const maxRequestIDLen = 128

// requestIDBytes is the number of random bytes in a generated request ID.
const requestIDBytes = 16

// RequestIDMiddleware ensures every request carries an ID, taken from the
// X-Request-ID header or generated, and stores a request-scoped logger
// (enriched with the ID) in the request context for handlers to pick up
// via logger.FromContext.
func RequestIDMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = generateRequestID()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		reqLog := log.With(logger.String("request_id", requestID))
		c.Request = c.Request.WithContext(
			logger.WithContext(c.Request.Context(), reqLog),
		)

		c.Next()
	}
}

func generateRequestID() string {
	buf := make([]byte, requestIDBytes)
	if _, err := rand.Read(buf); err != nil {
		// Clock fallback keeps IDs unique enough for log correlation.
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}

// LoggerMiddleware logs one structured entry per request with method, path,
// status, duration, and client IP.
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		method := c.Request.Method

		c.Next()

		fields := []logger.Field{
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if query != "" {
			fields = append(fields, logger.String("query", query))
		}
		// Probe traffic is noisy enough without user agents.
		if !strings.HasPrefix(path, "/health") && path != "/status" {
			fields = append(fields, logger.String("user_agent", c.Request.UserAgent()))
		}

		if len(c.Errors) > 0 {
			msgs := make([]string, len(c.Errors))
			for i, err := range c.Errors {
				msgs[i] = err.Err.Error()
			}
			fields = append(fields, logger.Strings("errors", msgs))
			log.Error("HTTP request with errors", fields...)
			return
		}

		log.Info("HTTP request", fields...)
	}
}

// RecoveryMiddleware catches handler panics, logs them, and returns a 500
// without leaking internals in the body.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					logger.Any("error", err),
					logger.String("path", c.Request.URL.Path),
					logger.String("method", c.Request.Method),
					logger.String("client_ip", c.ClientIP()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal server error",
					"code":    "INTERNAL_ERROR",
					"message": "An unexpected error occurred",
				})
			}
		}()

		c.Next()
	}
}

// CORSMiddleware applies permissive CORS headers and answers preflight
// requests. The probe endpoints are read-only, so wide-open origins are
// acceptable here.
func CORSMiddleware() gin.HandlerFunc {
	allowedMethods := strings.Join([]string{
		http.MethodGet, http.MethodHead, http.MethodOptions,
	}, ", ")

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
