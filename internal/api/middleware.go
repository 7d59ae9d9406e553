package api

import (
	"log"
	"strconv"

	"fittrack/tracker-api/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const (
	ContextRequestIDKey = "requestID"
	requestIDHeader     = "X-Request-ID"
)

// maxErrorDetail bounds the diagnostic text returned for upstream
// failures.
const maxErrorDetail = 80

// RequestIDMiddleware assigns each request an identifier, honoring one
// supplied by the caller, and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// MetricsMiddleware counts handled requests by method, route and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observability.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
	}
}

// requestIDFromContext returns the identifier assigned by
// RequestIDMiddleware, or "unknown" outside of it.
func requestIDFromContext(c *gin.Context) string {
	if id, ok := c.Get(ContextRequestIDKey); ok {
		if idStr, ok := id.(string); ok {
			return idStr
		}
	}
	return "unknown"
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	log.Printf("request %s: HTTP %d: %s", requestIDFromContext(c), code, message)
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// truncate bounds diagnostic messages passed back to the caller.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
