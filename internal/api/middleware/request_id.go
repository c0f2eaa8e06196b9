package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request id is stored under.
const RequestIDKey = "request_id"

// RequestIDHeader carries the id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an id so episode refreshes, playback
// calls and translations can be correlated across the structured logs.
// A client-supplied X-Request-ID is honored, otherwise a fresh one is issued.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the id tagged onto the request, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
