package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request ID is stored.
const RequestIDKey = "request_id"

// requestIDHeader is the wire header carrying the request ID in and out.
const requestIDHeader = "X-Request-ID"

// RequestID is a Gin middleware that tags every request with a unique
// identifier for log correlation.
//
// Behavior:
//   - Reuses an inbound X-Request-ID header when a proxy already set one,
//     otherwise generates a new UUID (v4).
//   - Stores the ID in the Gin context under RequestIDKey.
//   - Echoes it back to the client in the X-Request-ID response header.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
