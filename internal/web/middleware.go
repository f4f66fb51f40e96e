package web

import (
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with a uuid, reusing an incoming
// X-Request-ID when the client sent a valid one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one line per request after it completes.
func AccessLog(logger *clog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
			"request_id", c.GetString(requestIDKey),
		}
		if len(c.Errors) > 0 {
			logger.Warn("request failed", append(fields, "err", c.Errors.String())...)
			return
		}
		logger.Debug("request", fields...)
	}
}
