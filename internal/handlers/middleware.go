package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags each request with a uuid and writes one access
// log line after the handler runs. Incoming ids are kept so callers can
// correlate across services.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set("requestId", reqID)
	c.Writer.Header().Set(requestIDHeader, reqID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("request",
			"id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
