package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// requestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present, and echoes it on the response.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
