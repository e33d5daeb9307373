package middleware

import (
	"seatwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an identifier, reusing the
// caller's header when present so upstream traces line up. A request-scoped
// logger carrying the id is stored in the context for handlers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Set("logger", utils.GetLogger().With(zap.String("requestID", requestID)))
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}
