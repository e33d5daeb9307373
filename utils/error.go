package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. The chat widget only
// ever reads the message field, so failures keep the same shape as a reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return the fallback reply
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: FallbackReply,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
