package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/pkg/utils"
)

// Recovery turns a handler panic into a 500 error envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("trace_id", c.GetString("trace_id")),
					zap.Stack("stack"),
				)
				if !c.Writer.Written() {
					utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
