// Package middleware provides the HTTP middleware chain: panic recovery,
// tracing, request logging and the single error writer.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"wakala/internal/core/apperror"
	"wakala/pkg/logger"
)

// Recovery turns a handler panic into a logged 500. The stack goes to the
// log only; the client sees a generic internal error.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)

				_ = c.Error(
					apperror.NewInternal(fmt.Errorf("panic: %v", err)).
						WithDetail("request_id", c.GetString("request_id")),
				)
				c.Abort()
			}
		}()
		c.Next()
	}
}
