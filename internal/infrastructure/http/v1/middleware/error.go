package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wakala/internal/core/apperror"
	appctx "wakala/internal/core/context"
	"wakala/pkg/logger"
)

// ErrorHandler transforms errors registered on the gin context into
// consistent JSON responses. It is the only place that writes error
// bodies; handlers just call c.Error and abort.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// A handler that already wrote a body wins.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
				"details": appErr.Details,
			})
			return
		}

		logger.Error(c.Request.Context(), "unhandled error", "error", err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    apperror.CodeInternal,
			"message": "Internal server error",
			"details": map[string]any{
				"request_id": appctx.GetRequestID(c.Request.Context()),
			},
		})
	}
}
