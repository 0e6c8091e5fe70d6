package middleware

import (
	"errors"
	"net/http"

	"salesapi/pkg/apperror"
	"salesapi/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler writes the uniform error body for errors attached by
// handlers. Domain errors keep their status code; anything else becomes
// a 500 without leaking internal detail.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var httpErr *apperror.HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(httpErr.StatusCode, response.ErrorBody{Message: httpErr.Message})
			return
		}

		logger.Error("Unhandled request error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorBody{Message: "Internal server error."})
	}
}
