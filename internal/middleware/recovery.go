package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/dinaskp/perikanan-backend/internal/pkg"
)

// Recovery returns a gin middleware that recovers from panics, logs the
// error with stack trace, and returns the standard error envelope:
//
//	{"success": false, "error": "Internal Server Error", "message": "terjadi kesalahan internal"}
//
// It replaces gin.Recovery() so panics go through structured logging.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				c.Abort()
				c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
					Success: false,
					Error:   http.StatusText(http.StatusInternalServerError),
					Message: "terjadi kesalahan internal",
				})
			}
		}()
		c.Next()
	}
}
