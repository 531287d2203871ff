package middleware

import (
	"log/slog"
	"net/http"

	"agora-server/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last line of defense for handlers that recorded an
// error but never wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Most recent error wins.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{
			Code:    "SERVER_ERROR",
			Message: "Internal server error",
		})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Code:    "SERVER_ERROR",
					Message: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
