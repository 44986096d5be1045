package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorPage = `<!DOCTYPE html><html><head><title>Sports Day</title></head>` +
	`<body><h1>Something went wrong</h1><p>Please go back and try again.</p>` +
	`<p><a href="/">Home</a></p></body></html>`

// Recovery returns a middleware that recovers from panics, logs them and
// renders a plain error page.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
					"stack", string(debug.Stack()),
				)

				// A hijacked (websocket) or already streamed response can't
				// take a status anymore.
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(internalErrorPage))
				c.Abort()
			}
		}()

		c.Next()
	}
}
