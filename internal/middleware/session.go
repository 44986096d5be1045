package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/sportsday/internal/session"
)

// LoginPath is where RequireAdmin sends anonymous visitors.
const LoginPath = "/admin/login"

// Session loads the browser session and attaches it to the context.
func Session(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Attach(c, m.Load(c))
		c.Next()
	}
}

// RequireAdmin redirects to the login page unless the session holds an admin
// token. It must run after Session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session.FromContext(c)
		if !ok || !s.IsAdmin(c.Request.Context()) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
