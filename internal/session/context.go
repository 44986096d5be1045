package session

import "github.com/gin-gonic/gin"

const contextKey = "session"

// Attach stores s on the gin context.
func Attach(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

// FromContext returns the session attached by the session middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}
