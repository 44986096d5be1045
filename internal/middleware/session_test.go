package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/config"
	"github.com/festy23/sportsday/internal/session"
)

func setupSessionRouter(store session.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := session.NewManager(config.SessionConfig{
		Secret:     "0123456789abcdef0123",
		CookieName: "sportsday_session",
		MaxAge:     time.Hour,
	}, store, zap.NewNop().Sugar())

	r := gin.New()
	r.Use(Session(m))
	r.GET("/whoami", func(c *gin.Context) {
		s, ok := session.FromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, s.ID())
	})
	admin := r.Group("/admin", RequireAdmin())
	admin.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return r
}

func TestSession_AttachesSession(t *testing.T) {
	router := setupSessionRouter(session.NewMemoryStorage())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.NotEmpty(t, w.Result().Cookies())
}

func TestRequireAdmin(t *testing.T) {
	store := session.NewMemoryStorage()
	router := setupSessionRouter(store)

	// first visit issues the cookie
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	sid := w.Body.String()

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(cookies[0])
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, LoginPath, w.Header().Get("Location"))
	})

	t.Run("admin passes", func(t *testing.T) {
		require.NoError(t, session.New(sid, store).Login(context.Background(), "tok"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(cookies[0])
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dashboard", w.Body.String())
	})

	t.Run("without session middleware", func(t *testing.T) {
		r := gin.New()
		r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusFound, w.Code)
	})
}
