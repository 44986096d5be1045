// Package webtest wires a gin engine with the real templates and session
// middleware for handler tests.
package webtest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/config"
	"github.com/festy23/sportsday/internal/flash"
	"github.com/festy23/sportsday/internal/middleware"
	"github.com/festy23/sportsday/internal/session"
	"github.com/festy23/sportsday/internal/web"
)

const sessionPath = "/__webtest/session"

// Harness is a browser-like client against a test engine.
type Harness struct {
	Engine   *gin.Engine
	Renderer *web.Renderer
	Store    *session.MemoryStorage
	Logger   *zap.SugaredLogger

	t       *testing.T
	cookies []*http.Cookie
}

// New creates a harness. Register routes on h.Engine before issuing requests.
func New(t *testing.T) *Harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	store := session.NewMemoryStorage()
	manager := session.NewManager(config.SessionConfig{
		Secret:     "webtest-secret-0123456789",
		CookieName: "sportsday_session",
		MaxAge:     time.Hour,
	}, store, logger)

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)
	engine.Use(middleware.Session(manager))
	engine.GET(sessionPath, func(c *gin.Context) {
		s, _ := session.FromContext(c)
		c.String(http.StatusOK, s.ID())
	})

	return &Harness{
		Engine:   engine,
		Renderer: web.NewRenderer(flash.New(3*time.Second), logger),
		Store:    store,
		Logger:   logger,
		t:        t,
	}
}

// Session returns the harness browser's session, creating it on first use.
func (h *Harness) Session() *session.Session {
	h.t.Helper()
	w := h.Get(sessionPath)
	require.Equal(h.t, http.StatusOK, w.Code)
	return session.New(w.Body.String(), h.Store)
}

// LoginAsAdmin stores an admin token in the harness browser's session.
func (h *Harness) LoginAsAdmin() {
	h.t.Helper()
	require.NoError(h.t, h.Session().Login(context.Background(), "test-admin-token"))
}

// Get issues a GET request.
func (h *Harness) Get(path string) *httptest.ResponseRecorder {
	return h.Do(http.MethodGet, path, nil)
}

// PostForm issues a form POST.
func (h *Harness) PostForm(path string, form url.Values) *httptest.ResponseRecorder {
	return h.Do(http.MethodPost, path, form)
}

// Do issues a request carrying the cookies collected so far.
func (h *Harness) Do(method, path string, form url.Values) *httptest.ResponseRecorder {
	h.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range h.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	h.Engine.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		h.cookies = cookies
	}
	return w
}

// Cookies returns the cookies collected so far.
func (h *Harness) Cookies() []*http.Cookie {
	return h.cookies
}

// Follow asserts a redirect and fetches its target.
func (h *Harness) Follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	h.t.Helper()
	require.Contains(h.t, []int{http.StatusFound, http.StatusSeeOther}, w.Code, "expected a redirect")
	return h.Get(w.Header().Get("Location"))
}

// Doc parses a response body as HTML.
func Doc(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

// Flash returns the kind and text of the flash message on a page, or empty
// strings when there is none.
func Flash(doc *goquery.Document) (string, string) {
	sel := doc.Find(".flash").First()
	if sel.Length() == 0 {
		return "", ""
	}
	switch {
	case sel.HasClass("success-message"):
		return string(flash.Success), strings.TrimSpace(sel.Text())
	case sel.HasClass("error-message"):
		return string(flash.Error), strings.TrimSpace(sel.Text())
	default:
		return "", strings.TrimSpace(sel.Text())
	}
}
