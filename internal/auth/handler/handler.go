// Package handler provides HTTP handlers for admin sign in and sign out.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	authModel "github.com/festy23/sportsday/internal/auth/model"
	"github.com/festy23/sportsday/internal/auth/service"
	"github.com/festy23/sportsday/internal/session"
	"github.com/festy23/sportsday/internal/web"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin/dashboard"

	msgLoginFailed = "Login failed. Please try again."
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	render  *web.Renderer
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, render *web.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, render: render, logger: logger}
}

// ShowLogin handles GET /admin/login. Admins go straight to the dashboard.
func (h *Handler) ShowLogin(c *gin.Context) {
	s, ok := session.FromContext(c)
	if ok && s.IsAdmin(c.Request.Context()) {
		c.Redirect(http.StatusFound, dashboardPath)
		return
	}
	h.render.HTML(c, http.StatusOK, "login.html", gin.H{"PageTitle": "Admin Sign In"})
}

// Login handles POST /admin/login.
func (h *Handler) Login(c *gin.Context) {
	s, ok := session.FromContext(c)
	if !ok {
		h.render.Error(c, loginPath, msgLoginFailed)
		return
	}

	var form authModel.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.Error(c, loginPath, msgLoginFailed)
		return
	}

	if err := h.service.Login(c.Request.Context(), s, form.Password); err != nil {
		h.logger.Warnw("admin sign in failed", "error", err)
		h.render.Error(c, loginPath, apiclient.UserMessage(err, msgLoginFailed))
		return
	}

	h.render.Redirect(c, dashboardPath)
}

// Logout handles POST /admin/logout.
func (h *Handler) Logout(c *gin.Context) {
	if s, ok := session.FromContext(c); ok {
		if err := h.service.Logout(c.Request.Context(), s); err != nil {
			h.logger.Errorw("admin sign out failed", "error", err)
		}
	}
	h.render.Redirect(c, "/")
}
