// Package handler provides HTTP handlers for student registration pages.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	studentModel "github.com/festy23/sportsday/internal/student/model"
	"github.com/festy23/sportsday/internal/student/service"
	"github.com/festy23/sportsday/internal/web"
)

const (
	registerPath = "/admin/register"

	msgRegistered     = "Student registered successfully!"
	msgRegisterFailed = "Failed to register student"
	msgDeleteFailed   = "Failed to delete student"
)

// Handler handles HTTP requests for student endpoints.
type Handler struct {
	service service.Service
	render  *web.Renderer
	logger  *zap.SugaredLogger
}

// New creates a new student handler instance.
func New(svc service.Service, render *web.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, render: render, logger: logger}
}

// ShowRegister handles GET /admin/register.
func (h *Handler) ShowRegister(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Warnw("rendering register page without students", "error", err)
		students = nil
	}

	h.render.HTML(c, http.StatusOK, "register.html", gin.H{
		"PageTitle": "Register Students",
		"Back":      "/admin/dashboard",
		"Students":  students,
	})
}

// Register handles POST /admin/register.
func (h *Handler) Register(c *gin.Context) {
	var req studentModel.CreateStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid registration form", "error", err)
		h.render.Error(c, registerPath, msgRegisterFailed)
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		h.render.Error(c, registerPath, apiclient.UserMessage(err, msgRegisterFailed))
		return
	}

	h.render.Success(c, registerPath, msgRegistered)
}

// Delete handles POST /admin/register/:id/delete.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render.Error(c, registerPath, msgDeleteFailed)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.render.Error(c, registerPath, apiclient.UserMessage(err, msgDeleteFailed))
		return
	}

	h.render.Redirect(c, registerPath)
}
