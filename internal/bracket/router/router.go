// Package router provides bracket module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/bracket/handler"
	"github.com/festy23/sportsday/internal/bracket/service"
	"github.com/festy23/sportsday/internal/web"
)

// RegisterRoutes registers bracket actions on the admin group. The returned
// handler renders the bracket tab of the sport page.
func RegisterRoutes(r gin.IRouter, api service.API, render *web.Renderer, logger *zap.SugaredLogger) *handler.Handler {
	svc := service.New(api, logger)
	h := handler.New(svc, render, logger)

	r.POST("/admin/sport/:sport/bracket/generate", h.Generate)
	r.POST("/admin/sport/:sport/bracket/reset", h.Reset)
	r.POST("/admin/sport/:sport/bracket/matches/:id/winner", h.SetWinner)

	return h
}
