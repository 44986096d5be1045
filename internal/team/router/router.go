// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/config"
	"github.com/festy23/sportsday/internal/team/handler"
	"github.com/festy23/sportsday/internal/team/service"
	"github.com/festy23/sportsday/internal/web"
)

// RegisterRoutes registers the sport page, team builder and roster socket
// routes on the admin group.
func RegisterRoutes(
	r gin.IRouter,
	api service.API,
	brackets handler.BracketPanels,
	render *web.Renderer,
	ui config.UIConfig,
	logger *zap.SugaredLogger,
) {
	svc := service.New(api, logger)
	h := handler.New(svc, brackets, render, logger, ui.RosterPollInterval)

	r.GET("/admin/sport/:sport", h.ShowSport)
	r.POST("/admin/sport/:sport/teams", h.CreateTeam)
	r.POST("/admin/sport/:sport/teams/:id/delete", h.DeleteTeam)
	r.GET("/admin/sport/:sport/roster", h.Roster)
}
