// Package handler provides HTTP handlers for the per-sport management page
// and the team builder.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	"github.com/festy23/sportsday/internal/sport"
	teamModel "github.com/festy23/sportsday/internal/team/model"
	"github.com/festy23/sportsday/internal/team/roster"
	"github.com/festy23/sportsday/internal/team/service"
	"github.com/festy23/sportsday/internal/web"
	"github.com/festy23/sportsday/pkg/poller"
)

const (
	dashboardPath = "/admin/dashboard"

	tabTeams   = "teams"
	tabBracket = "bracket"

	msgTeamCreated      = "Team created successfully!"
	msgTeamCreateFailed = "Failed to create team"
	msgSelectStudents   = "Please select at least one student"
	msgTeamNameRequired = "Please enter a team name"
	msgTeamDeleteFailed = "Failed to delete team"
	msgUnknownSport     = "Unknown sport"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BracketPanels builds the bracket tab of a sport page.
type BracketPanels interface {
	AdminPanel(ctx context.Context, sportName string) web.BracketPanel
}

// Handler handles HTTP requests for the sport management page.
type Handler struct {
	service        service.Service
	brackets       BracketPanels
	render         *web.Renderer
	logger         *zap.SugaredLogger
	rosterInterval time.Duration
	pollerOpts     []poller.Option
	upgrader       websocket.Upgrader
	pongWait       time.Duration
	pingPeriod     time.Duration
}

// New creates a new team handler instance. The roster socket refreshes every
// rosterInterval.
func New(
	svc service.Service,
	brackets BracketPanels,
	render *web.Renderer,
	logger *zap.SugaredLogger,
	rosterInterval time.Duration,
	opts ...poller.Option,
) *Handler {
	return &Handler{
		service:        svc,
		brackets:       brackets,
		render:         render,
		logger:         logger,
		rosterInterval: rosterInterval,
		pollerOpts:     opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		pongWait:   pongWait,
		pingPeriod: pingPeriod,
	}
}

func sportPath(name string) string {
	return "/admin/sport/" + name
}

// ShowSport handles GET /admin/sport/:sport.
func (h *Handler) ShowSport(c *gin.Context) {
	sp, ok := sport.Lookup(c.Param("sport"))
	if !ok {
		h.render.Error(c, dashboardPath, msgUnknownSport)
		return
	}

	data := gin.H{
		"PageTitle": sp.Label + " Management",
		"Back":      dashboardPath,
		"Sport":     sp,
	}

	ctx := c.Request.Context()
	if c.Query("tab") == tabBracket {
		data["Tab"] = tabBracket
		data["Bracket"] = h.brackets.AdminPanel(ctx, sp.Name)
		h.render.HTML(c, http.StatusOK, "sport.html", data)
		return
	}

	available, err := h.service.ListAvailable(ctx, sp.Name)
	if err != nil {
		h.logger.Warnw("rendering team builder without available students", "sport", sp.Name, "error", err)
	}
	teams, err := h.service.ListTeams(ctx, sp.Name)
	if err != nil {
		h.logger.Warnw("rendering team builder without teams", "sport", sp.Name, "error", err)
	}

	data["Tab"] = tabTeams
	data["Available"] = available
	data["Teams"] = teams
	data["RosterSeconds"] = int(h.rosterInterval / time.Second)
	h.render.HTML(c, http.StatusOK, "sport.html", data)
}

// CreateTeam handles POST /admin/sport/:sport/teams.
func (h *Handler) CreateTeam(c *gin.Context) {
	sportName := c.Param("sport")
	back := sportPath(sportName) + "?tab=" + tabTeams

	var form teamModel.CreateTeamForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid team form", "error", err)
		h.render.Error(c, back, msgTeamCreateFailed)
		return
	}

	err := h.service.Create(c.Request.Context(), sportName, form)
	switch {
	case err == nil:
		h.render.Success(c, back, msgTeamCreated)
	case errors.Is(err, teamModel.ErrEmptyMembers):
		h.render.Error(c, back, msgSelectStudents)
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		h.render.Error(c, back, msgTeamNameRequired)
	case errors.Is(err, teamModel.ErrUnknownSport):
		h.render.Error(c, dashboardPath, msgUnknownSport)
	default:
		h.render.Error(c, back, apiclient.UserMessage(err, msgTeamCreateFailed))
	}
}

// DeleteTeam handles POST /admin/sport/:sport/teams/:id/delete.
func (h *Handler) DeleteTeam(c *gin.Context) {
	back := sportPath(c.Param("sport")) + "?tab=" + tabTeams

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render.Error(c, back, msgTeamDeleteFailed)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.render.Error(c, back, apiclient.UserMessage(err, msgTeamDeleteFailed))
		return
	}

	h.render.Redirect(c, back)
}

// Roster handles GET /admin/sport/:sport/roster. It upgrades to a websocket
// and pushes the available students of the watched sport on every refresh
// until the page closes the socket, stops answering pings or a push fails.
func (h *Handler) Roster(c *gin.Context) {
	sp, ok := sport.Lookup(c.Param("sport"))
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("roster upgrade failed", "sport", sp.Name, "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)
	// replaces the server's ReadTimeout deadline, which survives the hijack
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	push := func(u teamModel.RosterUpdate) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return conn.WriteJSON(u)
	}

	w := roster.Watch(ctx, sp.Name, h.rosterInterval, h.service, push, h.logger, h.pollerOpts...)
	defer w.Stop()
	go h.keepAlive(conn, w.Done())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debugw("roster socket closed", "sport", w.Sport(), "error", err)
			}
			return
		}

		var msg teamModel.RosterMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debugw("ignoring malformed roster message", "error", err)
			continue
		}

		switch msg.Type {
		case teamModel.RosterMessageSport:
			if _, ok := sport.Lookup(msg.Sport); ok {
				w.SetSport(msg.Sport)
			}
		case teamModel.RosterMessageRefresh:
			w.Refresh()
		}
	}
}

// keepAlive pings the page until the watcher ends. Closing conn on either a
// failed ping or a stopped watcher unblocks the read loop in Roster.
func (h *Handler) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// WriteControl may run alongside the watcher's WriteJSON
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.logger.Debugw("roster ping failed", "error", err)
				return
			}
		}
	}
}
