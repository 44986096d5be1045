package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	teamModel "github.com/festy23/sportsday/internal/team/model"
)

// ListTeams returns the teams formed for sport.
func (c *Client) ListTeams(ctx context.Context, sport string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	if err := c.do(ctx, http.MethodGet, "/teams/"+url.PathEscape(sport), nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// CreateTeam creates a team from the selected students.
func (c *Client) CreateTeam(ctx context.Context, req teamModel.CreateTeamRequest) error {
	return c.do(ctx, http.MethodPost, "/teams", req, nil)
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/teams/"+strconv.FormatInt(id, 10), nil, nil)
}
