package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
)

// GetBracket returns the matches of sport in API order.
func (c *Client) GetBracket(ctx context.Context, sport string) ([]bracketModel.Match, error) {
	var matches []bracketModel.Match
	if err := c.do(ctx, http.MethodGet, "/brackets/"+url.PathEscape(sport), nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// GenerateBracket asks the API to build a bracket from the teams of sport.
func (c *Client) GenerateBracket(ctx context.Context, sport string) error {
	return c.do(ctx, http.MethodPost, "/brackets/generate/"+url.PathEscape(sport), nil, nil)
}

// SetMatchWinner records the winner of a match.
func (c *Client) SetMatchWinner(ctx context.Context, matchID, winnerID int64) error {
	path := "/brackets/match/" + strconv.FormatInt(matchID, 10)
	return c.do(ctx, http.MethodPut, path, bracketModel.SetWinnerRequest{WinnerID: winnerID}, nil)
}

// ResetBracket deletes the bracket of sport.
func (c *Client) ResetBracket(ctx context.Context, sport string) error {
	return c.do(ctx, http.MethodDelete, "/brackets/"+url.PathEscape(sport), nil, nil)
}
