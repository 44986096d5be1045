package apiclient

import (
	"context"
	"net/http"

	authModel "github.com/festy23/sportsday/internal/auth/model"
)

// Login exchanges the admin password for an opaque session token.
func (c *Client) Login(ctx context.Context, password string) (*authModel.LoginResponse, error) {
	var resp authModel.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", authModel.LoginRequest{Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
