package api

import (
	"context"
	"net/http"

	"medico/models"
)

// Login exchanges credentials for a bearer token. A bad-credentials response
// arrives as a 2xx body with a message instead of a token, so the caller must
// check both fields.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. There is no auto-login: the caller redirects
// to the login page on success.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", req, nil)
}
