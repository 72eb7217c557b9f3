package apisdk

import (
	"context"
	"fmt"
	"net/http"
)

// Login authenticates any user with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/users/login", Credentials{Email: email, Password: password})
}

// AdminLogin authenticates through the admin login route. The backend may
// still answer with a non-admin identity; callers must check the role.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/users/admin/login", Credentials{Email: email, Password: password})
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/users/register", req)
}

// RefreshToken redeems a refresh token for a new access token, identity and
// rotated refresh token. The backend answers 404 for unknown tokens.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/users/refresh-token", map[string]string{"refreshToken": refreshToken})
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	if out.Token == "" || out.User == nil {
		return nil, fmt.Errorf("%w: %s returned no token or user", ErrUnexpectedResponse, path)
	}
	return &out, nil
}
