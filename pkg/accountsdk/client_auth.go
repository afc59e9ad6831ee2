package accountsdk

import (
	"context"
	"net/http"
)

// Register creates an account and returns its first token pair.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/register", req, http.StatusCreated)
}

// Login exchanges email and password for a token pair.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", req, http.StatusOK)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/refresh", RefreshRequest{RefreshToken: refreshToken}, http.StatusOK)
}

// AuthenticateWithPassword logs in and wraps the tokens in a Session.
func (c *Client) AuthenticateWithPassword(ctx context.Context, email, password string) (*Session, error) {
	res, err := c.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(res.AccessToken, res.RefreshToken), nil
}

func (c *Client) authenticate(ctx context.Context, path string, payload any, want int) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.url(path), "", payload)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, want); err != nil {
		return nil, err
	}
	return &out, nil
}
