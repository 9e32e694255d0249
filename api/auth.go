package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/hackathons/auth"
)

const (
	loginPath  = "auth/login"
	logoutPath = "auth/logout"
)

var _ auth.Authenticator = (*Client)(nil)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges a username and password for a Token.
func (c *Client) Login(ctx context.Context, username, password string) (auth.Token, error) {
	form := url.Values{"username": {username}, "password": {password}}

	var tr tokenResponse
	err := c.do(ctx, http.MethodPost, loginPath, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &tr)
	if err != nil {
		return "", err
	}

	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: login returned no access token", auth.ErrNotValid)
	}

	if tr.TokenType != "" && !strings.EqualFold(tr.TokenType, "bearer") {
		return "", fmt.Errorf("%w: unsupported token type %q", auth.ErrNotValid, tr.TokenType)
	}

	return auth.Token(tr.AccessToken), nil
}

// Logout revokes token with the backend.
func (c *Client) Logout(ctx context.Context, token auth.Token) error {
	if token == "" {
		return auth.ErrNoToken
	}

	return c.WithToken(token).doJSON(ctx, http.MethodPost, logoutPath, nil, nil)
}
