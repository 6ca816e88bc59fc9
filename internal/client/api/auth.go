package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// Auth endpoints go through doOnce directly: a 401 from /auth/login or
// /auth/refresh must never trigger another refresh attempt.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// LoginRequest exchanges credentials for an identity and a bearer token.
func (g *Gateway) LoginRequest(ctx context.Context, email, password string) (*models.User, string, error) {
	var p authPayload
	if err := g.doOnce(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &p); err != nil {
		return nil, "", mapAuthError(err)
	}
	if p.Token == "" {
		return nil, "", errors.New("malformed auth response: empty token")
	}
	return &p.User, p.Token, nil
}

// RefreshRequest exchanges the current bearer token for a fresh pair.
// No explicit credentials are sent; the server relies on the session context
// carried by the Authorization header.
func (g *Gateway) RefreshRequest(ctx context.Context) (*models.User, string, error) {
	var p authPayload
	if err := g.doOnce(ctx, http.MethodPost, "/auth/refresh", nil, &p); err != nil {
		return nil, "", mapAuthError(err)
	}
	if p.Token == "" {
		return nil, "", errors.New("malformed auth response: empty token")
	}
	return &p.User, p.Token, nil
}

// LogoutRequest asks the server to invalidate the session. Callers treat it
// as best-effort; local logout must not depend on it.
func (g *Gateway) LogoutRequest(ctx context.Context) error {
	return mapAuthError(g.doOnce(ctx, http.MethodPost, "/auth/logout", nil, nil))
}

func mapAuthError(err error) error {
	if err == nil {
		return nil
	}
	if isAuthFailure(err) {
		return ErrUnauthorized
	}
	return err
}
