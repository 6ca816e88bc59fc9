// Package api implements the request gateway: the single chokepoint through
// which every call to the platform API passes. It attaches the current bearer
// token, decodes the JSON response envelope, and recovers from credential
// expiry by refreshing the session and resubmitting the original call exactly
// once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/common"
	"github.com/Find-Your-Humanity/dashboard-sub000/internal/logging"
	"github.com/google/uuid"
)

// CredentialSource supplies the current bearer token and can refresh it.
// The session store implements this interface.
type CredentialSource interface {
	Token() string
	Refresh(ctx context.Context) error
}

// envelope is the JSON wrapper every API response uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

type Gateway struct {
	baseURL string
	http    *http.Client
	creds   CredentialSource
	log     logging.Logger
}

func NewGateway(baseURL string, timeout time.Duration, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetCredentials wires the session store in after construction (the store
// itself needs the gateway for its auth calls).
func (g *Gateway) SetCredentials(creds CredentialSource) {
	g.creds = creds
}

func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.call(ctx, http.MethodGet, path, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.call(ctx, http.MethodPost, path, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.call(ctx, http.MethodPut, path, body, out)
}

func (g *Gateway) Patch(ctx context.Context, path string, body, out any) error {
	return g.call(ctx, http.MethodPatch, path, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.call(ctx, http.MethodDelete, path, nil, out)
}

// call dispatches one logical request. On a 401 it asks the credential source
// to refresh and resubmits the original request once with the new token; a
// second 401, or a failed refresh, surfaces as ErrUnauthorized. The retry
// marker is this function's control flow, so no shared mutable flag exists
// between logical requests.
func (g *Gateway) call(ctx context.Context, method, path string, body, out any) error {
	err := g.doOnce(ctx, method, path, body, out)
	if !isAuthFailure(err) {
		return err
	}
	if g.creds == nil {
		return ErrUnauthorized
	}

	if rerr := g.creds.Refresh(ctx); rerr != nil {
		// The store has already forced a logout.
		g.log.Warn(ctx, "token refresh failed", "err", rerr)
		return ErrUnauthorized
	}

	g.log.Debug(ctx, "token refreshed, retrying request", "method", method, "path", path)
	err = g.doOnce(ctx, method, path, body, out)
	if isAuthFailure(err) {
		return ErrUnauthorized
	}
	return err
}

// doOnce performs a single HTTP exchange with no refresh handling.
func (g *Gateway) doOnce(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if g.creds != nil {
		if token := g.creds.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
		}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var env envelope
	if len(data) > 0 {
		// A malformed body on an error status is tolerated: the status
		// code alone is enough to classify the failure.
		_ = json.Unmarshal(data, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
			apiErr.Detail = env.Error.Detail
		}
		return apiErr
	}

	if !env.Success && env.Error != nil {
		return &APIError{Status: resp.StatusCode, Message: env.Error.Message, Detail: env.Error.Detail}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
