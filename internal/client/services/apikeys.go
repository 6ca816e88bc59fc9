package services

import (
	"context"
	"net/url"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// APIKeyService backs the API-key screen: the tenant's credentials for the
// CAPTCHA verification endpoint.
type APIKeyService struct {
	c Caller
}

func NewAPIKeyService(c Caller) *APIKeyService {
	return &APIKeyService{c: c}
}

func (s *APIKeyService) List(ctx context.Context) ([]models.APIKey, error) {
	var keys []models.APIKey
	if err := s.c.Get(ctx, "/keys", &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Create issues a new key. The returned record carries the full secret;
// this is the only time the server reveals it.
func (s *APIKeyService) Create(ctx context.Context, label string) (*models.APIKey, error) {
	var key models.APIKey
	body := struct {
		Label string `json:"label"`
	}{Label: label}
	if err := s.c.Post(ctx, "/keys", body, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *APIKeyService) Revoke(ctx context.Context, id string) error {
	return s.c.Delete(ctx, "/keys/"+url.PathEscape(id), nil)
}

// Regenerate replaces the secret of an existing key, keeping its id and
// label. The returned record carries the new full secret.
func (s *APIKeyService) Regenerate(ctx context.Context, id string) (*models.APIKey, error) {
	var key models.APIKey
	if err := s.c.Post(ctx, "/keys/"+url.PathEscape(id)+"/regenerate", nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}
