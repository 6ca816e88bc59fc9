package services

import (
	"context"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// ProfileService backs the profile screen for the logged-in user.
type ProfileService struct {
	c Caller
}

func NewProfileService(c Caller) *ProfileService {
	return &ProfileService{c: c}
}

func (s *ProfileService) Get(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.c.Get(ctx, "/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *ProfileService) Update(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := s.c.Put(ctx, "/profile", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
