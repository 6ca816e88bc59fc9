package services

import (
	"context"
	"net/url"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
)

// UserService backs the admin user-management screen.
type UserService struct {
	c Caller
}

func NewUserService(c Caller) *UserService {
	return &UserService{c: c}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.c.Get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, req models.NewUser) (*models.User, error) {
	var user models.User
	if err := s.c.Post(ctx, "/admin/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := s.c.Patch(ctx, "/admin/users/"+url.PathEscape(id), upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.c.Delete(ctx, "/admin/users/"+url.PathEscape(id), nil)
}
