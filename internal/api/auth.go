package api

import (
	"context"

	"github.com/hilbertsen/teamcal/pkg/dto"
)

type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login reports whether the password was accepted. On success the session
// cookie is stored in the client's jar.
func (s *AuthService) Login(ctx context.Context, login dto.Login) (bool, error) {
	var ok bool
	if err := s.client.Post(ctx, "login", login, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "logout", nil, nil)
}

func (s *AuthService) LoggedIn(ctx context.Context) (bool, error) {
	var ok bool
	if err := s.client.Get(ctx, "logged_in", nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, req dto.ChangePassword) (bool, error) {
	var ok bool
	if err := s.client.Post(ctx, "change_password", req, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
