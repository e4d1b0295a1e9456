package services

import (
	"context"
	"fmt"

	"github.com/young-sensey/dochub/internal/client/client"
	"github.com/young-sensey/dochub/internal/client/models"
	"github.com/young-sensey/dochub/internal/client/session"
)

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Register: create an account; the user logs in afterwards, no session
//     side effect.
//   - Logout: clear the session.
type AuthService interface {
	Login(ctx context.Context, login, password string) (models.User, error)
	Register(ctx context.Context, login, password string) error
	Logout(ctx context.Context) error
}

type authService struct {
	api      client.Client
	sessions *session.Store
}

// NewAuthService binds the auth flows to the API client and session store.
func NewAuthService(api client.Client, sessions *session.Store) AuthService {
	return &authService{api: api, sessions: sessions}
}

func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	token, user, err := a.api.Login(ctx, login, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	if err := a.sessions.Set(ctx, token, user); err != nil {
		return models.User{}, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Register(ctx context.Context, login, password string) error {
	if err := a.api.Register(ctx, login, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
