// Package services contains the application services of the slambook
// client: the authentication flow and the entry operations composed over
// the remote facade and the session store.
package services

import (
	"context"
	"fmt"

	"slambook/internal/api"
	"slambook/internal/models"
	"slambook/internal/session"
)

// AuthService drives the session lifecycle for the CLI.
//
// Contract:
//   - Login/Signup: authenticate, fetch the identity profile with the fresh
//     token, then persist the authenticated session.
//   - Logout: clear in-memory and persisted session state.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, name, email, password string) (models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Store
}

// NewAuthService binds the auth flow to the given API client and session.
func NewAuthService(client api.Client, sess *session.Store) AuthService {
	return &authService{client: client, session: sess}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}
	return a.establish(ctx, token)
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	token, err := a.client.Signup(ctx, name, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("signup error: %w", err)
	}
	return a.establish(ctx, token)
}

// establish completes authentication: adopt the token, resolve the identity
// behind it, then persist both.
func (a *authService) establish(ctx context.Context, token string) (models.User, error) {
	a.session.UseToken(token)

	user, err := a.client.Me(ctx)
	if err != nil {
		_ = a.session.Clear(ctx)
		return models.User{}, fmt.Errorf("fetching identity: %w", err)
	}

	if err := a.session.Establish(ctx, token, user); err != nil {
		return models.User{}, fmt.Errorf("persisting session: %w", err)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
