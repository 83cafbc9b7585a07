package services

import (
	"context"
	"fmt"

	"github.com/ebalashova/healthapp-cli/internal/api"
	"github.com/ebalashova/healthapp-cli/internal/models"
	"github.com/ebalashova/healthapp-cli/internal/tokenx"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server; the API client remembers the
//     access token, and the decoded (unverified) claims are returned so the
//     caller learns its own user id and role.
//   - Register: create a new account on the server.
//   - Ping: check server reachability.
//   - Logout: forget the access token.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*tokenx.Claims, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error)
	Ping(ctx context.Context) error
	Logout()
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client api.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*tokenx.Claims, error) {
	token, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	claims, err := tokenx.ParseUnverified(token.AccessToken)
	if err != nil {
		// A token we cannot even decode is useless for the CLI.
		a.client.SetAccessToken("")
		return nil, fmt.Errorf("decoding access token: %w", err)
	}
	return claims, nil
}

func (a *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	profile, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return profile, nil
}

// Ping proxies a reachability check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Logout drops the remembered access token. The backend keeps no session
// state, so this is purely client-side.
func (a *authService) Logout() {
	a.client.SetAccessToken("")
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
