// Package services contains application services for the onboarding client:
// authentication and the final registration flow that turns an accumulated
// draft into a created company.
package services

import (
	"context"
	"fmt"

	"github.com/winkhq/onboard/internal/client/api"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/client/repositories/drafts"
	"github.com/winkhq/onboard/internal/logging"
)

const loginURL = "/api/auth/login"

// AuthService defines the session operations for the client.
//
// Contract:
//   - Login: authenticate against the API and persist the session token.
//   - Logout: drop the persisted session token. Idempotent.
//   - Token: return the persisted session token, if any.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthUser, error)
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, bool)
}

type authService struct {
	adapter api.Adapter
	repo    drafts.Repository
	logger  logging.Logger
}

// NewAuthService constructs an AuthService bound to the given adapter and
// local store.
func NewAuthService(adapter api.Adapter, repo drafts.Repository, logger logging.Logger) AuthService {
	return &authService{adapter: adapter, repo: repo, logger: logger}
}

// Login posts the credentials and persists the returned token. Token
// persistence is best-effort: a storage failure is logged and the login
// still succeeds, the session just won't survive a restart.
func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	var resp models.LoginResponse
	payload := map[string]string{"email": email, "password": password}
	if err := a.adapter.Post(ctx, loginURL, payload, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User.ID == "" {
		return nil, fmt.Errorf("invalid response from server")
	}

	if resp.Token != "" {
		if err := a.repo.Set(ctx, drafts.AuthTokenKey, []byte(resp.Token)); err != nil {
			a.logger.Warn(ctx, "failed to persist session token", "error", err)
		}
	}

	return &resp.User, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.repo.Delete(ctx, drafts.AuthTokenKey)
}

func (a *authService) Token(ctx context.Context) (string, bool) {
	b, err := a.repo.Get(ctx, drafts.AuthTokenKey)
	if err != nil {
		a.logger.Warn(ctx, "failed to read session token", "error", err)
		return "", false
	}
	if len(b) == 0 {
		return "", false
	}
	return string(b), true
}
