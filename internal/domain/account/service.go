package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinica/clinica/internal/platform/auth"
	"github.com/clinica/clinica/internal/platform/db"
	"github.com/clinica/clinica/internal/platform/validate"
)

type Service struct {
	users  Repository
	tokens *auth.TokenService
}

func NewService(users Repository, tokens *auth.TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates an account and logs it straight in: the response
// carries a fresh token so the caller skips a separate login round-trip.
func (s *Service) Register(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	if creds.Username == "" {
		return nil, fmt.Errorf("%w: username is required", validate.ErrInvalid)
	}
	if len(creds.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", validate.ErrInvalid)
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.Create(ctx, &User{Username: creds.Username, PasswordHash: hash}); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return nil, fmt.Errorf("%w: username %s is taken", db.ErrConflict, creds.Username)
		}
		return nil, err
	}

	return s.issue(creds.Username)
}

// Login verifies the credentials. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	u, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, auth.ErrBadCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(creds.Password, u.PasswordHash) {
		return nil, auth.ErrBadCredentials
	}
	return s.issue(u.Username)
}

// ResolveSubject implements the bearer gate's user lookup; the token
// subject is the username.
func (s *Service) ResolveSubject(ctx context.Context, subject string) (*auth.Identity, error) {
	u, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	return &auth.Identity{ID: u.ID, Username: u.Username}, nil
}

func (s *Service) issue(username string) (*TokenResponse, error) {
	token, err := s.tokens.Issue(username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
