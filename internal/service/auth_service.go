package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"xfood/internal/auth"
	xerrors "xfood/internal/errors"
	"xfood/internal/repository"
)

// AuthService authenticates operators and manages their sessions.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, sctx *auth.Context, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions *auth.SessionService
	store    auth.SessionStoreInterface
}

// NewAuthService builds an AuthService.
func NewAuthService(users repository.UserRepository, sessions *auth.SessionService, store auth.SessionStoreInterface) AuthService {
	return &authService{users: users, sessions: sessions, store: store}
}

// Login verifies credentials against the user table and issues a session
// token. The profile description is decoded to the closed Role set here,
// once; it is never re-parsed per request. Passwords are compared in clear
// text, matching how the user table stores them.
func (s *authService) Login(ctx context.Context, email, password string) (string, *auth.Context, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, xerrors.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Password != password {
		return "", nil, xerrors.ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, xerrors.ErrUserInactive
	}

	description := ""
	if user.TypeUser != nil {
		description = user.TypeUser.Description
	}
	role, ok := auth.ParseRole(description)
	if !ok {
		// A user whose profile maps to no known role cannot hold a session.
		return "", nil, xerrors.ErrInvalidCredentials
	}

	_, token, err := s.sessions.Issue(user.Name, role)
	if err != nil {
		return "", nil, err
	}
	return token, &auth.Context{Name: user.Name, Role: role}, nil
}

// Logout revokes the session carried by token. Unknown or expired tokens are
// ignored; logout is idempotent.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return nil
	}
	ttl := auth.SessionTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.store.Revoke(ctx, claims.ID, ttl)
}
