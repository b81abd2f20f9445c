package service

import (
	"context"
	"errors"

	"github.com/rezapahlevi/kaludra/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService manages the login session
type AuthService interface {
	// Login checks credentials and persists the session flag
	Login(ctx context.Context, email, password string) error

	// Logout clears the session flag
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a session is active
	IsAuthenticated(ctx context.Context) (bool, error)
}

type authService struct {
	sessionRepo repository.SessionRepository
	email       string
	password    string
}

// NewAuthService creates a new auth service checking against the
// configured credentials
func NewAuthService(sessionRepo repository.SessionRepository, email, password string) AuthService {
	return &authService{
		sessionRepo: sessionRepo,
		email:       email,
		password:    password,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	if email != s.email || password != s.password {
		return ErrInvalidCredentials
	}
	return s.sessionRepo.Set(ctx, true)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

func (s *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.sessionRepo.Get(ctx)
}
