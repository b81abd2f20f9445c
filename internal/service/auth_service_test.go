package service

import (
	"context"
	"errors"
	"testing"
)

type mockSessionRepo struct {
	loggedIn bool
}

func (m *mockSessionRepo) Get(_ context.Context) (bool, error) { return m.loggedIn, nil }
func (m *mockSessionRepo) Set(_ context.Context, loggedIn bool) error {
	m.loggedIn = loggedIn
	return nil
}
func (m *mockSessionRepo) Clear(_ context.Context) error {
	m.loggedIn = false
	return nil
}

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	sessions := &mockSessionRepo{}
	auth := NewAuthService(sessions, "owner@example.com", "secret")

	if err := auth.Login(ctx, "owner@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := auth.Login(ctx, "intruder@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	ok, err := auth.IsAuthenticated(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("failed logins must not open a session")
	}

	if err := auth.Login(ctx, "owner@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, _ = auth.IsAuthenticated(ctx)
	if !ok {
		t.Fatal("expected session after login")
	}

	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, _ = auth.IsAuthenticated(ctx)
	if ok {
		t.Fatal("expected no session after logout")
	}
}
