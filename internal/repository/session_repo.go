package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// SessionRepo is a KV-backed implementation of SessionRepository
type SessionRepo struct {
	kv KV
}

// NewSessionRepo creates a new SessionRepo
func NewSessionRepo(kv KV) *SessionRepo {
	return &SessionRepo{kv: kv}
}

// Get reports whether a login session is active. An absent flag means
// logged out.
func (r *SessionRepo) Get(ctx context.Context) (bool, error) {
	raw, ok, err := r.kv.Get(ctx, KeySession)
	if err != nil {
		return false, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return false, nil
	}

	var loggedIn bool
	if err := json.Unmarshal(raw, &loggedIn); err != nil {
		return false, fmt.Errorf("failed to decode session: %w", err)
	}
	return loggedIn, nil
}

// Set stores the login flag
func (r *SessionRepo) Set(ctx context.Context, loggedIn bool) error {
	raw, err := json.Marshal(loggedIn)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.kv.Put(ctx, KeySession, raw); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Clear removes the login flag
func (r *SessionRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
