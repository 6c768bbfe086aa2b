// Package identity tracks the signed-in user. It stands in for a hosted
// auth provider: profiles and the active session live in the local store,
// and "no current user" is a valid state rather than an error.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Known auth provider names.
const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

var ErrEmptyEmail = errors.New("email must not be empty")

// User is a signed-in profile. The ID is opaque to the rest of the app.
type User struct {
	ID        string
	Email     string
	Provider  string
	CreatedAt time.Time
}

// Repo is the persistence surface for profiles and the active session.
type Repo interface {
	// UpsertUser returns the profile for email, creating it on first
	// sign-in.
	UpsertUser(ctx context.Context, email, provider string) (*User, error)

	// UserByID returns a profile, or nil when absent.
	UserByID(ctx context.Context, id string) (*User, error)

	// SetSession marks userID as the active session.
	SetSession(ctx context.Context, userID string) error

	// ClearSession removes the active session.
	ClearSession(ctx context.Context) error

	// SessionUserID returns the active session's user id, if any.
	SessionUserID(ctx context.Context) (string, bool, error)
}

// Manager caches the current user for synchronous reads from the UI loop.
type Manager struct {
	repo Repo

	mu      sync.RWMutex
	current *User
}

// NewManager creates a Manager and restores a persisted session if one
// exists. A broken session read degrades to anonymous.
func NewManager(ctx context.Context, repo Repo) *Manager {
	m := &Manager{repo: repo}

	userID, ok, err := repo.SessionUserID(ctx)
	if err != nil || !ok {
		return m
	}
	if u, err := repo.UserByID(ctx, userID); err == nil && u != nil {
		m.current = u
	}
	return m
}

// Current returns the signed-in user, or false when anonymous.
func (m *Manager) Current() (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.current != nil
}

// CurrentUserID returns the signed-in user's id, or false when anonymous.
func (m *Manager) CurrentUserID() (string, bool) {
	u, ok := m.Current()
	if !ok {
		return "", false
	}
	return u.ID, true
}

// SignIn activates a session for email, creating the profile on first use.
func (m *Manager) SignIn(ctx context.Context, email, provider string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if provider == "" {
		provider = ProviderGoogle
	}

	u, err := m.repo.UpsertUser(ctx, email, provider)
	if err != nil {
		return nil, fmt.Errorf("sign in %s: %w", email, err)
	}
	if err := m.repo.SetSession(ctx, u.ID); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
	return u, nil
}

// SignOut clears the session. Signing out while anonymous is a no-op.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}
