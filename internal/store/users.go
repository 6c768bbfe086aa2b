package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/identity"
)

// userRepo implements identity.Repo over the users and session tables.
type userRepo struct {
	db *sql.DB
}

// UserRepo returns the identity storage backed by this store.
func (s *Store) UserRepo() identity.Repo {
	return &userRepo{db: s.db}
}

func (r *userRepo) UpsertUser(ctx context.Context, email, provider string) (*identity.User, error) {
	if existing, err := r.userByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	u := &identity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Provider:  provider,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, provider, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, u.Email, u.Provider, u.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *userRepo) UserByID(ctx context.Context, id string) (*identity.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, provider, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *userRepo) userByEmail(ctx context.Context, email string) (*identity.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, provider, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*identity.User, error) {
	var (
		u  identity.User
		ts string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Provider, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if u.CreatedAt, err = time.Parse(timeLayout, ts); err != nil {
		return nil, fmt.Errorf("parse user created_at: %w", err)
	}
	return &u, nil
}

func (r *userRepo) SetSession(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session (id, user_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *userRepo) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *userRepo) SessionUserID(ctx context.Context) (string, bool, error) {
	var userID string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM session WHERE id = 1`).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read session: %w", err)
	}
	return userID, true, nil
}
