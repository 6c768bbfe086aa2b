package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
)

const timeLayout = time.RFC3339Nano

// activityRepo implements ledger.Repo over the activity_events table.
type activityRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// ActivityRepo returns the ledger storage backed by this store.
func (s *Store) ActivityRepo() ledger.Repo {
	return &activityRepo{db: s.db, seq: s.seq}
}

// Insert appends one event, assigning id, sequence, and timestamp.
func (r *activityRepo) Insert(ctx context.Context, e *ledger.Event) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}
	e.Sequence = seqNum

	detail := e.Detail
	if detail == nil {
		detail = map[string]any{}
	}
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("encode detail: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO activity_events (id, user_id, kind, detail, sequence, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, string(e.Kind), string(detailJSON), e.Sequence, e.Time.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// ByUser returns a user's events ordered newest first.
func (r *activityRepo) ByUser(ctx context.Context, userID string, limit int) ([]ledger.Event, error) {
	q := `SELECT id, user_id, kind, detail, sequence, timestamp
	      FROM activity_events WHERE user_id = ? ORDER BY sequence DESC`
	args := []any{userID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []ledger.Event
	for rows.Next() {
		var (
			e          ledger.Event
			kind       string
			detailJSON string
			ts         string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &kind, &detailJSON, &e.Sequence, &ts); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		e.Kind = ledger.Kind(kind)
		if err := json.Unmarshal([]byte(detailJSON), &e.Detail); err != nil {
			return nil, fmt.Errorf("decode detail for event %s: %w", e.ID, err)
		}
		if e.Time, err = time.Parse(timeLayout, ts); err != nil {
			return nil, fmt.Errorf("parse timestamp for event %s: %w", e.ID, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity events: %w", err)
	}
	return events, nil
}
