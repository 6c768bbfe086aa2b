// Package ledger maintains the append-only activity event log and the
// points total derived from it.
package ledger

import (
	"context"
	"fmt"
)

// Repo is the storage surface the ledger appends to and reads from.
type Repo interface {
	// Insert appends one event. Implementations assign Sequence.
	Insert(ctx context.Context, e *Event) error

	// ByUser returns a user's events newest first. limit <= 0 means all.
	ByUser(ctx context.Context, userID string, limit int) ([]Event, error)
}

// Session exposes the identity of the current user, if any.
type Session interface {
	// CurrentUserID returns the signed-in user's id, or false when
	// anonymous.
	CurrentUserID() (string, bool)
}

// Ledger records rewarded user actions and derives points totals.
// Totals are recomputed from the event log on every read, never cached.
type Ledger struct {
	repo    Repo
	session Session
}

// New creates a Ledger over the given store and session.
func New(repo Repo, session Session) *Ledger {
	return &Ledger{repo: repo, session: session}
}

// Record appends one activity event for the current user, stamping the
// points value for the kind into the detail at creation time. Anonymous
// sessions are a no-op: their activity is never persisted or rewarded.
// Returns the points granted so callers can notify the user.
func (l *Ledger) Record(ctx context.Context, kind Kind, detail map[string]any) (int, error) {
	userID, ok := l.session.CurrentUserID()
	if !ok {
		return 0, nil
	}

	merged := make(map[string]any, len(detail)+1)
	for k, v := range detail {
		merged[k] = v
	}
	points := kind.Points()
	merged[DetailPointsEarned] = points

	e := &Event{
		UserID: userID,
		Kind:   kind,
		Detail: merged,
	}
	if err := l.repo.Insert(ctx, e); err != nil {
		return 0, fmt.Errorf("record %s activity: %w", kind, err)
	}
	return points, nil
}

// TotalPoints folds the stored points over all of the current user's
// events. Anonymous sessions and store failures both read as zero; the
// error is returned alongside so the caller can surface a notification.
func (l *Ledger) TotalPoints(ctx context.Context) (int, error) {
	userID, ok := l.session.CurrentUserID()
	if !ok {
		return 0, nil
	}

	events, err := l.repo.ByUser(ctx, userID, 0)
	if err != nil {
		return 0, fmt.Errorf("fetch activity for points: %w", err)
	}

	total := 0
	for i := range events {
		total += events[i].Points()
	}
	return total, nil
}

// History returns the current user's events newest first. Anonymous
// sessions and store failures both read as an empty history.
func (l *Ledger) History(ctx context.Context, limit int) ([]Event, error) {
	userID, ok := l.session.CurrentUserID()
	if !ok {
		return nil, nil
	}

	events, err := l.repo.ByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch activity history: %w", err)
	}
	return events, nil
}
