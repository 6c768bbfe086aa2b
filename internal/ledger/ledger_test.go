package ledger

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeRepo is an in-memory Repo for ledger tests.
type fakeRepo struct {
	events  []Event
	nextSeq int64
	failAll bool
}

func (r *fakeRepo) Insert(_ context.Context, e *Event) error {
	if r.failAll {
		return errors.New("store unavailable")
	}
	r.nextSeq++
	e.Sequence = r.nextSeq
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *fakeRepo) ByUser(_ context.Context, userID string, limit int) ([]Event, error) {
	if r.failAll {
		return nil, errors.New("store unavailable")
	}
	var out []Event
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].UserID == userID {
			out = append(out, r.events[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeSession struct {
	userID string
}

func (s *fakeSession) CurrentUserID() (string, bool) {
	return s.userID, s.userID != ""
}

func TestRecord_StampsPoints(t *testing.T) {
	repo := &fakeRepo{}
	l := New(repo, &fakeSession{userID: "u1"})

	points, err := l.Record(context.Background(), KindCourseSelected, map[string]any{
		DetailTitle: "Brand Identity Design",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if points != 50 {
		t.Errorf("points = %d, want 50", points)
	}
	if len(repo.events) != 1 {
		t.Fatalf("stored %d events", len(repo.events))
	}
	e := repo.events[0]
	if e.Points() != 50 {
		t.Errorf("stored points = %d", e.Points())
	}
	if e.Title() != "Brand Identity Design" {
		t.Errorf("detail title lost: %q", e.Title())
	}
}

func TestRecord_AnonymousIsNoOp(t *testing.T) {
	repo := &fakeRepo{}
	l := New(repo, &fakeSession{})

	for _, k := range AllKinds() {
		points, err := l.Record(context.Background(), k, nil)
		if err != nil {
			t.Fatalf("Record(%s): %v", k, err)
		}
		if points != 0 {
			t.Errorf("anonymous Record(%s) granted %d points", k, points)
		}
	}
	if len(repo.events) != 0 {
		t.Errorf("anonymous activity persisted: %d events", len(repo.events))
	}

	total, err := l.TotalPoints(context.Background())
	if err != nil || total != 0 {
		t.Errorf("anonymous total = %d, %v", total, err)
	}
}

func TestTotalPoints_Additive(t *testing.T) {
	repo := &fakeRepo{}
	l := New(repo, &fakeSession{userID: "u1"})
	ctx := context.Background()

	for _, k := range []Kind{KindProjectUpload, KindFeedbackReceived, KindCourseSelected} {
		if _, err := l.Record(ctx, k, nil); err != nil {
			t.Fatalf("Record(%s): %v", k, err)
		}
	}

	total, err := l.TotalPoints(ctx)
	if err != nil {
		t.Fatalf("TotalPoints: %v", err)
	}
	if total != 90 {
		t.Errorf("total = %d, want 90", total)
	}
}

func TestTotalPoints_ReadIsIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	l := New(repo, &fakeSession{userID: "u1"})
	ctx := context.Background()

	_, _ = l.Record(ctx, KindExerciseSelected, nil)

	a, errA := l.TotalPoints(ctx)
	b, errB := l.TotalPoints(ctx)
	if errA != nil || errB != nil {
		t.Fatalf("TotalPoints: %v %v", errA, errB)
	}
	if a != b {
		t.Errorf("repeated reads differ: %d vs %d", a, b)
	}

	h1, _ := l.History(ctx, 0)
	h2, _ := l.History(ctx, 0)
	if len(h1) != len(h2) {
		t.Errorf("repeated history reads differ: %d vs %d", len(h1), len(h2))
	}
}

func TestTotalPoints_MissingDetailCountsZero(t *testing.T) {
	repo := &fakeRepo{}
	repo.events = append(repo.events, Event{UserID: "u1", Kind: KindProjectUpload, Detail: map[string]any{}})
	l := New(repo, &fakeSession{userID: "u1"})

	total, err := l.TotalPoints(context.Background())
	if err != nil {
		t.Fatalf("TotalPoints: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	repo := &fakeRepo{}
	l := New(repo, &fakeSession{userID: "u1"})
	ctx := context.Background()

	order := []Kind{KindProjectUpload, KindFeedbackReceived, KindCourseSelected}
	for _, k := range order {
		if _, err := l.Record(ctx, k, nil); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	events, err := l.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events", len(events))
	}
	for i, want := range []Kind{KindCourseSelected, KindFeedbackReceived, KindProjectUpload} {
		if events[i].Kind != want {
			t.Errorf("events[%d].Kind = %s, want %s", i, events[i].Kind, want)
		}
	}

	capped, _ := l.History(ctx, 2)
	if len(capped) != 2 {
		t.Errorf("limit ignored: got %d events", len(capped))
	}
}

func TestStoreFailure_Surfaced(t *testing.T) {
	repo := &fakeRepo{failAll: true}
	l := New(repo, &fakeSession{userID: "u1"})
	ctx := context.Background()

	if _, err := l.Record(ctx, KindProjectUpload, nil); err == nil {
		t.Error("Record should surface store failure")
	}

	total, err := l.TotalPoints(ctx)
	if err == nil {
		t.Error("TotalPoints should surface store failure")
	}
	if total != 0 {
		t.Errorf("failed read must yield zero, got %d", total)
	}

	events, err := l.History(ctx, 0)
	if err == nil {
		t.Error("History should surface store failure")
	}
	if len(events) != 0 {
		t.Errorf("failed read must yield empty history, got %d", len(events))
	}
}

func TestKind_Schedule(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindProjectUpload, 20},
		{KindFeedbackReceived, 20},
		{KindCourseSelected, 50},
		{KindExerciseSelected, 50},
		{Kind("mystery"), 0},
	}
	for _, tt := range tests {
		if got := tt.kind.Points(); got != tt.want {
			t.Errorf("%s.Points() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKind_Labels(t *testing.T) {
	for _, k := range AllKinds() {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
		if k.Label() == "Activity" {
			t.Errorf("%s has the fallback label", k)
		}
		if k.Icon() == "" || k.EarnedMessage() == "" {
			t.Errorf("%s missing icon or message", k)
		}
	}
	unknown := Kind("mystery")
	if unknown.Valid() || unknown.Label() != "Activity" {
		t.Error("unknown kind must fall back")
	}
}
