package service

import (
	"context"
	"database/sql"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
	"errors"
	"testing"
)

// fakeRSVPRepo is an in-memory RSVPRepository, enough to run the capacity
// and duplicate scenarios end to end at the service level.
type fakeRSVPRepo struct {
	rsvps []model.RSVP
}

func (f *fakeRSVPRepo) Create(ctx context.Context, rsvp *model.RSVP) error {
	f.rsvps = append(f.rsvps, *rsvp)
	return nil
}

func (f *fakeRSVPRepo) FindByEventAndUser(ctx context.Context, eventID, userID string) (*model.RSVP, error) {
	for _, r := range f.rsvps {
		if r.EventID == eventID && r.UserID == userID {
			rsvp := r
			return &rsvp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRSVPRepo) CountByEventID(ctx context.Context, eventID string) (int, error) {
	count := 0
	for _, r := range f.rsvps {
		if r.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRSVPRepo) CountAll(ctx context.Context) (int, error) {
	return len(f.rsvps), nil
}

func (f *fakeRSVPRepo) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	for i, r := range f.rsvps {
		if r.EventID == eventID && r.UserID == userID {
			f.rsvps = append(f.rsvps[:i], f.rsvps[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRSVPRepo) DeleteByEventID(ctx context.Context, tx *sql.Tx, eventID string) error {
	kept := f.rsvps[:0]
	for _, r := range f.rsvps {
		if r.EventID != eventID {
			kept = append(kept, r)
		}
	}
	f.rsvps = kept
	return nil
}

func (f *fakeRSVPRepo) DeleteByUserID(ctx context.Context, tx *sql.Tx, userID string) error {
	kept := f.rsvps[:0]
	for _, r := range f.rsvps {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.rsvps = kept
	return nil
}

func (f *fakeRSVPRepo) ListAttendeesByEventID(ctx context.Context, eventID string) ([]model.Attendee, error) {
	attendees := []model.Attendee{}
	for _, r := range f.rsvps {
		if r.EventID == eventID {
			attendees = append(attendees, model.Attendee{RSVP: r})
		}
	}
	return attendees, nil
}

func (f *fakeRSVPRepo) ListEventsByUserID(ctx context.Context, userID string) ([]model.RSVPedEvent, error) {
	return []model.RSVPedEvent{}, nil
}

type mockEventRepo struct {
	findByIDFn func(ctx context.Context, id string) (*model.Event, error)
	listFn     func(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]model.Event, int, error)
}

func (m *mockEventRepo) Create(ctx context.Context, tx *sql.Tx, event *model.Event) error { return nil }
func (m *mockEventRepo) Update(ctx context.Context, tx *sql.Tx, event *model.Event) error { return nil }

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, common.ErrNotFound
}

func (m *mockEventRepo) List(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]model.Event, int, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockEventRepo) Delete(ctx context.Context, tx *sql.Tx, id string) error { return nil }
func (m *mockEventRepo) ReplaceTags(ctx context.Context, tx *sql.Tx, eventID string, tags []string) error {
	return nil
}
func (m *mockEventRepo) GetTagsByEventID(ctx context.Context, eventID string) ([]string, error) {
	return []string{}, nil
}
func (m *mockEventRepo) CountAll(ctx context.Context) (int, error)      { return 0, nil }
func (m *mockEventRepo) CountUpcoming(ctx context.Context) (int, error) { return 0, nil }
func (m *mockEventRepo) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	return nil, nil
}

func eventWithCapacity(capacity int) *mockEventRepo {
	return &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*model.Event, error) {
			return &model.Event{ID: id, Title: "Go Meetup", Capacity: capacity}, nil
		},
	}
}

// --- tests ---

func TestRSVPService_Create_EventNotFound(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, &mockEventRepo{})

	_, err := svc.CreateRSVP(context.Background(), "missing", "u1")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRSVPService_Create_Duplicate(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, eventWithCapacity(0))

	if _, err := svc.CreateRSVP(context.Background(), "e1", "u1"); err != nil {
		t.Fatalf("first RSVP failed: %v", err)
	}
	_, err := svc.CreateRSVP(context.Background(), "e1", "u1")
	if !errors.Is(err, common.ErrDuplicateRSVP) {
		t.Errorf("err = %v, want ErrDuplicateRSVP", err)
	}
}

func TestRSVPService_Create_UnlimitedCapacity(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, eventWithCapacity(0))

	// Capacity 0 means unlimited.
	for i, user := range []string{"u1", "u2", "u3", "u4", "u5"} {
		if _, err := svc.CreateRSVP(context.Background(), "e1", user); err != nil {
			t.Fatalf("RSVP %d failed: %v", i+1, err)
		}
	}
}

func TestRSVPService_Create_CapacityExceeded(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, eventWithCapacity(2))

	if _, err := svc.CreateRSVP(context.Background(), "e1", "userA"); err != nil {
		t.Fatalf("RSVP by A failed: %v", err)
	}
	if _, err := svc.CreateRSVP(context.Background(), "e1", "userB"); err != nil {
		t.Fatalf("RSVP by B failed: %v", err)
	}

	_, err := svc.CreateRSVP(context.Background(), "e1", "userC")
	if !errors.Is(err, common.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}

	// A cancels, freeing a slot; C can now register.
	if err := svc.CancelRSVP(context.Background(), "e1", "userA"); err != nil {
		t.Fatalf("cancel by A failed: %v", err)
	}
	if _, err := svc.CreateRSVP(context.Background(), "e1", "userC"); err != nil {
		t.Fatalf("RSVP by C after cancel failed: %v", err)
	}
}

func TestRSVPService_Cancel_NotFound(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, eventWithCapacity(0))

	err := svc.CancelRSVP(context.Background(), "e1", "u1")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRSVPService_HasRSVPed(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, eventWithCapacity(0))

	ok, err := svc.HasRSVPed(context.Background(), "e1", "u1")
	if err != nil {
		t.Fatalf("HasRSVPed returned error: %v", err)
	}
	if ok {
		t.Error("expected false before RSVP")
	}

	if _, err := svc.CreateRSVP(context.Background(), "e1", "u1"); err != nil {
		t.Fatalf("RSVP failed: %v", err)
	}

	ok, err = svc.HasRSVPed(context.Background(), "e1", "u1")
	if err != nil {
		t.Fatalf("HasRSVPed returned error: %v", err)
	}
	if !ok {
		t.Error("expected true after RSVP")
	}
}

func TestRSVPService_Create_MissingEventID(t *testing.T) {
	svc := NewRSVPService(&fakeRSVPRepo{}, &mockEventRepo{})

	_, err := svc.CreateRSVP(context.Background(), "", "u1")
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
