package handler

import (
	"context"
	"database/sql"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
)

// Shared function-field repository mocks for handler tests. Handlers are
// exercised through the real services with these underneath.

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *model.User) error
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	findByIDFn    func(ctx context.Context, id string) (*model.User, error)
	listAllFn     func(ctx context.Context) ([]model.User, error)
	updateRoleFn  func(ctx context.Context, id, role string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, common.ErrNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, common.ErrNotFound
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []model.User{}, nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *model.User) error { return nil }

func (m *mockUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, role)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, tx *sql.Tx, id string) error { return nil }

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
	return []model.Event{}, 0, nil
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
	return []model.CategoryCount{}, nil
}

type mockRSVPRepo struct {
	rsvps []model.RSVP
}

func (m *mockRSVPRepo) Create(ctx context.Context, rsvp *model.RSVP) error {
	m.rsvps = append(m.rsvps, *rsvp)
	return nil
}

func (m *mockRSVPRepo) FindByEventAndUser(ctx context.Context, eventID, userID string) (*model.RSVP, error) {
	for _, r := range m.rsvps {
		if r.EventID == eventID && r.UserID == userID {
			rsvp := r
			return &rsvp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *mockRSVPRepo) CountByEventID(ctx context.Context, eventID string) (int, error) {
	count := 0
	for _, r := range m.rsvps {
		if r.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *mockRSVPRepo) CountAll(ctx context.Context) (int, error) { return len(m.rsvps), nil }

func (m *mockRSVPRepo) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	for i, r := range m.rsvps {
		if r.EventID == eventID && r.UserID == userID {
			m.rsvps = append(m.rsvps[:i], m.rsvps[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *mockRSVPRepo) DeleteByEventID(ctx context.Context, tx *sql.Tx, eventID string) error {
	return nil
}
func (m *mockRSVPRepo) DeleteByUserID(ctx context.Context, tx *sql.Tx, userID string) error {
	return nil
}

func (m *mockRSVPRepo) ListAttendeesByEventID(ctx context.Context, eventID string) ([]model.Attendee, error) {
	attendees := []model.Attendee{}
	for _, r := range m.rsvps {
		if r.EventID == eventID {
			attendees = append(attendees, model.Attendee{RSVP: r})
		}
	}
	return attendees, nil
}

func (m *mockRSVPRepo) ListEventsByUserID(ctx context.Context, userID string) ([]model.RSVPedEvent, error) {
	return []model.RSVPedEvent{}, nil
}
