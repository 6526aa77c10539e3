package repository

import (
	"context"
	"database/sql"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"errors"
	"fmt"
)

type RSVPRepository interface {
	Create(ctx context.Context, rsvp *model.RSVP) error
	FindByEventAndUser(ctx context.Context, eventID, userID string) (*model.RSVP, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
	CountAll(ctx context.Context) (int, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID string) error
	DeleteByEventID(ctx context.Context, tx *sql.Tx, eventID string) error
	DeleteByUserID(ctx context.Context, tx *sql.Tx, userID string) error
	ListAttendeesByEventID(ctx context.Context, eventID string) ([]model.Attendee, error)
	ListEventsByUserID(ctx context.Context, userID string) ([]model.RSVPedEvent, error)
}

type pgRSVPRepository struct {
	db *sql.DB
}

func NewPgRSVPRepository(db *sql.DB) RSVPRepository {
	return &pgRSVPRepository{db: db}
}

func (r *pgRSVPRepository) Create(ctx context.Context, rsvp *model.RSVP) error {
	query := `INSERT INTO rsvps (id, event_id, user_id) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, rsvp.ID, rsvp.EventID, rsvp.UserID)
	if err != nil {
		return fmt.Errorf("pgRSVPRepository.Create: %w", err)
	}
	return nil
}

func (r *pgRSVPRepository) FindByEventAndUser(ctx context.Context, eventID, userID string) (*model.RSVP, error) {
	query := `SELECT id, event_id, user_id, created_at FROM rsvps WHERE event_id = $1 AND user_id = $2`
	rsvp := &model.RSVP{}
	err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(
		&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgRSVPRepository.FindByEventAndUser: %w", err)
	}
	return rsvp, nil
}

func (r *pgRSVPRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM rsvps WHERE event_id = $1`
	if err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgRSVPRepository.CountByEventID: %w", err)
	}
	return count, nil
}

func (r *pgRSVPRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rsvps`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgRSVPRepository.CountAll: %w", err)
	}
	return count, nil
}

func (r *pgRSVPRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM rsvps WHERE event_id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("pgRSVPRepository.DeleteByEventAndUser: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgRSVPRepository) DeleteByEventID(ctx context.Context, tx *sql.Tx, eventID string) error {
	query := `DELETE FROM rsvps WHERE event_id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, eventID)
	} else {
		_, err = r.db.ExecContext(ctx, query, eventID)
	}
	if err != nil {
		return fmt.Errorf("pgRSVPRepository.DeleteByEventID: %w", err)
	}
	return nil
}

func (r *pgRSVPRepository) DeleteByUserID(ctx context.Context, tx *sql.Tx, userID string) error {
	query := `DELETE FROM rsvps WHERE user_id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, userID)
	} else {
		_, err = r.db.ExecContext(ctx, query, userID)
	}
	if err != nil {
		return fmt.Errorf("pgRSVPRepository.DeleteByUserID: %w", err)
	}
	return nil
}

func (r *pgRSVPRepository) ListAttendeesByEventID(ctx context.Context, eventID string) ([]model.Attendee, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.created_at,
		       u.id, u.name, u.email, u.role, u.avatar
		FROM rsvps r
		JOIN users u ON r.user_id = u.id
		WHERE r.event_id = $1`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("pgRSVPRepository.ListAttendeesByEventID: %w", err)
	}
	defer rows.Close()

	attendees := []model.Attendee{}
	for rows.Next() {
		var a model.Attendee
		err := rows.Scan(
			&a.ID, &a.EventID, &a.UserID, &a.CreatedAt,
			&a.User.ID, &a.User.Name, &a.User.Email, &a.User.Role, &a.User.Avatar,
		)
		if err != nil {
			return nil, fmt.Errorf("pgRSVPRepository.ListAttendeesByEventID: %w", err)
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgRSVPRepository.ListAttendeesByEventID: %w", err)
	}
	return attendees, nil
}

// ListEventsByUserID returns the caller's RSVPed events, newest RSVP first.
// The inner join drops RSVPs whose event no longer exists.
func (r *pgRSVPRepository) ListEventsByUserID(ctx context.Context, userID string) ([]model.RSVPedEvent, error) {
	query := `
		SELECT r.id, r.created_at,
		       e.id, e.title, e.description, e.date, e.end_date, e.location, e.speaker,
		       e.category, e.capacity, e.is_online, e.meeting_link, e.created_by, e.status,
		       e.created_at, e.updated_at,
		       (SELECT COUNT(*) FROM rsvps r2 WHERE r2.event_id = e.id) AS rsvp_count,
		       u.name AS created_by_name, u.email AS created_by_email
		FROM rsvps r
		JOIN events e ON r.event_id = e.id
		LEFT JOIN users u ON e.created_by = u.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgRSVPRepository.ListEventsByUserID: %w", err)
	}
	defer rows.Close()

	events := []model.RSVPedEvent{}
	for rows.Next() {
		var re model.RSVPedEvent
		err := rows.Scan(
			&re.RSVPID, &re.RSVPDate,
			&re.Event.ID, &re.Title, &re.Description, &re.Date, &re.EndDate, &re.Location, &re.Speaker,
			&re.Category, &re.Capacity, &re.IsOnline, &re.MeetingLink, &re.CreatedByID, &re.Event.Status,
			&re.Event.CreatedAt, &re.Event.UpdatedAt,
			&re.RSVPCount, &re.CreatedByName, &re.CreatedByEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("pgRSVPRepository.ListEventsByUserID: %w", err)
		}
		events = append(events, re)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgRSVPRepository.ListEventsByUserID: %w", err)
	}
	return events, nil
}
