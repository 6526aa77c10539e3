package repository

import (
	"context"
	"database/sql"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"errors"
	"fmt"
	"strings"
)

// EventFilter narrows List results. Zero values mean "no filter".
type EventFilter struct {
	Search   string
	Category model.EventCategory
	Status   model.EventStatus
}

type EventRepository interface {
	Create(ctx context.Context, tx *sql.Tx, event *model.Event) error
	Update(ctx context.Context, tx *sql.Tx, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, filter EventFilter, limit, offset int) ([]model.Event, int, error)
	Delete(ctx context.Context, tx *sql.Tx, id string) error

	ReplaceTags(ctx context.Context, tx *sql.Tx, eventID string, tags []string) error
	GetTagsByEventID(ctx context.Context, eventID string) ([]string, error)

	CountAll(ctx context.Context) (int, error)
	CountUpcoming(ctx context.Context) (int, error)
	CategoryCounts(ctx context.Context) ([]model.CategoryCount, error)
}

type pgEventRepository struct {
	db *sql.DB
}

func NewPgEventRepository(db *sql.DB) EventRepository {
	return &pgEventRepository{db: db}
}

func (r *pgEventRepository) Create(ctx context.Context, tx *sql.Tx, e *model.Event) error {
	query := `INSERT INTO events (id, title, description, date, end_date, location, speaker, category, capacity, is_online, meeting_link, created_by, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, e.ID, e.Title, e.Description, e.Date, e.EndDate, e.Location, e.Speaker, e.Category, e.Capacity, e.IsOnline, e.MeetingLink, e.CreatedByID, e.Status)
	} else {
		_, err = r.db.ExecContext(ctx, query, e.ID, e.Title, e.Description, e.Date, e.EndDate, e.Location, e.Speaker, e.Category, e.Capacity, e.IsOnline, e.MeetingLink, e.CreatedByID, e.Status)
	}
	if err != nil {
		return fmt.Errorf("pgEventRepository.Create: %w", err)
	}
	return nil
}

func (r *pgEventRepository) Update(ctx context.Context, tx *sql.Tx, e *model.Event) error {
	query := `UPDATE events SET
	            title = $1, description = $2, date = $3, end_date = $4, location = $5,
	            speaker = $6, category = $7, capacity = $8, is_online = $9,
	            meeting_link = $10, status = $11, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $12`

	var result sql.Result
	var err error
	if tx != nil {
		result, err = tx.ExecContext(ctx, query, e.Title, e.Description, e.Date, e.EndDate, e.Location, e.Speaker, e.Category, e.Capacity, e.IsOnline, e.MeetingLink, e.Status, e.ID)
	} else {
		result, err = r.db.ExecContext(ctx, query, e.Title, e.Description, e.Date, e.EndDate, e.Location, e.Speaker, e.Category, e.Capacity, e.IsOnline, e.MeetingLink, e.Status, e.ID)
	}
	if err != nil {
		return fmt.Errorf("pgEventRepository.Update: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

const eventSelect = `
	SELECT e.id, e.title, e.description, e.date, e.end_date, e.location, e.speaker,
	       e.category, e.capacity, e.is_online, e.meeting_link, e.created_by, e.status,
	       e.created_at, e.updated_at,
	       (SELECT COUNT(*) FROM rsvps r WHERE r.event_id = e.id) AS rsvp_count,
	       u.name AS created_by_name, u.email AS created_by_email
	FROM events e
	LEFT JOIN users u ON e.created_by = u.id`

func scanEvent(row interface{ Scan(dest ...any) error }) (*model.Event, error) {
	e := &model.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.EndDate, &e.Location, &e.Speaker,
		&e.Category, &e.Capacity, &e.IsOnline, &e.MeetingLink, &e.CreatedByID, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
		&e.RSVPCount, &e.CreatedByName, &e.CreatedByEmail,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *pgEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	query := eventSelect + ` WHERE e.id = $1`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEventRepository.FindByID: %w", err)
	}

	tags, err := r.GetTagsByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Tags = tags
	return event, nil
}

// buildEventWhere turns a filter into a WHERE clause with positional args.
// Returns the clause (empty when unfiltered), the args and the next free
// placeholder index.
func buildEventWhere(filter EventFilter) (string, []interface{}, int) {
	var conditions []string
	var args []interface{}
	argID := 1

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, fmt.Sprintf(
			`(e.title ILIKE $%d OR e.speaker ILIKE $%d OR e.location ILIKE $%d
			  OR EXISTS (SELECT 1 FROM event_tags et WHERE et.event_id = e.id AND et.tag ILIKE $%d))`,
			argID, argID, argID, argID))
		args = append(args, pattern)
		argID++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("e.category = $%d", argID))
		args = append(args, filter.Category)
		argID++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argID))
		args = append(args, filter.Status)
		argID++
	}

	if len(conditions) == 0 {
		return "", args, argID
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, argID
}

func (r *pgEventRepository) List(ctx context.Context, filter EventFilter, limit, offset int) ([]model.Event, int, error) {
	where, args, argID := buildEventWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM events e` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgEventRepository.List: count: %w", err)
	}

	query := eventSelect + where + fmt.Sprintf(" ORDER BY e.date ASC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgEventRepository.List: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("pgEventRepository.List: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("pgEventRepository.List: %w", err)
	}

	for i := range events {
		tags, err := r.GetTagsByEventID(ctx, events[i].ID)
		if err != nil {
			return nil, 0, err
		}
		events[i].Tags = tags
	}

	return events, total, nil
}

func (r *pgEventRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	var result sql.Result
	var err error
	if tx != nil {
		result, err = tx.ExecContext(ctx, query, id)
	} else {
		result, err = r.db.ExecContext(ctx, query, id)
	}
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgEventRepository) ReplaceTags(ctx context.Context, tx *sql.Tx, eventID string, tags []string) error {
	deleteQuery := `DELETE FROM event_tags WHERE event_id = $1`
	insertQuery := `INSERT INTO event_tags (event_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	exec := func(query string, args ...interface{}) error {
		var err error
		if tx != nil {
			_, err = tx.ExecContext(ctx, query, args...)
		} else {
			_, err = r.db.ExecContext(ctx, query, args...)
		}
		return err
	}

	if err := exec(deleteQuery, eventID); err != nil {
		return fmt.Errorf("pgEventRepository.ReplaceTags: %w", err)
	}
	for _, tag := range tags {
		if err := exec(insertQuery, eventID, tag); err != nil {
			return fmt.Errorf("pgEventRepository.ReplaceTags: %w", err)
		}
	}
	return nil
}

func (r *pgEventRepository) GetTagsByEventID(ctx context.Context, eventID string) ([]string, error) {
	query := `SELECT tag FROM event_tags WHERE event_id = $1 ORDER BY tag`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("pgEventRepository.GetTagsByEventID: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("pgEventRepository.GetTagsByEventID: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEventRepository.GetTagsByEventID: %w", err)
	}
	return tags, nil
}

func (r *pgEventRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgEventRepository.CountAll: %w", err)
	}
	return count, nil
}

func (r *pgEventRepository) CountUpcoming(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM events WHERE date >= CURRENT_TIMESTAMP`
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("pgEventRepository.CountUpcoming: %w", err)
	}
	return count, nil
}

func (r *pgEventRepository) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	query := `SELECT category, COUNT(*) FROM events GROUP BY category ORDER BY COUNT(*) DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgEventRepository.CategoryCounts: %w", err)
	}
	defer rows.Close()

	counts := []model.CategoryCount{}
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("pgEventRepository.CategoryCounts: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEventRepository.CategoryCounts: %w", err)
	}
	return counts, nil
}
