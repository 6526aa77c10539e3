package service

import (
	"context"
	"database/sql"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventService struct {
	eventRepo repository.EventRepository
	rsvpRepo  repository.RSVPRepository
	tx        TxRunner
}

func NewEventService(eventRepo repository.EventRepository, rsvpRepo repository.RSVPRepository, tx TxRunner) *EventService {
	return &EventService{eventRepo: eventRepo, rsvpRepo: rsvpRepo, tx: tx}
}

type CreateEventRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	EndDate     *time.Time          `json:"end_date,omitempty"`
	Location    string              `json:"location"`
	Speaker     string              `json:"speaker"`
	Category    model.EventCategory `json:"category"`
	Capacity    int                 `json:"capacity"`
	Tags        []string            `json:"tags"`
	IsOnline    bool                `json:"is_online"`
	MeetingLink string              `json:"meeting_link"`
}

type UpdateEventRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Date        *time.Time           `json:"date,omitempty"`
	EndDate     *time.Time           `json:"end_date,omitempty"`
	Location    *string              `json:"location,omitempty"`
	Speaker     *string              `json:"speaker,omitempty"`
	Category    *model.EventCategory `json:"category,omitempty"`
	Capacity    *int                 `json:"capacity,omitempty"`
	Tags        *[]string            `json:"tags,omitempty"`
	IsOnline    *bool                `json:"is_online,omitempty"`
	MeetingLink *string              `json:"meeting_link,omitempty"`
	Status      *model.EventStatus   `json:"status,omitempty"`
}

// EventDetails is a single event with its resolved attendee list.
type EventDetails struct {
	model.Event
	Attendees []model.PublicProfile `json:"attendees"`
}

// normalizeTags trims and deduplicates tags, keeping the first occurrence
// verbatim. The dedupe key is slugified so "Machine Learning" and
// "machine-learning" count as the same tag.
func normalizeTags(tags []string) []string {
	seen := map[string]bool{}
	normalized := []string{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		key := slug.Make(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, t)
	}
	return normalized
}

func (s *EventService) CreateEvent(ctx context.Context, creatorID string, req CreateEventRequest) (*model.Event, error) {
	if req.Title == "" || req.Date.IsZero() || req.Location == "" || req.Speaker == "" {
		return nil, common.Errorf("title, date, location and speaker are required: %w", common.ErrValidation)
	}
	if req.Capacity < 0 {
		return nil, common.Errorf("capacity cannot be negative: %w", common.ErrValidation)
	}

	category := req.Category
	if category == "" {
		category = model.CategoryMeetup
	}
	if !model.IsValidCategory(category) {
		return nil, common.Errorf("invalid category %q: %w", category, common.ErrValidation)
	}

	event := &model.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Speaker:     req.Speaker,
		Category:    category,
		Capacity:    req.Capacity,
		Tags:        normalizeTags(req.Tags),
		IsOnline:    req.IsOnline,
		MeetingLink: req.MeetingLink,
		CreatedByID: &creatorID,
		Status:      model.StatusUpcoming,
	}

	err := s.tx.RunInTx(ctx, func(tx *sql.Tx) error {
		if err := s.eventRepo.Create(ctx, tx, event); err != nil {
			return err
		}
		return s.eventRepo.ReplaceTags(ctx, tx, event.ID, event.Tags)
	})
	if err != nil {
		return nil, err
	}

	return s.eventRepo.FindByID(ctx, event.ID)
}

func (s *EventService) ListEvents(ctx context.Context, filter repository.EventFilter, page, pageSize int) ([]model.Event, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize
	return s.eventRepo.List(ctx, filter, pageSize, offset)
}

func (s *EventService) GetEventDetails(ctx context.Context, id string) (*EventDetails, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.rsvpRepo.ListAttendeesByEventID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &EventDetails{Event: *event, Attendees: []model.PublicProfile{}}
	for _, a := range attendees {
		details.Attendees = append(details.Attendees, a.User)
	}
	return details, nil
}

// UpdateEvent merges the provided fields into the stored event and
// re-validates the result. Any authenticated caller may update any event;
// there is no ownership check.
func (s *EventService) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Speaker != nil {
		event.Speaker = *req.Speaker
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.IsOnline != nil {
		event.IsOnline = *req.IsOnline
	}
	if req.MeetingLink != nil {
		event.MeetingLink = *req.MeetingLink
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.Tags != nil {
		event.Tags = normalizeTags(*req.Tags)
	}

	if event.Title == "" || event.Date.IsZero() || event.Location == "" || event.Speaker == "" {
		return nil, common.Errorf("title, date, location and speaker are required: %w", common.ErrValidation)
	}
	if event.Capacity < 0 {
		return nil, common.Errorf("capacity cannot be negative: %w", common.ErrValidation)
	}
	if !model.IsValidCategory(event.Category) {
		return nil, common.Errorf("invalid category %q: %w", event.Category, common.ErrValidation)
	}
	if !model.IsValidStatus(event.Status) {
		return nil, common.Errorf("invalid status %q: %w", event.Status, common.ErrValidation)
	}

	err = s.tx.RunInTx(ctx, func(tx *sql.Tx) error {
		if err := s.eventRepo.Update(ctx, tx, event); err != nil {
			return err
		}
		if req.Tags != nil {
			return s.eventRepo.ReplaceTags(ctx, tx, event.ID, event.Tags)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.eventRepo.FindByID(ctx, id)
}

// DeleteEvent removes the event and cascades to its RSVPs in one
// transaction.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.tx.RunInTx(ctx, func(tx *sql.Tx) error {
		if err := s.eventRepo.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.rsvpRepo.DeleteByEventID(ctx, tx, id)
	})
}

func (s *EventService) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	return s.eventRepo.CategoryCounts(ctx)
}

// Stats computes the dashboard aggregate at query time; nothing is cached.
func (s *EventService) Stats(ctx context.Context) (*model.Stats, error) {
	totalEvents, err := s.eventRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.eventRepo.CountUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	totalRSVPs, err := s.rsvpRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	categoryCounts, err := s.eventRepo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		TotalEvents:    totalEvents,
		UpcomingEvents: upcoming,
		TotalRSVPs:     totalRSVPs,
		CategoryCounts: categoryCounts,
	}, nil
}
