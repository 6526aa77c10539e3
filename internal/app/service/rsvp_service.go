package service

import (
	"context"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type RSVPService struct {
	rsvpRepo  repository.RSVPRepository
	eventRepo repository.EventRepository
}

func NewRSVPService(rsvpRepo repository.RSVPRepository, eventRepo repository.EventRepository) *RSVPService {
	return &RSVPService{rsvpRepo: rsvpRepo, eventRepo: eventRepo}
}

// CreateRSVP registers userID for eventID. The capacity and duplicate
// checks are separate reads before the insert, with no surrounding
// transaction: two racing requests can both pass their checks and both
// insert. That window is a known property of this flow, kept as-is.
func (s *RSVPService) CreateRSVP(ctx context.Context, eventID, userID string) (*model.RSVP, error) {
	if eventID == "" {
		return nil, common.Errorf("event id is required: %w", common.ErrValidation)
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Capacity > 0 {
		count, err := s.rsvpRepo.CountByEventID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if count >= event.Capacity {
			return nil, common.ErrCapacityExceeded
		}
	}

	_, err = s.rsvpRepo.FindByEventAndUser(ctx, eventID, userID)
	if err == nil {
		return nil, common.ErrDuplicateRSVP
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing RSVP: %w", err)
	}

	rsvp := &model.RSVP{
		ID:      uuid.NewString(),
		EventID: eventID,
		UserID:  userID,
	}
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		return nil, err
	}
	return rsvp, nil
}

func (s *RSVPService) CancelRSVP(ctx context.Context, eventID, userID string) error {
	return s.rsvpRepo.DeleteByEventAndUser(ctx, eventID, userID)
}

// MyEvents lists the caller's RSVPed events. RSVPs whose event has been
// deleted out from under them are skipped, not surfaced as errors.
func (s *RSVPService) MyEvents(ctx context.Context, userID string) ([]model.RSVPedEvent, error) {
	return s.rsvpRepo.ListEventsByUserID(ctx, userID)
}

func (s *RSVPService) HasRSVPed(ctx context.Context, eventID, userID string) (bool, error) {
	_, err := s.rsvpRepo.FindByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *RSVPService) AttendeesForEvent(ctx context.Context, eventID string) ([]model.Attendee, error) {
	return s.rsvpRepo.ListAttendeesByEventID(ctx, eventID)
}
