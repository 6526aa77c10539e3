package handler

import (
	"context"
	"devdosthub/internal/api/middleware"
	"devdosthub/internal/app/service"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newEventHandler(eventRepo *mockEventRepo, rsvpRepo *mockRSVPRepo) *EventHandler {
	eventService := service.NewEventService(eventRepo, rsvpRepo, nil)
	authMW := middleware.NewAuthMiddleware(service.NewAuthService(&mockUserRepo{}))
	return NewEventHandler(eventService, authMW)
}

func TestEventHandler_ListEvents_Pagination(t *testing.T) {
	var gotLimit, gotOffset int
	var gotFilter repository.EventFilter
	h := newEventHandler(&mockEventRepo{
		listFn: func(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]model.Event, int, error) {
			gotLimit, gotOffset, gotFilter = limit, offset, filter
			return []model.Event{{ID: "e1"}, {ID: "e2"}}, 5, nil
		},
	}, &mockRSVPRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/events?page=2&limit=2&search=go&category=workshop", nil)
	rec := httptest.NewRecorder()
	h.listEvents(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotLimit != 2 || gotOffset != 2 {
		t.Errorf("expected limit=2 offset=2, got limit=%d offset=%d", gotLimit, gotOffset)
	}
	if gotFilter.Search != "go" || gotFilter.Category != model.CategoryWorkshop {
		t.Errorf("filter not passed through: %+v", gotFilter)
	}

	env := decodeEnvelope(t, rec)
	if env.Count == nil || *env.Count != 2 {
		t.Errorf("expected count=2, got %v", env.Count)
	}
	if env.Total == nil || *env.Total != 5 {
		t.Errorf("expected total=5, got %v", env.Total)
	}
	if env.Page == nil || *env.Page != 2 {
		t.Errorf("expected page=2, got %v", env.Page)
	}
	if env.Pages == nil || *env.Pages != 3 {
		t.Errorf("expected pages=3, got %v", env.Pages)
	}
}

func TestEventHandler_ListEvents_Defaults(t *testing.T) {
	var gotLimit, gotOffset int
	h := newEventHandler(&mockEventRepo{
		listFn: func(ctx context.Context, filter repository.EventFilter, limit, offset int) ([]model.Event, int, error) {
			gotLimit, gotOffset = limit, offset
			return []model.Event{}, 0, nil
		},
	}, &mockRSVPRepo{})

	rec := httptest.NewRecorder()
	h.listEvents(rec, httptest.NewRequest(http.MethodGet, "/api/events?page=-1&limit=500", nil))

	if gotLimit != 50 || gotOffset != 0 {
		t.Errorf("expected defaults limit=50 offset=0, got limit=%d offset=%d", gotLimit, gotOffset)
	}
}

func TestEventHandler_GetEvent(t *testing.T) {
	eventRepo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*model.Event, error) {
			if id != "e1" {
				return nil, common.ErrNotFound
			}
			return &model.Event{ID: "e1", Title: "Go Meetup"}, nil
		},
	}
	h := newEventHandler(eventRepo, &mockRSVPRepo{
		rsvps: []model.RSVP{{ID: "r1", EventID: "e1", UserID: "u1"}},
	})

	r := chi.NewRouter()
	r.Get("/api/events/{eventID}", h.getEvent)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/e1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var details struct {
		Title     string            `json:"title"`
		Attendees []json.RawMessage `json:"attendees"`
	}
	if err := json.Unmarshal(env.Data, &details); err != nil {
		t.Fatalf("decoding event details: %v", err)
	}
	if details.Title != "Go Meetup" {
		t.Errorf("unexpected title %q", details.Title)
	}
	if len(details.Attendees) != 1 {
		t.Errorf("expected 1 attendee, got %d", len(details.Attendees))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown event, got %d", rec.Code)
	}
}

func TestEventHandler_CreateEvent_ValidationError(t *testing.T) {
	h := newEventHandler(&mockEventRepo{}, &mockRSVPRepo{})
	user := &model.User{ID: "u1"}

	body := `{"title":"","date":"2026-10-01T18:00:00Z","location":"Pune","description":"x","speaker":"y"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)), user)
	rec := httptest.NewRecorder()
	h.createEvent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEventHandler_CreateEvent_RequiresUser(t *testing.T) {
	h := newEventHandler(&mockEventRepo{}, &mockRSVPRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.createEvent(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user context, got %d", rec.Code)
	}
}

func TestEventHandler_Categories(t *testing.T) {
	h := newEventHandler(&mockEventRepo{}, &mockRSVPRepo{})

	rec := httptest.NewRecorder()
	h.categories(rec, httptest.NewRequest(http.MethodGet, "/api/events/categories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEventHandler_Stats(t *testing.T) {
	h := newEventHandler(&mockEventRepo{}, &mockRSVPRepo{
		rsvps: []model.RSVP{{ID: "r1", EventID: "e1", UserID: "u1"}},
	})

	rec := httptest.NewRecorder()
	h.stats(rec, httptest.NewRequest(http.MethodGet, "/api/events/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var stats model.Stats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.TotalRSVPs != 1 {
		t.Errorf("expected totalRSVPs=1, got %d", stats.TotalRSVPs)
	}
}
