package handler

import (
	"devdosthub/internal/api/middleware"
	"devdosthub/internal/app/service"
	"devdosthub/internal/common"
	"devdosthub/internal/domain/model"
	"devdosthub/internal/domain/repository"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	eventService *service.EventService
	authMW       *middleware.AuthMiddleware
}

func NewEventHandler(eventService *service.EventService, authMW *middleware.AuthMiddleware) *EventHandler {
	return &EventHandler{eventService: eventService, authMW: authMW}
}

func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listEvents)           // GET /api/events
	r.Get("/categories", h.categories) // GET /api/events/categories
	r.Get("/stats", h.stats)           // GET /api/events/stats
	r.Get("/{eventID}", h.getEvent)    // GET /api/events/{id}

	r.Group(func(authed chi.Router) {
		authed.Use(h.authMW.Authenticator)
		authed.Post("/", h.createEvent)
		authed.Put("/{eventID}", h.updateEvent)
		authed.Delete("/{eventID}", h.deleteEvent)
	})
}

func (h *EventHandler) createEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), user.ID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.Response{
		Success: true,
		Message: "Event created successfully",
		Data:    event,
	})
}

func (h *EventHandler) listEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	filter := repository.EventFilter{
		Search:   q.Get("search"),
		Category: model.EventCategory(q.Get("category")),
		Status:   model.EventStatus(q.Get("status")),
	}

	events, total, err := h.eventService.ListEvents(r.Context(), filter, page, limit)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	pages := (total + limit - 1) / limit
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Count:   common.IntPtr(len(events)),
		Total:   common.IntPtr(total),
		Page:    common.IntPtr(page),
		Pages:   common.IntPtr(pages),
		Data:    events,
	})
}

func (h *EventHandler) categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.eventService.CategoryCounts(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Data: counts})
}

func (h *EventHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.eventService.Stats(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Data: stats})
}

func (h *EventHandler) getEvent(w http.ResponseWriter, r *http.Request) {
	details, err := h.eventService.GetEventDetails(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Data: details})
}

func (h *EventHandler) updateEvent(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Message: "Event updated successfully",
		Data:    event,
	})
}

func (h *EventHandler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.DeleteEvent(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Message: "Event deleted successfully",
	})
}
