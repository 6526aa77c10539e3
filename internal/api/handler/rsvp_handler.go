package handler

import (
	"devdosthub/internal/api/middleware"
	"devdosthub/internal/app/service"
	"devdosthub/internal/common"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type RSVPHandler struct {
	rsvpService *service.RSVPService
	authMW      *middleware.AuthMiddleware
}

func NewRSVPHandler(rsvpService *service.RSVPService, authMW *middleware.AuthMiddleware) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService, authMW: authMW}
}

func (h *RSVPHandler) RegisterRoutes(r chi.Router) {
	r.Get("/event/{eventID}", h.listForEvent) // GET /api/rsvps/event/{eventId} (public attendee list)

	r.Group(func(authed chi.Router) {
		authed.Use(h.authMW.Authenticator)
		authed.Post("/", h.createRSVP)
		authed.Delete("/{eventID}", h.cancelRSVP)
		authed.Get("/my", h.myEvents)
		authed.Get("/check/{eventID}", h.check)
	})
}

func (h *RSVPHandler) createRSVP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req struct {
		EventID string `json:"event_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	rsvp, err := h.rsvpService.CreateRSVP(r.Context(), req.EventID, user.ID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.Response{
		Success: true,
		Message: "RSVP successful! You're going 🎉",
		Data:    rsvp,
	})
}

func (h *RSVPHandler) cancelRSVP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.rsvpService.CancelRSVP(r.Context(), chi.URLParam(r, "eventID"), user.ID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Message: "RSVP cancelled successfully",
	})
}

func (h *RSVPHandler) myEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	events, err := h.rsvpService.MyEvents(r.Context(), user.ID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Count:   common.IntPtr(len(events)),
		Data:    events,
	})
}

func (h *RSVPHandler) check(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	hasRSVPed, err := h.rsvpService.HasRSVPed(r.Context(), chi.URLParam(r, "eventID"), user.ID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success:   true,
		HasRSVPed: common.BoolPtr(hasRSVPed),
	})
}

func (h *RSVPHandler) listForEvent(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.rsvpService.AttendeesForEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Count:   common.IntPtr(len(attendees)),
		Data:    attendees,
	})
}
