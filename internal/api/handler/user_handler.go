package handler

import (
	"devdosthub/internal/api/middleware"
	"devdosthub/internal/app/service"
	"devdosthub/internal/common"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
	authMW      *middleware.AuthMiddleware
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService, authMW *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{authService: authService, userService: userService, authMW: authMW}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register) // POST /api/users/register
	r.Post("/login", h.login)       // POST /api/users/login
	r.Get("/{userID}", h.getUser)   // GET /api/users/{id} (public profile)

	r.Group(func(authed chi.Router) {
		authed.Use(h.authMW.Authenticator)
		authed.Get("/", h.listUsers)
		authed.Get("/me", h.me)
		authed.Put("/me", h.updateMe)

		authed.Group(func(admin chi.Router) {
			admin.Use(middleware.AdminOnly)
			admin.Put("/{userID}/role", h.updateRole)
			admin.Delete("/{userID}", h.deleteUser)
		})
	})
}

func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.Response{
		Success: true,
		Message: "Account created successfully",
		Token:   resp.Token,
		Data:    resp.User,
	})
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Message: "Login successful",
		Token:   resp.Token,
		Data:    resp.User,
	})
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Count:   common.IntPtr(len(users)),
		Data:    users,
	})
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Data: user})
}

func (h *UserHandler) updateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    updated,
	})
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Data: user})
}

func (h *UserHandler) updateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.UpdateRole(r.Context(), chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Data: user})
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "userID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{Success: true, Message: "User deleted"})
}
