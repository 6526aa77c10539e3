package handler

import (
	"devdosthub/internal/app/service"
	"devdosthub/internal/common"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type AIHandler struct {
	aiService *service.AIService
}

func NewAIHandler(aiService *service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) RegisterRoutes(r chi.Router) {
	r.Post("/ask", h.ask) // POST /api/ai/ask
}

func (h *AIHandler) ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	answer, err := h.aiService.Ask(r.Context(), req.Question)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.Response{
		Success:  true,
		Question: req.Question,
		Answer:   answer,
	})
}
