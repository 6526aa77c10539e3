package common

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint writes. Optional fields are
// omitted when unset so a plain success body stays small.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Token     string      `json:"token,omitempty"`
	Question  string      `json:"question,omitempty"`
	Answer    string      `json:"answer,omitempty"`
	HasRSVPed *bool       `json:"hasRSVPed,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Total     *int        `json:"total,omitempty"`
	Page      *int        `json:"page,omitempty"`
	Pages     *int        `json:"pages,omitempty"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Success: false, Message: message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "message": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// IntPtr is a convenience for the optional numeric envelope fields.
func IntPtr(v int) *int { return &v }

// BoolPtr is a convenience for the optional boolean envelope fields.
func BoolPtr(v bool) *bool { return &v }
