package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"negotiation-agent/domain"
	"negotiation-agent/service"
)

type PitchHandler struct {
	service *service.PitchService
}

func NewPitchHandler(service *service.PitchService) *PitchHandler {
	return &PitchHandler{service: service}
}

type pitchRequest struct {
	Idea string `json:"idea"`
}

type pitchResponse struct {
	Success bool               `json:"success"`
	Pitch   domain.PitchResult `json:"pitch"`
}

// GeneratePitch converts an informal loan request into a professional pitch.
func (h *PitchHandler) GeneratePitch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Idea) == "" {
		http.Error(w, "please provide your loan request idea", http.StatusBadRequest)
		return
	}

	result, err := h.service.GeneratePitch(req.Idea)
	if err != nil {
		log.Printf("Error generating pitch: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, pitchResponse{Success: true, Pitch: result})
}
