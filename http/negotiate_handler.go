package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"negotiation-agent/domain"
	"negotiation-agent/repository"
	"negotiation-agent/service"
)

type NegotiateHandler struct {
	service  *service.NegotiationService
	sessions repository.SessionRepository
}

func NewNegotiateHandler(
	service *service.NegotiationService,
	sessions repository.SessionRepository,
) *NegotiateHandler {
	return &NegotiateHandler{service: service, sessions: sessions}
}

type negotiateRequest struct {
	SessionID    string        `json:"session_id"`
	InvestorID   string        `json:"investor_id"`
	Message      string        `json:"message"`
	CurrentOffer *domain.Offer `json:"current_offer"`
	History      []domain.Turn `json:"history"`
}

type negotiateResponse struct {
	Success      bool          `json:"success"`
	SessionID    string        `json:"session_id"`
	Status       string        `json:"status"`
	Message      string        `json:"message"`
	UpdatedOffer domain.Offer  `json:"updated_offer"`
	History      []domain.Turn `json:"history"`
}

// Chat processes one investor message during negotiation. State can be sent
// inline (current_offer + history) or referenced by session_id; either way
// the returned state is persisted under the session for the next round.
func (h *NegotiateHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req negotiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "please provide a message", http.StatusBadRequest)
		return
	}

	offer, history := h.resolveState(&req)

	result, err := h.service.NegotiateRound(offer, strings.TrimSpace(req.Message), history)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Persisting the session is not critical for this round's response.
	session := domain.NegotiationSession{
		Offer:   result.UpdatedOffer,
		History: result.History,
		Status:  result.Status,
	}
	if err := h.sessions.Save(sessionID, session); err != nil {
		log.Printf("Warning: failed to save negotiation session %s: %v", sessionID, err)
	}

	resp := negotiateResponse{
		Success:      true,
		SessionID:    sessionID,
		Status:       result.Status,
		Message:      result.Message,
		UpdatedOffer: result.UpdatedOffer,
		History:      result.History,
	}

	writeJSON(w, resp)
}

// resolveState prefers inline state, falls back to the stored session, and
// otherwise starts a fresh negotiation for the given investor.
func (h *NegotiateHandler) resolveState(req *negotiateRequest) (domain.Offer, []domain.Turn) {
	if req.CurrentOffer != nil {
		return *req.CurrentOffer, req.History
	}
	if req.SessionID != "" {
		if session, ok := h.sessions.Get(req.SessionID); ok {
			return session.Offer, session.History
		}
	}

	investorID := req.InvestorID
	if investorID == "" {
		investorID = "INV1"
	}
	return domain.Offer{InvestorID: investorID}, req.History
}

// writeJSON encodes into a buffer first so a failed encode never truncates a
// response already marked 200.
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
