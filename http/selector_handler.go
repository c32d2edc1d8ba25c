package http

import (
	"encoding/json"
	"net/http"

	"negotiation-agent/domain"
	"negotiation-agent/service"
)

type SelectorHandler struct{}

func NewSelectorHandler() *SelectorHandler {
	return &SelectorHandler{}
}

type selectRequest struct {
	Offers     []domain.RankedOffer `json:"offers"`
	WPrincipal *float64             `json:"w_principal"`
	WInterest  *float64             `json:"w_interest"`
}

type selectResponse struct {
	Success   bool                 `json:"success"`
	BestOffer *domain.RankedOffer  `json:"best_offer"`
	Offers    []domain.RankedOffer `json:"offers"`
}

// SelectOffer ranks the submitted offers and returns the best one along with
// all offers annotated with their composite scores.
func (h *SelectorHandler) SelectOffer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Offers) == 0 {
		http.Error(w, "please provide a list of offers", http.StatusBadRequest)
		return
	}

	wPrincipal := service.DefaultPrincipalWeight
	if req.WPrincipal != nil {
		wPrincipal = *req.WPrincipal
	}
	wInterest := service.DefaultInterestWeight
	if req.WInterest != nil {
		wInterest = *req.WInterest
	}

	best, err := service.SelectBestOffer(req.Offers, wPrincipal, wInterest)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if best == nil {
		http.Error(w, "no valid offers found", http.StatusNotFound)
		return
	}

	writeJSON(w, selectResponse{Success: true, BestOffer: best, Offers: req.Offers})
}
