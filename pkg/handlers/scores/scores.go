package scores

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/risk-pool-lending/pkg/ledger"
	"github.com/go-chi/chi/v5"
)

// ScoresHandler holds the dependencies for credit-score handlers.
type ScoresHandler struct {
	Reader ledger.CreditReader
}

// NewScoresHandler creates a new ScoresHandler.
func NewScoresHandler(reader ledger.CreditReader) *ScoresHandler {
	return &ScoresHandler{Reader: reader}
}

// Score is the response body for a credit score read.
type Score struct {
	Identity string `json:"identity"`
	Score    uint64 `json:"score"`
}

// GetCreditScore handles the logic for retrieving an identity's credit
// score. Identities never seen before read as the initial score.
func (h *ScoresHandler) GetCreditScore(w http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	if identity == "" {
		http.Error(w, "Missing identity", http.StatusBadRequest)
		return
	}

	score, err := h.Reader.GetCreditScore(r.Context(), identity)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve credit score: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(Score{Identity: identity, Score: score}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
