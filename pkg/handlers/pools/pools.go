package pools

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/chris/risk-pool-lending/pkg/ledger"
	"github.com/chris/risk-pool-lending/pkg/middleware"
	"github.com/chris/risk-pool-lending/pkg/transfer"
	"github.com/go-chi/chi/v5"
)

// PoolsHandler holds the dependencies for pool-related handlers.
type PoolsHandler struct {
	Registry ledger.PoolRegistry
}

// NewPoolsHandler creates a new PoolsHandler.
func NewPoolsHandler(registry ledger.PoolRegistry) *PoolsHandler {
	return &PoolsHandler{Registry: registry}
}

// NewPool is the request body for creating a pool. Attached defaults to
// InitialFunds when omitted.
type NewPool struct {
	RiskLevel    uint64  `json:"risk_level"`
	InitialFunds uint64  `json:"initial_funds"`
	Attached     *uint64 `json:"attached,omitempty"`
}

// Deposit is the request body for topping up a pool.
type Deposit struct {
	Amount uint64 `json:"amount"`
}

// CreatePool handles the logic for creating a new risk pool.
func (h *PoolsHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	var newPool NewPool
	if err := json.NewDecoder(r.Body).Decode(&newPool); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	attached := newPool.InitialFunds
	if newPool.Attached != nil {
		attached = *newPool.Attached
	}

	pool, err := h.Registry.CreatePool(r.Context(), caller, newPool.RiskLevel, newPool.InitialFunds, attached)
	if err != nil {
		writeLedgerError(w, "Failed to create pool", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(pool); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// AddFunds handles the logic for topping up a pool.
func (h *PoolsHandler) AddFunds(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	poolID, err := strconv.ParseUint(chi.URLParam(r, "poolID"), 10, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid pool id: %v", err), http.StatusBadRequest)
		return
	}

	var deposit Deposit
	if err := json.NewDecoder(r.Body).Decode(&deposit); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	pool, err := h.Registry.AddFunds(r.Context(), caller, poolID, deposit.Amount)
	if err != nil {
		writeLedgerError(w, "Failed to add funds", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pool); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetPool handles the logic for retrieving a pool by its id.
func (h *PoolsHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	poolID, err := strconv.ParseUint(chi.URLParam(r, "poolID"), 10, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid pool id: %v", err), http.StatusBadRequest)
		return
	}

	pool, err := h.Registry.GetPool(r.Context(), poolID)
	if err != nil {
		writeLedgerError(w, "Failed to retrieve pool", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pool); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListPools handles the logic for retrieving all pools.
func (h *PoolsHandler) ListPools(w http.ResponseWriter, r *http.Request) {
	pools, err := h.Registry.ListPools(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve pools: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(pools); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// writeLedgerError maps ledger sentinel errors to HTTP status codes.
func writeLedgerError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrUnauthorized):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusForbidden)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusNotFound)
	case errors.Is(err, transfer.ErrInsufficientBalance):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR: %s: %v", msg, err)
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusInternalServerError)
	}
}
