package loans

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

// LoansHandler holds the dependencies for loan-related handlers.
type LoansHandler struct {
	Book ledger.LoanBook
}

// NewLoansHandler creates a new LoansHandler.
func NewLoansHandler(book ledger.LoanBook) *LoansHandler {
	return &LoansHandler{Book: book}
}

// NewLoan is the request body for requesting a loan.
type NewLoan struct {
	Amount       uint64 `json:"amount"`
	DurationSecs uint64 `json:"duration_secs"`
}

// Repayment is the request body for repaying a loan. Attached is the amount
// accompanying the repayment; any excess over the loan amount is refunded.
type Repayment struct {
	Attached uint64 `json:"attached"`
}

// RequestLoan handles the logic for issuing a new loan to the caller.
func (h *LoansHandler) RequestLoan(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	var newLoan NewLoan
	if err := json.NewDecoder(r.Body).Decode(&newLoan); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	loan, err := h.Book.RequestLoan(r.Context(), caller, newLoan.Amount, newLoan.DurationSecs)
	if err != nil {
		writeLedgerError(w, "Failed to request loan", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(loan); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RepayLoan handles the logic for repaying a loan.
func (h *LoansHandler) RepayLoan(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		http.Error(w, "Missing caller identity", http.StatusUnauthorized)
		return
	}

	loanID, err := strconv.ParseUint(chi.URLParam(r, "loanID"), 10, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid loan id: %v", err), http.StatusBadRequest)
		return
	}

	var repayment Repayment
	if err := json.NewDecoder(r.Body).Decode(&repayment); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	loan, err := h.Book.RepayLoan(r.Context(), caller, loanID, repayment.Attached)
	if err != nil {
		writeLedgerError(w, "Failed to repay loan", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loan); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetLoan handles the logic for retrieving a loan by its id.
func (h *LoansHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.ParseUint(chi.URLParam(r, "loanID"), 10, 64)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid loan id: %v", err), http.StatusBadRequest)
		return
	}

	loan, err := h.Book.GetLoan(r.Context(), loanID)
	if err != nil {
		writeLedgerError(w, "Failed to retrieve loan", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loan); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListLoans handles the logic for retrieving the caller's loans. An explicit
// borrower query parameter overrides the default of the caller's own loans.
func (h *LoansHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	borrower := r.URL.Query().Get("borrower")
	if borrower == "" {
		caller, ok := middleware.CallerFromContext(r.Context())
		if !ok {
			http.Error(w, "Missing caller identity", http.StatusUnauthorized)
			return
		}
		borrower = caller
	}

	loans, err := h.Book.ListLoansByBorrower(r.Context(), borrower)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve loans: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loans); err != nil {
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
	case errors.Is(err, ledger.ErrAlreadyRepaid):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusConflict)
	case errors.Is(err, ledger.ErrCreditTooLow),
		errors.Is(err, ledger.ErrNoSuitablePool),
		errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrInsufficientPayment),
		errors.Is(err, transfer.ErrInsufficientBalance):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR: %s: %v", msg, err)
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusInternalServerError)
	}
}
