package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/risk-pool-lending/pkg/ledger"
	"github.com/chris/risk-pool-lending/pkg/models"
)

// RequestLoan issues a loan to the borrower from the best-matching pool for
// the borrower's credit score. Every precondition is checked before any
// state changes; the principal payout happens last, and a failed payout
// rolls the whole operation back.
func (l *Ledger) RequestLoan(ctx context.Context, borrower string, amount, durationSecs uint64) (*models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount == 0 {
		return nil, fmt.Errorf("loan amount must be positive: %w", ledger.ErrInvalidInput)
	}
	if durationSecs == 0 {
		return nil, fmt.Errorf("loan duration must be positive: %w", ledger.ErrInvalidInput)
	}

	score := l.credit.get(borrower)
	if score < models.MinCreditScore {
		return nil, fmt.Errorf("score %d below minimum %d: %w", score, models.MinCreditScore, ledger.ErrCreditTooLow)
	}

	poolID, ok := SelectPool(score, amount, l.pools)
	if !ok {
		return nil, fmt.Errorf("no pool can fund %d: %w", amount, ledger.ErrNoSuitablePool)
	}

	// The selector already guarantees eligibility; re-validate against
	// current state anyway so a selector bug cannot overdraw the pool.
	pool := l.pools[poolID]
	if pool.AvailableFunds < amount {
		return nil, fmt.Errorf("pool %d has %d available, need %d: %w", poolID, pool.AvailableFunds, amount, ledger.ErrInsufficientFunds)
	}

	loan := &models.Loan{
		Id:       uint64(len(l.loans)),
		Borrower: borrower,
		Amount:   amount,
		DueDate:  l.now().Add(time.Duration(durationSecs) * time.Second),
		IsRepaid: false,
		PoolId:   poolID,
	}
	l.loans = append(l.loans, loan)
	pool.AvailableFunds -= amount

	// Pay out the principal last. On failure, undo the record and the fund
	// reservation so the failed request leaves no trace; the freed id goes
	// to the next loan, keeping ids dense.
	if err := l.bank.Deposit(ctx, borrower, amount); err != nil {
		l.loans = l.loans[:len(l.loans)-1]
		pool.AvailableFunds += amount
		return nil, fmt.Errorf("failed to pay out principal: %w", err)
	}

	l.emit(ctx, models.Event{
		Type: models.EventLoanCreated,
		LoanCreated: &models.LoanCreated{
			LoanId:   loan.Id,
			Borrower: loan.Borrower,
			Amount:   loan.Amount,
			DueDate:  loan.DueDate,
			PoolId:   loan.PoolId,
		},
	})

	l.logger.Info("loan created", "loan_id", loan.Id, "borrower", borrower, "amount", amount, "pool_id", poolID)
	copied := *loan
	return &copied, nil
}

// RepayLoan repays a loan with the attached amount. The attached funds are
// collected from the caller before any state changes; excess over the loan
// amount is refunded after the repayment is applied. Repayment releases the
// loan amount back to the funding pool and raises the borrower's score.
func (l *Ledger) RepayLoan(ctx context.Context, caller string, loanID, attached uint64) (*models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if loanID >= uint64(len(l.loans)) {
		return nil, fmt.Errorf("loan %d: %w", loanID, ledger.ErrNotFound)
	}
	loan := l.loans[loanID]
	if caller != loan.Borrower {
		return nil, fmt.Errorf("caller %s is not the borrower: %w", caller, ledger.ErrUnauthorized)
	}
	if loan.IsRepaid {
		return nil, fmt.Errorf("loan %d: %w", loanID, ledger.ErrAlreadyRepaid)
	}
	if attached < loan.Amount {
		return nil, fmt.Errorf("attached %d, owed %d: %w", attached, loan.Amount, ledger.ErrInsufficientPayment)
	}

	if err := l.bank.Withdraw(ctx, caller, attached); err != nil {
		return nil, fmt.Errorf("failed to collect repayment: %w", err)
	}

	loan.IsRepaid = true

	newScore := l.credit.applyDelta(loan.Borrower, true, l.now())
	l.emit(ctx, models.Event{
		Type: models.EventCreditScoreUpdated,
		CreditScoreUpdated: &models.CreditScoreUpdated{
			Identity: loan.Borrower,
			NewScore: newScore,
		},
	})

	pool := l.pools[loan.PoolId]
	pool.AvailableFunds += loan.Amount

	l.emit(ctx, models.Event{
		Type: models.EventLoanRepaid,
		LoanRepaid: &models.LoanRepaid{
			LoanId:   loan.Id,
			Borrower: loan.Borrower,
			Amount:   loan.Amount,
		},
	})

	// Refund the excess. The repayment itself is already committed; a
	// failed refund must not unwind it.
	if excess := attached - loan.Amount; excess > 0 {
		if err := l.bank.Deposit(ctx, caller, excess); err != nil {
			l.logger.Error("CRITICAL: loan repaid but excess refund failed", "loan_id", loanID, "excess", excess, "error", err)
		}
	}

	l.logger.Info("loan repaid", "loan_id", loanID, "borrower", caller, "amount", loan.Amount, "new_score", newScore)
	copied := *loan
	return &copied, nil
}

// GetLoan retrieves a loan by its id.
func (l *Ledger) GetLoan(ctx context.Context, loanID uint64) (*models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if loanID >= uint64(len(l.loans)) {
		return nil, fmt.Errorf("loan %d: %w", loanID, ledger.ErrNotFound)
	}
	copied := *l.loans[loanID]
	return &copied, nil
}

// ListLoansByBorrower retrieves all loans issued to a borrower, in issuance
// order.
func (l *Ledger) ListLoansByBorrower(ctx context.Context, borrower string) ([]models.Loan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var loans []models.Loan
	for _, loan := range l.loans {
		if loan.Borrower == borrower {
			loans = append(loans, *loan)
		}
	}
	return loans, nil
}
