package ledger

import (
	"context"

	"github.com/chris/risk-pool-lending/pkg/models"
)

// LoanReader defines the interface for reading loan data.
type LoanReader interface {
	// GetLoan retrieves a loan by its id.
	GetLoan(ctx context.Context, loanID uint64) (*models.Loan, error)

	// ListLoansByBorrower retrieves all loans issued to a borrower.
	ListLoansByBorrower(ctx context.Context, borrower string) ([]models.Loan, error)
}

// LoanManager defines the interface for issuing and repaying loans.
type LoanManager interface {
	// RequestLoan issues a loan of amount to the borrower, funded by the
	// best-matching pool for the borrower's credit score. The duration is
	// in seconds and sets the due date relative to issuance time. The
	// principal is paid out to the borrower; if the payout fails the whole
	// operation is rolled back.
	RequestLoan(ctx context.Context, borrower string, amount, durationSecs uint64) (*models.Loan, error)

	// RepayLoan repays a loan with the attached amount, which must cover the
	// loan amount. Excess payment is refunded to the caller. Only the
	// borrower may repay. Repayment raises the borrower's credit score.
	RepayLoan(ctx context.Context, caller string, loanID, attached uint64) (*models.Loan, error)
}

// LoanBook combines the reader and manager interfaces.
type LoanBook interface {
	LoanReader
	LoanManager
}
