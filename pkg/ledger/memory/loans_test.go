package memory

import (
	"context"
	"testing"
	"time"

	eventmocks "github.com/chris/risk-pool-lending/pkg/events/mocks"
	"github.com/chris/risk-pool-lending/pkg/ledger"
	"github.com/chris/risk-pool-lending/pkg/models"
	"github.com/chris/risk-pool-lending/pkg/transfer"
	transfermocks "github.com/chris/risk-pool-lending/pkg/transfer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assertConservation checks that for every pool, the funds out on loan equal
// the sum of outstanding loan amounts against it.
func assertConservation(t *testing.T, l *Ledger) {
	t.Helper()
	outstanding := make(map[uint64]uint64)
	for _, loan := range l.loans {
		if !loan.IsRepaid {
			outstanding[loan.PoolId] += loan.Amount
		}
	}
	for _, pool := range l.pools {
		assert.LessOrEqual(t, pool.AvailableFunds, pool.TotalFunds, "pool %d available exceeds total", pool.Id)
		assert.Equal(t, outstanding[pool.Id], pool.TotalFunds-pool.AvailableFunds, "pool %d conservation", pool.Id)
	}
}

func TestRequestLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		l, bank := newTestLedger(t)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)

		issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return issued }

		loan, err := l.RequestLoan(ctx, "alice", 400, 100)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), loan.Id)
		assert.Equal(t, "alice", loan.Borrower)
		assert.Equal(t, uint64(400), loan.Amount)
		assert.Equal(t, issued.Add(100*time.Second), loan.DueDate)
		assert.False(t, loan.IsRepaid)
		assert.Equal(t, uint64(0), loan.PoolId)

		pool, err := l.GetPool(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), pool.TotalFunds)
		assert.Equal(t, uint64(600), pool.AvailableFunds)
		assert.Equal(t, uint64(400), bank.Balance("alice"))
		assertConservation(t, l)
	})

	t.Run("Invalid Amount Or Duration", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)

		_, err = l.RequestLoan(ctx, "alice", 0, 100)
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)

		_, err = l.RequestLoan(ctx, "alice", 400, 0)
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	})

	t.Run("Credit Too Low", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)

		// The update rule can never produce a score below the minimum, so
		// plant one directly to prove the guard holds regardless of pool
		// availability.
		l.credit.scores["alice"] = &models.CreditScore{Owner: "alice", Score: 250}

		_, err = l.RequestLoan(ctx, "alice", 400, 100)

		assert.ErrorIs(t, err, ledger.ErrCreditTooLow)
		assertConservation(t, l)
	})

	t.Run("No Suitable Pool", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)

		_, err = l.RequestLoan(ctx, "alice", 5000, 100)

		assert.ErrorIs(t, err, ledger.ErrNoSuitablePool)
		assertConservation(t, l)
	})

	t.Run("Picks Closest Risk Pool", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, err := l.CreatePool(ctx, admin, 10, 1000, 1000)
		require.NoError(t, err)
		_, err = l.CreatePool(ctx, admin, 100, 1000, 1000)
		require.NoError(t, err)

		// Untouched borrower scores 500; pool 1 (risk 100) is closer.
		loan, err := l.RequestLoan(ctx, "alice", 400, 100)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), loan.PoolId)
	})

	t.Run("Failed Payout Rolls Back", func(t *testing.T) {
		bank := transfermocks.NewTransferer(t)
		l := New(admin, bank, nil, testLogger())

		bank.On("Withdraw", mock.Anything, admin, uint64(1000)).Once().Return(nil)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)

		bank.On("Deposit", mock.Anything, "alice", uint64(400)).Once().Return(assert.AnError)

		_, err = l.RequestLoan(ctx, "alice", 400, 100)

		assert.Error(t, err)
		assert.Empty(t, l.loans)
		pool, err := l.GetPool(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), pool.AvailableFunds)
		assertConservation(t, l)

		// The freed id is handed to the next issuance, keeping ids dense.
		bank.On("Deposit", mock.Anything, "bob", uint64(100)).Once().Return(nil)
		loan, err := l.RequestLoan(ctx, "bob", 100, 100)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), loan.Id)
	})

	t.Run("Emits LoanCreated Once", func(t *testing.T) {
		bank := transfer.NewMemoryBank()
		bank.Credit(admin, 1000)
		publisher := eventmocks.NewPublisher(t)
		l := New(admin, bank, publisher, testLogger())

		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
			return e.Type == models.EventPoolCreated
		})).Once().Return(nil)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)

		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
			return e.Type == models.EventLoanCreated &&
				e.LoanCreated != nil &&
				e.LoanCreated.LoanId == 0 &&
				e.LoanCreated.Borrower == "alice" &&
				e.LoanCreated.Amount == 400 &&
				e.LoanCreated.PoolId == 0
		})).Once().Return(nil)

		_, err = l.RequestLoan(ctx, "alice", 400, 100)
		require.NoError(t, err)
	})
}

func TestRepayLoan(t *testing.T) {
	ctx := context.Background()

	// issueLoan creates a funded pool and a 400 loan to alice.
	issueLoan := func(t *testing.T) (*Ledger, *transfer.MemoryBank) {
		t.Helper()
		l, bank := newTestLedger(t)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)
		_, err = l.RequestLoan(ctx, "alice", 400, 100)
		require.NoError(t, err)
		return l, bank
	}

	t.Run("Success", func(t *testing.T) {
		l, bank := issueLoan(t)

		loan, err := l.RepayLoan(ctx, "alice", 0, 400)

		require.NoError(t, err)
		assert.True(t, loan.IsRepaid)

		pool, err := l.GetPool(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), pool.AvailableFunds)
		assert.Equal(t, uint64(1000), pool.TotalFunds)

		score, err := l.GetCreditScore(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(510), score)

		assert.Equal(t, uint64(0), bank.Balance("alice"))
		assertConservation(t, l)
	})

	t.Run("Overpayment Refunds The Difference", func(t *testing.T) {
		l, bank := issueLoan(t)
		bank.Credit("alice", 100) // 400 principal + 100 extra

		loan, err := l.RepayLoan(ctx, "alice", 0, 500)

		require.NoError(t, err)
		assert.True(t, loan.IsRepaid)
		assert.Equal(t, uint64(100), bank.Balance("alice"))

		pool, err := l.GetPool(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1000), pool.AvailableFunds)
	})

	t.Run("Not Found", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.RepayLoan(ctx, "alice", 3, 400)

		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("Only The Borrower May Repay", func(t *testing.T) {
		l, bank := issueLoan(t)
		bank.Credit("mallory", 400)

		_, err := l.RepayLoan(ctx, "mallory", 0, 400)

		assert.ErrorIs(t, err, ledger.ErrUnauthorized)
	})

	t.Run("Already Repaid", func(t *testing.T) {
		l, bank := issueLoan(t)
		bank.Credit("alice", 400)

		_, err := l.RepayLoan(ctx, "alice", 0, 400)
		require.NoError(t, err)

		_, err = l.RepayLoan(ctx, "alice", 0, 400)

		assert.ErrorIs(t, err, ledger.ErrAlreadyRepaid)

		// The second attempt must not touch the score again.
		score, err := l.GetCreditScore(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(510), score)
	})

	t.Run("Insufficient Payment", func(t *testing.T) {
		l, _ := issueLoan(t)

		_, err := l.RepayLoan(ctx, "alice", 0, 399)

		assert.ErrorIs(t, err, ledger.ErrInsufficientPayment)

		loan, err := l.GetLoan(ctx, 0)
		require.NoError(t, err)
		assert.False(t, loan.IsRepaid)
	})

	t.Run("Failed Collection Leaves State Unchanged", func(t *testing.T) {
		l, bank := issueLoan(t)
		// Drain alice so the repayment withdrawal fails.
		require.NoError(t, bank.Withdraw(ctx, "alice", 400))

		_, err := l.RepayLoan(ctx, "alice", 0, 400)

		assert.ErrorIs(t, err, transfer.ErrInsufficientBalance)
		loan, err := l.GetLoan(ctx, 0)
		require.NoError(t, err)
		assert.False(t, loan.IsRepaid)
		assertConservation(t, l)
	})

	t.Run("Emits CreditScoreUpdated And LoanRepaid", func(t *testing.T) {
		bank := transfer.NewMemoryBank()
		bank.Credit(admin, 1000)
		publisher := eventmocks.NewPublisher(t)
		l := New(admin, bank, publisher, testLogger())

		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
			return e.Type == models.EventPoolCreated || e.Type == models.EventLoanCreated
		})).Twice().Return(nil)
		_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
		require.NoError(t, err)
		_, err = l.RequestLoan(ctx, "alice", 400, 100)
		require.NoError(t, err)

		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
			return e.Type == models.EventCreditScoreUpdated &&
				e.CreditScoreUpdated != nil &&
				e.CreditScoreUpdated.Identity == "alice" &&
				e.CreditScoreUpdated.NewScore == 510
		})).Once().Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
			return e.Type == models.EventLoanRepaid &&
				e.LoanRepaid != nil &&
				e.LoanRepaid.LoanId == 0 &&
				e.LoanRepaid.Amount == 400
		})).Once().Return(nil)

		_, err = l.RepayLoan(ctx, "alice", 0, 400)
		require.NoError(t, err)
	})
}

func TestScoreSaturatesOverRepeatedRepayments(t *testing.T) {
	ctx := context.Background()
	l, bank := newTestLedger(t)
	_, err := l.CreatePool(ctx, admin, 50, 10_000, 10_000)
	require.NoError(t, err)

	// 500 + 40*10 overshoots the cap; the score must saturate at 850.
	for i := 0; i < 40; i++ {
		loan, err := l.RequestLoan(ctx, "alice", 100, 100)
		require.NoError(t, err)
		_, err = l.RepayLoan(ctx, "alice", loan.Id, 100)
		require.NoError(t, err)

		score, err := l.GetCreditScore(ctx, "alice")
		require.NoError(t, err)
		assert.LessOrEqual(t, score, models.MaxCreditScore)
	}

	score, err := l.GetCreditScore(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.MaxCreditScore, score)
	assert.Equal(t, uint64(0), bank.Balance("alice"))
	assertConservation(t, l)
}

func TestGetLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.GetLoan(ctx, 0)

		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})
}

func TestListLoansByBorrower(t *testing.T) {
	ctx := context.Background()
	l, bank := newTestLedger(t)
	bank.Credit("bob", 0)
	_, err := l.CreatePool(ctx, admin, 50, 1000, 1000)
	require.NoError(t, err)

	_, err = l.RequestLoan(ctx, "alice", 100, 100)
	require.NoError(t, err)
	_, err = l.RequestLoan(ctx, "bob", 200, 100)
	require.NoError(t, err)
	_, err = l.RequestLoan(ctx, "alice", 300, 100)
	require.NoError(t, err)

	loans, err := l.ListLoansByBorrower(ctx, "alice")

	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, uint64(0), loans[0].Id)
	assert.Equal(t, uint64(2), loans[1].Id)
	assertConservation(t, l)
}
