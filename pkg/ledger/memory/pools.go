package memory

import (
	"context"
	"fmt"

	"github.com/chris/risk-pool-lending/pkg/ledger"
	"github.com/chris/risk-pool-lending/pkg/models"
)

// CreatePool creates a new risk pool with the next sequential id. Only the
// administrator may create pools. attached is the amount accompanying the
// call; it must exactly equal initialFunds and is withdrawn from the caller
// before any state changes.
func (l *Ledger) CreatePool(ctx context.Context, caller string, riskLevel, initialFunds, attached uint64) (*models.RiskPool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.admin {
		return nil, fmt.Errorf("caller %s is not the administrator: %w", caller, ledger.ErrUnauthorized)
	}
	if riskLevel < models.MinRiskLevel || riskLevel > models.MaxRiskLevel {
		return nil, fmt.Errorf("risk level %d out of range [%d, %d]: %w", riskLevel, models.MinRiskLevel, models.MaxRiskLevel, ledger.ErrInvalidInput)
	}
	if attached != initialFunds {
		return nil, fmt.Errorf("attached amount %d does not match initial funds %d: %w", attached, initialFunds, ledger.ErrInvalidInput)
	}

	// Collect the initial capital before mutating, so a failed transfer
	// leaves no partial state.
	if initialFunds > 0 {
		if err := l.bank.Withdraw(ctx, caller, initialFunds); err != nil {
			return nil, fmt.Errorf("failed to collect initial funds: %w", err)
		}
	}

	pool := &models.RiskPool{
		Id:             uint64(len(l.pools)),
		TotalFunds:     initialFunds,
		AvailableFunds: initialFunds,
		RiskLevel:      riskLevel,
	}
	l.pools = append(l.pools, pool)

	l.emit(ctx, models.Event{
		Type: models.EventPoolCreated,
		PoolCreated: &models.PoolCreated{
			PoolId:       pool.Id,
			RiskLevel:    pool.RiskLevel,
			InitialFunds: initialFunds,
		},
	})

	l.logger.Info("pool created", "pool_id", pool.Id, "risk_level", pool.RiskLevel, "initial_funds", initialFunds)
	copied := *pool
	return &copied, nil
}

// AddFunds tops up an existing pool. Open to any caller. The amount is
// withdrawn from the caller before the pool is mutated; both total and
// available funds grow by amount.
func (l *Ledger) AddFunds(ctx context.Context, caller string, poolID, amount uint64) (*models.RiskPool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if poolID >= uint64(len(l.pools)) {
		return nil, fmt.Errorf("pool %d: %w", poolID, ledger.ErrNotFound)
	}
	if amount == 0 {
		return nil, fmt.Errorf("deposit amount must be positive: %w", ledger.ErrInvalidInput)
	}

	if err := l.bank.Withdraw(ctx, caller, amount); err != nil {
		return nil, fmt.Errorf("failed to collect deposit: %w", err)
	}

	pool := l.pools[poolID]
	pool.TotalFunds += amount
	pool.AvailableFunds += amount

	l.emit(ctx, models.Event{
		Type: models.EventFundsAdded,
		FundsAdded: &models.FundsAdded{
			PoolId: poolID,
			Amount: amount,
		},
	})

	l.logger.Info("funds added", "pool_id", poolID, "amount", amount)
	copied := *pool
	return &copied, nil
}

// GetPool retrieves a pool by its id.
func (l *Ledger) GetPool(ctx context.Context, poolID uint64) (*models.RiskPool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if poolID >= uint64(len(l.pools)) {
		return nil, fmt.Errorf("pool %d: %w", poolID, ledger.ErrNotFound)
	}
	copied := *l.pools[poolID]
	return &copied, nil
}

// ListPools retrieves all pools in ascending id order.
func (l *Ledger) ListPools(ctx context.Context) ([]models.RiskPool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pools := make([]models.RiskPool, len(l.pools))
	for i, p := range l.pools {
		pools[i] = *p
	}
	return pools, nil
}
