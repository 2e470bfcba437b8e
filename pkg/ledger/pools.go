package ledger

import (
	"context"

	"github.com/chris/risk-pool-lending/pkg/models"
)

// PoolRegistry defines the interface for managing risk pools.
type PoolRegistry interface {
	// CreatePool creates a new pool with the next sequential id. Only the
	// administrator may create pools. The attached transfer amount must
	// exactly equal initialFunds.
	CreatePool(ctx context.Context, caller string, riskLevel, initialFunds, attached uint64) (*models.RiskPool, error)

	// AddFunds tops up an existing pool. Open to any caller; amount must be
	// positive. Both total and available funds grow by amount.
	AddFunds(ctx context.Context, caller string, poolID, amount uint64) (*models.RiskPool, error)

	// GetPool retrieves a pool by its id.
	GetPool(ctx context.Context, poolID uint64) (*models.RiskPool, error)

	// ListPools retrieves all pools in ascending id order.
	ListPools(ctx context.Context) ([]models.RiskPool, error)
}
