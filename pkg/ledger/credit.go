package ledger

import (
	"context"
)

// CreditReader defines the interface for reading credit scores.
type CreditReader interface {
	// GetCreditScore returns the identity's credit score. Identities that
	// were never updated read as the initial score; the read never creates
	// a record.
	GetCreditScore(ctx context.Context, identity string) (uint64, error)
}
