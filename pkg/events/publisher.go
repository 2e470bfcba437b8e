package events

import (
	"context"

	"github.com/chris/risk-pool-lending/pkg/models"
)

// Publisher defines the interface for components that deliver ledger events
// to audit/indexing collaborators. The ledger publishes each event exactly
// once, after the mutation it describes has been applied.
type Publisher interface {
	// Publish delivers a single event.
	Publish(ctx context.Context, event models.Event) error
}
