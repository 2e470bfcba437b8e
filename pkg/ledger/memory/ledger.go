// Package memory implements the lending ledger as a single in-memory
// aggregate. One mutex serializes every operation start-to-finish, including
// the external funds transfer, so no operation ever observes another's
// partial effects.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/risk-pool-lending/pkg/events"
	"github.com/chris/risk-pool-lending/pkg/ledger"
	"github.com/chris/risk-pool-lending/pkg/models"
	"github.com/chris/risk-pool-lending/pkg/transfer"
	"github.com/google/uuid"
)

// Ledger owns the pool table, the loan table and the credit book. Pool and
// loan ids are dense, zero-based slice indexes and are never reused.
type Ledger struct {
	mu sync.Mutex

	admin  string
	pools  []*models.RiskPool
	loans  []*models.Loan
	credit *creditBook

	bank      transfer.Transferer
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// New creates an empty Ledger. admin is the only identity allowed to create
// pools. bank moves real value in and out of the ledger. publisher may be
// nil, in which case events are dropped.
func New(admin string, bank transfer.Transferer, publisher events.Publisher, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		admin:     admin,
		credit:    newCreditBook(),
		bank:      bank,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Make sure we conform to the interface
var _ ledger.Service = (*Ledger)(nil)

// emit publishes a single event after a mutation has been applied. Publish
// failures are logged, never propagated: the mutation is already committed
// and the caller must see it succeed.
func (l *Ledger) emit(ctx context.Context, event models.Event) {
	if l.publisher == nil {
		return
	}
	event.Id = uuid.New().String()
	event.EmittedAt = l.now()
	if err := l.publisher.Publish(ctx, event); err != nil {
		l.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
