package memory

import (
	"context"
	"time"

	"github.com/chris/risk-pool-lending/pkg/models"
)

// Score deltas applied by the credit book. Repaying a loan earns the
// positive delta; the negative delta exists in the update rule but no
// operation in this core triggers it.
const (
	positiveScoreDelta uint64 = 10
	negativeScoreDelta uint64 = 50
)

// creditBook maps identities to credit scores. Records are materialized only
// on first update; reads of an absent identity return the initial score
// without creating a record.
type creditBook struct {
	scores map[string]*models.CreditScore
}

func newCreditBook() *creditBook {
	return &creditBook{scores: make(map[string]*models.CreditScore)}
}

// get returns the identity's score, or the initial score if the identity has
// never been updated. get never mutates the book.
func (b *creditBook) get(identity string) uint64 {
	if record, ok := b.scores[identity]; ok {
		return record.Score
	}
	return models.InitialCreditScore
}

// applyDelta adjusts the identity's score, seeding it at the initial score on
// first touch. A positive delta adds 10 clamped at the maximum; a negative
// delta subtracts 50 clamped at the minimum. Returns the new score.
func (b *creditBook) applyDelta(identity string, positive bool, now time.Time) uint64 {
	record, ok := b.scores[identity]
	if !ok {
		record = &models.CreditScore{Owner: identity, Score: models.InitialCreditScore}
		b.scores[identity] = record
	}

	if positive {
		record.Score += positiveScoreDelta
		if record.Score > models.MaxCreditScore {
			record.Score = models.MaxCreditScore
		}
	} else {
		if record.Score < models.MinCreditScore+negativeScoreDelta {
			record.Score = models.MinCreditScore
		} else {
			record.Score -= negativeScoreDelta
		}
	}
	record.UpdatedAt = now
	return record.Score
}

// GetCreditScore returns the identity's credit score without creating a
// record for unknown identities.
func (l *Ledger) GetCreditScore(ctx context.Context, identity string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.credit.get(identity), nil
}
