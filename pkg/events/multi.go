package events

import (
	"context"
	"errors"

	"github.com/chris/risk-pool-lending/pkg/models"
)

// MultiPublisher fans a single event out to several publishers. Delivery is
// attempted on every publisher even when earlier ones fail; the errors are
// joined.
type MultiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher creates a MultiPublisher over the given publishers.
func NewMultiPublisher(publishers ...Publisher) *MultiPublisher {
	return &MultiPublisher{publishers: publishers}
}

// Make sure we conform to the interface
var _ Publisher = (*MultiPublisher)(nil)

// Publish delivers the event to every configured publisher.
func (m *MultiPublisher) Publish(ctx context.Context, event models.Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
