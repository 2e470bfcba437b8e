package events_test

import (
	"context"
	"testing"

	"github.com/chris/risk-pool-lending/pkg/events"
	"github.com/chris/risk-pool-lending/pkg/events/mocks"
	"github.com/chris/risk-pool-lending/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMultiPublisher(t *testing.T) {
	ctx := context.Background()
	event := models.Event{Id: "ev-1", Type: models.EventFundsAdded}

	t.Run("Delivers To All Publishers", func(t *testing.T) {
		first := mocks.NewPublisher(t)
		second := mocks.NewPublisher(t)
		first.On("Publish", mock.Anything, event).Once().Return(nil)
		second.On("Publish", mock.Anything, event).Once().Return(nil)

		multi := events.NewMultiPublisher(first, second)

		assert.NoError(t, multi.Publish(ctx, event))
	})

	t.Run("A Failing Publisher Does Not Stop The Others", func(t *testing.T) {
		first := mocks.NewPublisher(t)
		second := mocks.NewPublisher(t)
		first.On("Publish", mock.Anything, event).Once().Return(assert.AnError)
		second.On("Publish", mock.Anything, event).Once().Return(nil)

		multi := events.NewMultiPublisher(first, second)

		err := multi.Publish(ctx, event)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("No Publishers", func(t *testing.T) {
		multi := events.NewMultiPublisher()

		assert.NoError(t, multi.Publish(ctx, event))
	})
}
