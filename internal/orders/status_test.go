package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorTransitions(t *testing.T) {
	all := []Status{
		StatusPending, StatusAccepted, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusHistory,
	}

	t.Run("accept_only_from_pending", func(t *testing.T) {
		for _, s := range all {
			assert.Equal(t, s == StatusPending, CanAccept(s), "status %s", s)
		}
	})

	t.Run("dispatch_from_preparing_or_ready", func(t *testing.T) {
		for _, s := range all {
			expected := s == StatusPreparing || s == StatusReady
			assert.Equal(t, expected, CanDispatch(s), "status %s", s)
		}
	})

	t.Run("deliver_from_anything_but_delivered", func(t *testing.T) {
		for _, s := range all {
			assert.Equal(t, s != StatusDelivered, CanDeliver(s), "status %s", s)
		}
		// The scanner fetches by id regardless of status, so an order the
		// shift close already archived stays completable.
		assert.True(t, CanDeliver(StatusHistory))
	})

	t.Run("cancel_blocked_once_settled", func(t *testing.T) {
		for _, s := range all {
			expected := s != StatusDelivered && s != StatusCancelled && s != StatusHistory
			assert.Equal(t, expected, CanCancel(s), "status %s", s)
		}
	})
}

func TestViewSets(t *testing.T) {
	assert.True(t, StatusPending.IsLive())
	assert.True(t, StatusOutForDelivery.IsLive())
	assert.False(t, StatusDelivered.IsLive())
	assert.False(t, StatusHistory.IsLive())

	assert.True(t, StatusHistory.InHistoryView())
	assert.True(t, StatusCancelled.InHistoryView())
	assert.False(t, StatusDelivered.InHistoryView())
}

func TestStatusWireValues(t *testing.T) {
	// Persisted contract: exact spelling and casing.
	assert.Equal(t, "Out_for_Delivery", string(StatusOutForDelivery))
	assert.Equal(t, "Pending", string(StatusPending))
	assert.Equal(t, "History", string(StatusHistory))
}
