package tests

import (
	"context"
	"testing"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/admin-svc/internal/mocks"
	"arabian-treat-hub/admin-svc/internal/service"
	"arabian-treat-hub/internal/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBoardService_SetStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		current       orders.Status
		target        orders.Status
		expectedError error
	}{
		{name: "accept_pending", current: orders.StatusPending, target: orders.StatusPreparing},
		{name: "ready_from_preparing", current: orders.StatusPreparing, target: orders.StatusReady},
		{name: "dispatch_from_preparing", current: orders.StatusPreparing, target: orders.StatusOutForDelivery},
		{name: "dispatch_from_ready", current: orders.StatusReady, target: orders.StatusOutForDelivery},
		{name: "deliver_from_out_for_delivery", current: orders.StatusOutForDelivery, target: orders.StatusDelivered},
		{name: "accept_rejects_non_pending", current: orders.StatusPreparing, target: orders.StatusPreparing, expectedError: service.ErrIllegalTransition},
		{name: "dispatch_rejects_pending", current: orders.StatusPending, target: orders.StatusOutForDelivery, expectedError: service.ErrIllegalTransition},
		{name: "deliver_rejects_delivered", current: orders.StatusDelivered, target: orders.StatusDelivered, expectedError: service.ErrIllegalTransition},
		{name: "no_way_back_to_pending", current: orders.StatusPreparing, target: orders.StatusPending, expectedError: service.ErrUnknownStatus},
		{name: "cancel_goes_through_cancel_endpoint", current: orders.StatusPending, target: orders.StatusCancelled, expectedError: service.ErrUnknownStatus},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewOrdersRepository(t)
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewBoardService(repo, publisher)

			repo.On("GetOrder", int64(5)).
				Return(&orders.Order{ID: 5, BillNo: 100, Status: tc.current, TotalBill: 250}, nil).Once()

			if tc.expectedError == nil {
				repo.On("UpdateStatus", int64(5), tc.target).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventStatusChanged && e.Status == tc.target
				})).Return(nil).Once()
			}

			order, err := svc.SetStatus(ctx, 5, tc.target)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, order)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.target, order.Status)
		})
	}
}

func TestBoardService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel_live_order_records_reason", func(t *testing.T) {
		repo := mocks.NewOrdersRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewBoardService(repo, publisher)

		repo.On("GetOrder", int64(5)).
			Return(&orders.Order{ID: 5, Status: orders.StatusPreparing, TotalBill: 380}, nil).Once()
		repo.On("CancelOrder", int64(5), "customer unreachable").Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		order, err := svc.Cancel(ctx, 5, "customer unreachable")

		assert.NoError(t, err)
		assert.Equal(t, orders.StatusCancelled, order.Status)
		assert.Equal(t, "customer unreachable", order.CancelReason)
		// Cancellation never zeroes the bill; revenue exclusion is by status.
		assert.Equal(t, 380.0, order.TotalBill)
	})

	t.Run("cancel_defaults_reason", func(t *testing.T) {
		repo := mocks.NewOrdersRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewBoardService(repo, publisher)

		repo.On("GetOrder", int64(5)).
			Return(&orders.Order{ID: 5, Status: orders.StatusPending}, nil).Once()
		repo.On("CancelOrder", int64(5), "Admin Cancelled").Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()

		order, err := svc.Cancel(ctx, 5, "")

		assert.NoError(t, err)
		assert.Equal(t, "Admin Cancelled", order.CancelReason)
	})

	t.Run("cancel_rejects_settled_orders", func(t *testing.T) {
		for _, settled := range []orders.Status{orders.StatusDelivered, orders.StatusCancelled, orders.StatusHistory} {
			repo := mocks.NewOrdersRepository(t)
			svc := service.NewBoardService(repo, nil)

			repo.On("GetOrder", int64(5)).
				Return(&orders.Order{ID: 5, Status: settled}, nil).Once()

			_, err := svc.Cancel(ctx, 5, "late")
			assert.ErrorIs(t, err, service.ErrIllegalTransition)
		}
	})
}

func TestBoardService_Views(t *testing.T) {
	repo := mocks.NewOrdersRepository(t)
	svc := service.NewBoardService(repo, nil)

	repo.On("ListOrdersByStatus", orders.LiveStatuses).
		Return([]orders.Order{{ID: 1, Status: orders.StatusPending}}, nil).Once()
	repo.On("ListOrdersByStatus", []orders.Status{orders.StatusDelivered}).
		Return([]orders.Order{{ID: 2, Status: orders.StatusDelivered}}, nil).Once()
	repo.On("ListOrdersByStatus", []orders.Status{orders.StatusHistory, orders.StatusCancelled}).
		Return([]orders.Order{{ID: 3, Status: orders.StatusHistory}}, nil).Once()

	live, err := svc.LiveOrders()
	assert.NoError(t, err)
	assert.Len(t, live, 1)

	delivered, err := svc.DeliveredOrders()
	assert.NoError(t, err)
	assert.Len(t, delivered, 1)

	history, err := svc.HistoryOrders()
	assert.NoError(t, err)
	assert.Len(t, history, 1)
}
