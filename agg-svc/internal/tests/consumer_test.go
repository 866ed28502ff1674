package tests

import (
	"errors"
	"testing"

	"arabian-treat-hub/agg-svc/internal/domain"
	"arabian-treat-hub/agg-svc/internal/mocks"
	"arabian-treat-hub/agg-svc/internal/service"

	"arabian-treat-hub/internal/orders"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		inputEvent     domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "order_created_triggers_recompute",
			inputEvent: domain.OrderEvent{
				Type:      domain.EventOrderCreated,
				OrderID:   9,
				Status:    orders.StatusPending,
				TotalBill: 280,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecomputeLiveStats").Return(nil)
			},
		},
		{
			name: "status_changed_triggers_recompute",
			inputEvent: domain.OrderEvent{
				Type:    domain.EventStatusChanged,
				OrderID: 9,
				Status:  orders.StatusDelivered,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecomputeLiveStats").Return(nil)
			},
		},
		{
			name: "archival_triggers_recompute",
			inputEvent: domain.OrderEvent{
				Type:   domain.EventOrdersArchived,
				Status: orders.StatusHistory,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecomputeLiveStats").Return(nil)
			},
		},
		{
			name: "recompute_error_is_swallowed",
			inputEvent: domain.OrderEvent{
				Type:    domain.EventStatusChanged,
				OrderID: 9,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecomputeLiveStats").Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessEvent(testCase.inputEvent)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_UnknownEventType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{
		Store: mockStore,
	}

	consumer.ProcessEvent(domain.OrderEvent{Type: "unknown_type", OrderID: 9})
	mockStore.AssertNotCalled(t, "RecomputeLiveStats")
}
