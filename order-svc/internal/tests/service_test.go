package tests

import (
	"context"
	"errors"
	"testing"

	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/internal/settings"
	"arabian-treat-hub/order-svc/internal/domain"
	"arabian-treat-hub/order-svc/internal/mocks"
	"arabian-treat-hub/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	settingsRepo := mocks.NewSettingsRepository(t)
	qr := mocks.NewQRGenerator(t)
	publisher := mocks.NewOrderPublisher(t)

	svc := service.NewOrderService(repository, settingsRepo, qr, publisher)

	ctx := context.Background()

	openStore := settings.StoreSettings{IsOpen: true, IsDayOpen: true, DeliveryCharge: 30}

	tests := []struct {
		name          string
		req           domain.CreateOrderRequest
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success_place_order",
			req: domain.CreateOrderRequest{
				CustomerPhone: "9876543210",
				Items: []orders.OrderItem{
					{Name: "Chicken Shawarma", Price: 120, Qty: 2},
					{Name: "Al Faham", Price: 220, Qty: 1},
				},
			},
			prepareMocks: func() {
				settingsRepo.On("Get").Return(openStore, nil).Once()
				repository.On("NextBillNo").Return(int64(501), nil).Once()
				repository.On("InsertOrder", mock.MatchedBy(func(o *orders.Order) bool {
					return o.BillNo == 501 &&
						o.Status == orders.StatusPending &&
						o.TotalBill == 490 &&
						o.DeliveryFee == 30 &&
						o.PaymentMethod == "COD"
				})).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
				repository.On("SaveQRCode", mock.Anything, []byte("png")).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderCreated && e.BillNo == 501
				})).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "error_store_closed",
			req: domain.CreateOrderRequest{
				CustomerPhone: "9876543210",
				Items:         []orders.OrderItem{{Name: "Kunafa", Price: 150, Qty: 1}},
			},
			prepareMocks: func() {
				settingsRepo.On("Get").Return(settings.StoreSettings{IsOpen: false}, nil).Once()
			},
			expectedError: service.ErrStoreClosed,
		},
		{
			name:          "error_missing_phone",
			req:           domain.CreateOrderRequest{Items: []orders.OrderItem{{Name: "Kunafa", Price: 150, Qty: 1}}},
			prepareMocks:  func() {},
			expectedError: service.ErrMissingPhone,
		},
		{
			name:          "error_empty_order",
			req:           domain.CreateOrderRequest{CustomerPhone: "9876543210"},
			prepareMocks:  func() {},
			expectedError: service.ErrEmptyOrder,
		},
		{
			name: "error_invalid_item",
			req: domain.CreateOrderRequest{
				CustomerPhone: "9876543210",
				Items:         []orders.OrderItem{{Name: "Kunafa", Price: 150, Qty: 0}},
			},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidItem,
		},
		{
			name: "error_bill_allocation_aborts_order",
			req: domain.CreateOrderRequest{
				CustomerPhone: "9876543210",
				Items:         []orders.OrderItem{{Name: "Kunafa", Price: 150, Qty: 1}},
			},
			prepareMocks: func() {
				settingsRepo.On("Get").Return(openStore, nil).Once()
				repository.On("NextBillNo").Return(int64(0), errors.New("deadlock")).Once()
			},
			expectedError: nil, // wrapped, checked below
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.prepareMocks()

			order, err := svc.PlaceOrder(ctx, tc.req)

			if tc.name == "error_bill_allocation_aborts_order" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to allocate bill number")
				assert.Nil(t, order)
				return
			}

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, order)
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, order) {
				assert.Equal(t, orders.StatusPending, order.Status)
			}
		})
	}
}

func TestOrderService_QRCodeRegeneratesWhenMissing(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	settingsRepo := mocks.NewSettingsRepository(t)
	qr := mocks.NewQRGenerator(t)

	svc := service.NewOrderService(repository, settingsRepo, qr, nil)

	repository.On("GetQRCode", int64(7)).Return(nil, nil).Once()
	qr.On("Generate", int64(7)).Return([]byte("regenerated"), nil).Once()
	repository.On("SaveQRCode", int64(7), []byte("regenerated")).Return(nil).Once()

	png, err := svc.QRCode(7)

	assert.NoError(t, err)
	assert.Equal(t, []byte("regenerated"), png)
}

func TestOrderService_QRCodeReturnsStored(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	settingsRepo := mocks.NewSettingsRepository(t)
	qr := mocks.NewQRGenerator(t)

	svc := service.NewOrderService(repository, settingsRepo, qr, nil)

	repository.On("GetQRCode", int64(7)).Return([]byte("stored"), nil).Once()

	png, err := svc.QRCode(7)

	assert.NoError(t, err)
	assert.Equal(t, []byte("stored"), png)
}
