package service

import (
	"context"

	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/internal/settings"
	"arabian-treat-hub/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req domain.CreateOrderRequest) (*orders.Order, error)
	Get(orderID int64) (*orders.Order, error)
	ListByPhone(phone string) ([]orders.Order, error)
	QRCode(orderID int64) ([]byte, error)
	Menu() ([]domain.MenuItem, error)
}

type OrderRepository interface {
	NextBillNo() (int64, error)
	InsertOrder(order *orders.Order) error
	GetOrder(orderID int64) (*orders.Order, error)
	ListOrdersByPhone(phone string) ([]orders.Order, error)
	SaveQRCode(orderID int64, png []byte) error
	GetQRCode(orderID int64) ([]byte, error)
	ListMenu() ([]domain.MenuItem, error)
}

type SettingsRepository interface {
	Get() (settings.StoreSettings, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
