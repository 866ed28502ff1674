package service

import (
	"context"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/internal/settings"
)

type BoardServiceInterface interface {
	LiveOrders() ([]orders.Order, error)
	DeliveredOrders() ([]orders.Order, error)
	HistoryOrders() ([]orders.Order, error)
	SetStatus(ctx context.Context, orderID int64, to orders.Status) (*orders.Order, error)
	Cancel(ctx context.Context, orderID int64, reason string) (*orders.Order, error)
}

type SalesServiceInterface interface {
	Report(date string) (domain.SalesReport, error)
	ExportCSV(date string) ([]byte, error)
}

type ShiftServiceInterface interface {
	StartNewDay(ctx context.Context) (domain.ShiftResult, error)
	EndDay(ctx context.Context) (domain.ShiftResult, error)
}

type SettingsServiceInterface interface {
	Get() (settings.StoreSettings, error)
	Update(updated settings.StoreSettings) (settings.StoreSettings, error)
}

type MenuServiceInterface interface {
	Import(rows []domain.MenuImportRow) (int, error)
	List() ([]domain.MenuItem, error)
}

type OrdersRepository interface {
	ListAllOrders() ([]orders.Order, error)
	ListOrdersByStatus(statuses []orders.Status) ([]orders.Order, error)
	GetOrder(orderID int64) (*orders.Order, error)
	UpdateStatus(orderID int64, status orders.Status) error
	CancelOrder(orderID int64, reason string) error
	ArchiveOrders(orderIDs []int64) error
}

type SettingsRepository interface {
	Get() (settings.StoreSettings, error)
	Save(s settings.StoreSettings) error
}

type MenuRepository interface {
	InsertMenuItems(items []domain.MenuItem) error
	ListMenu() ([]domain.MenuItem, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ BoardServiceInterface    = (*BoardService)(nil)
	_ SalesServiceInterface    = (*SalesService)(nil)
	_ ShiftServiceInterface    = (*ShiftService)(nil)
	_ SettingsServiceInterface = (*SettingsService)(nil)
	_ MenuServiceInterface     = (*MenuService)(nil)
)
