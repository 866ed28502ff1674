package service

import (
	"context"
	"errors"
	"time"

	"arabian-treat-hub/delivery-svc/internal/domain"
	"arabian-treat-hub/internal/orders"
)

var (
	ErrAlreadyDelivered = errors.New("order is already delivered")
	ErrMissingDriver    = errors.New("deliveredBy is required")
)

type ScannerServiceInterface interface {
	Lookup(orderID int64) (*orders.Order, error)
	ConfirmDelivery(ctx context.Context, orderID int64, driver string) (*orders.Order, error)
}

type DeliveryRepository interface {
	GetOrder(orderID int64) (*orders.Order, error)
	MarkDelivered(orderID int64, at time.Time, by string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// ScannerService resolves scanned QR codes to orders and completes them.
// The scanner fetches by id regardless of status, so an order archived to
// History mid-route can still be confirmed; only Delivered itself blocks.
type ScannerService struct {
	repo      DeliveryRepository
	publisher EventPublisher

	// Now is swappable in tests.
	Now func() time.Time
}

var _ ScannerServiceInterface = (*ScannerService)(nil)

func NewScannerService(repo DeliveryRepository, publisher EventPublisher) *ScannerService {
	return &ScannerService{repo: repo, publisher: publisher, Now: time.Now}
}

func (s *ScannerService) Lookup(orderID int64) (*orders.Order, error) {
	return s.repo.GetOrder(orderID)
}

func (s *ScannerService) ConfirmDelivery(ctx context.Context, orderID int64, driver string) (*orders.Order, error) {
	if driver == "" {
		return nil, ErrMissingDriver
	}

	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !orders.CanDeliver(order.Status) {
		return nil, ErrAlreadyDelivered
	}

	now := s.Now()
	if err := s.repo.MarkDelivered(orderID, now, driver); err != nil {
		return nil, err
	}
	order.Status = orders.StatusDelivered
	order.DeliveredAt = &now
	order.DeliveredBy = driver

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventStatusChanged,
			OrderID:   order.ID,
			BillNo:    order.BillNo,
			Status:    order.Status,
			TotalBill: order.TotalBill,
			Timestamp: now,
		})
	}
	return order, nil
}
