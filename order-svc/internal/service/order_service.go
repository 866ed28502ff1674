package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/order-svc/internal/domain"
)

var (
	ErrStoreClosed  = errors.New("store is not accepting orders right now")
	ErrEmptyOrder   = errors.New("order has no items")
	ErrInvalidItem  = errors.New("order item has an invalid price or quantity")
	ErrMissingPhone = errors.New("customer phone is required")
)

type OrderService struct {
	repo      OrderRepository
	settings  SettingsRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
}

func NewOrderService(repo OrderRepository, settings SettingsRepository, qr QRGenerator, publisher OrderPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		settings:  settings,
		qrEncoder: qr,
		publisher: publisher,
	}
}

// PlaceOrder runs the whole checkout: validates the payload, checks the
// store gate, prices the order from current settings, allocates a bill
// number atomically and persists the order as Pending. A failed bill
// allocation aborts the order; no order may exist without a bill number.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.CreateOrderRequest) (*orders.Order, error) {
	if req.CustomerPhone == "" {
		return nil, ErrMissingPhone
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Name == "" || item.Price < 0 || item.Qty < 1 {
			return nil, ErrInvalidItem
		}
	}

	store, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}
	if !store.IsOpen {
		return nil, ErrStoreClosed
	}

	billNo, err := s.repo.NextBillNo()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate bill number: %w", err)
	}

	order := &orders.Order{
		BillNo:          billNo,
		CustomerPhone:   req.CustomerPhone,
		DeliveryPhone:   req.DeliveryPhone,
		Items:           req.Items,
		DeliveryDetails: req.DeliveryDetails,
		DeliveryFee:     store.DeliveryCharge,
		TotalBill:       orders.ItemSubtotal(req.Items) + store.DeliveryCharge,
		Status:          orders.StatusPending,
		PaymentMethod:   "COD",
	}
	if err := s.repo.InsertOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventOrderCreated,
			OrderID:   order.ID,
			BillNo:    order.BillNo,
			Status:    order.Status,
			TotalBill: order.TotalBill,
			Timestamp: time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) Get(orderID int64) (*orders.Order, error) {
	return s.repo.GetOrder(orderID)
}

func (s *OrderService) ListByPhone(phone string) ([]orders.Order, error) {
	return s.repo.ListOrdersByPhone(phone)
}

// QRCode returns the stored QR image, regenerating it for orders created
// before QR storage existed.
func (s *OrderService) QRCode(orderID int64) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) Menu() ([]domain.MenuItem, error) {
	return s.repo.ListMenu()
}
