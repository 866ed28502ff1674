package service

import (
	"context"
	"errors"
	"time"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/internal/orders"
)

var (
	ErrIllegalTransition = errors.New("status transition not allowed from the order's current state")
	ErrUnknownStatus     = errors.New("unknown target status")
)

// BoardService backs the kitchen order boards. Transitions check legality
// against the snapshot they just read and then write unconditionally;
// concurrent conflicting updates resolve last-write-wins.
type BoardService struct {
	repo      OrdersRepository
	publisher EventPublisher
}

func NewBoardService(repo OrdersRepository, publisher EventPublisher) *BoardService {
	return &BoardService{repo: repo, publisher: publisher}
}

func (s *BoardService) LiveOrders() ([]orders.Order, error) {
	return s.repo.ListOrdersByStatus(orders.LiveStatuses)
}

func (s *BoardService) DeliveredOrders() ([]orders.Order, error) {
	return s.repo.ListOrdersByStatus([]orders.Status{orders.StatusDelivered})
}

func (s *BoardService) HistoryOrders() ([]orders.Order, error) {
	return s.repo.ListOrdersByStatus([]orders.Status{orders.StatusHistory, orders.StatusCancelled})
}

func transitionAllowed(from, to orders.Status) (bool, error) {
	switch to {
	case orders.StatusPreparing:
		return orders.CanAccept(from), nil
	case orders.StatusReady:
		return from == orders.StatusPreparing, nil
	case orders.StatusOutForDelivery:
		return orders.CanDispatch(from), nil
	case orders.StatusDelivered:
		return orders.CanDeliver(from), nil
	default:
		return false, ErrUnknownStatus
	}
}

func (s *BoardService) SetStatus(ctx context.Context, orderID int64, to orders.Status) (*orders.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	allowed, err := transitionAllowed(order.Status, to)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrIllegalTransition
	}

	if err := s.repo.UpdateStatus(orderID, to); err != nil {
		return nil, err
	}
	order.Status = to

	s.publish(ctx, order)
	return order, nil
}

func (s *BoardService) Cancel(ctx context.Context, orderID int64, reason string) (*orders.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !orders.CanCancel(order.Status) {
		return nil, ErrIllegalTransition
	}

	if reason == "" {
		reason = "Admin Cancelled"
	}
	if err := s.repo.CancelOrder(orderID, reason); err != nil {
		return nil, err
	}
	order.Status = orders.StatusCancelled
	order.CancelReason = reason

	s.publish(ctx, order)
	return order, nil
}

func (s *BoardService) publish(ctx context.Context, order *orders.Order) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      domain.EventStatusChanged,
		OrderID:   order.ID,
		BillNo:    order.BillNo,
		Status:    order.Status,
		TotalBill: order.TotalBill,
		Timestamp: time.Now(),
	})
}
