package domain

import (
	"time"

	"arabian-treat-hub/internal/orders"
)

// MenuItem is one sellable dish as the customer app lists it.
type MenuItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	SizeLabel string  `json:"sizeLabel,omitempty"`
	Diet      string  `json:"diet"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// CreateOrderRequest is the checkout payload. Delivery fee and totals are
// computed server-side from the store settings, never trusted from the
// client.
type CreateOrderRequest struct {
	CustomerPhone   string                  `json:"customerPhone"`
	DeliveryPhone   string                  `json:"deliveryPhone"`
	Items           []orders.OrderItem      `json:"items"`
	DeliveryDetails *orders.DeliveryDetails `json:"deliveryDetails"`
}

const (
	EventOrderCreated   = "order_created"
	EventStatusChanged  = "status_changed"
	EventOrdersArchived = "orders_archived"
)

// OrderEvent is the message published to the orders topic on every order
// mutation so the dashboard aggregator can recompute its live figures.
type OrderEvent struct {
	Type      string        `json:"type"`
	OrderID   int64         `json:"order_id"`
	BillNo    int64         `json:"bill_no"`
	Status    orders.Status `json:"status"`
	TotalBill float64       `json:"total_bill"`
	Timestamp time.Time     `json:"timestamp"`
}
