package domain

import (
	"time"

	"arabian-treat-hub/internal/orders"
)

// ConfirmDeliveryRequest is the scanner's completion payload.
type ConfirmDeliveryRequest struct {
	DeliveredBy string `json:"deliveredBy"`
}

const (
	EventOrderCreated   = "order_created"
	EventStatusChanged  = "status_changed"
	EventOrdersArchived = "orders_archived"
)

type OrderEvent struct {
	Type      string        `json:"type"`
	OrderID   int64         `json:"order_id"`
	BillNo    int64         `json:"bill_no"`
	Status    orders.Status `json:"status"`
	TotalBill float64       `json:"total_bill"`
	Timestamp time.Time     `json:"timestamp"`
}
