package domain

import (
	"time"

	"arabian-treat-hub/internal/orders"
)

// MenuItem mirrors a row of the menu table. SizeLabel distinguishes
// portion variants imported from the same sheet row (QTR/HALF/FULL).
type MenuItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	SizeLabel string  `json:"sizeLabel,omitempty"`
	Diet      string  `json:"diet"`
	ImageURL  string  `json:"imageUrl"`
}

// MenuImportRow is one row of a bulk menu upload. Prices maps a size
// column (qtr, half, full or plain price) to its raw cell value.
type MenuImportRow struct {
	Item     string            `json:"item"`
	Quantity string            `json:"quantity"`
	Type     string            `json:"type"`
	Category string            `json:"category"`
	Prices   map[string]string `json:"prices"`
}

type StatusUpdateRequest struct {
	Status orders.Status `json:"status"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// SalesReport is the admin sales page payload for one business date.
type SalesReport struct {
	Date         string            `json:"date"`
	DailyTotal   float64           `json:"dailyTotal"`
	MonthlyTotal float64           `json:"monthlyTotal"`
	YearlyTotal  float64           `json:"yearlyTotal"`
	BillCount    int               `json:"billCount"`
	AverageBill  float64           `json:"averageBill"`
	TopItems     []orders.ItemSale `json:"topItems"`
	Orders       []orders.Order    `json:"orders"`
}

// ShiftResult reports what a shift operation touched.
type ShiftResult struct {
	BusinessDate  string `json:"businessDate"`
	ArchivedCount int    `json:"archivedCount"`
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
