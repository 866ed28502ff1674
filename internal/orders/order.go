package orders

import "time"

// OrderItem is a single line of an order. Lines never change after the
// order is placed; there is no edit-order operation.
type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// DeliveryDetails is the structured drop-off address captured at checkout.
type DeliveryDetails struct {
	Area      string   `json:"area"`
	Address   string   `json:"address"`
	Pincode   string   `json:"pincode"`
	District  string   `json:"district"`
	Landmark  string   `json:"landmark,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Order is one customer purchase. BillNo is assigned exactly once at
// creation and never reused. TotalBill is fixed at creation and is never
// recomputed; cancellation removes an order from revenue purely through
// its status.
type Order struct {
	ID              int64            `json:"id"`
	BillNo          int64            `json:"billNo"`
	CustomerPhone   string           `json:"customerPhone"`
	DeliveryPhone   string           `json:"deliveryPhone,omitempty"`
	Items           []OrderItem      `json:"items"`
	DeliveryDetails *DeliveryDetails `json:"deliveryDetails,omitempty"`
	DeliveryFee     float64          `json:"deliveryFee"`
	TotalBill       float64          `json:"totalBill"`
	Status          Status           `json:"status"`
	CancelReason    string           `json:"cancelReason,omitempty"`
	PaymentMethod   string           `json:"paymentMethod"`
	CreatedAt       time.Time        `json:"createdAt"`
	DeliveredAt     *time.Time       `json:"deliveredAt,omitempty"`
	DeliveredBy     string           `json:"deliveredBy,omitempty"`
}

// ItemSubtotal sums price*qty over the given lines.
func ItemSubtotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return total
}
