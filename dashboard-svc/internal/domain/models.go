package domain

import "arabian-treat-hub/internal/orders"

// DashboardStats is the live tile payload on the admin dashboard.
type DashboardStats struct {
	Revenue      float64 `json:"revenue"`
	ActiveOrders int     `json:"activeOrders"`
	BusinessDate string  `json:"businessDate"`
	Source       string  `json:"source"`
}

// TopItemsResponse ranks today's best sellers.
type TopItemsResponse struct {
	Date  string            `json:"date"`
	Items []orders.ItemSale `json:"items"`
}
