package orders

import (
	"sort"
	"time"
)

// ValidSalesStatuses is the sales-report whitelist: money that counts as a
// real sale, archived shifts included. Pending and Cancelled never count.
var ValidSalesStatuses = []Status{
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
	StatusHistory,
}

// LiveRevenueStatuses is the dashboard whitelist. It cares only about the
// still-open shift, so History is excluded. Must stay separate from
// ValidSalesStatuses; the two figures answer different questions.
var LiveRevenueStatuses = []Status{
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

// ItemSale is one entry of a top-items ranking.
type ItemSale struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// DailyOrders returns the sales-whitelisted orders whose business date
// (4 AM rule applied to createdAt) matches date.
func DailyOrders(all []Order, date string) []Order {
	var daily []Order
	for _, o := range all {
		if !statusIn(o.Status, ValidSalesStatuses) {
			continue
		}
		if BusinessDateOf(o.CreatedAt) != date {
			continue
		}
		daily = append(daily, o)
	}
	return daily
}

// DailyTotal sums totalBill over the day's qualifying sales.
func DailyTotal(all []Order, date string) float64 {
	var total float64
	for _, o := range DailyOrders(all, date) {
		total += o.TotalBill
	}
	return total
}

// MonthlyTotal sums sales-whitelisted orders in the calendar month of date.
// Bucketing uses raw createdAt, not the business-date adjustment. The two
// reports disagree around month boundaries and must keep doing so.
func MonthlyTotal(all []Order, date string) float64 {
	target, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0
	}
	var total float64
	for _, o := range all {
		if !statusIn(o.Status, ValidSalesStatuses) {
			continue
		}
		if o.CreatedAt.Month() == target.Month() && o.CreatedAt.Year() == target.Year() {
			total += o.TotalBill
		}
	}
	return total
}

// YearlyTotal sums sales-whitelisted orders in the calendar year of date,
// on raw createdAt like MonthlyTotal.
func YearlyTotal(all []Order, date string) float64 {
	target, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0
	}
	var total float64
	for _, o := range all {
		if !statusIn(o.Status, ValidSalesStatuses) {
			continue
		}
		if o.CreatedAt.Year() == target.Year() {
			total += o.TotalBill
		}
	}
	return total
}

// LiveRevenue sums totalBill over the open shift's whitelist.
func LiveRevenue(all []Order) float64 {
	var total float64
	for _, o := range all {
		if statusIn(o.Status, LiveRevenueStatuses) {
			total += o.TotalBill
		}
	}
	return total
}

// ActiveKitchenCount counts the orders that still need attention right now.
func ActiveKitchenCount(all []Order) int {
	count := 0
	for _, o := range all {
		if o.Status.IsLive() {
			count++
		}
	}
	return count
}

// TopItems flattens the item lines of the given orders, sums qty per
// distinct name and returns the n best sellers. The sort is stable, so
// ties keep first-encountered order between runs.
func TopItems(qualifying []Order, n int) []ItemSale {
	totals := make(map[string]int)
	var names []string
	for _, o := range qualifying {
		for _, item := range o.Items {
			if _, seen := totals[item.Name]; !seen {
				names = append(names, item.Name)
			}
			totals[item.Name] += item.Qty
		}
	}

	ranked := make([]ItemSale, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, ItemSale{Name: name, Qty: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Qty > ranked[j].Qty })

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// AverageBill is the day's total divided by its bill count, 0 when the day
// has no qualifying sales.
func AverageBill(all []Order, date string) float64 {
	daily := DailyOrders(all, date)
	if len(daily) == 0 {
		return 0
	}
	return DailyTotal(all, date) / float64(len(daily))
}
