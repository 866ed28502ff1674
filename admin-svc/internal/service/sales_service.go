package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/internal/orders"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

const topItemsLimit = 5

type SalesService struct {
	repo OrdersRepository
}

func NewSalesService(repo OrdersRepository) *SalesService {
	return &SalesService{repo: repo}
}

// Report builds the sales page payload for one business date. Daily
// figures bucket by business date, monthly and yearly by raw createdAt.
func (s *SalesService) Report(date string) (domain.SalesReport, error) {
	if _, err := time.Parse(orders.DateLayout, date); err != nil {
		return domain.SalesReport{}, ErrInvalidDate
	}

	all, err := s.repo.ListAllOrders()
	if err != nil {
		return domain.SalesReport{}, err
	}

	daily := orders.DailyOrders(all, date)

	report := domain.SalesReport{
		Date:         date,
		DailyTotal:   orders.DailyTotal(all, date),
		MonthlyTotal: orders.MonthlyTotal(all, date),
		YearlyTotal:  orders.YearlyTotal(all, date),
		BillCount:    len(daily),
		AverageBill:  orders.AverageBill(all, date),
		TopItems:     orders.TopItems(daily, topItemsLimit),
		Orders:       daily,
	}
	if report.Orders == nil {
		report.Orders = []orders.Order{}
	}
	if report.TopItems == nil {
		report.TopItems = []orders.ItemSale{}
	}
	return report, nil
}

// ExportCSV flattens the day's qualifying orders into one item line per row.
func (s *SalesService) ExportCSV(date string) ([]byte, error) {
	report, err := s.Report(date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"billNo", "createdAt", "status", "item", "qty", "price", "amount", "orderTotal"})
	for _, o := range report.Orders {
		for _, item := range o.Items {
			w.Write([]string{
				strconv.FormatInt(o.BillNo, 10),
				o.CreatedAt.Format(time.RFC3339),
				string(o.Status),
				item.Name,
				strconv.Itoa(item.Qty),
				strconv.FormatFloat(item.Price, 'f', 2, 64),
				strconv.FormatFloat(item.Price*float64(item.Qty), 'f', 2, 64),
				strconv.FormatFloat(o.TotalBill, 'f', 2, 64),
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
