package tests

import (
	"strings"
	"testing"
	"time"

	"arabian-treat-hub/admin-svc/internal/mocks"
	"arabian-treat-hub/admin-svc/internal/service"
	"arabian-treat-hub/internal/orders"

	"github.com/stretchr/testify/assert"
)

func TestSalesService_Report(t *testing.T) {
	repo := mocks.NewOrdersRepository(t)
	svc := service.NewSalesService(repo)

	day := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	all := []orders.Order{
		{ID: 1, BillNo: 1, Status: orders.StatusDelivered, TotalBill: 380, CreatedAt: day,
			Items: []orders.OrderItem{{Name: "Biryani", Price: 150, Qty: 2}, {Name: "Coke", Price: 40, Qty: 1}}},
		{ID: 2, BillNo: 2, Status: orders.StatusHistory, TotalBill: 120, CreatedAt: day.Add(time.Hour),
			Items: []orders.OrderItem{{Name: "Kunafa", Price: 120, Qty: 1}}},
		// Pending and Cancelled never count.
		{ID: 3, BillNo: 3, Status: orders.StatusPending, TotalBill: 999, CreatedAt: day},
		{ID: 4, BillNo: 4, Status: orders.StatusCancelled, TotalBill: 999, CreatedAt: day},
		// Different business date, same month.
		{ID: 5, BillNo: 5, Status: orders.StatusDelivered, TotalBill: 200,
			CreatedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			Items:     []orders.OrderItem{{Name: "Mandi", Price: 200, Qty: 1}}},
	}
	repo.On("ListAllOrders").Return(all, nil).Once()

	report, err := svc.Report("2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, 500.0, report.DailyTotal)
	assert.Equal(t, 700.0, report.MonthlyTotal)
	assert.Equal(t, 700.0, report.YearlyTotal)
	assert.Equal(t, 2, report.BillCount)
	assert.Equal(t, 250.0, report.AverageBill)
	assert.Len(t, report.Orders, 2)
	if assert.NotEmpty(t, report.TopItems) {
		assert.Equal(t, "Biryani", report.TopItems[0].Name)
		assert.Equal(t, 2, report.TopItems[0].Qty)
	}
}

func TestSalesService_Report_RejectsBadDate(t *testing.T) {
	repo := mocks.NewOrdersRepository(t)
	svc := service.NewSalesService(repo)

	_, err := svc.Report("01-06-2024")
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestSalesService_Report_EmptyDay(t *testing.T) {
	repo := mocks.NewOrdersRepository(t)
	svc := service.NewSalesService(repo)

	repo.On("ListAllOrders").Return([]orders.Order{}, nil).Once()

	report, err := svc.Report("2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, report.DailyTotal)
	assert.Equal(t, 0.0, report.AverageBill)
	assert.Equal(t, 0, report.BillCount)
	assert.NotNil(t, report.Orders)
	assert.NotNil(t, report.TopItems)
}

func TestSalesService_ExportCSV(t *testing.T) {
	repo := mocks.NewOrdersRepository(t)
	svc := service.NewSalesService(repo)

	day := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.On("ListAllOrders").Return([]orders.Order{
		{ID: 1, BillNo: 42, Status: orders.StatusDelivered, TotalBill: 340, CreatedAt: day,
			Items: []orders.OrderItem{{Name: "Biryani", Price: 150, Qty: 2}, {Name: "Coke", Price: 40, Qty: 1}}},
	}, nil).Once()

	data, err := svc.ExportCSV("2024-06-01")

	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus one row per item line.
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "billNo")
	assert.Contains(t, lines[1], "Biryani")
	assert.Contains(t, lines[1], "300.00")
	assert.Contains(t, lines[2], "Coke")
}
