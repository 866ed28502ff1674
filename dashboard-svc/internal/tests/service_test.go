package tests

import (
	"testing"
	"time"

	"arabian-treat-hub/dashboard-svc/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestDashboardService_LiveStats_FromRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	mr.HSet("dashboard:live",
		"revenue", "530",
		"active_orders", "2",
		"business_date", "2024-06-01",
	)

	svc := service.NewDashboardService(nil, rdb)

	stats, err := svc.LiveStats()

	assert.NoError(t, err)
	assert.Equal(t, 530.0, stats.Revenue)
	assert.Equal(t, 2, stats.ActiveOrders)
	assert.Equal(t, "2024-06-01", stats.BusinessDate)
	assert.Equal(t, "redis", stats.Source)
}

func TestDashboardService_LiveStats_FallsBackToPostgres(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"status", "total_bill", "items", "created_at"}).
		AddRow("Delivered", 380.0, []byte(`[{"name":"Biryani","price":150,"qty":2}]`), now).
		AddRow("Pending", 999.0, []byte(`[]`), now)
	mock.ExpectQuery(`SELECT status, total_bill, items, created_at`).WillReturnRows(rows)

	svc := service.NewDashboardService(db, rdb)
	svc.Now = func() time.Time { return now }

	stats, err := svc.LiveStats()

	assert.NoError(t, err)
	assert.Equal(t, 380.0, stats.Revenue)
	assert.Equal(t, 1, stats.ActiveOrders)
	assert.Equal(t, "2024-06-01", stats.BusinessDate)
	assert.Equal(t, "postgres", stats.Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardService_TopItemsToday_FromRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mr.ZAdd("dashboard:top:2024-06-01", 5, "Shawarma")
	mr.ZAdd("dashboard:top:2024-06-01", 3, "Kunafa")

	svc := service.NewDashboardService(nil, rdb)
	svc.Now = func() time.Time { return now }

	top, err := svc.TopItemsToday()

	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01", top.Date)
	if assert.Len(t, top.Items, 2) {
		assert.Equal(t, "Shawarma", top.Items[0].Name)
		assert.Equal(t, 5, top.Items[0].Qty)
	}
}

func TestDashboardService_TopItemsToday_FallsBackToPostgres(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"status", "total_bill", "items", "created_at"}).
		AddRow("Delivered", 380.0, []byte(`[{"name":"Biryani","price":150,"qty":2}]`), now)
	mock.ExpectQuery(`SELECT status, total_bill, items, created_at`).WillReturnRows(rows)

	svc := service.NewDashboardService(db, rdb)
	svc.Now = func() time.Time { return now }

	top, err := svc.TopItemsToday()

	assert.NoError(t, err)
	if assert.Len(t, top.Items, 1) {
		assert.Equal(t, "Biryani", top.Items[0].Name)
		assert.Equal(t, 2, top.Items[0].Qty)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
