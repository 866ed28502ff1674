package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"arabian-treat-hub/dashboard-svc/internal/domain"
	"arabian-treat-hub/internal/orders"

	"github.com/redis/go-redis/v9"
)

const (
	liveStatsKey = "dashboard:live"
	topItemsKey  = "dashboard:top:"

	recentWindow = 100
	topLimit     = 5
)

type DashboardService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context

	// Now is swappable in tests.
	Now func() time.Time
}

func NewDashboardService(db *sql.DB, rdb *redis.Client) *DashboardService {
	return &DashboardService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
		Now: time.Now,
	}
}

// LiveStats reads the aggregator's Redis snapshot first and recomputes from
// Postgres when the cache is cold, so a fresh deployment still renders.
func (s *DashboardService) LiveStats() (domain.DashboardStats, error) {
	cached, err := s.rdb.HGetAll(s.ctx, liveStatsKey).Result()
	if err == nil && len(cached) > 0 {
		revenue, _ := strconv.ParseFloat(cached["revenue"], 64)
		active, _ := strconv.Atoi(cached["active_orders"])
		return domain.DashboardStats{
			Revenue:      revenue,
			ActiveOrders: active,
			BusinessDate: cached["business_date"],
			Source:       "redis",
		}, nil
	}

	return s.liveStatsFromDB()
}

func (s *DashboardService) liveStatsFromDB() (domain.DashboardStats, error) {
	window, err := s.recentOrders()
	if err != nil {
		return domain.DashboardStats{}, err
	}

	return domain.DashboardStats{
		Revenue:      orders.LiveRevenue(window),
		ActiveOrders: orders.ActiveKitchenCount(window),
		BusinessDate: orders.BusinessDateOf(s.Now()),
		Source:       "postgres",
	}, nil
}

// TopItemsToday serves the daily best-seller ranking, Redis first.
func (s *DashboardService) TopItemsToday() (domain.TopItemsResponse, error) {
	today := orders.BusinessDateOf(s.Now())

	ranked, err := s.rdb.ZRevRangeWithScores(s.ctx, topItemsKey+today, 0, topLimit-1).Result()
	if err == nil && len(ranked) > 0 {
		items := make([]orders.ItemSale, 0, len(ranked))
		for _, member := range ranked {
			name, _ := member.Member.(string)
			items = append(items, orders.ItemSale{Name: name, Qty: int(member.Score)})
		}
		return domain.TopItemsResponse{Date: today, Items: items}, nil
	}

	window, err := s.recentOrders()
	if err != nil {
		return domain.TopItemsResponse{}, err
	}

	items := orders.TopItems(orders.DailyOrders(window, today), topLimit)
	if items == nil {
		items = []orders.ItemSale{}
	}
	return domain.TopItemsResponse{Date: today, Items: items}, nil
}

func (s *DashboardService) recentOrders() ([]orders.Order, error) {
	rows, err := s.db.Query(`
		SELECT status, total_bill, items, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, recentWindow)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var window []orders.Order
	for rows.Next() {
		var o orders.Order
		var itemsJSON []byte
		if err := rows.Scan(&o.Status, &o.TotalBill, &itemsJSON, &o.CreatedAt); err != nil {
			continue
		}
		_ = json.Unmarshal(itemsJSON, &o.Items)
		window = append(window, o)
	}
	return window, nil
}
