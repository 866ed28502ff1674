package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"arabian-treat-hub/internal/orders"

	"github.com/redis/go-redis/v9"
)

// recentWindow bounds how many orders feed the live recompute. The live
// figures only care about the open shift, so a bounded window is enough.
const recentWindow = 100

const (
	LiveStatsKey = "dashboard:live"
	TopItemsKey  = "dashboard:top:"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context

	// Now is swappable in tests.
	Now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
		Now: time.Now,
	}
}

// RecomputeLiveStats reloads the recent order window from Postgres and
// mirrors the dashboard figures into Redis.
func (s *Store) RecomputeLiveStats() error {
	window, err := s.recentOrders()
	if err != nil {
		return err
	}

	today := orders.BusinessDateOf(s.Now())

	s.rdb.HSet(s.ctx, LiveStatsKey, map[string]interface{}{
		"revenue":       orders.LiveRevenue(window),
		"active_orders": orders.ActiveKitchenCount(window),
		"business_date": today,
		"last_updated":  s.Now().Unix(),
	})
	s.rdb.Expire(s.ctx, LiveStatsKey, 24*time.Hour)

	// Daily best sellers as a sorted set, rebuilt from scratch each time so
	// archived and cancelled orders drop out.
	daily := orders.DailyOrders(window, today)
	topKey := TopItemsKey + today
	s.rdb.Del(s.ctx, topKey)
	for _, item := range orders.TopItems(daily, 0) {
		s.rdb.ZAdd(s.ctx, topKey, redis.Z{
			Score:  float64(item.Qty),
			Member: item.Name,
		})
	}
	s.rdb.Expire(s.ctx, topKey, 7*24*time.Hour)

	return nil
}

func (s *Store) recentOrders() ([]orders.Order, error) {
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
